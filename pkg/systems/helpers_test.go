package systems

import (
	"testing"

	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/game"
)

const testDt = 1.0 / 60.0

// newTestWorld 创建 1280x720 的测试世界，状态为 InGame
func newTestWorld(t *testing.T) (*ecs.EntityManager, *game.World, *config.GameConfig) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	w := game.NewWorld(game.WindowBounds{W: cfg.Window.Width, H: cfg.Window.Height}, cfg.Player.StartLives)
	w.State = game.StateInGame
	return ecs.NewEntityManager(), w, cfg
}

func countWith[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}

func positionOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no position", id)
	}
	return pos
}
