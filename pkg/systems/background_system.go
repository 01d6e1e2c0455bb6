package systems

import (
	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/entities"
	"github.com/decker502/starshooter/pkg/game"
)

// BackgroundSystem 无限纵向滚动背景
//
// 滚动标记与瓦片同速下移。标记低于 (H+tileSize)/2 时，在标记高度生成一整行瓦片，
// 然后标记上移一个瓦片高度。每个 tick 最多生成一行。
type BackgroundSystem struct {
	entityManager *ecs.EntityManager
	world         *game.World
	config        *config.GameConfig
}

// NewBackgroundSystem 创建背景系统
func NewBackgroundSystem(em *ecs.EntityManager, world *game.World, cfg *config.GameConfig) *BackgroundSystem {
	return &BackgroundSystem{
		entityManager: em,
		world:         world,
		config:        cfg,
	}
}

// Update 检查滚动标记并按需补一行瓦片
func (s *BackgroundSystem) Update(deltaTime float64) {
	tile := s.config.Background.TileSize
	threshold := (s.world.Window.H + tile) / 2

	for _, id := range ecs.GetEntitiesWith2[*components.ScrollMarkerComponent, *components.PositionComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if pos.Y < threshold {
			entities.SpawnBackgroundRow(s.entityManager, s.config, s.world.Window, pos.Y)
			pos.Y += tile
		}
	}
}
