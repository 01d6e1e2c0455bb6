package systems

import (
	"testing"

	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/entities"
)

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id1 := em.CreateEntity()
	em.AddComponent(id1, &components.LifetimeComponent{MaxLifetime: 5.0})
	id2 := em.CreateEntity()
	em.AddComponent(id2, &components.LifetimeComponent{MaxLifetime: 10.0})

	system.Update(3.0)
	system.Update(4.0)

	if !em.IsMarkedForDestroy(id1) {
		t.Error("entity 1 should be expired after 7s")
	}
	if em.IsMarkedForDestroy(id2) {
		t.Error("entity 2 should still be alive")
	}

	life, _ := ecs.GetComponent[*components.LifetimeComponent](em, id2)
	if life.CurrentLifetime != 7.0 {
		t.Errorf("expected CurrentLifetime=7.0, got %f", life.CurrentLifetime)
	}

	em.RemoveMarkedEntities()
	if em.IsAlive(id1) {
		t.Error("expired entity should be removed after sweep")
	}
}

// TestExplosionAnimation 每个帧间隔推进一帧，播完最后一帧后删除
func TestExplosionAnimation(t *testing.T) {
	em, _, cfg := newTestWorld(t)
	cfg.Explosion.Frames = 4
	cfg.Explosion.FrameDuration = 0.25
	system := NewLifetimeSystem(em)

	id := entities.NewExplosion(em, cfg, 0, 0)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)

	wantFrames := []int{0, 1, 1, 2, 2, 3, 3}
	for i, want := range wantFrames {
		system.Update(0.125)
		if sprite.Frame != want {
			t.Errorf("step %d: expected frame %d, got %d", i, want, sprite.Frame)
		}
		if em.IsMarkedForDestroy(id) {
			t.Fatalf("step %d: explosion removed too early", i)
		}
	}

	system.Update(0.125)
	if !em.IsMarkedForDestroy(id) {
		t.Error("explosion should be removed after its last frame")
	}
}
