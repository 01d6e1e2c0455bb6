package entities

import (
	"math"
	"testing"

	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
)

func TestNewLaserBeam(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id := NewLaserBeam(em, cfg, 10, 20)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.X != 10 || pos.Y != 20 {
		t.Fatalf("unexpected position %+v", pos)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if vel.VX != 0 || vel.VY != 1 {
		t.Errorf("laser should fly straight up, got %+v", vel)
	}
	mov, _ := ecs.GetComponent[*components.MovableComponent](em, id)
	if !mov.AutoDespawn {
		t.Error("projectiles must auto despawn")
	}
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
	if proj.Source != components.FromPlayer {
		t.Errorf("expected player source, got %s", proj.Source)
	}
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	if col.Width != 9 || col.Height != 54 {
		t.Errorf("unexpected laser size %+v", col)
	}
}

func TestNewShotgunPellet(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	angle := math.Pi / 6

	id := NewShotgunPellet(em, cfg, 0, 0, angle)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if math.Abs(vel.VX-math.Sin(angle)) > 1e-9 || math.Abs(vel.VY-math.Cos(angle)) > 1e-9 {
		t.Errorf("unexpected velocity %+v", vel)
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Rotation != -angle {
		t.Errorf("expected rotation %v, got %v", -angle, sprite.Rotation)
	}
	if sprite.Sprite != components.SpriteShotgunPellet {
		t.Errorf("unexpected sprite %s", sprite.Sprite)
	}
}

func TestNewEnemyLaser(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id := NewEnemyLaser(em, cfg, 5, 100)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if vel.VX != 0 || vel.VY != -1 {
		t.Errorf("enemy laser should fly straight down, got %+v", vel)
	}
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
	if proj.Source != components.FromEnemy {
		t.Errorf("expected enemy source, got %s", proj.Source)
	}
}
