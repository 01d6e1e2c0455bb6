package entities

import (
	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
)

// NewPowerUpRequest 创建道具生成请求（不可见的瞬时标记实体）
func NewPowerUpRequest(em *ecs.EntityManager, x, y float64, t components.PowerUpType) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PowerUpRequestComponent{X: x, Y: y, Type: t})
	return id
}

// NewPowerUp 创建可拾取道具
// 道具以恒定速度缓慢下落，离开窗口后自动删除；不缩放
func NewPowerUp(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64, t components.PowerUpType) ecs.EntityID {
	pu := cfg.PowerUps

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: 0, VY: -pu.FallSpeed})
	em.AddComponent(id, &components.MovableComponent{AutoDespawn: true})
	em.AddComponent(id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	em.AddComponent(id, &components.CollisionComponent{Width: pu.Size.Width, Height: pu.Size.Height})
	em.AddComponent(id, &components.SpriteComponent{Sprite: t.Sprite(), Z: ZPowerUp})
	em.AddComponent(id, &components.PowerUpComponent{Type: t})
	return id
}
