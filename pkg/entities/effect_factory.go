package entities

import (
	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
)

// NewExplosion 创建爆炸特效
// 精灵表动画共 frames 帧，最后一帧播放完后由生命周期系统删除
func NewExplosion(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) ecs.EntityID {
	ex := cfg.Explosion

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	em.AddComponent(id, &components.SpriteComponent{Sprite: components.SpriteExplosion, Z: ZExplosion})
	em.AddComponent(id, &components.ExplosionComponent{})
	em.AddComponent(id, &components.FrameAnimationComponent{
		FrameCount:    ex.Frames,
		FrameDuration: ex.FrameDuration,
	})
	em.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: float64(ex.Frames) * ex.FrameDuration,
	})
	return id
}
