package systems

import (
	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
// 同时推进带 FrameAnimationComponent 的精灵表动画（如爆炸）
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体
func (s *LifetimeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.CurrentLifetime += deltaTime

		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}

		// 已过期,标记实体待删除
		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
			continue
		}

		s.advanceFrame(id, lifetime.CurrentLifetime)
	}
}

// advanceFrame 当前帧 = floor(已存在时间 / 帧间隔)，不超过最后一帧
func (s *LifetimeSystem) advanceFrame(id ecs.EntityID, elapsed float64) {
	anim, ok := ecs.GetComponent[*components.FrameAnimationComponent](s.entityManager, id)
	if !ok || anim.FrameDuration <= 0 {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		return
	}

	frame := int(elapsed / anim.FrameDuration)
	if frame >= anim.FrameCount {
		frame = anim.FrameCount - 1
	}
	sprite.Frame = frame
}
