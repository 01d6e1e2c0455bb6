package systems

import (
	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/game"
	"github.com/decker502/starshooter/pkg/utils"
)

// MovementSystem 速度积分与越界删除
//
// 每个 tick：position += velocity * deltaTime * baseSpeed
// deltaTime 由调用方传入固定步长，与墙钟无关
type MovementSystem struct {
	entityManager *ecs.EntityManager
	world         *game.World
	baseSpeed     float64
	margin        float64
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, world *game.World, cfg *config.GameConfig) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		world:         world,
		baseSpeed:     cfg.Simulation.BaseSpeed,
		margin:        cfg.Simulation.DespawnMargin,
	}
}

// Update 移动所有 Movable 实体
func (s *MovementSystem) Update(deltaTime float64) {
	limitX := s.world.Window.HalfW() + s.margin
	limitY := s.world.Window.HalfH() + s.margin

	entities := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.MovableComponent,
	](s.entityManager)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		mov, _ := ecs.GetComponent[*components.MovableComponent](s.entityManager, id)

		pos.X += vel.VX * deltaTime * s.baseSpeed
		pos.Y += vel.VY * deltaTime * s.baseSpeed

		if ecs.HasComponent[*components.PlayerComponent](s.entityManager, id) {
			s.clampToWindow(id, pos)
		}

		// 恰好位于 半窗口+边距 处的实体保留
		if mov.AutoDespawn && isOutside(pos, limitX, limitY) {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// clampToWindow 玩家飞船不能离开窗口
func (s *MovementSystem) clampToWindow(id ecs.EntityID, pos *components.PositionComponent) {
	halfWidth := 0.0
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		scale := 1.0
		if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
			scale = sc.ScaleX
		}
		halfWidth = col.Width * scale / 2
	}
	edge := s.world.Window.HalfW() - halfWidth
	if edge < 0 {
		edge = 0
	}
	pos.X = utils.Clamp(pos.X, -edge, edge)
}

func isOutside(pos *components.PositionComponent, limitX, limitY float64) bool {
	return pos.X > limitX || pos.X < -limitX || pos.Y > limitY || pos.Y < -limitY
}
