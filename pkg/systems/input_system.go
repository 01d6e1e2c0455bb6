package systems

import (
	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/game"
)

// InputSystem 把当前 tick 的输入快照转换为玩家水平速度
// 只处理持续按键；开火边沿由 WeaponSystem 处理，暂停边沿由状态机处理
type InputSystem struct {
	entityManager *ecs.EntityManager
	world         *game.World
	speed         float64
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, world *game.World, cfg *config.GameConfig) *InputSystem {
	return &InputSystem{
		entityManager: em,
		world:         world,
		speed:         cfg.Player.Speed,
	}
}

// Update 设置玩家速度：Left → -speed，Right → +speed，否则 0
func (s *InputSystem) Update(deltaTime float64) {
	axis := s.world.Input.HorizontalAxis()
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.VelocityComponent](s.entityManager) {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		vel.VX = axis * s.speed
	}
}
