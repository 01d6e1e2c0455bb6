package entities

import (
	"log"

	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/game"
)

// 绘制层级
const (
	ZBackground = 0
	ZPowerUp    = 3
	ZProjectile = 5
	ZShip       = 10
	ZExplosion  = 20
)

// NewPlayer 创建玩家飞船
// 玩家位于窗口底部正中，不参与边界自动删除
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - window: 窗口尺寸
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
func NewPlayer(em *ecs.EntityManager, cfg *config.GameConfig, window game.WindowBounds) ecs.EntityID {
	scale := cfg.Simulation.SpriteScale
	size := cfg.Player.Size

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: 0,
		Y: -window.HalfH() + size.Height*scale/2,
	})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.MovableComponent{AutoDespawn: false})
	em.AddComponent(id, &components.ScaleComponent{ScaleX: scale, ScaleY: scale})
	em.AddComponent(id, &components.CollisionComponent{Width: size.Width, Height: size.Height})
	em.AddComponent(id, &components.SpriteComponent{Sprite: components.SpritePlayer, Z: ZShip})
	em.AddComponent(id, &components.PlayerComponent{})

	log.Printf("[ShipFactory] Player spawned: id=%d", id)
	return id
}

// NewEnemy 创建敌机
//
// 参数:
//   - x, y: 世界坐标
//   - vx, vy: 巡逻速度分量
func NewEnemy(em *ecs.EntityManager, cfg *config.GameConfig, x, y, vx, vy float64) ecs.EntityID {
	scale := cfg.Simulation.SpriteScale
	size := cfg.Enemy.Size

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.MovableComponent{AutoDespawn: false})
	em.AddComponent(id, &components.ScaleComponent{ScaleX: scale, ScaleY: scale})
	em.AddComponent(id, &components.CollisionComponent{Width: size.Width, Height: size.Height})
	em.AddComponent(id, &components.SpriteComponent{Sprite: components.SpriteEnemy, Z: ZShip})
	em.AddComponent(id, &components.EnemyComponent{})
	return id
}
