package entities

import (
	"math"

	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
)

// newProjectile 创建子弹的公共部分
// 子弹总是参与边界自动删除
func newProjectile(
	em *ecs.EntityManager,
	x, y, vx, vy, rotation, scale float64,
	size config.SizeConfig,
	sprite components.SpriteID,
	source components.ProjectileSource,
) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.MovableComponent{AutoDespawn: true})
	em.AddComponent(id, &components.ScaleComponent{ScaleX: scale, ScaleY: scale})
	em.AddComponent(id, &components.CollisionComponent{Width: size.Width, Height: size.Height})
	em.AddComponent(id, &components.SpriteComponent{Sprite: sprite, Rotation: rotation, Z: ZProjectile})
	em.AddComponent(id, &components.ProjectileComponent{Source: source})
	return id
}

// NewLaserBeam 创建激光枪光束，垂直向上飞行
//
// 参数:
//   - x, y: 发射位置（已包含相对玩家的偏移）
func NewLaserBeam(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) ecs.EntityID {
	gun := cfg.Weapons.Lasergun
	return newProjectile(em, x, y, 0, gun.Speed, 0, cfg.Simulation.SpriteScale,
		gun.Size, components.SpritePlayerLaser, components.FromPlayer)
}

// NewShotgunPellet 创建霰弹枪弹丸
//
// 参数:
//   - angle: 相对正上方的偏角（弧度），正值偏右
//
// 速度为 (sin(angle), cos(angle))，精灵绕 Z 轴旋转 -angle
func NewShotgunPellet(em *ecs.EntityManager, cfg *config.GameConfig, x, y, angle float64) ecs.EntityID {
	return newProjectile(em, x, y, math.Sin(angle), math.Cos(angle), -angle, cfg.Simulation.SpriteScale,
		cfg.Weapons.Shotgun.Size, components.SpriteShotgunPellet, components.FromPlayer)
}

// NewEnemyLaser 创建敌机激光，垂直向下飞行
func NewEnemyLaser(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) ecs.EntityID {
	return newProjectile(em, x, y, 0, -cfg.Enemy.LaserSpeed, 0, cfg.Simulation.SpriteScale,
		cfg.Enemy.LaserSize, components.SpriteEnemyLaser, components.FromEnemy)
}
