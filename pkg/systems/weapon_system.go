package systems

import (
	"log"
	"math"

	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/entities"
	"github.com/decker502/starshooter/pkg/game"
)

// WeaponSystem 玩家开火
// 每个 tick 最多执行一条开火路径，由武器类型决定；只响应开火按键的按下边沿
type WeaponSystem struct {
	entityManager *ecs.EntityManager
	world         *game.World
	config        *config.GameConfig
}

// NewWeaponSystem 创建武器系统
func NewWeaponSystem(em *ecs.EntityManager, world *game.World, cfg *config.GameConfig) *WeaponSystem {
	return &WeaponSystem{
		entityManager: em,
		world:         world,
		config:        cfg,
	}
}

// Update 检测开火边沿并生成子弹
func (s *WeaponSystem) Update(deltaTime float64) {
	if !s.world.Input.FirePressed {
		return
	}

	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	if len(players) == 0 {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, players[0])

	level := s.world.Player.WeaponLevel
	switch s.world.Player.WeaponType {
	case components.WeaponLasergun:
		s.fireLasergun(pos.X, pos.Y, level)
	case components.WeaponShotgun:
		s.fireShotgun(pos.X, pos.Y, level)
	default:
		log.Printf("[WeaponSystem] Unknown weapon type %d", s.world.Player.WeaponType)
	}
}

// fireLasergun 平行光束：等级为奇数时发射中心光束，
// 另有 level/2 对光束对称分布在 ±i*stepX，垂直偏移随 i 递减
func (s *WeaponSystem) fireLasergun(x, y float64, level uint32) {
	gun := s.config.Weapons.Lasergun

	if level%2 == 1 {
		entities.NewLaserBeam(s.entityManager, s.config, x, y+gun.OffsetY)
	}
	for i := uint32(1); i <= level/2; i++ {
		dx := gun.StepX * float64(i)
		dy := gun.OffsetY - gun.StepY*float64(i)
		entities.NewLaserBeam(s.entityManager, s.config, x+dx, y+dy)
		entities.NewLaserBeam(s.entityManager, s.config, x-dx, y+dy)
	}
}

// fireShotgun 扇形散射：level 发弹丸，
// angle_k = -dispersion/2 + k*dispersion/(level+1)，k = 1..level
func (s *WeaponSystem) fireShotgun(x, y float64, level uint32) {
	gun := s.config.Weapons.Shotgun
	for _, angle := range ShotgunAngles(gun.DispersionDeg*math.Pi/180, level) {
		entities.NewShotgunPellet(s.entityManager, s.config, x, y+gun.OffsetY, angle)
	}
}

// ShotgunAngles 计算霰弹枪每发弹丸相对正上方的偏角（弧度）
// 结果关于 0 对称
func ShotgunAngles(dispersion float64, level uint32) []float64 {
	angles := make([]float64, 0, level)
	delta := dispersion / float64(level+1)
	for k := uint32(1); k <= level; k++ {
		angles = append(angles, -dispersion/2+float64(k)*delta)
	}
	return angles
}
