package systems

import (
	"log"

	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/entities"
	"github.com/decker502/starshooter/pkg/game"
	"github.com/decker502/starshooter/pkg/utils"
)

// EnemyWaveSystem 敌机波次控制
//
// 每个 tick 依次执行：
//  1. 生成：EnemyCount 为 0 时生成 Wave 架敌机，EnemyCount = Wave
//  2. 巡逻：按仿真时间的相位同步翻转所有敌机的速度分量
//  3. 开火：以 1/fireOneIn 的概率随机选一架敌机向下发射激光
type EnemyWaveSystem struct {
	entityManager *ecs.EntityManager
	world         *game.World
	config        *config.GameConfig
	rng           utils.Random

	// flipped 当前偶数相位窗口内是否已经翻转过
	flipped bool
}

// NewEnemyWaveSystem 创建波次系统
func NewEnemyWaveSystem(em *ecs.EntityManager, world *game.World, cfg *config.GameConfig, rng utils.Random) *EnemyWaveSystem {
	return &EnemyWaveSystem{
		entityManager: em,
		world:         world,
		config:        cfg,
		rng:           rng,
	}
}

// Update 执行生成、巡逻和开火
func (s *EnemyWaveSystem) Update(deltaTime float64) {
	s.spawnWave()
	s.patrol()
	s.fire()
}

// spawnWave 生成区域为窗口内部去掉边距，下方边距更大以远离玩家
func (s *EnemyWaveSystem) spawnWave() {
	if s.world.EnemyCount != 0 {
		return
	}

	ec := s.config.Enemy
	spanX := s.world.Window.HalfW() - ec.SpawnMargin
	minY := -s.world.Window.HalfH() + ec.BottomMargin
	maxY := s.world.Window.HalfH() - ec.SpawnMargin

	for i := uint32(0); i < s.world.Wave; i++ {
		x := utils.Range(s.rng, -spanX, spanX)
		y := utils.Range(s.rng, minY, maxY)
		vx := utils.Range(s.rng, -ec.MaxSpeed, ec.MaxSpeed)
		vy := utils.Range(s.rng, -ec.MaxSpeed, ec.MaxSpeed)
		entities.NewEnemy(s.entityManager, s.config, x, y, vx, vy)
	}
	s.world.EnemyCount = s.world.Wave

	log.Printf("[EnemyWaveSystem] Wave %d spawned %d enemies", s.world.Wave, s.world.Wave)
}

// Phase 返回当前巡逻相位 floor(elapsed * 2)
// 用整数运算由 tick 计数推导，避免浮点误差
func (s *EnemyWaveSystem) Phase() uint64 {
	return s.world.Tick * 2 / uint64(s.config.Simulation.TickRate)
}

// patrol 偶数相位翻转一次：phase%4 != 0 翻转 X，否则翻转 Y；奇数相位清除锁存
func (s *EnemyWaveSystem) patrol() {
	phase := s.Phase()
	if phase%2 == 1 {
		s.flipped = false
		return
	}
	if s.flipped {
		return
	}

	flipX := phase%4 != 0
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.VelocityComponent](s.entityManager) {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if flipX {
			vel.VX = -vel.VX
		} else {
			vel.VY = -vel.VY
		}
	}
	s.flipped = true
}

// fire 概率判定通过后才从存活敌机中均匀选择一架
func (s *EnemyWaveSystem) fire() {
	if !utils.OneIn(s.rng, s.config.Enemy.FireOneIn) {
		return
	}

	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager)
	if len(enemies) == 0 {
		return
	}
	shooter := enemies[s.rng.Intn(len(enemies))]
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, shooter)
	entities.NewEnemyLaser(s.entityManager, s.config, pos.X, pos.Y)
}

// Reset 清除巡逻锁存（开始新游戏时调用）
func (s *EnemyWaveSystem) Reset() {
	s.flipped = false
}
