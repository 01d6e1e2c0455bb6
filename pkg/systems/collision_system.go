package systems

import (
	"log"
	"math"

	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/entities"
	"github.com/decker502/starshooter/pkg/game"
	"github.com/decker502/starshooter/pkg/utils"
)

// Rect 轴对齐包围盒：中心 + 半尺寸（已乘缩放）
type Rect struct {
	X, Y         float64
	HalfW, HalfH float64
}

// Overlaps 两个 AABB 在两个轴上的投影都相交时重叠
// 仅边缘接触不算重叠；结果与参数顺序无关
func Overlaps(a, b Rect) bool {
	return math.Abs(a.X-b.X) < a.HalfW+b.HalfW &&
		math.Abs(a.Y-b.Y) < a.HalfH+b.HalfH
}

// CollisionSystem 碰撞检测与结算
//
// 每个 tick 执行三轮：
//   - 玩家子弹 × 敌机：击杀、计分、爆炸、波次推进、概率掉落道具
//   - 敌机子弹 × 玩家：每 tick 最多扣一条命
//   - 道具 × 玩家：每 tick 最多拾取一个
//
// 每轮内已结算的实体记入 resolved，不会再与其他实体结算
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	world         *game.World
	config        *config.GameConfig
	rng           utils.Random
	weights       []int
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, world *game.World, cfg *config.GameConfig, rng utils.Random) *CollisionSystem {
	w := cfg.PowerUps.Weights
	return &CollisionSystem{
		entityManager: em,
		world:         world,
		config:        cfg,
		rng:           rng,
		// 顺序与 components.AllPowerUpTypes 一致
		weights: []int{w.Heal, w.WeaponLevelUp, w.SwitchToLasergun, w.SwitchToShotgun},
	}
}

// Update 执行三轮碰撞结算
func (s *CollisionSystem) Update(deltaTime float64) {
	s.resolvePlayerProjectiles()
	s.resolveEnemyProjectiles()
	s.resolvePowerUps()
}

// rectOf 返回实体的碰撞盒
func (s *CollisionSystem) rectOf(id ecs.EntityID) (Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return Rect{}, false
	}
	sx, sy := 1.0, 1.0
	if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		sx, sy = sc.ScaleX, sc.ScaleY
	}
	return Rect{X: pos.X, Y: pos.Y, HalfW: col.Width * sx / 2, HalfH: col.Height * sy / 2}, true
}

// projectiles 返回指定来源的子弹
func (s *CollisionSystem) projectiles(source components.ProjectileSource) []ecs.EntityID {
	all := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.CollisionComponent](s.entityManager)
	result := make([]ecs.EntityID, 0, len(all))
	for _, id := range all {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		if proj.Source == source {
			result = append(result, id)
		}
	}
	return result
}

// player 返回玩家实体
func (s *CollisionSystem) player() (ecs.EntityID, bool) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.CollisionComponent](s.entityManager)
	if len(players) == 0 {
		return 0, false
	}
	return players[0], true
}

func (s *CollisionSystem) resolvePlayerProjectiles() {
	resolved := make(map[ecs.EntityID]struct{})
	isResolved := func(id ecs.EntityID) bool {
		_, done := resolved[id]
		return done || !s.entityManager.IsAlive(id)
	}

	lasers := s.projectiles(components.FromPlayer)
	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.CollisionComponent](s.entityManager)

	for _, laserID := range lasers {
		if isResolved(laserID) {
			continue
		}
		laserRect, ok := s.rectOf(laserID)
		if !ok {
			continue
		}

		for _, enemyID := range enemies {
			if isResolved(enemyID) || isResolved(laserID) {
				continue
			}
			enemyRect, ok := s.rectOf(enemyID)
			if !ok || !Overlaps(laserRect, enemyRect) {
				continue
			}

			s.entityManager.DestroyEntity(enemyID)
			resolved[enemyID] = struct{}{}
			s.entityManager.DestroyEntity(laserID)
			resolved[laserID] = struct{}{}

			s.onEnemyKilled(enemyRect.X, enemyRect.Y)
		}
	}
}

// onEnemyKilled 击杀结算
func (s *CollisionSystem) onEnemyKilled(x, y float64) {
	if s.world.EnemyCount > 0 {
		s.world.EnemyCount--
	}
	s.world.Score += s.config.Enemy.KillScore

	entities.NewExplosion(s.entityManager, s.config, x, y)

	if s.world.EnemyCount == 0 {
		s.world.Wave++
		log.Printf("[CollisionSystem] Wave cleared, next wave %d", s.world.Wave)
		if s.config.Rules.AutoUpgradeWeaponOnWaveClear {
			s.world.Player.WeaponLevel++
		}
	}

	if utils.OneIn(s.rng, s.config.PowerUps.DropOneIn) {
		t := components.AllPowerUpTypes[utils.ChooseWeighted(s.rng, s.weights)]
		entities.NewPowerUpRequest(s.entityManager, x, y, t)
	}
}

func (s *CollisionSystem) resolveEnemyProjectiles() {
	playerID, ok := s.player()
	if !ok {
		return
	}
	playerRect, ok := s.rectOf(playerID)
	if !ok {
		return
	}

	for _, laserID := range s.projectiles(components.FromEnemy) {
		laserRect, ok := s.rectOf(laserID)
		if !ok || !Overlaps(laserRect, playerRect) {
			continue
		}

		s.entityManager.DestroyEntity(laserID)
		if s.world.Player.LoseLife() {
			log.Printf("[CollisionSystem] Player lives depleted")
			s.world.RequestEvent(game.EventLivesDepleted)
		}
		return
	}
}

func (s *CollisionSystem) resolvePowerUps() {
	playerID, ok := s.player()
	if !ok {
		return
	}
	playerRect, ok := s.rectOf(playerID)
	if !ok {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PowerUpComponent, *components.CollisionComponent](s.entityManager) {
		rect, ok := s.rectOf(id)
		if !ok || !Overlaps(rect, playerRect) {
			continue
		}

		pu, _ := ecs.GetComponent[*components.PowerUpComponent](s.entityManager, id)
		s.entityManager.DestroyEntity(id)
		s.world.Player.ApplyPowerUp(pu.Type)
		log.Printf("[CollisionSystem] Power-up collected: %s", pu.Type)
		return
	}
}
