package scenes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/entities"
	"github.com/decker502/starshooter/pkg/game"
	"github.com/decker502/starshooter/pkg/systems"
	"github.com/decker502/starshooter/pkg/utils"
)

// StateListener 状态变化通知（UI 层据此显示或隐藏菜单）
type StateListener func(from, to game.GameState)

// GameScene 射击游戏的仿真场景
//
// 负责：
//   - 持有实体存储和世界资源
//   - 按固定顺序驱动 tick 流水线
//   - 集中执行状态迁移及其进入钩子（重置、读档、写档、清场）
//
// 场景本身不依赖 ebiten，渲染层通过 DrainEntityEvents 和 HUD 读取结果
type GameScene struct {
	config *config.GameConfig
	store  game.SaveStore

	entityManager *ecs.EntityManager
	world         *game.World

	waveSystem *systems.EnemyWaveSystem
	renderSync *systems.RenderSyncSystem
	hudSystem  *systems.HUDSystem

	// gameplay 仅在 InGame 状态运行；presentation 每个 tick 都运行
	gameplay     *systems.Pipeline
	presentation *systems.Pipeline

	listeners     []StateListener
	notice        string
	exitRequested bool
}

// NewGameScene 创建场景
//
// 参数：
//   - cfg: 游戏配置（已校验）
//   - store: 存档后端
//   - rng: 随机数来源，波次与碰撞系统共用
//
// 返回：
//   - error: 流水线读写集校验失败时返回
func NewGameScene(cfg *config.GameConfig, store game.SaveStore, rng utils.Random) (*GameScene, error) {
	em := ecs.NewEntityManager()
	window := game.WindowBounds{W: cfg.Window.Width, H: cfg.Window.Height}
	world := game.NewWorld(window, cfg.Player.StartLives)

	s := &GameScene{
		config:        cfg,
		store:         store,
		entityManager: em,
		world:         world,
		waveSystem:    systems.NewEnemyWaveSystem(em, world, cfg, rng),
		renderSync:    systems.NewRenderSyncSystem(em),
		hudSystem:     systems.NewHUDSystem(world),
	}

	gameplay, err := systems.NewPipeline(
		systems.Sequential(systems.Step{
			Name:   "input",
			System: systems.NewInputSystem(em, world, cfg),
			Reads:  []systems.Resource{systems.ResInput},
			Writes: []systems.Resource{systems.ResEntities},
		}),
		systems.Sequential(systems.Step{
			Name:   "movement",
			System: systems.NewMovementSystem(em, world, cfg),
			Writes: []systems.Resource{systems.ResEntities},
		}),
		systems.Sequential(systems.Step{
			Name:   "background",
			System: systems.NewBackgroundSystem(em, world, cfg),
			Writes: []systems.Resource{systems.ResEntities},
		}),
		systems.Sequential(systems.Step{
			Name:   "weapon",
			System: systems.NewWeaponSystem(em, world, cfg),
			Reads:  []systems.Resource{systems.ResInput, systems.ResPlayer},
			Writes: []systems.Resource{systems.ResEntities},
		}),
		systems.Sequential(systems.Step{
			Name:   "enemyWave",
			System: s.waveSystem,
			Reads:  []systems.Resource{systems.ResWave, systems.ResTick},
			Writes: []systems.Resource{systems.ResEntities, systems.ResEnemyCount, systems.ResRandom},
		}),
		systems.Sequential(systems.Step{
			Name:   "collision",
			System: systems.NewCollisionSystem(em, world, cfg, rng),
			Writes: []systems.Resource{
				systems.ResEntities, systems.ResEnemyCount, systems.ResWave,
				systems.ResScore, systems.ResPlayer, systems.ResEvents, systems.ResRandom,
			},
		}),
		systems.Sequential(systems.Step{
			Name:   "powerUp",
			System: systems.NewPowerUpSystem(em, cfg),
			Writes: []systems.Resource{systems.ResEntities},
		}),
		systems.Parallel(
			systems.Step{
				Name:   "lifetime",
				System: systems.NewLifetimeSystem(em),
				Writes: []systems.Resource{systems.ResEntities},
			},
			systems.Step{
				Name:   "clock",
				System: systems.UpdateFunc(func(float64) { world.Tick++ }),
				Writes: []systems.Resource{systems.ResTick},
			},
		),
		systems.Sequential(systems.Step{
			Name:   "sweep",
			System: systems.UpdateFunc(func(float64) { em.RemoveMarkedEntities() }),
			Writes: []systems.Resource{systems.ResEntities},
		}),
		systems.Sequential(systems.Step{
			Name:   "state",
			System: systems.UpdateFunc(func(float64) { s.evaluateState() }),
			Reads:  []systems.Resource{systems.ResInput},
			Writes: []systems.Resource{systems.ResEvents, systems.ResGameState, systems.ResEntities},
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build gameplay pipeline: %w", err)
	}

	presentation, err := systems.NewPipeline(
		systems.Sequential(systems.Step{
			Name:   "sweep",
			System: systems.UpdateFunc(func(float64) { em.RemoveMarkedEntities() }),
			Writes: []systems.Resource{systems.ResEntities},
		}),
		systems.Parallel(
			systems.Step{
				Name:   "renderSync",
				System: s.renderSync,
				Reads:  []systems.Resource{systems.ResEntities},
				Writes: []systems.Resource{systems.ResRenderCache},
			},
			systems.Step{
				Name:   "hud",
				System: s.hudSystem,
				Reads: []systems.Resource{
					systems.ResScore, systems.ResWave, systems.ResPlayer, systems.ResGameState,
				},
				Writes: []systems.Resource{systems.ResHUD},
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build presentation pipeline: %w", err)
	}

	s.gameplay = gameplay
	s.presentation = presentation

	// 玩家飞船和背景滚动标记在整个进程生命周期内存在
	entities.NewPlayer(em, cfg, window)
	entities.NewScrollMarker(em, cfg, window)

	log.Printf("[GameScene] gameplay pipeline: %s", gameplay)
	log.Printf("[GameScene] presentation pipeline: %s", presentation)

	return s, nil
}

// Tick 推进一个固定步长
//
// InGame 时运行完整的玩法流水线；Paused 时 Space 等同于 "continue"；
// 其余状态只刷新渲染描述和 HUD
func (s *GameScene) Tick(input game.InputState) {
	s.world.Input = input
	dt := s.config.Simulation.FixedDelta()

	switch s.world.State {
	case game.StateInGame:
		s.gameplay.Run(dt)
	case game.StatePaused:
		if input.FirePressed {
			s.HandleEvent(game.EventContinue)
		}
	}

	s.presentation.Run(dt)
}

// evaluateState 状态机阶段：先处理系统产生的事件，再处理暂停按键边沿
func (s *GameScene) evaluateState() {
	for _, e := range s.world.DrainEvents() {
		s.HandleEvent(e)
	}
	if s.world.State == game.StateInGame && s.world.Input.PausePressed {
		s.HandleEvent(game.EventPause)
	}
}

// HandleEvent 处理一个外部或内部事件
// 当前状态不接受该事件属于程序错误，直接 panic
func (s *GameScene) HandleEvent(e game.Event) {
	if e == game.EventExit {
		s.mustTransition(e)
		s.exitRequested = true
		log.Printf("[GameScene] exit requested")
		return
	}

	from := s.world.State
	to := s.mustTransition(e)
	log.Printf("[GameScene] %s --%s--> %s", from, e, to)

	s.world.State = to
	for _, l := range s.listeners {
		l(from, to)
	}
	s.enter(to)
	s.hudSystem.Update(0)
}

// mustTransition 查询迁移表，非法迁移时 panic
func (s *GameScene) mustTransition(e game.Event) game.GameState {
	next, err := game.NextState(s.world.State, e)
	if err != nil {
		panic(fmt.Sprintf("[GameScene] %v", err))
	}
	return next
}

// enter 状态进入钩子，自动迁移（Initialized / LoadSucceeded / SaveFinished 等）在这里触发
func (s *GameScene) enter(state game.GameState) {
	switch state {
	case game.StateMainMenu:
		s.clearPlayfield()
	case game.StateInitNewGame:
		s.world.ResetForNewGame()
		s.waveSystem.Reset()
		s.recenterPlayer()
		s.notice = ""
		s.HandleEvent(game.EventInitialized)
	case game.StateLoad:
		s.loadGame()
	case game.StateSave:
		s.saveGame()
	}
}

// loadGame 读档，成功进入 InGame，失败回到主菜单并给出提示
func (s *GameScene) loadGame() {
	ctx, cancel := s.ioContext()
	rec, err := s.store.Load(ctx)
	cancel()
	if err == nil {
		err = rec.Validate(s.config.Saves.MaxWave)
	}

	if err != nil {
		var loadErr *game.LoadError
		if errors.As(err, &loadErr) && loadErr.Reason == game.LoadReasonNotFound {
			s.notice = "no saved game found"
		} else {
			s.notice = "saved game could not be loaded"
		}
		log.Printf("[GameScene] load failed: %v", err)
		s.HandleEvent(game.EventLoadFailed)
		return
	}

	s.world.ApplySave(rec)
	s.waveSystem.Reset()
	s.recenterPlayer()
	s.notice = ""
	log.Printf("[GameScene] loaded wave=%d score=%d lives=%d", rec.Wave, rec.Score, rec.Lives)
	s.HandleEvent(game.EventLoadSucceeded)
}

// saveGame 写档，无论成功与否都回到 Paused
func (s *GameScene) saveGame() {
	ctx, cancel := s.ioContext()
	err := s.store.Save(ctx, s.world.Snapshot())
	cancel()

	if err != nil {
		s.notice = "game could not be saved"
		log.Printf("[GameScene] save failed: %v", err)
	} else {
		s.notice = "game saved"
	}
	s.HandleEvent(game.EventSaveFinished)
}

func (s *GameScene) ioContext() (context.Context, context.CancelFunc) {
	timeout := time.Duration(s.config.Saves.TimeoutMs) * time.Millisecond
	return context.WithTimeout(context.Background(), timeout)
}

// clearPlayfield 进入主菜单时清除敌机、子弹、道具和爆炸
func (s *GameScene) clearPlayfield() {
	em := s.entityManager
	var ids []ecs.EntityID
	ids = append(ids, ecs.GetEntitiesWith1[*components.EnemyComponent](em)...)
	ids = append(ids, ecs.GetEntitiesWith1[*components.ProjectileComponent](em)...)
	ids = append(ids, ecs.GetEntitiesWith1[*components.PowerUpComponent](em)...)
	ids = append(ids, ecs.GetEntitiesWith1[*components.PowerUpRequestComponent](em)...)
	ids = append(ids, ecs.GetEntitiesWith1[*components.ExplosionComponent](em)...)
	for _, id := range ids {
		em.DestroyEntity(id)
	}
	if len(ids) > 0 {
		log.Printf("[GameScene] cleared %d gameplay entities", len(ids))
	}
}

// recenterPlayer 新局开始时玩家回到底部中央并停止移动
func (s *GameScene) recenterPlayer() {
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
			pos.X = 0
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
			vel.VX, vel.VY = 0, 0
		}
	}
}

// OnStateChanged 注册状态变化监听
func (s *GameScene) OnStateChanged(l StateListener) {
	s.listeners = append(s.listeners, l)
}

// State 返回当前状态
func (s *GameScene) State() game.GameState {
	return s.world.State
}

// HUD 返回最近一次刷新的 HUD 快照
func (s *GameScene) HUD() game.HUDSnapshot {
	return s.hudSystem.Snapshot()
}

// Notice 返回最近一次读档或写档的提示信息
func (s *GameScene) Notice() string {
	return s.notice
}

// ClearNotice 清除提示
func (s *GameScene) ClearNotice() {
	s.notice = ""
}

// ExitRequested 主菜单是否选择了退出
func (s *GameScene) ExitRequested() bool {
	return s.exitRequested
}

// DrainEntityEvents 取出本 tick 以来的实体描述变化
func (s *GameScene) DrainEntityEvents() []systems.EntityEvent {
	return s.renderSync.DrainEvents()
}

// ElapsedTime 返回仿真时间（秒）
func (s *GameScene) ElapsedTime() float64 {
	return s.world.ElapsedTime(s.config.Simulation.FixedDelta())
}

// EntityManager 返回实体存储
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// World 返回世界资源
func (s *GameScene) World() *game.World {
	return s.world
}
