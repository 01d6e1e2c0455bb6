// simulate 无窗口运行完整的 tick 流水线
//
// 自动驾驶：玩家向最近的敌机水平移动，并按固定间隔开火。
// 每秒仿真时间打印一次 HUD，生命耗尽回到主菜单时结束。
//
// 用法：
//
//	go run ./cmd/simulate -seed 7 -ticks 36000
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/game"
	"github.com/decker502/starshooter/pkg/scenes"
	"github.com/decker502/starshooter/pkg/utils"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "data/game.yaml", "游戏配置文件路径，为空时使用默认值")
	seed       = flag.Int64("seed", 1, "随机种子")
	maxTicks   = flag.Int("ticks", 60*60*5, "最多运行的 tick 数")
	fireEvery  = flag.Int("fire-every", 12, "每隔多少 tick 开火一次")
	saveDir    = flag.String("saves", filepath.Join(os.TempDir(), "starshooter-sim"), "存档目录")
	saveAt     = flag.Int("save-at", 0, "在第 N 个 tick 暂停并存档，0 表示不存档")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	store := game.NewFileSaveStore(*saveDir, cfg.Saves.File)
	scene, err := scenes.NewGameScene(cfg, store, utils.NewPRNG(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "场景初始化失败: %v\n", err)
		os.Exit(1)
	}
	scene.OnStateChanged(func(from, to game.GameState) {
		fmt.Printf("[%7.2fs] %s -> %s\n", scene.ElapsedTime(), from, to)
	})

	scene.HandleEvent(game.EventNewGame)

	for tick := 1; tick <= *maxTicks; tick++ {
		if *saveAt > 0 && tick == *saveAt && scene.State() == game.StateInGame {
			scene.HandleEvent(game.EventPause)
			scene.HandleEvent(game.EventSaveGame)
			fmt.Printf("save: %s (%s)\n", store.Path(), scene.Notice())
			scene.HandleEvent(game.EventContinue)
		}

		scene.Tick(autopilot(scene, tick, *fireEvery))
		scene.DrainEntityEvents()

		if tick%cfg.Simulation.TickRate == 0 {
			printHUD(scene)
		}
		if scene.State() == game.StateMainMenu {
			fmt.Println("game over")
			break
		}
	}

	printHUD(scene)
	fmt.Printf("entities alive: %d\n", scene.EntityManager().EntityCount())
}

// autopilot 生成一个 tick 的输入
func autopilot(s *scenes.GameScene, tick, fireEvery int) game.InputState {
	em := s.EntityManager()
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em)
	if len(players) == 0 {
		return game.InputState{}
	}
	player, _ := ecs.GetComponent[*components.PositionComponent](em, players[0])

	target, best := player.X, math.Inf(1)
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if d := math.Abs(pos.X - player.X); d < best {
			target, best = pos.X, d
		}
	}

	const deadZone = 5
	return game.InputState{
		Left:        target < player.X-deadZone,
		Right:       target > player.X+deadZone,
		FirePressed: fireEvery > 0 && tick%fireEvery == 0,
	}
}

func printHUD(s *scenes.GameScene) {
	h := s.HUD()
	fmt.Printf("[%7.2fs] state=%-8s score=%-6d lives=%d wave=%-3d weapon=%s lv%d\n",
		s.ElapsedTime(), h.State, h.Score, h.Lives, h.Wave, h.WeaponType, h.WeaponLevel)
}
