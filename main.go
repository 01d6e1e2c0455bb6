package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/starshooter/pkg/app"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/embedded"
	"github.com/decker502/starshooter/pkg/game"
)

const appName = "starshooter"

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "游戏配置文件路径，为空时使用内置 data/game.yaml")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	storeKind  = flag.String("store", "file", "存档后端：file 或 gdata")
)

// loadConfig 读取外部配置或内置默认配置
func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	data, err := embedded.DefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	return config.ParseGameConfig(data)
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置降级为内存模式）
func openStorage() *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Main] gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return m
}

// newSaveStore 按 -store 选择存档后端
func newSaveStore(kind string, cfg *config.GameConfig, storage *gdata.Manager) (game.SaveStore, error) {
	switch kind {
	case "file":
		return game.NewFileSaveStore(cfg.Saves.Dir, cfg.Saves.File), nil
	case "gdata":
		if storage == nil {
			log.Printf("[Main] gdata unavailable, falling back to file saves")
			return game.NewFileSaveStore(cfg.Saves.Dir, cfg.Saves.File), nil
		}
		return game.NewGdataSaveStore(storage), nil
	default:
		return nil, fmt.Errorf("unknown save store %q (want file or gdata)", kind)
	}
}

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	storage := openStorage()
	store, err := newSaveStore(*storeKind, cfg, storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		Game:     cfg,
		Store:    store,
		Settings: game.NewSettingsManager(storage),
		Seed:     *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(int(cfg.Window.Width), int(cfg.Window.Height))
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(gameApp); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
