// validate_config 检查游戏配置文件
//
// 用法：
//
//	go run ./cmd/validate_config data/game.yaml custom.yaml
package main

import (
	"fmt"
	"os"

	"github.com/decker502/starshooter/pkg/config"
)

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{"data/game.yaml"}
	}

	failed := 0
	for _, path := range paths {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}

		fmt.Printf("✅ %s\n", path)
		fmt.Printf("   窗口: %vx%v, tickRate=%d, baseSpeed=%v\n",
			cfg.Window.Width, cfg.Window.Height, cfg.Simulation.TickRate, cfg.Simulation.BaseSpeed)
		fmt.Printf("   初始生命: %d, 击杀得分: %d, 掉落概率: 1/%d\n",
			cfg.Player.StartLives, cfg.Enemy.KillScore, cfg.PowerUps.DropOneIn)
		if cfg.Rules.AutoUpgradeWeaponOnWaveClear {
			fmt.Printf("   规则: 清空一波后武器自动升级\n")
		}
	}

	if failed > 0 {
		fmt.Printf("❌ %d 个配置文件无效\n", failed)
		os.Exit(1)
	}
}
