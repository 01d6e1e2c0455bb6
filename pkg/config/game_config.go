package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 射击游戏的全部可调参数
// 默认值见 DefaultGameConfig，与 data/game.yaml 保持一致
type GameConfig struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Window     WindowConfig     `yaml:"window"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Weapons    WeaponsConfig    `yaml:"weapons"`
	PowerUps   PowerUpsConfig   `yaml:"powerUps"`
	Background BackgroundConfig `yaml:"background"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Rules      RulesConfig      `yaml:"rules"`
	Saves      SavesConfig      `yaml:"saves"`
}

// SimulationConfig 固定步长仿真参数
type SimulationConfig struct {
	TickRate      int     `yaml:"tickRate"`      // 每秒 tick 数，fixedDt = 1/tickRate
	BaseSpeed     float64 `yaml:"baseSpeed"`     // 速度到像素的换算系数
	DespawnMargin float64 `yaml:"despawnMargin"` // 自动删除的窗口外边距
	SpriteScale   float64 `yaml:"spriteScale"`   // 飞船与子弹的统一缩放
}

// FixedDelta 返回固定步长（秒）
func (s SimulationConfig) FixedDelta() float64 {
	return 1.0 / float64(s.TickRate)
}

// WindowConfig 逻辑窗口尺寸
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Title  string  `yaml:"title"`
}

// SizeConfig 精灵尺寸（未缩放）
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Size       SizeConfig `yaml:"size"`
	StartLives uint32     `yaml:"startLives"`
	Speed      float64    `yaml:"speed"` // 左右移动速度（逻辑单位）
}

// EnemyConfig 敌机与波次参数
type EnemyConfig struct {
	Size         SizeConfig `yaml:"size"`
	SpawnMargin  float64    `yaml:"spawnMargin"`  // 左、右、上方留白
	BottomMargin float64    `yaml:"bottomMargin"` // 下方留白，避免贴近玩家生成
	MaxSpeed     float64    `yaml:"maxSpeed"`     // 巡逻速度分量取值 [-maxSpeed, maxSpeed]
	FireOneIn    int        `yaml:"fireOneIn"`    // 每 tick 开火概率 1/fireOneIn
	LaserSize    SizeConfig `yaml:"laserSize"`
	LaserSpeed   float64    `yaml:"laserSpeed"`
	KillScore    uint32     `yaml:"killScore"`
}

// WeaponsConfig 两种武器的发射参数
type WeaponsConfig struct {
	Lasergun LasergunConfig `yaml:"lasergun"`
	Shotgun  ShotgunConfig  `yaml:"shotgun"`
}

// LasergunConfig 激光枪参数
type LasergunConfig struct {
	Size    SizeConfig `yaml:"size"`
	StepX   float64    `yaml:"stepX"`   // 每对光束的水平间距
	OffsetY float64    `yaml:"offsetY"` // 中心光束的垂直偏移
	StepY   float64    `yaml:"stepY"`   // 每对光束相对中心的垂直回缩
	Speed   float64    `yaml:"speed"`
}

// ShotgunConfig 霰弹枪参数
type ShotgunConfig struct {
	Size          SizeConfig `yaml:"size"`
	DispersionDeg float64    `yaml:"dispersionDeg"` // 总散射角（度）
	OffsetY       float64    `yaml:"offsetY"`
}

// PowerUpsConfig 道具参数
type PowerUpsConfig struct {
	DropOneIn int            `yaml:"dropOneIn"` // 击杀掉落概率 1/dropOneIn
	Size      SizeConfig     `yaml:"size"`
	FallSpeed float64        `yaml:"fallSpeed"`
	Weights   PowerUpWeights `yaml:"weights"`
}

// PowerUpWeights 各道具类型的权重
type PowerUpWeights struct {
	Heal             int `yaml:"heal"`
	WeaponLevelUp    int `yaml:"weaponLevelUp"`
	SwitchToLasergun int `yaml:"switchToLasergun"`
	SwitchToShotgun  int `yaml:"switchToShotgun"`
}

// Total 返回权重之和
func (w PowerUpWeights) Total() int {
	return w.Heal + w.WeaponLevelUp + w.SwitchToLasergun + w.SwitchToShotgun
}

// BackgroundConfig 滚动背景参数
type BackgroundConfig struct {
	TileSize    float64 `yaml:"tileSize"`
	ScrollSpeed float64 `yaml:"scrollSpeed"`
}

// ExplosionConfig 爆炸动画参数
type ExplosionConfig struct {
	Frames        int     `yaml:"frames"`
	FrameDuration float64 `yaml:"frameDuration"`
}

// RulesConfig 可选的玩法变体
type RulesConfig struct {
	// AutoUpgradeWeaponOnWaveClear 击毁一波最后一架敌机时武器等级 +1
	AutoUpgradeWeaponOnWaveClear bool `yaml:"autoUpgradeWeaponOnWaveClear"`
}

// SavesConfig 存档参数
type SavesConfig struct {
	Dir       string `yaml:"dir"`
	File      string `yaml:"file"`
	TimeoutMs int    `yaml:"timeoutMs"`
	// MaxWave 读档时允许的最大波次，超过视为存档损坏
	MaxWave uint32 `yaml:"maxWave"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Simulation: SimulationConfig{
			TickRate:      60,
			BaseSpeed:     500,
			DespawnMargin: 200,
			SpriteScale:   0.5,
		},
		Window: WindowConfig{Width: 1280, Height: 720, Title: "shooter game"},
		Player: PlayerConfig{
			Size:       SizeConfig{Width: 144, Height: 75},
			StartLives: 3,
			Speed:      1,
		},
		Enemy: EnemyConfig{
			Size:         SizeConfig{Width: 144, Height: 75},
			SpawnMargin:  100,
			BottomMargin: 250,
			MaxSpeed:     0.3,
			FireOneIn:    60,
			LaserSize:    SizeConfig{Width: 17, Height: 55},
			LaserSpeed:   1,
			KillScore:    100,
		},
		Weapons: WeaponsConfig{
			Lasergun: LasergunConfig{
				Size:    SizeConfig{Width: 9, Height: 54},
				StepX:   8,
				OffsetY: 30,
				StepY:   3,
				Speed:   1,
			},
			Shotgun: ShotgunConfig{
				Size:          SizeConfig{Width: 13, Height: 37},
				DispersionDeg: 60,
				OffsetY:       15,
			},
		},
		PowerUps: PowerUpsConfig{
			DropOneIn: 5,
			Size:      SizeConfig{Width: 34, Height: 34},
			FallSpeed: 0.3,
			Weights:   PowerUpWeights{Heal: 1, WeaponLevelUp: 1, SwitchToLasergun: 1, SwitchToShotgun: 1},
		},
		Background: BackgroundConfig{TileSize: 256, ScrollSpeed: 0.07},
		Explosion:  ExplosionConfig{Frames: 16, FrameDuration: 0.05},
		Saves:      SavesConfig{Dir: "saves", File: "save.txt", TimeoutMs: 2000, MaxWave: 1000},
	}
}

// ParseGameConfig 解析 YAML 配置
// 文档中缺失的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 从 YAML 文件加载配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// Validate 验证配置的有效性
func (c *GameConfig) Validate() error {
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("simulation.tickRate must be > 0, got %d", c.Simulation.TickRate)
	}
	if c.Simulation.BaseSpeed <= 0 {
		return fmt.Errorf("simulation.baseSpeed must be > 0, got %v", c.Simulation.BaseSpeed)
	}
	if c.Simulation.DespawnMargin < 0 {
		return fmt.Errorf("simulation.despawnMargin must be >= 0, got %v", c.Simulation.DespawnMargin)
	}
	if c.Simulation.SpriteScale <= 0 {
		return fmt.Errorf("simulation.spriteScale must be > 0, got %v", c.Simulation.SpriteScale)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}

	if c.Player.StartLives == 0 {
		return fmt.Errorf("player.startLives must be >= 1")
	}

	// 生成区域必须非空
	if 2*c.Enemy.SpawnMargin >= c.Window.Width {
		return fmt.Errorf("enemy.spawnMargin %v leaves no horizontal spawn area", c.Enemy.SpawnMargin)
	}
	if c.Enemy.SpawnMargin+c.Enemy.BottomMargin >= c.Window.Height {
		return fmt.Errorf("enemy.spawnMargin + enemy.bottomMargin leaves no vertical spawn area")
	}
	if c.Enemy.MaxSpeed < 0 {
		return fmt.Errorf("enemy.maxSpeed must be >= 0, got %v", c.Enemy.MaxSpeed)
	}
	if c.Enemy.FireOneIn <= 0 {
		return fmt.Errorf("enemy.fireOneIn must be >= 1, got %d", c.Enemy.FireOneIn)
	}

	if c.Weapons.Shotgun.DispersionDeg <= 0 || c.Weapons.Shotgun.DispersionDeg >= 180 {
		return fmt.Errorf("weapons.shotgun.dispersionDeg must be in (0, 180), got %v", c.Weapons.Shotgun.DispersionDeg)
	}

	if c.PowerUps.DropOneIn <= 0 {
		return fmt.Errorf("powerUps.dropOneIn must be >= 1, got %d", c.PowerUps.DropOneIn)
	}
	w := c.PowerUps.Weights
	if w.Heal < 0 || w.WeaponLevelUp < 0 || w.SwitchToLasergun < 0 || w.SwitchToShotgun < 0 {
		return fmt.Errorf("powerUps.weights must be >= 0")
	}
	if w.Total() == 0 {
		return fmt.Errorf("powerUps.weights cannot all be zero")
	}

	if c.Background.TileSize <= 0 {
		return fmt.Errorf("background.tileSize must be > 0, got %v", c.Background.TileSize)
	}

	if c.Explosion.Frames <= 0 || c.Explosion.FrameDuration <= 0 {
		return fmt.Errorf("explosion.frames and explosion.frameDuration must be > 0")
	}

	if c.Saves.Dir == "" || c.Saves.File == "" {
		return fmt.Errorf("saves.dir and saves.file cannot be empty")
	}
	if c.Saves.TimeoutMs <= 0 {
		return fmt.Errorf("saves.timeoutMs must be > 0, got %d", c.Saves.TimeoutMs)
	}
	if c.Saves.MaxWave == 0 {
		return fmt.Errorf("saves.maxWave must be >= 1")
	}

	return nil
}
