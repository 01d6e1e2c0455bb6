// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：
// 窗口、按键采集、菜单和绘制都在这里，仿真逻辑在 scenes.GameScene 中。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/game"
	"github.com/decker502/starshooter/pkg/scenes"
	"github.com/decker502/starshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Game 已校验的游戏配置
	Game *config.GameConfig
	// Store 存档后端
	Store game.SaveStore
	// Settings 玩家设置（全屏、FPS 显示），可为 nil
	Settings *game.SettingsManager
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	config   *config.GameConfig
	scene    *scenes.GameScene
	renderer *Renderer
	settings *game.SettingsManager
	keys     KeySource
	buttons  []MenuButton
	verbose  bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.Game == nil {
		return nil, errors.New("game config is required")
	}
	if cfg.Store == nil {
		return nil, errors.New("save store is required")
	}

	scene, err := scenes.NewGameScene(cfg.Game, cfg.Store, utils.NewPRNG(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	a := &App{
		config:   cfg.Game,
		scene:    scene,
		renderer: NewRenderer(cfg.Game),
		settings: cfg.Settings,
		keys:     EbitenKeys{},
		verbose:  cfg.Verbose,
	}
	w, h := a.screenSize()
	a.buttons = MenuButtons(scene.State(), w, h)

	scene.OnStateChanged(func(from, to game.GameState) {
		a.buttons = MenuButtons(to, w, h)
		log.Printf("[App] state %s -> %s, %d menu buttons", from, to, len(a.buttons))
	})

	ebiten.SetTPS(cfg.Game.Simulation.TickRate)
	if a.settings != nil && a.settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] initialized, tick rate %d", cfg.Game.Simulation.TickRate)
	return a, nil
}

func (a *App) screenSize() (int, int) {
	return int(a.config.Window.Width), int(a.config.Window.Height)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，TPS 与仿真 tickRate 一致
func (a *App) Update() error {
	a.updateWindow()
	a.handleMenu()

	a.scene.Tick(PollGameInput(a.keys))
	a.renderer.Apply(a.scene.DrainEntityEvents())

	if a.scene.ExitRequested() {
		log.Printf("[App] exit")
		return ebiten.Termination
	}
	return nil
}

// updateWindow F11 切换全屏，F3 切换 FPS 显示
func (a *App) updateWindow() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.screenSize())
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", int(a.config.Window.Width), int(a.config.Window.Height))
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		if a.settings != nil {
			fullscreen = a.settings.ToggleFullscreen()
		}
		if fullscreen {
			ebiten.SetFullscreen(true)
		} else {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) && a.settings != nil {
		a.settings.ToggleShowFPS()
	}
}

// handleMenu 菜单按钮的点击和快捷键
func (a *App) handleMenu() {
	if len(a.buttons) == 0 {
		return
	}

	if clicked, x, y := IsJustTouchedOrClicked(); clicked {
		if b, ok := HitTest(a.buttons, x, y); ok {
			a.press(b)
			return
		}
	}
	for _, b := range a.buttons {
		if inpututil.IsKeyJustPressed(b.Hotkey) {
			a.press(b)
			return
		}
	}
}

func (a *App) press(b MenuButton) {
	log.Printf("[App] menu button %q", b.Label)
	a.scene.ClearNotice()
	a.scene.HandleEvent(b.Event)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	a.renderer.Draw(screen)

	ebitenutil.DebugPrintAt(screen, FormatHUD(a.scene.HUD()), 10, 10)
	if a.settings != nil && a.settings.GetSettings().ShowFPS {
		w, _ := a.screenSize()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), w-150, 10)
	}

	if len(a.buttons) > 0 {
		a.drawMenu(screen)
	}
}

func (a *App) drawMenu(screen *ebiten.Image) {
	w, h := a.screenSize()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: 160}, false)

	title := "PAUSED"
	if a.scene.State() == game.StateMainMenu {
		title = "STAR SHOOTER"
	}
	top := a.buttons[0].Rect.Min.Y
	ebitenutil.DebugPrintAt(screen, title, w/2-len(title)*3, top-40)

	px, py := GetPointerPosition()
	hovered, isHovered := HitTest(a.buttons, px, py)
	for _, b := range a.buttons {
		fill := color.RGBA{R: 38, G: 38, B: 38, A: 255}
		if isHovered && hovered.Event == b.Event {
			fill = color.RGBA{R: 64, G: 64, B: 64, A: 255}
		}
		r := b.Rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, false)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, colornames.Lightgray, false)
		label := b.Title()
		ebitenutil.DebugPrintAt(screen, label, r.Min.X+(r.Dx()-len(label)*6)/2, r.Min.Y+r.Dy()/2-8)
	}

	if notice := a.scene.Notice(); notice != "" {
		bottom := a.buttons[len(a.buttons)-1].Rect.Max.Y
		ebitenutil.DebugPrintAt(screen, notice, w/2-len(notice)*3, bottom+30)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenSize()
}

// Scene 返回仿真场景
func (a *App) Scene() *scenes.GameScene {
	return a.scene
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
