package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/starshooter/pkg/game"
)

// KeySource 键盘状态来源
// 游戏运行时由 ebiten 提供，测试中可替换为脚本化实现
type KeySource interface {
	// IsKeyPressed 按键当前是否处于按下状态
	IsKeyPressed(key ebiten.Key) bool
	// IsKeyJustPressed 按键是否在本帧刚刚按下
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenKeys 读取 ebiten 的真实键盘状态
type EbitenKeys struct{}

// IsKeyPressed 实现 KeySource
func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// IsKeyJustPressed 实现 KeySource
func (EbitenKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// PollGameInput 采集一个 tick 的游戏输入
//
// 按键映射：
//   - Left/Right（或 A/D）：持续按下，控制玩家水平速度
//   - Space：开火边沿；暂停时也用于继续
//   - Escape 或 P：暂停边沿
func PollGameInput(keys KeySource) game.InputState {
	return game.InputState{
		Left:         keys.IsKeyPressed(ebiten.KeyArrowLeft) || keys.IsKeyPressed(ebiten.KeyA),
		Right:        keys.IsKeyPressed(ebiten.KeyArrowRight) || keys.IsKeyPressed(ebiten.KeyD),
		FirePressed:  keys.IsKeyJustPressed(ebiten.KeySpace),
		PausePressed: keys.IsKeyJustPressed(ebiten.KeyEscape) || keys.IsKeyJustPressed(ebiten.KeyP),
	}
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}
