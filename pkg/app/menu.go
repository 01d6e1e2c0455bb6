package app

import (
	"fmt"
	"image"

	"github.com/decker502/starshooter/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// 菜单按钮尺寸
const (
	ButtonWidth   = 210
	ButtonHeight  = 65
	ButtonSpacing = 20
)

// MenuButton 菜单中的一个按钮
type MenuButton struct {
	Label  string
	Hotkey ebiten.Key
	Event  game.Event
	Rect   image.Rectangle
}

type menuItem struct {
	label  string
	hotkey ebiten.Key
	event  game.Event
}

// menuItems 每个状态下显示的按钮
var menuItems = map[game.GameState][]menuItem{
	game.StateMainMenu: {
		{"New Game", ebiten.KeyN, game.EventNewGame},
		{"Load", ebiten.KeyL, game.EventLoadGame},
		{"Exit", ebiten.KeyQ, game.EventExit},
	},
	game.StatePaused: {
		{"Continue", ebiten.KeyC, game.EventContinue},
		{"Save", ebiten.KeyS, game.EventSaveGame},
		{"Main Menu", ebiten.KeyM, game.EventMainMenu},
	},
}

// MenuButtons 计算某个状态下的按钮布局（窗口内垂直居中）
// 状态机不接受的事件不会生成按钮
func MenuButtons(state game.GameState, screenW, screenH int) []MenuButton {
	items := menuItems[state]
	buttons := make([]MenuButton, 0, len(items))
	for _, it := range items {
		if game.Accepts(state, it.event) {
			buttons = append(buttons, MenuButton{Label: it.label, Hotkey: it.hotkey, Event: it.event})
		}
	}
	if len(buttons) == 0 {
		return nil
	}

	total := len(buttons)*ButtonHeight + (len(buttons)-1)*ButtonSpacing
	x := (screenW - ButtonWidth) / 2
	y := (screenH - total) / 2
	for i := range buttons {
		top := y + i*(ButtonHeight+ButtonSpacing)
		buttons[i].Rect = image.Rect(x, top, x+ButtonWidth, top+ButtonHeight)
	}
	return buttons
}

// HitTest 返回包含点 (x, y) 的按钮
func HitTest(buttons []MenuButton, x, y int) (MenuButton, bool) {
	p := image.Pt(x, y)
	for _, b := range buttons {
		if p.In(b.Rect) {
			return b, true
		}
	}
	return MenuButton{}, false
}

// Title 菜单标题
func (b MenuButton) Title() string {
	return fmt.Sprintf("%s [%s]", b.Label, b.Hotkey)
}

// FormatHUD HUD 文本
func FormatHUD(h game.HUDSnapshot) string {
	return fmt.Sprintf("Score: %d  Lives: %d  Wave: %d  Weapon: %s Lv%d",
		h.Score, h.Lives, h.Wave, h.WeaponType, h.WeaponLevel)
}
