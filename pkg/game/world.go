package game

import "github.com/decker502/starshooter/pkg/components"

// WindowBounds 逻辑窗口尺寸
type WindowBounds struct {
	W float64
	H float64
}

// HalfW 返回半宽
func (b WindowBounds) HalfW() float64 { return b.W / 2 }

// HalfH 返回半高
func (b WindowBounds) HalfH() float64 { return b.H / 2 }

// World 仿真的全部标量资源
// 通过指针显式传入每个系统，每个资源在一个 tick 内只有一个写入者
type World struct {
	Window     WindowBounds
	Wave       uint32
	EnemyCount uint32
	Score      uint32
	Player     PlayerState
	State      GameState

	// Tick 单调递增的逻辑 tick 计数，每个 InGame 固定步长加一
	Tick uint64

	// Input 当前 tick 的输入快照
	Input InputState

	startLives    uint32
	pendingEvents []Event
}

// NewWorld 创建初始世界（MainMenu 状态，新游戏默认值）
func NewWorld(window WindowBounds, startLives uint32) *World {
	w := &World{
		Window:     window,
		State:      StateMainMenu,
		startLives: startLives,
	}
	w.ResetForNewGame()
	return w
}

// ResetForNewGame 重置为新游戏初始值：Wave=1, EnemyCount=0, Score=0, 玩家默认状态
func (w *World) ResetForNewGame() {
	w.Wave = 1
	w.EnemyCount = 0
	w.Score = 0
	w.Player = DefaultPlayerState(w.startLives)
}

// ApplySave 用存档恢复 Wave/Score/Lives，并清零 EnemyCount
// 存档不含武器，武器回到新游戏的默认值
func (w *World) ApplySave(rec SaveRecord) {
	w.Wave = rec.Wave
	w.Score = rec.Score
	w.Player = DefaultPlayerState(rec.Lives)
	w.EnemyCount = 0
}

// Snapshot 生成存档记录
func (w *World) Snapshot() SaveRecord {
	return SaveRecord{Wave: w.Wave, Score: w.Score, Lives: w.Player.Lives}
}

// ElapsedTime 返回仿真时间（秒），由 tick 计数推导，与墙钟无关
func (w *World) ElapsedTime(fixedDelta float64) float64 {
	return float64(w.Tick) * fixedDelta
}

// RequestEvent 记录一个待处理的状态事件，在本 tick 的状态机阶段统一处理
func (w *World) RequestEvent(e Event) {
	w.pendingEvents = append(w.pendingEvents, e)
}

// DrainEvents 取出并清空待处理事件
func (w *World) DrainEvents() []Event {
	events := w.pendingEvents
	w.pendingEvents = nil
	return events
}

// HUDSnapshot UI 层读取的只读快照
type HUDSnapshot struct {
	Score       uint32
	Lives       uint32
	Wave        uint32
	WeaponType  components.WeaponType
	WeaponLevel uint32
	State       GameState
}

// HUD 生成 HUD 快照
func (w *World) HUD() HUDSnapshot {
	return HUDSnapshot{
		Score:       w.Score,
		Lives:       w.Player.Lives,
		Wave:        w.Wave,
		WeaponType:  w.Player.WeaponType,
		WeaponLevel: w.Player.WeaponLevel,
		State:       w.State,
	}
}
