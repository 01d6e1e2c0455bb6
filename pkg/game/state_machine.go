package game

import (
	"errors"
	"fmt"
)

// GameState 游戏流程状态
type GameState int

const (
	// StateMainMenu 主菜单（初始状态）
	StateMainMenu GameState = iota
	// StateInitNewGame 新游戏初始化，重置资源后自动进入 InGame
	StateInitNewGame
	// StateInGame 游戏进行中
	StateInGame
	// StatePaused 暂停
	StatePaused
	// StateSave 写存档，完成后自动回到 Paused
	StateSave
	// StateLoad 读存档，成功进入 InGame，失败回到 MainMenu
	StateLoad
)

// String 返回状态名称
func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateInitNewGame:
		return "InitNewGame"
	case StateInGame:
		return "InGame"
	case StatePaused:
		return "Paused"
	case StateSave:
		return "Save"
	case StateLoad:
		return "Load"
	default:
		return fmt.Sprintf("GameState(%d)", int(s))
	}
}

// Event 触发状态迁移的事件
// UI 按钮、按键边沿、系统内部结果（读档成功/失败等）统一用事件表示
type Event int

const (
	// EventNewGame 主菜单 "new game" 按钮
	EventNewGame Event = iota
	// EventLoadGame 主菜单 "load" 按钮
	EventLoadGame
	// EventExit 主菜单 "exit" 按钮，不改变状态，由外层结束进程
	EventExit
	// EventInitialized 新游戏资源重置完成
	EventInitialized
	// EventLoadSucceeded 读档成功
	EventLoadSucceeded
	// EventLoadFailed 读档失败（文件缺失或损坏）
	EventLoadFailed
	// EventPause Escape 或 P 按键边沿
	EventPause
	// EventContinue 暂停菜单 "continue" 按钮或 Space
	EventContinue
	// EventSaveGame 暂停菜单 "save" 按钮
	EventSaveGame
	// EventSaveFinished 写档结束（无论成功与否）
	EventSaveFinished
	// EventMainMenu 暂停菜单 "main menu" 按钮
	EventMainMenu
	// EventLivesDepleted 生命值归零
	EventLivesDepleted
)

// String 返回事件名称
func (e Event) String() string {
	switch e {
	case EventNewGame:
		return "NewGame"
	case EventLoadGame:
		return "LoadGame"
	case EventExit:
		return "Exit"
	case EventInitialized:
		return "Initialized"
	case EventLoadSucceeded:
		return "LoadSucceeded"
	case EventLoadFailed:
		return "LoadFailed"
	case EventPause:
		return "Pause"
	case EventContinue:
		return "Continue"
	case EventSaveGame:
		return "SaveGame"
	case EventSaveFinished:
		return "SaveFinished"
	case EventMainMenu:
		return "MainMenu"
	case EventLivesDepleted:
		return "LivesDepleted"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// ErrInvalidTransition 当前状态不接受该事件
var ErrInvalidTransition = errors.New("invalid state transition")

type transitionKey struct {
	from  GameState
	event Event
}

// transitions 完整的状态迁移表
var transitions = map[transitionKey]GameState{
	{StateMainMenu, EventNewGame}:        StateInitNewGame,
	{StateMainMenu, EventLoadGame}:       StateLoad,
	{StateMainMenu, EventExit}:           StateMainMenu,
	{StateInitNewGame, EventInitialized}: StateInGame,
	{StateLoad, EventLoadSucceeded}:      StateInGame,
	{StateLoad, EventLoadFailed}:         StateMainMenu,
	{StateInGame, EventPause}:            StatePaused,
	{StateInGame, EventLivesDepleted}:    StateMainMenu,
	{StatePaused, EventContinue}:         StateInGame,
	{StatePaused, EventSaveGame}:         StateSave,
	{StatePaused, EventMainMenu}:         StateMainMenu,
	{StateSave, EventSaveFinished}:       StatePaused,
}

// NextState 状态迁移函数 (state, event) -> state
//
// 参数：
//   - state: 当前状态
//   - event: 触发事件
//
// 返回：
//   - GameState: 迁移后的状态
//   - error: 当前状态不接受该事件时返回包装了 ErrInvalidTransition 的错误
func NextState(state GameState, event Event) (GameState, error) {
	next, ok := transitions[transitionKey{state, event}]
	if !ok {
		return state, fmt.Errorf("%w: %s does not accept %s", ErrInvalidTransition, state, event)
	}
	return next, nil
}

// Accepts 检查当前状态是否接受该事件（UI 层用于决定按钮是否可用）
func Accepts(state GameState, event Event) bool {
	_, ok := transitions[transitionKey{state, event}]
	return ok
}
