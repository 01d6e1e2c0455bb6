package game

// InputState 单个 tick 的输入快照
// Left/Right 为持续按下状态，其余字段为按下边沿（只在按下的那一帧为 true）
type InputState struct {
	Left  bool
	Right bool
	// FirePressed Space 按下边沿
	FirePressed bool
	// PausePressed Escape 或 P 按下边沿
	PausePressed bool
}

// HorizontalAxis 返回水平输入方向 -1 / 0 / 1
// 同时按下左右时左优先
func (in InputState) HorizontalAxis() float64 {
	if in.Left {
		return -1
	}
	if in.Right {
		return 1
	}
	return 0
}
