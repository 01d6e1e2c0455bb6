package components

// PositionComponent 实体在世界坐标系中的中心位置
// 世界原点位于窗口中心，Y 轴向上
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体的速度（逻辑单位，每 tick 乘以 fixedDt * baseSpeed）
type VelocityComponent struct {
	VX float64
	VY float64
}

// MovableComponent 标记实体参与速度积分
type MovableComponent struct {
	// AutoDespawn 为 true 时，实体离开窗口范围（含边距）后自动删除
	AutoDespawn bool
}
