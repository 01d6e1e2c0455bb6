package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体(如爆炸特效)
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}

// FrameAnimationComponent 按固定帧间隔推进的精灵表动画
// 当前帧写回 SpriteComponent.Frame
type FrameAnimationComponent struct {
	FrameCount    int     // 总帧数
	FrameDuration float64 // 每帧持续时间(秒)
}
