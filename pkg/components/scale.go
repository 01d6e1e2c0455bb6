package components

// ScaleComponent 存储实体级别的缩放因子
// 渲染尺寸和碰撞盒尺寸都要乘以该因子
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小，0.5 = 50%）
	ScaleX float64

	// ScaleY Y轴缩放因子
	ScaleY float64
}
