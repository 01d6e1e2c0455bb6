package components

// CollisionComponent 定义实体的碰撞检测边界框
// Width/Height 为未缩放的精灵尺寸，碰撞盒中心与实体位置对齐
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
