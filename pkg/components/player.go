package components

// PlayerComponent 标记玩家飞船
type PlayerComponent struct{}
