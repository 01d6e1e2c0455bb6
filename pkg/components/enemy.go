package components

// EnemyComponent 标记敌机
type EnemyComponent struct{}
