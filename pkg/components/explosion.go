package components

// ExplosionComponent 标记爆炸特效实体
type ExplosionComponent struct{}
