package components

// ProjectileSource 子弹来源
type ProjectileSource int

const (
	// FromPlayer 玩家发射的子弹，只与敌机碰撞
	FromPlayer ProjectileSource = iota
	// FromEnemy 敌机发射的子弹，只与玩家碰撞
	FromEnemy
)

// String 返回来源名称（日志用）
func (s ProjectileSource) String() string {
	if s == FromEnemy {
		return "enemy"
	}
	return "player"
}

// ProjectileComponent 标记子弹并记录来源
type ProjectileComponent struct {
	Source ProjectileSource
}
