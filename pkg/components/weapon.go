package components

// WeaponType 玩家当前装备的武器
type WeaponType int

const (
	// WeaponLasergun 激光枪：平行光束
	WeaponLasergun WeaponType = iota
	// WeaponShotgun 霰弹枪：扇形散射
	WeaponShotgun
)

// String 返回武器名称
func (w WeaponType) String() string {
	switch w {
	case WeaponLasergun:
		return "lasergun"
	case WeaponShotgun:
		return "shotgun"
	default:
		return "unknown"
	}
}
