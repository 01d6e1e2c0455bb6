package components

// PowerUpType 道具类型
type PowerUpType int

const (
	// PowerUpHeal 生命 +1
	PowerUpHeal PowerUpType = iota
	// PowerUpWeaponLevel 武器等级 +1
	PowerUpWeaponLevel
	// PowerUpSwitchToLasergun 切换为激光枪
	PowerUpSwitchToLasergun
	// PowerUpSwitchToShotgun 切换为霰弹枪
	PowerUpSwitchToShotgun
)

// AllPowerUpTypes 按固定顺序列出全部道具类型（加权随机时使用）
var AllPowerUpTypes = []PowerUpType{
	PowerUpHeal,
	PowerUpWeaponLevel,
	PowerUpSwitchToLasergun,
	PowerUpSwitchToShotgun,
}

// String 返回道具名称
func (p PowerUpType) String() string {
	switch p {
	case PowerUpHeal:
		return "heal"
	case PowerUpWeaponLevel:
		return "weaponLevelUp"
	case PowerUpSwitchToLasergun:
		return "switchToLasergun"
	case PowerUpSwitchToShotgun:
		return "switchToShotgun"
	default:
		return "unknown"
	}
}

// Sprite 返回道具对应的精灵
func (p PowerUpType) Sprite() SpriteID {
	switch p {
	case PowerUpHeal:
		return SpritePowerUpHeal
	case PowerUpWeaponLevel:
		return SpritePowerUpLevel
	case PowerUpSwitchToLasergun:
		return SpritePowerUpLaser
	default:
		return SpritePowerUpShot
	}
}

// PowerUpComponent 可拾取的道具
type PowerUpComponent struct {
	Type PowerUpType
}

// PowerUpRequestComponent 道具生成请求（瞬时标记实体）
// 由碰撞系统在击杀敌机时创建，同一 tick 内被道具系统消费
type PowerUpRequestComponent struct {
	X    float64
	Y    float64
	Type PowerUpType
}
