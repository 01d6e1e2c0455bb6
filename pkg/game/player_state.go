package game

import "github.com/decker502/starshooter/pkg/components"

// PlayerState 玩家聚合状态：生命、武器类型、武器等级
type PlayerState struct {
	Lives       uint32
	WeaponType  components.WeaponType
	WeaponLevel uint32
}

// DefaultPlayerState 返回新游戏的玩家状态
func DefaultPlayerState(startLives uint32) PlayerState {
	return PlayerState{
		Lives:       startLives,
		WeaponType:  components.WeaponLasergun,
		WeaponLevel: 1,
	}
}

// LoseLife 扣除一条生命，生命值不会低于 0
// 返回扣除后生命是否归零
func (ps *PlayerState) LoseLife() bool {
	if ps.Lives > 0 {
		ps.Lives--
	}
	return ps.Lives == 0
}

// ApplyPowerUp 应用道具效果
func (ps *PlayerState) ApplyPowerUp(t components.PowerUpType) {
	switch t {
	case components.PowerUpHeal:
		ps.Lives++
	case components.PowerUpWeaponLevel:
		ps.WeaponLevel++
	case components.PowerUpSwitchToLasergun:
		ps.WeaponType = components.WeaponLasergun
	case components.PowerUpSwitchToShotgun:
		ps.WeaponType = components.WeaponShotgun
	}
}
