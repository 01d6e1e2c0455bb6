package components

// SpriteID 精灵（纹理）标识，由渲染层映射为实际图像
type SpriteID string

const (
	SpritePlayer        SpriteID = "player"
	SpritePlayerLaser   SpriteID = "player_laser"
	SpriteShotgunPellet SpriteID = "shotgun_pellet"
	SpriteEnemy         SpriteID = "enemy"
	SpriteEnemyLaser    SpriteID = "enemy_laser"
	SpriteExplosion     SpriteID = "explosion"
	SpriteBackground    SpriteID = "background"
	SpritePowerUpHeal   SpriteID = "powerup_heal"
	SpritePowerUpLevel  SpriteID = "powerup_level"
	SpritePowerUpLaser  SpriteID = "powerup_lasergun"
	SpritePowerUpShot   SpriteID = "powerup_shotgun"
)

// SpriteComponent 存储实体的视觉表现描述
// 仿真层只记录描述信息，不持有任何图像资源
type SpriteComponent struct {
	Sprite   SpriteID
	Rotation float64 // 绕 Z 轴旋转（弧度）
	Frame    int     // 精灵表帧号（爆炸动画使用）
	Z        int     // 绘制层级，数值大的后绘制
}
