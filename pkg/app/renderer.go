package app

import (
	"image/color"
	"math"
	"sort"

	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/systems"
	"github.com/decker502/starshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// spriteStyle 精灵的占位绘制方式（未缩放尺寸 + 颜色）
type spriteStyle struct {
	width, height float64
	color         color.RGBA
}

// Renderer 根据实体描述事件维护一份可绘制的镜像
// 仿真层不持有图像资源，所有精灵用几何图形表示
type Renderer struct {
	config  *config.GameConfig
	window  [2]float64
	styles  map[components.SpriteID]spriteStyle
	visible map[ecs.EntityID]systems.EntityEvent
	order   []ecs.EntityID
	dirty   bool
}

// NewRenderer 创建渲染器，精灵尺寸取自配置
func NewRenderer(cfg *config.GameConfig) *Renderer {
	style := func(s config.SizeConfig, c color.RGBA) spriteStyle {
		return spriteStyle{width: s.Width, height: s.Height, color: c}
	}

	tile := cfg.Background.TileSize
	return &Renderer{
		config: cfg,
		window: [2]float64{cfg.Window.Width, cfg.Window.Height},
		styles: map[components.SpriteID]spriteStyle{
			components.SpritePlayer:        style(cfg.Player.Size, colornames.Deepskyblue),
			components.SpriteEnemy:         style(cfg.Enemy.Size, colornames.Crimson),
			components.SpritePlayerLaser:   style(cfg.Weapons.Lasergun.Size, colornames.Lime),
			components.SpriteShotgunPellet: style(cfg.Weapons.Shotgun.Size, colornames.Gold),
			components.SpriteEnemyLaser:    style(cfg.Enemy.LaserSize, colornames.Orangered),
			components.SpritePowerUpHeal:   style(cfg.PowerUps.Size, colornames.Hotpink),
			components.SpritePowerUpLevel:  style(cfg.PowerUps.Size, colornames.Mediumpurple),
			components.SpritePowerUpLaser:  style(cfg.PowerUps.Size, colornames.Lightgreen),
			components.SpritePowerUpShot:   style(cfg.PowerUps.Size, colornames.Khaki),
			components.SpriteBackground:    {width: tile, height: tile, color: colornames.Midnightblue},
			components.SpriteExplosion:     {width: 64, height: 64, color: colornames.Orange},
		},
		visible: make(map[ecs.EntityID]systems.EntityEvent),
	}
}

// Apply 应用一批实体事件
func (r *Renderer) Apply(events []systems.EntityEvent) {
	for _, e := range events {
		switch e.Kind {
		case systems.EntitySpawned:
			r.visible[e.ID] = e
			r.dirty = true
		case systems.EntityUpdated:
			if prev, ok := r.visible[e.ID]; !ok || prev.Z != e.Z {
				r.dirty = true
			}
			r.visible[e.ID] = e
		case systems.EntityDespawned:
			delete(r.visible, e.ID)
			r.dirty = true
		}
	}
}

// Count 返回当前可见实体数量
func (r *Renderer) Count() int {
	return len(r.visible)
}

// drawOrder 按 Z 升序、同层按 ID 升序
func (r *Renderer) drawOrder() []ecs.EntityID {
	if !r.dirty {
		return r.order
	}
	r.order = r.order[:0]
	for id := range r.visible {
		r.order = append(r.order, id)
	}
	sort.Slice(r.order, func(i, j int) bool {
		a, b := r.visible[r.order[i]], r.visible[r.order[j]]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.ID < b.ID
	})
	r.dirty = false
	return r.order
}

// Draw 绘制全部可见实体
func (r *Renderer) Draw(screen *ebiten.Image) {
	for _, id := range r.drawOrder() {
		e := r.visible[id]
		st, ok := r.styles[e.Sprite]
		if !ok {
			continue
		}
		sx, sy := utils.WorldToScreen(e.X, e.Y, r.window[0], r.window[1])
		w, h := st.width*e.Scale, st.height*e.Scale

		switch e.Sprite {
		case components.SpriteBackground:
			x, y := utils.CenteredRect(e.X, e.Y, w, h, r.window[0], r.window[1])
			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, st.color, false)
		case components.SpriteExplosion:
			r.drawExplosion(screen, sx, sy, w, e.Frame, st.color)
		case components.SpriteShotgunPellet:
			// 旋转的弹丸用线段表示
			dx := math.Sin(-e.Rotation) * h / 2
			dy := math.Cos(-e.Rotation) * h / 2
			vector.StrokeLine(screen, float32(sx-dx), float32(sy+dy), float32(sx+dx), float32(sy-dy),
				float32(math.Max(w, 1)), st.color, true)
		case components.SpritePlayer, components.SpriteEnemy:
			x, y := utils.CenteredRect(e.X, e.Y, w, h, r.window[0], r.window[1])
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), st.color, false)
			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colornames.White, false)
		case components.SpritePowerUpHeal, components.SpritePowerUpLevel,
			components.SpritePowerUpLaser, components.SpritePowerUpShot:
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(w/2), st.color, true)
		default:
			x, y := utils.CenteredRect(e.X, e.Y, w, h, r.window[0], r.window[1])
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), st.color, false)
		}
	}
}

// drawExplosion 半径随帧号缓出增大，同时逐渐淡出
func (r *Renderer) drawExplosion(screen *ebiten.Image, x, y, size float64, frame int, c color.RGBA) {
	radius, alpha := explosionShape(frame, r.config.Explosion.Frames, size)
	if radius <= 0 {
		return
	}
	// 预乘 alpha
	c.A = alpha
	c.R = uint8(float64(c.R) * float64(alpha) / 255)
	c.G = uint8(float64(c.G) * float64(alpha) / 255)
	c.B = uint8(float64(c.B) * float64(alpha) / 255)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), c, true)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), 2, colornames.Yellow, true)
}

// explosionShape 返回第 frame 帧的半径和不透明度
func explosionShape(frame, frames int, size float64) (float64, uint8) {
	if frames <= 0 {
		return 0, 0
	}
	progress := float64(frame+1) / float64(frames)
	radius := size / 2 * utils.Lerp(0.2, 1, utils.EaseOutCubic(progress))
	alpha := uint8(math.Round(255 * (1 - 0.8*utils.EaseInQuad(progress))))
	return radius, alpha
}
