package entities

import (
	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/game"
)

// NewScrollMarker 创建驱动背景生成的滚动标记
// 初始位于窗口下方一个瓦片处，与瓦片同速下移，不会被边界检测删除
func NewScrollMarker(em *ecs.EntityManager, cfg *config.GameConfig, window game.WindowBounds) ecs.EntityID {
	bg := cfg.Background

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: 0, Y: -(window.H + bg.TileSize) / 2})
	em.AddComponent(id, &components.VelocityComponent{VX: 0, VY: -bg.ScrollSpeed})
	em.AddComponent(id, &components.MovableComponent{AutoDespawn: false})
	em.AddComponent(id, &components.ScrollMarkerComponent{})
	return id
}

// NewBackgroundTile 创建一块背景瓦片
func NewBackgroundTile(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) ecs.EntityID {
	bg := cfg.Background

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: 0, VY: -bg.ScrollSpeed})
	em.AddComponent(id, &components.MovableComponent{AutoDespawn: true})
	em.AddComponent(id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	em.AddComponent(id, &components.SpriteComponent{Sprite: components.SpriteBackground, Z: ZBackground})
	em.AddComponent(id, &components.BackgroundTileComponent{})
	return id
}

// SpawnBackgroundRow 在 y 处生成一整行瓦片
// 中心一块，然后以 tileSize 为步长向左右对称铺满半个窗口宽度
//
// 返回:
//   - int: 本行瓦片数量
func SpawnBackgroundRow(em *ecs.EntityManager, cfg *config.GameConfig, window game.WindowBounds, y float64) int {
	tile := cfg.Background.TileSize

	NewBackgroundTile(em, cfg, 0, y)
	count := 1
	for offset := tile; offset < window.HalfW(); offset += tile {
		NewBackgroundTile(em, cfg, offset, y)
		NewBackgroundTile(em, cfg, -offset, y)
		count += 2
	}
	return count
}
