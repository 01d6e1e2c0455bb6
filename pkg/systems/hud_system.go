package systems

import "github.com/decker502/starshooter/pkg/game"

// HUDSystem 每个 tick 生成一次 HUD 快照，UI 层只读快照不直接读世界状态
type HUDSystem struct {
	world    *game.World
	snapshot game.HUDSnapshot
}

// NewHUDSystem 创建 HUD 系统
func NewHUDSystem(world *game.World) *HUDSystem {
	return &HUDSystem{world: world, snapshot: world.HUD()}
}

// Update 刷新快照
func (s *HUDSystem) Update(deltaTime float64) {
	s.snapshot = s.world.HUD()
}

// Snapshot 返回最近一次快照
func (s *HUDSystem) Snapshot() game.HUDSnapshot {
	return s.snapshot
}
