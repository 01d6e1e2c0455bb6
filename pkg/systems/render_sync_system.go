package systems

import (
	"sort"

	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/ecs"
)

// EntityEventKind 实体描述变更类型
type EntityEventKind int

const (
	EntitySpawned EntityEventKind = iota
	EntityUpdated
	EntityDespawned
)

// String 返回变更类型名称
func (k EntityEventKind) String() string {
	switch k {
	case EntitySpawned:
		return "spawned"
	case EntityUpdated:
		return "updated"
	case EntityDespawned:
		return "despawned"
	default:
		return "unknown"
	}
}

// EntityEvent 提供给渲染层的实体描述变更
// Despawned 事件只保证 Kind 和 ID 有效
type EntityEvent struct {
	Kind     EntityEventKind
	ID       ecs.EntityID
	X, Y     float64
	Scale    float64
	Rotation float64
	Sprite   components.SpriteID
	Frame    int
	Z        int
}

// descriptor 用于比较的可见状态
type descriptor struct {
	x, y, scale, rotation float64
	sprite                components.SpriteID
	frame, z              int
}

// RenderSyncSystem 对比上一次同步的缓存，生成实体描述变更事件流
// 只读实体存储，只写自己的缓存和事件队列
type RenderSyncSystem struct {
	entityManager *ecs.EntityManager
	cache         map[ecs.EntityID]descriptor
	events        []EntityEvent
}

// NewRenderSyncSystem 创建渲染同步系统
func NewRenderSyncSystem(em *ecs.EntityManager) *RenderSyncSystem {
	return &RenderSyncSystem{
		entityManager: em,
		cache:         make(map[ecs.EntityID]descriptor),
	}
}

// Update 生成本 tick 的变更事件并追加到队列
// Spawned/Updated 按槽位顺序，Despawned 按 ID 升序
func (s *RenderSyncSystem) Update(deltaTime float64) {
	seen := make(map[ecs.EntityID]struct{}, len(s.cache))

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		scale := 1.0
		if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
			scale = sc.ScaleX
		}

		d := descriptor{
			x: pos.X, y: pos.Y, scale: scale, rotation: sprite.Rotation,
			sprite: sprite.Sprite, frame: sprite.Frame, z: sprite.Z,
		}
		seen[id] = struct{}{}

		prev, known := s.cache[id]
		switch {
		case !known:
			s.events = append(s.events, d.event(EntitySpawned, id))
		case prev != d:
			s.events = append(s.events, d.event(EntityUpdated, id))
		default:
			continue
		}
		s.cache[id] = d
	}

	gone := make([]ecs.EntityID, 0)
	for id := range s.cache {
		if _, ok := seen[id]; !ok {
			gone = append(gone, id)
		}
	}
	sort.Slice(gone, func(i, j int) bool { return gone[i] < gone[j] })
	for _, id := range gone {
		delete(s.cache, id)
		s.events = append(s.events, EntityEvent{Kind: EntityDespawned, ID: id})
	}
}

// DrainEvents 取出并清空事件队列
func (s *RenderSyncSystem) DrainEvents() []EntityEvent {
	events := s.events
	s.events = nil
	return events
}

// TrackedCount 返回当前缓存中的实体数量
func (s *RenderSyncSystem) TrackedCount() int {
	return len(s.cache)
}

func (d descriptor) event(kind EntityEventKind, id ecs.EntityID) EntityEvent {
	return EntityEvent{
		Kind:     kind,
		ID:       id,
		X:        d.x,
		Y:        d.y,
		Scale:    d.scale,
		Rotation: d.rotation,
		Sprite:   d.sprite,
		Frame:    d.frame,
		Z:        d.z,
	}
}
