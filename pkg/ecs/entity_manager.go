package ecs

import "reflect"

// EntityID 是实体的唯一标识符
// 低 32 位为槽位索引，高 32 位为代数（generation）
// 槽位被回收后代数加一，旧的 EntityID 因此不会误指向新实体
// 0 保留为无效ID
type EntityID uint64

// NewEntityID 由槽位索引和代数组合出实体ID
func NewEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index 返回槽位索引
func (id EntityID) Index() uint32 {
	return uint32(id)
}

// Generation 返回代数
func (id EntityID) Generation() uint32 {
	return uint32(id >> 32)
}

// entitySlot 竞技场中的一个槽位
type entitySlot struct {
	generation uint32
	alive      bool
	marked     bool
	components map[reflect.Type]interface{}
}

// EntityManager 管理所有实体和组件
type EntityManager struct {
	// 槽位数组，下标即 EntityID.Index()
	slots []entitySlot
	// 可复用的空闲槽位
	freeSlots []uint32
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		slots:             make([]entitySlot, 0, 64),
		freeSlots:         make([]uint32, 0),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
// 优先复用空闲槽位，新槽位的代数从 1 开始，保证返回值永不为 0
func (em *EntityManager) CreateEntity() EntityID {
	var index uint32
	if n := len(em.freeSlots); n > 0 {
		index = em.freeSlots[n-1]
		em.freeSlots = em.freeSlots[:n-1]
	} else {
		index = uint32(len(em.slots))
		em.slots = append(em.slots, entitySlot{generation: 1})
	}

	slot := &em.slots[index]
	slot.alive = true
	slot.marked = false
	slot.components = make(map[reflect.Type]interface{})
	return NewEntityID(index, slot.generation)
}

// slot 返回 id 对应的存活槽位；id 过期或无效时返回 nil
func (em *EntityManager) slot(id EntityID) *entitySlot {
	index := id.Index()
	if id == 0 || int(index) >= len(em.slots) {
		return nil
	}
	s := &em.slots[index]
	if !s.alive || s.generation != id.Generation() {
		return nil
	}
	return s
}

// DestroyEntity 标记实体待删除(不立即删除)
// 重复标记同一实体只记录一次
func (em *EntityManager) DestroyEntity(id EntityID) {
	s := em.slot(id)
	if s == nil || s.marked {
		return
	}
	s.marked = true
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsMarkedForDestroy 检查实体是否已被标记删除
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	s := em.slot(id)
	return s != nil && s.marked
}

// IsAlive 检查实体是否存活且未被标记删除
func (em *EntityManager) IsAlive(id EntityID) bool {
	s := em.slot(id)
	return s != nil && !s.marked
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if s := em.slot(id); s != nil {
		s.components[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if s := em.slot(id); s != nil {
		delete(s.components, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if s := em.slot(id); s != nil {
		if comp, found := s.components[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if s := em.slot(id); s != nil {
		_, found := s.components[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 槽位代数加一后放回空闲列表
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		s := em.slot(id)
		if s == nil {
			continue
		}
		s.alive = false
		s.marked = false
		s.components = nil
		s.generation++
		if s.generation == 0 {
			s.generation = 1
		}
		em.freeSlots = append(em.freeSlots, id.Index())
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// PendingDestroyCount 返回待删除实体的数量
func (em *EntityManager) PendingDestroyCount() int {
	return len(em.entitiesToDestroy)
}

// EntityCount 返回存活实体数量（包含已标记但尚未清理的实体）
func (em *EntityManager) EntityCount() int {
	return len(em.slots) - len(em.freeSlots)
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 按槽位顺序返回，已标记删除的实体不会出现在结果中
//
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for i := range em.slots {
		s := &em.slots[i]
		if !s.alive || s.marked {
			continue
		}
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := s.components[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, NewEntityID(uint32(i), s.generation))
		}
	}

	return result
}
