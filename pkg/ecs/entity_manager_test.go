package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 0 是无效ID
	if id1 == 0 || id2 == 0 {
		t.Error("Entity ID must never be 0")
	}

	if id1.Index() != 0 || id1.Generation() != 1 {
		t.Errorf("First entity should be (0, 1), got (%d, %d)", id1.Index(), id1.Generation())
	}

	if id2.Index() != 1 {
		t.Errorf("Second entity index should be 1, got %d", id2.Index())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加组件
	pos := &testPositionComponent{X: 100, Y: 200}
	em.AddComponent(id, pos)

	// 获取组件
	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 未添加组件前应该返回false
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should not have component before adding")
	}

	em.AddComponent(id, &testPositionComponent{})

	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should have component after adding")
	}

	em.RemoveComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should not have component after removing")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在，但已被标记
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked for destroy")
	}
	if em.IsAlive(id) {
		t.Error("Marked entity should not report alive")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.EntityCount())
	}
}

func TestDestroyEntity_Idempotent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if em.PendingDestroyCount() != 1 {
		t.Errorf("Expected 1 pending destroy, got %d", em.PendingDestroyCount())
	}

	em.RemoveMarkedEntities()
	// 已删除实体再次标记不应有效果
	em.DestroyEntity(id)
	if em.PendingDestroyCount() != 0 {
		t.Errorf("Destroying a stale ID should be a no-op, got %d pending", em.PendingDestroyCount())
	}
}

// TestStaleIDDoesNotAliasReusedSlot 槽位复用后旧ID不能访问新实体
func TestStaleIDDoesNotAliasReusedSlot(t *testing.T) {
	em := NewEntityManager()
	old := em.CreateEntity()
	em.AddComponent(old, &testPositionComponent{X: 1})

	em.DestroyEntity(old)
	em.RemoveMarkedEntities()

	reused := em.CreateEntity()
	em.AddComponent(reused, &testPositionComponent{X: 2})

	if reused.Index() != old.Index() {
		t.Fatalf("Expected slot %d to be reused, got %d", old.Index(), reused.Index())
	}
	if reused.Generation() != old.Generation()+1 {
		t.Errorf("Expected generation %d, got %d", old.Generation()+1, reused.Generation())
	}
	if reused == old {
		t.Fatal("Reused ID must differ from stale ID")
	}

	if _, found := em.GetComponent(old, reflect.TypeOf(&testPositionComponent{})); found {
		t.Error("Stale ID must not resolve to the new entity")
	}
	if em.IsAlive(old) {
		t.Error("Stale ID must not be alive")
	}

	// 旧ID的删除请求不能影响新实体
	em.DestroyEntity(old)
	em.RemoveMarkedEntities()
	if !em.IsAlive(reused) {
		t.Error("Destroying a stale ID must not remove the new entity")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	// 查询拥有 Position+Velocity 的实体
	entities := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testVelocityComponent{}),
	)

	if len(entities) != 1 {
		t.Fatalf("Expected 1 entity with both components, got %d", len(entities))
	}
	if entities[0] != id1 {
		t.Error("Query should return only id1")
	}

	// 查询只拥有 Position 的实体，结果按槽位顺序
	posEntities := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if len(posEntities) != 2 {
		t.Fatalf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
	if posEntities[0] != id1 || posEntities[1] != id2 {
		t.Errorf("Expected slot order [%d %d], got %v", id1, id2, posEntities)
	}
}

func TestGetEntitiesWith_SkipsMarked(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})

	em.DestroyEntity(id1)

	entities := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if len(entities) != 1 || entities[0] != id2 {
		t.Errorf("Marked entity should be skipped, got %v", entities)
	}
}

func TestMultipleComponentTypes(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 10, Y: 20})
	em.AddComponent(id, &testVelocityComponent{VX: 5, VY: 10})

	posComp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Position component should be found")
	}
	pos := posComp.(*testPositionComponent)
	if pos.X != 10 || pos.Y != 20 {
		t.Error("Position component data mismatch")
	}

	velComp, found := em.GetComponent(id, reflect.TypeOf(&testVelocityComponent{}))
	if !found {
		t.Fatal("Velocity component should be found")
	}
	vel := velComp.(*testVelocityComponent)
	if vel.VX != 5 || vel.VY != 10 {
		t.Error("Velocity component data mismatch")
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})
	em.AddComponent(id3, &testPositionComponent{})

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)

	em.RemoveMarkedEntities()

	if em.HasComponent(id1, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id1 should be removed")
	}
	if !em.HasComponent(id2, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id2 should still exist")
	}
	if em.HasComponent(id3, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id3 should be removed")
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{X: 3, Y: 4})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok || pos.X != 3 || pos.Y != 4 {
		t.Fatalf("GetComponent returned (%v, %v)", pos, ok)
	}

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("Velocity should not be found")
	}

	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("HasComponent should report Position")
	}

	AddComponent(em, id, &testVelocityComponent{VX: 1})
	if got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em); len(got) != 1 {
		t.Errorf("Expected 1 entity, got %d", len(got))
	}

	RemoveComponent[*testVelocityComponent](em, id)
	if got := GetEntitiesWith1[*testVelocityComponent](em); len(got) != 0 {
		t.Errorf("Expected 0 entities after removal, got %d", len(got))
	}
}
