package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y, Z float64
}

type testLayerComponent struct {
	Layer int
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID 从 1 开始，0 保留为无效ID
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount() = %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200, Z: 16})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 || retrieved.Z != 16 {
		t.Errorf("Component data mismatch, got (%f, %f, %f)", retrieved.X, retrieved.Y, retrieved.Z)
	}
}

func TestGenericAccessors(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testLayerComponent{Layer: 5})

	layer, ok := GetComponent[*testLayerComponent](em, id)
	if !ok {
		t.Fatal("generic GetComponent should find the layer component")
	}
	if layer.Layer != 5 {
		t.Errorf("Layer = %d, want 5", layer.Layer)
	}

	// 泛型与反射接口共享同一份存储
	if !em.HasComponent(id, reflect.TypeOf(&testLayerComponent{})) {
		t.Error("reflect HasComponent should see generically added component")
	}

	if _, ok := GetComponent[*testPositionComponent](em, id); ok {
		t.Error("missing component should not be found")
	}

	RemoveComponent[*testLayerComponent](em, id)
	if HasComponent[*testLayerComponent](em, id) {
		t.Error("component should be removed")
	}
}

func TestGetComponentOnMissingEntity(t *testing.T) {
	em := NewEntityManager()

	if _, ok := GetComponent[*testLayerComponent](em, 42); ok {
		t.Error("GetComponent on unknown entity should return false")
	}

	// 对不存在的实体添加组件是无操作
	AddComponent(em, 42, &testLayerComponent{Layer: 1})
	if em.Exists(42) {
		t.Error("AddComponent must not create entities implicitly")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Components should be removed after cleanup")
	}
}

func TestGetEntitiesWithIsSorted(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testLayerComponent{Layer: i})
		}
		ids = append(ids, id)
	}

	all := GetEntitiesWith1[*testPositionComponent](em)
	if len(all) != 20 {
		t.Fatalf("expected 20 entities, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("query result not sorted: %v", all)
		}
	}

	both := GetEntitiesWith2[*testPositionComponent, *testLayerComponent](em)
	if len(both) != 10 {
		t.Errorf("expected 10 entities with both components, got %d", len(both))
	}
	if len(both) > 0 && both[0] != ids[0] {
		t.Errorf("first match = %d, want %d", both[0], ids[0])
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

	if em.Exists(id1) {
		t.Error("id1 should be removed")
	}
	if !em.Exists(id2) {
		t.Error("id2 should still exist")
	}
	if em.Exists(id3) {
		t.Error("id3 should be removed")
	}
}

func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 500; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{})
		if i%3 == 0 {
			AddComponent(em, id, &testLayerComponent{})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPositionComponent, *testLayerComponent](em)
	}
}
