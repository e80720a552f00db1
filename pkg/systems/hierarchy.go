package systems

import (
	"github.com/decker502/hazardwaves/pkg/components"
	"github.com/decker502/hazardwaves/pkg/ecs"
	"github.com/decker502/hazardwaves/pkg/types"
)

// SetLayerRecursive 将 root 及其所有后代设置到 layer
// 使用显式栈遍历；已不存在或缺少组件的节点直接跳过
// 返回实际被设置的节点数
func SetLayerRecursive(em *ecs.EntityManager, root ecs.EntityID, layer types.Layer) int {
	updated := 0
	stack := []ecs.EntityID{root}
	visited := make(map[ecs.EntityID]bool)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[id] || !em.Exists(id) {
			continue
		}
		visited[id] = true

		if layerComp, ok := ecs.GetComponent[*components.LayerComponent](em, id); ok {
			layerComp.Layer = layer
		} else {
			ecs.AddComponent(em, id, &components.LayerComponent{Layer: layer})
		}
		updated++

		if node, ok := ecs.GetComponent[*components.HierarchyComponent](em, id); ok {
			stack = append(stack, node.Children...)
		}
	}

	return updated
}

// CollectHierarchy 返回 root 及其所有仍存在的后代（先序）
func CollectHierarchy(em *ecs.EntityManager, root ecs.EntityID) []ecs.EntityID {
	var result []ecs.EntityID
	stack := []ecs.EntityID{root}
	visited := make(map[ecs.EntityID]bool)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[id] || !em.Exists(id) {
			continue
		}
		visited[id] = true
		result = append(result, id)

		if node, ok := ecs.GetComponent[*components.HierarchyComponent](em, id); ok {
			for i := len(node.Children) - 1; i >= 0; i-- {
				stack = append(stack, node.Children[i])
			}
		}
	}

	return result
}

// DestroyHierarchy 标记 root 及其所有后代待删除
func DestroyHierarchy(em *ecs.EntityManager, root ecs.EntityID) {
	for _, id := range CollectHierarchy(em, root) {
		em.DestroyEntity(id)
	}
}

// WorldTransform 沿父链累加位置与朝向，得到实体的世界变换
// 父链中缺失的节点视为原点
func WorldTransform(em *ecs.EntityManager, id ecs.EntityID) components.TransformComponent {
	var world components.TransformComponent
	seen := make(map[ecs.EntityID]bool)

	for id != 0 && !seen[id] && em.Exists(id) {
		seen[id] = true
		if t, ok := ecs.GetComponent[*components.TransformComponent](em, id); ok {
			world.X += t.X
			world.Y += t.Y
			world.Z += t.Z
			world.Yaw += t.Yaw
		}
		node, ok := ecs.GetComponent[*components.HierarchyComponent](em, id)
		if !ok {
			break
		}
		id = node.Parent
	}

	return world
}
