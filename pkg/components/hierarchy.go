package components

import "github.com/decker502/hazardwaves/pkg/ecs"

// HierarchyComponent 父子关系
// Parent 为 0 表示根节点；Children 中可能包含已被销毁的实体，遍历时需检查
type HierarchyComponent struct {
	Name     string
	Parent   ecs.EntityID
	Children []ecs.EntityID
}
