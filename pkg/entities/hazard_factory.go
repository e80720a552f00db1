package entities

import (
	"fmt"

	"github.com/decker502/hazardwaves/pkg/components"
	"github.com/decker502/hazardwaves/pkg/config"
	"github.com/decker502/hazardwaves/pkg/ecs"
	"github.com/decker502/hazardwaves/pkg/types"
)

const (
	// GraphicNodeName 挂载贴图的子节点名称
	GraphicNodeName = "Graphic"

	// GraphicYaw 贴图子节点绕 Y 轴旋转的角度，使模型朝向玩家
	GraphicYaw = 180.0
)

// HazardSpawn 生成一个危险物所需的参数
type HazardSpawn struct {
	Template   *config.HazardTemplate
	Definition config.HazardDefinition
	Position   config.Vector3
	Speed      float64 // 朝玩家（-Z）方向的速度
	Wave       int
}

// NewHazardEntity 创建危险物实体树
// 根节点持有 HazardComponent（含定义）、位置和速度；
// 模板中的每个部件成为子节点；另附加一个旋转 180° 的贴图子节点。
// 所有节点初始位于 LayerDefault，由调用方统一设置图层
//
// 返回:
//   - ecs.EntityID: 根实体ID，失败时为 0
//   - error: 参数非法时返回错误
func NewHazardEntity(em *ecs.EntityManager, spawn HazardSpawn) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spawn.Template == nil {
		return 0, fmt.Errorf("hazard template cannot be nil")
	}
	if spawn.Definition == nil {
		return 0, fmt.Errorf("hazard definition cannot be nil")
	}
	if spawn.Definition.Kind() != spawn.Template.Kind {
		return 0, fmt.Errorf("template %q is %s but definition %q is %s",
			spawn.Template.Name, spawn.Template.Kind, spawn.Definition.DisplayName(), spawn.Definition.Kind())
	}

	root := em.CreateEntity()
	ecs.AddComponent(em, root, &components.HazardComponent{
		Kind:         spawn.Template.Kind,
		Definition:   spawn.Definition,
		TemplateName: spawn.Template.Name,
		Wave:         spawn.Wave,
	})
	ecs.AddComponent(em, root, &components.TransformComponent{
		X: spawn.Position.X,
		Y: spawn.Position.Y,
		Z: spawn.Position.Z,
	})
	ecs.AddComponent(em, root, &components.VelocityComponent{VZ: -spawn.Speed})
	ecs.AddComponent(em, root, &components.LayerComponent{Layer: types.LayerDefault})

	hierarchy := &components.HierarchyComponent{Name: spawn.Template.Name}
	ecs.AddComponent(em, root, hierarchy)

	for _, part := range spawn.Template.Parts {
		partID := newChildNode(em, root, part.Name, &components.TransformComponent{
			X: part.Offset.X,
			Y: part.Offset.Y,
			Z: part.Offset.Z,
		})
		hierarchy.Children = append(hierarchy.Children, partID)
	}

	graphicID := newChildNode(em, root, GraphicNodeName, &components.TransformComponent{Yaw: GraphicYaw})
	ecs.AddComponent(em, graphicID, &components.SpriteComponent{ImageRef: spawn.Definition.ImageRef()})
	hierarchy.Children = append(hierarchy.Children, graphicID)

	return root, nil
}

func newChildNode(em *ecs.EntityManager, parent ecs.EntityID, name string, transform *components.TransformComponent) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, transform)
	ecs.AddComponent(em, id, &components.LayerComponent{Layer: types.LayerDefault})
	ecs.AddComponent(em, id, &components.HierarchyComponent{Name: name, Parent: parent})
	return id
}

// FindGraphicNode 返回危险物的贴图子节点
func FindGraphicNode(em *ecs.EntityManager, root ecs.EntityID) (ecs.EntityID, bool) {
	hierarchy, ok := ecs.GetComponent[*components.HierarchyComponent](em, root)
	if !ok {
		return 0, false
	}
	for _, child := range hierarchy.Children {
		node, ok := ecs.GetComponent[*components.HierarchyComponent](em, child)
		if ok && node.Name == GraphicNodeName {
			return child, true
		}
	}
	return 0, false
}
