package entities

import (
	"testing"

	"github.com/decker502/hazardwaves/pkg/components"
	"github.com/decker502/hazardwaves/pkg/config"
	"github.com/decker502/hazardwaves/pkg/ecs"
	"github.com/decker502/hazardwaves/pkg/types"
)

// TestNewHazardEntity 测试危险物实体树创建
func TestNewHazardEntity(t *testing.T) {
	machine := &config.MachineDefinition{Name: "Raider", Image: "machine_raider", Health: 5, Strength: 3}
	rock := &config.ObstacleDefinition{Name: "Rock", Image: "rock_small", Damage: -2}

	tests := []struct {
		name      string
		template  *config.HazardTemplate
		def       config.HazardDefinition
		wantParts int
	}{
		{
			name:     "机甲无部件",
			template: &config.HazardTemplate{Name: "raider", Kind: types.HazardMachine},
			def:      machine,
		},
		{
			name: "障碍物带两个部件",
			template: &config.HazardTemplate{Name: "asteroid", Kind: types.HazardObstacle, Parts: []config.TemplatePart{
				{Name: "core"},
				{Name: "debris", Offset: config.Vector3{X: 0.5}},
			}},
			def:       rock,
			wantParts: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			root, err := NewHazardEntity(em, HazardSpawn{
				Template:   tt.template,
				Definition: tt.def,
				Position:   config.Vector3{X: 1, Y: 0, Z: 16},
				Speed:      5,
			})
			if err != nil {
				t.Fatalf("NewHazardEntity() error = %v", err)
			}
			if root == 0 {
				t.Fatal("Expected valid entity ID, got 0")
			}

			hazard, ok := ecs.GetComponent[*components.HazardComponent](em, root)
			if !ok {
				t.Fatal("Hazard should have HazardComponent")
			}
			if hazard.Definition != tt.def {
				t.Errorf("Definition = %v, want %v", hazard.Definition, tt.def)
			}
			if hazard.Kind != tt.template.Kind {
				t.Errorf("Kind = %v, want %v", hazard.Kind, tt.template.Kind)
			}

			transform, _ := ecs.GetComponent[*components.TransformComponent](em, root)
			if transform.Yaw != 0 || transform.Z != 16 {
				t.Errorf("unexpected root transform: %+v", transform)
			}
			velocity, _ := ecs.GetComponent[*components.VelocityComponent](em, root)
			if velocity.VZ != -5 {
				t.Errorf("VZ = %g, want -5", velocity.VZ)
			}

			hierarchy, _ := ecs.GetComponent[*components.HierarchyComponent](em, root)
			if len(hierarchy.Children) != tt.wantParts+1 {
				t.Fatalf("expected %d children, got %d", tt.wantParts+1, len(hierarchy.Children))
			}

			graphic, ok := FindGraphicNode(em, root)
			if !ok {
				t.Fatal("Graphic child not found")
			}
			gt, _ := ecs.GetComponent[*components.TransformComponent](em, graphic)
			if gt.Yaw != GraphicYaw {
				t.Errorf("graphic yaw = %g, want %g", gt.Yaw, GraphicYaw)
			}
			sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, graphic)
			if !ok || sprite.ImageRef != tt.def.ImageRef() {
				t.Errorf("graphic sprite = %+v, want image %q", sprite, tt.def.ImageRef())
			}
			node, _ := ecs.GetComponent[*components.HierarchyComponent](em, graphic)
			if node.Parent != root {
				t.Errorf("graphic parent = %d, want %d", node.Parent, root)
			}
		})
	}
}

func TestNewHazardEntity_Errors(t *testing.T) {
	tmpl := &config.HazardTemplate{Name: "raider", Kind: types.HazardMachine}
	def := &config.MachineDefinition{Name: "Raider"}

	if _, err := NewHazardEntity(nil, HazardSpawn{Template: tmpl, Definition: def}); err == nil {
		t.Error("expected error for nil entity manager")
	}

	em := ecs.NewEntityManager()
	if _, err := NewHazardEntity(em, HazardSpawn{Definition: def}); err == nil {
		t.Error("expected error for nil template")
	}
	if _, err := NewHazardEntity(em, HazardSpawn{Template: tmpl}); err == nil {
		t.Error("expected error for nil definition")
	}
	if _, err := NewHazardEntity(em, HazardSpawn{Template: tmpl, Definition: &config.ObstacleDefinition{Name: "Rock"}}); err == nil {
		t.Error("expected error for kind mismatch")
	}
	if em.EntityCount() != 0 {
		t.Errorf("no entity should be created on error, got %d", em.EntityCount())
	}
}
