package systems

import (
	"github.com/decker502/hazardwaves/pkg/components"
	"github.com/decker502/hazardwaves/pkg/ecs"
)

// HazardMovementSystem 按速度移动危险物根节点，子节点随父节点移动
type HazardMovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewHazardMovementSystem 创建移动系统
func NewHazardMovementSystem(em *ecs.EntityManager) *HazardMovementSystem {
	return &HazardMovementSystem{entityManager: em}
}

// Update 更新所有危险物的位置
func (s *HazardMovementSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[*components.HazardComponent, *components.TransformComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range ids {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		velocity, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		transform.X += velocity.VX * deltaTime
		transform.Y += velocity.VY * deltaTime
		transform.Z += velocity.VZ * deltaTime
	}
}
