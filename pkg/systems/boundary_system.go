package systems

import (
	"log"

	"github.com/decker502/hazardwaves/pkg/components"
	"github.com/decker502/hazardwaves/pkg/ecs"
)

// BoundarySystem 检测越过玩家边界（boundaryZ）的危险物
// 根节点位于碰撞层的危险物撞上玩家，交给 onCollide；
// 位于非碰撞层的（机甲）不会碰撞，到达边界时对玩家发起攻击，交给 onAttack
type BoundarySystem struct {
	entityManager *ecs.EntityManager
	boundaryZ     float64
	onCollide     func(id ecs.EntityID)
	onAttack      func(id ecs.EntityID)
}

// NewBoundarySystem 创建边界检测系统
//
// 参数:
//   - em: 实体管理器
//   - boundaryZ: 玩家所在的 Z 边界，危险物 Z 小于该值时触发
//   - onCollide: 碰撞回调（通常为 WaveController.ResolveHazardHit）
//   - onAttack: 攻击回调（通常为 WaveController.ResolveMachineAttack）
//
// 回调为 nil 时越界的危险物直接移除
func NewBoundarySystem(em *ecs.EntityManager, boundaryZ float64, onCollide, onAttack func(id ecs.EntityID)) *BoundarySystem {
	return &BoundarySystem{
		entityManager: em,
		boundaryZ:     boundaryZ,
		onCollide:     onCollide,
		onAttack:      onAttack,
	}
}

// Update 检查所有未结算的危险物
func (s *BoundarySystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.HazardComponent, *components.TransformComponent](s.entityManager)
	for _, id := range ids {
		hazard, _ := ecs.GetComponent[*components.HazardComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if hazard.Resolved || transform.Z >= s.boundaryZ {
			continue
		}

		handler := s.onCollide
		if !Collides(s.entityManager, id) {
			handler = s.onAttack
		}
		if handler != nil {
			handler(id)
			continue
		}

		log.Printf("[BoundarySystem] Hazard %d crossed Z=%.1f with no handler, removing", id, s.boundaryZ)
		hazard.Resolved = true
		DestroyHierarchy(s.entityManager, id)
	}
}
