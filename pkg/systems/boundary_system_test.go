package systems

import (
	"testing"

	"github.com/decker502/hazardwaves/pkg/components"
	"github.com/decker502/hazardwaves/pkg/config"
	"github.com/decker502/hazardwaves/pkg/ecs"
	"github.com/decker502/hazardwaves/pkg/game"
	"github.com/decker502/hazardwaves/pkg/types"
)

func newBoundaryHazard(em *ecs.EntityManager, z float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.HazardComponent{})
	ecs.AddComponent(em, id, &components.TransformComponent{Z: z})
	return id
}

func TestBoundarySystem_Callback(t *testing.T) {
	em := ecs.NewEntityManager()
	newBoundaryHazard(em, 0)
	crossed := newBoundaryHazard(em, -11)
	newBoundaryHazard(em, -10) // 恰好在边界上不触发

	var hits []ecs.EntityID
	s := NewBoundarySystem(em, -10, func(id ecs.EntityID) { hits = append(hits, id) }, nil)
	s.Update(1.0 / 60.0)

	if len(hits) != 1 || hits[0] != crossed {
		t.Errorf("hits = %v, want [%d]", hits, crossed)
	}
}

func TestBoundarySystem_SkipsResolved(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newBoundaryHazard(em, -20)
	hazard, _ := ecs.GetComponent[*components.HazardComponent](em, id)
	hazard.Resolved = true

	calls := 0
	NewBoundarySystem(em, -10, func(ecs.EntityID) { calls++ }, func(ecs.EntityID) { calls++ }).Update(0.1)
	if calls != 0 {
		t.Errorf("resolved hazard should be ignored, got %d calls", calls)
	}
}

func TestBoundarySystem_NoHandlerRemoves(t *testing.T) {
	em := ecs.NewEntityManager()
	newBoundaryHazard(em, -20)

	NewBoundarySystem(em, -10, nil, nil).Update(0.1)
	em.RemoveMarkedEntities()
	if em.EntityCount() != 0 {
		t.Errorf("crossed hazard should be removed, %d entities left", em.EntityCount())
	}
}

func TestBoundarySystem_LayerSelectsHandler(t *testing.T) {
	em := ecs.NewEntityManager()
	rock := spawnTestHazard(t, em, &config.ObstacleDefinition{Name: "Rock"})
	raider := spawnTestHazard(t, em, &config.MachineDefinition{Name: "Raider"})
	for _, id := range []ecs.EntityID{rock, raider} {
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		transform.Z = -20
	}

	var collided, attacked []ecs.EntityID
	s := NewBoundarySystem(em, -10,
		func(id ecs.EntityID) { collided = append(collided, id) },
		func(id ecs.EntityID) { attacked = append(attacked, id) })
	s.Update(0.1)

	if len(collided) != 1 || collided[0] != rock {
		t.Errorf("collided = %v, want [%d]", collided, rock)
	}
	if len(attacked) != 1 || attacked[0] != raider {
		t.Errorf("attacked = %v, want [%d]", attacked, raider)
	}

	// 把机甲移到碰撞层后，同样的越界改走碰撞路径
	SetLayerRecursive(em, raider, types.LayerObstacle)
	collided, attacked = nil, nil
	s.Update(0.1)
	if len(attacked) != 0 {
		t.Errorf("machine on a colliding layer should not attack, attacked = %v", attacked)
	}
	if len(collided) != 2 || collided[1] != raider {
		t.Errorf("collided = %v, want raider %d included", collided, raider)
	}
}

func TestBoundarySystem_MachineAttacksInsteadOfColliding(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(config.PlayerConfig{Health: 10, Strength: 5})
	sound := &recordingSound{}
	r := NewHazardResolver(em, gs, sound)

	raider := spawnTestHazard(t, em, &config.MachineDefinition{Name: "Raider", Strength: 4, Sound: "laser"})
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, raider)
	transform.Z = -20

	var results []HitResult
	handle := func(resolve func(ecs.EntityID) (HitResult, error)) func(ecs.EntityID) {
		return func(id ecs.EntityID) {
			result, err := resolve(id)
			if err != nil {
				t.Errorf("resolve %d: %v", id, err)
				return
			}
			results = append(results, result)
		}
	}
	NewBoundarySystem(em, -10, handle(r.Collide), handle(r.Attack)).Update(0.1)

	if len(results) != 1 || !results[0].Attack || results[0].HealthDelta != -4 {
		t.Fatalf("results = %+v, want one machine attack", results)
	}
	if gs.PlayerHealth != 6 || gs.Score != 0 {
		t.Errorf("after attack: health=%d score=%d", gs.PlayerHealth, gs.Score)
	}
	if len(sound.played) != 1 {
		t.Errorf("played = %v, want the attack sound", sound.played)
	}
}
