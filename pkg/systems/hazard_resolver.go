package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/hazardwaves/pkg/components"
	"github.com/decker502/hazardwaves/pkg/config"
	"github.com/decker502/hazardwaves/pkg/ecs"
	"github.com/decker502/hazardwaves/pkg/game"
	"github.com/decker502/hazardwaves/pkg/types"
)

var (
	// ErrNotHazard 实体不存在或不是危险物根节点
	ErrNotHazard = errors.New("entity is not a hazard")
	// ErrAlreadyResolved 危险物已经结算过
	ErrAlreadyResolved = errors.New("hazard already resolved")
	// ErrNotCollidable 危险物位于不参与碰撞的层（机甲）
	ErrNotCollidable = errors.New("hazard does not collide")
	// ErrCannotAttack 只有机甲能发起攻击
	ErrCannotAttack = errors.New("hazard cannot attack")
)

// SoundPlayer 按资源 ID 播放音效
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// HitResult 一次结算的结果
type HitResult struct {
	Kind          types.HazardKind
	Name          string
	Attack        bool // true 表示机甲攻击，false 表示障碍物碰撞
	HealthDelta   int
	StrengthDelta int
	ScoreDelta    int
	PlayerDied    bool
}

// HazardResolver 结算危险物对玩家的影响
// 检测由宿主（或 BoundarySystem）完成，这里只读取危险物持有的定义并应用效果。
// 两条路径按根节点所在的层区分：
//   - Collide：碰撞层上的障碍物，生命 += Damage，力量 += Strength，分数 += Money
//   - Attack：非碰撞层上的机甲，生命 -= Strength，并播放其音效
//
// 生命降到 0 及以下时触发游戏结束。结算后整棵实体树被销毁
type HazardResolver struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	sound         SoundPlayer // 可为 nil
}

// NewHazardResolver 创建结算器
func NewHazardResolver(em *ecs.EntityManager, gs *game.GameState, sound SoundPlayer) *HazardResolver {
	return &HazardResolver{
		entityManager: em,
		gameState:     gs,
		sound:         sound,
	}
}

// Collides 危险物根节点是否位于参与碰撞的层，没有层组件时视为默认层
func Collides(em *ecs.EntityManager, id ecs.EntityID) bool {
	layer, ok := ecs.GetComponent[*components.LayerComponent](em, id)
	return !ok || layer.Layer.Collides()
}

// Collide 结算障碍物与玩家的碰撞
func (r *HazardResolver) Collide(id ecs.EntityID) (HitResult, error) {
	hazard, err := r.pending(id)
	if err != nil {
		return HitResult{}, fmt.Errorf("collide %d: %w", id, err)
	}
	if !Collides(r.entityManager, id) {
		return HitResult{}, fmt.Errorf("collide %d (%s): %w", id, hazard.Kind, ErrNotCollidable)
	}
	def, ok := hazard.Definition.(*config.ObstacleDefinition)
	if !ok {
		return HitResult{}, fmt.Errorf("collide %d: %T: %w", id, hazard.Definition, ErrNotCollidable)
	}

	return r.apply(id, hazard, HitResult{
		Kind:          hazard.Kind,
		Name:          def.Name,
		HealthDelta:   def.Damage,
		StrengthDelta: def.Strength,
		ScoreDelta:    def.Money,
	}), nil
}

// Attack 结算机甲对玩家的攻击
func (r *HazardResolver) Attack(id ecs.EntityID) (HitResult, error) {
	hazard, err := r.pending(id)
	if err != nil {
		return HitResult{}, fmt.Errorf("attack %d: %w", id, err)
	}
	def, ok := hazard.Definition.(*config.MachineDefinition)
	if !ok {
		return HitResult{}, fmt.Errorf("attack %d: %T: %w", id, hazard.Definition, ErrCannotAttack)
	}

	if r.sound != nil && def.Sound != "" {
		r.sound.PlaySound(def.Sound)
	}
	return r.apply(id, hazard, HitResult{
		Kind:        hazard.Kind,
		Name:        def.Name,
		Attack:      true,
		HealthDelta: -def.Strength,
	}), nil
}

// pending 返回尚未结算的危险物组件
func (r *HazardResolver) pending(id ecs.EntityID) (*components.HazardComponent, error) {
	hazard, ok := ecs.GetComponent[*components.HazardComponent](r.entityManager, id)
	if !ok {
		return nil, ErrNotHazard
	}
	if hazard.Resolved {
		return nil, ErrAlreadyResolved
	}
	return hazard, nil
}

func (r *HazardResolver) apply(id ecs.EntityID, hazard *components.HazardComponent, result HitResult) HitResult {
	hazard.Resolved = true

	result.PlayerDied = r.gameState.ApplyHealthDelta(result.HealthDelta)
	r.gameState.ApplyStrengthDelta(result.StrengthDelta)
	if result.ScoreDelta != 0 {
		r.gameState.AddScore(result.ScoreDelta)
	}

	verb := "hit"
	if result.Attack {
		verb = "attacked"
	}
	log.Printf("[HazardResolver] %s %q %s player: health %+d, strength %+d, score %+d (health now %d)",
		result.Kind, result.Name, verb, result.HealthDelta, result.StrengthDelta, result.ScoreDelta, r.gameState.PlayerHealth)

	if result.PlayerDied {
		r.gameState.TriggerGameOver()
	}

	DestroyHierarchy(r.entityManager, id)
	return result
}
