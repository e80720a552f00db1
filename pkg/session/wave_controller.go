// Package session 提供单局波次控制器：生成循环、记分板与背景轮换的编排
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/decker502/hazardwaves/pkg/components"
	"github.com/decker502/hazardwaves/pkg/config"
	"github.com/decker502/hazardwaves/pkg/ecs"
	"github.com/decker502/hazardwaves/pkg/game"
	"github.com/decker502/hazardwaves/pkg/systems"
	"github.com/decker502/hazardwaves/pkg/utils"
)

// recordTimeout 单次持久化的超时
const recordTimeout = 2 * time.Second

// ErrInvalidState 当前状态不允许该操作
var ErrInvalidState = errors.New("invalid controller state")

// State 控制器生命周期状态
type State int

const (
	// StateIdle 尚未开始
	StateIdle State = iota
	// StateRunning 生成循环与背景轮换运行中
	StateRunning
	// StateGameOverPending 生成循环已退出，等待玩家重新开始
	StateGameOverPending
	// StateRestarting 正在重置会话
	StateRestarting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateGameOverPending:
		return "GameOverPending"
	case StateRestarting:
		return "Restarting"
	default:
		return "Unknown"
	}
}

// Options 控制器依赖
type Options struct {
	Config   *config.GameConfig  // 必填
	Random   utils.RandomSource  // 必填
	Recorder SessionRecorder     // 可选，会话结束时调用
	Sound    systems.SoundPlayer // 可选，机甲碰撞音效
	Clock    func() time.Time    // 可选，默认 time.Now
	NewID    func() string       // 可选，默认 uuid.NewString
	Verbose  bool                // 输出每次生成的日志
}

// WaveController 单局控制器
//
// 生命周期：Idle → Running → GameOverPending → Restarting → Running ...
// 每次（重新）开始都会创建全新的实体世界、GameState 与系统实例，
// 计时器作为会话数据随之重建，不存在跨会话的全局计时器
type WaveController struct {
	opts  Options
	state State

	sessionID string
	startedAt time.Time
	recorded  bool
	resolved  int
	lastSpawn string

	entityManager *ecs.EntityManager
	gameState     *game.GameState
	spawner       *systems.WaveSpawnSystem
	background    *systems.BackgroundCycleSystem
	movement      *systems.HazardMovementSystem
	boundary      *systems.BoundarySystem
	resolver      *systems.HazardResolver
}

// NewWaveController 创建控制器（处于 Idle 状态）
func NewWaveController(opts Options) (*WaveController, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if opts.Random == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &WaveController{opts: opts, state: StateIdle}, nil
}

// Start 开始一局：Idle → Running
// 配置非法时返回 *config.ConfigurationError，状态保持 Idle
func (c *WaveController) Start() error {
	if c.state != StateIdle {
		return fmt.Errorf("start in state %s: %w", c.state, ErrInvalidState)
	}
	if err := c.opts.Config.Validate(); err != nil {
		return err
	}
	if err := c.newSession(); err != nil {
		return err
	}

	c.spawner.Start()
	c.background.Start()
	c.state = StateRunning
	log.Printf("[WaveController] Session %s started", c.sessionID)
	return nil
}

// newSession 重建整个会话世界
func (c *WaveController) newSession() error {
	cfg := c.opts.Config
	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg.Player)

	spawner, err := systems.NewWaveSpawnSystem(em, gs, cfg, c.opts.Random)
	if err != nil {
		return err
	}
	spawner.SetVerbose(c.opts.Verbose)
	spawner.SetRestartAvailableHandler(c.onRestartAvailable)
	spawner.SetSpawnHandler(c.onSpawn)

	c.entityManager = em
	c.gameState = gs
	c.spawner = spawner
	c.background = systems.NewBackgroundCycleSystem(em, gs, cfg.Backgrounds, cfg.BackgroundIntervalDuration())
	c.movement = systems.NewHazardMovementSystem(em)
	c.resolver = systems.NewHazardResolver(em, gs, c.opts.Sound)
	c.boundary = systems.NewBoundarySystem(em, cfg.BoundaryZ,
		func(id ecs.EntityID) {
			if _, err := c.ResolveHazardHit(id); err != nil {
				log.Printf("[WaveController] Boundary hit on %d not resolved: %v", id, err)
			}
		},
		func(id ecs.EntityID) {
			if _, err := c.ResolveMachineAttack(id); err != nil {
				log.Printf("[WaveController] Machine attack by %d not resolved: %v", id, err)
			}
		})

	c.sessionID = c.opts.NewID()
	c.startedAt = c.opts.Clock()
	c.recorded = false
	c.resolved = 0
	c.lastSpawn = ""
	return nil
}

// onSpawn 记录最近一次生成的危险物，供统计面板显示
func (c *WaveController) onSpawn(root ecs.EntityID) {
	hazard, ok := ecs.GetComponent[*components.HazardComponent](c.entityManager, root)
	if !ok || hazard.Definition == nil {
		return
	}
	c.lastSpawn = fmt.Sprintf("%s (%s)", hazard.Definition.DisplayName(), hazard.Kind)
}

// onRestartAvailable 生成循环退出：Running → GameOverPending
func (c *WaveController) onRestartAvailable() {
	if c.state != StateRunning {
		return
	}
	c.state = StateGameOverPending
	log.Printf("[WaveController] Session %s over with score %d", c.sessionID, c.gameState.Score)
}

// Update 推进一帧
func (c *WaveController) Update(deltaTime float64) {
	if c.state != StateRunning && c.state != StateGameOverPending {
		return
	}

	c.background.Update(deltaTime)
	c.movement.Update(deltaTime)
	c.boundary.Update(deltaTime)
	c.spawner.Update(deltaTime)
	c.entityManager.RemoveMarkedEntities()
}

// AddScore 修改分数（任意符号）
func (c *WaveController) AddScore(delta int) {
	if c.gameState == nil {
		return
	}
	c.gameState.AddScore(delta)
}

// TriggerGameOver 设置游戏结束标志，重复调用无效
// 生成循环会在下一个波次边界退出
func (c *WaveController) TriggerGameOver() {
	if c.gameState == nil {
		return
	}
	if c.gameState.TriggerGameOver() {
		log.Printf("[WaveController] Game over triggered at score %d", c.gameState.Score)
	}
}

// ResolveHazardHit 结算障碍物与玩家的碰撞
// 位于非碰撞层的机甲返回 systems.ErrNotCollidable
func (c *WaveController) ResolveHazardHit(id ecs.EntityID) (systems.HitResult, error) {
	if c.state != StateRunning && c.state != StateGameOverPending {
		return systems.HitResult{}, fmt.Errorf("resolve hit in state %s: %w", c.state, ErrInvalidState)
	}
	return c.countResolved(c.resolver.Collide(id))
}

// ResolveMachineAttack 结算机甲对玩家的攻击
func (c *WaveController) ResolveMachineAttack(id ecs.EntityID) (systems.HitResult, error) {
	if c.state != StateRunning && c.state != StateGameOverPending {
		return systems.HitResult{}, fmt.Errorf("resolve attack in state %s: %w", c.state, ErrInvalidState)
	}
	return c.countResolved(c.resolver.Attack(id))
}

func (c *WaveController) countResolved(result systems.HitResult, err error) (systems.HitResult, error) {
	if err != nil {
		return result, err
	}
	c.resolved++
	return result, nil
}

// RequestRestart 重新开始
// 只在 GameOverPending 且提示已显示时有效，其余情况返回 false
func (c *WaveController) RequestRestart() bool {
	if c.state != StateGameOverPending || !c.gameState.RestartPending {
		return false
	}

	c.state = StateRestarting
	c.spawner.Cancel()
	c.background.Stop()
	c.record()

	previous := c.sessionID
	c.state = StateIdle
	if err := c.Start(); err != nil {
		// 配置在首次 Start 时已校验过，这里只会因为实现错误失败
		log.Printf("[WaveController] ERROR: restart failed: %v", err)
		return false
	}
	log.Printf("[WaveController] Restarted: %s -> %s", previous, c.sessionID)
	return true
}

// Close 在程序退出时记录已结束但尚未记录的会话，不改变状态
func (c *WaveController) Close() {
	if c.state == StateGameOverPending {
		c.record()
	}
}

// Summary 当前会话的汇总
func (c *WaveController) Summary() Summary {
	s := Summary{
		ID:              c.sessionID,
		StartedAt:       c.startedAt,
		EndedAt:         c.opts.Clock(),
		HazardsResolved: c.resolved,
	}
	if c.gameState != nil {
		s.Score = c.gameState.Score
		s.PlayerHealth = c.gameState.PlayerHealth
	}
	if c.spawner != nil {
		if session := c.spawner.Session(); session != nil {
			s.WavesReached = session.WaveIndex + 1
			s.HazardsSpawned = session.TotalSpawned
		}
	}
	return s
}

func (c *WaveController) record() {
	if c.recorded || c.opts.Recorder == nil {
		return
	}
	c.recorded = true

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := c.opts.Recorder.RecordSession(ctx, c.Summary()); err != nil {
		log.Printf("[WaveController] Warning: failed to record session %s: %v", c.sessionID, err)
	}
}

// State 当前状态
func (c *WaveController) State() State { return c.state }

// SessionID 当前会话 ID（每次开始都会重新生成）
func (c *WaveController) SessionID() string { return c.sessionID }

// GameState 当前会话的记分板，Start 之前为 nil
func (c *WaveController) GameState() *game.GameState { return c.gameState }

// EntityManager 当前会话的实体世界，Start 之前为 nil
func (c *WaveController) EntityManager() *ecs.EntityManager { return c.entityManager }

// Spawner 当前会话的生成系统
func (c *WaveController) Spawner() *systems.WaveSpawnSystem { return c.spawner }

// LastSpawn 最近一次生成的危险物（名称与类型），尚未生成时为空
func (c *WaveController) LastSpawn() string { return c.lastSpawn }

// Background 当前会话的背景轮换系统
func (c *WaveController) Background() *systems.BackgroundCycleSystem { return c.background }
