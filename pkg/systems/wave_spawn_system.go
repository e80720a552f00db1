package systems

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/hazardwaves/pkg/components"
	"github.com/decker502/hazardwaves/pkg/config"
	"github.com/decker502/hazardwaves/pkg/ecs"
	"github.com/decker502/hazardwaves/pkg/entities"
	"github.com/decker502/hazardwaves/pkg/game"
	"github.com/decker502/hazardwaves/pkg/types"
	"github.com/decker502/hazardwaves/pkg/utils"
)

// WaveSpawnSystem 波次生成系统
//
// 职责：
//   - 开场等待 startDelay
//   - 每波生成 hazardsPerWave 个危险物，每次生成后等待 spawnDelay
//   - 每波结束后等待 waveDelay，然后检查游戏结束标志
//   - 游戏结束时显示重新开始提示并退出（终态）
//
// 架构说明：
//   - 状态保存在会话实体的 SpawnSessionComponent 上
//   - 游戏结束标志只在波次边界检查，波次进行中不会提前退出
//   - 一帧内可以依次完成多次生成
type WaveSpawnSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	gameConfig    *config.GameConfig
	rng           utils.RandomSource

	// sessionEntityID SpawnSessionComponent 所在的实体ID
	sessionEntityID ecs.EntityID

	spawnDelay time.Duration
	startDelay time.Duration
	waveDelay  time.Duration

	onRestartAvailable func()
	onSpawn            func(root ecs.EntityID)

	verbose bool
}

// NewWaveSpawnSystem 创建波次生成系统
//
// 参数：
//   - em: 实体管理器
//   - gs: 本局游戏状态
//   - cfg: 游戏配置（会先校验）
//   - rng: 随机数来源
//
// 返回：
//   - *WaveSpawnSystem: 系统实例
//   - error: 参数为 nil 或配置非法（*config.ConfigurationError）
func NewWaveSpawnSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.GameConfig, rng utils.RandomSource) (*WaveSpawnSystem, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if gs == nil {
		return nil, fmt.Errorf("game state cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &WaveSpawnSystem{
		entityManager: em,
		gameState:     gs,
		gameConfig:    cfg,
		rng:           rng,
		spawnDelay:    cfg.SpawnDelayDuration(),
		startDelay:    cfg.StartDelayDuration(),
		waveDelay:     cfg.WaveDelayDuration(),
	}

	s.sessionEntityID = em.CreateEntity()
	ecs.AddComponent(em, s.sessionEntityID, &components.SpawnSessionComponent{Phase: components.SpawnPhaseIdle})

	return s, nil
}

// SetVerbose 设置是否输出每次生成的日志
func (s *WaveSpawnSystem) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// SetRestartAvailableHandler 设置"可以重新开始"回调
// 在生成循环因游戏结束退出时调用一次
func (s *WaveSpawnSystem) SetRestartAvailableHandler(fn func()) {
	s.onRestartAvailable = fn
}

// SetSpawnHandler 设置每次生成后的回调（参数为危险物根实体）
func (s *WaveSpawnSystem) SetSpawnHandler(fn func(root ecs.EntityID)) {
	s.onSpawn = fn
}

// Session 返回生成会话组件
func (s *WaveSpawnSystem) Session() *components.SpawnSessionComponent {
	session, ok := ecs.GetComponent[*components.SpawnSessionComponent](s.entityManager, s.sessionEntityID)
	if !ok {
		return nil
	}
	return session
}

// Start 启动生成循环，只在 Idle 阶段有效
func (s *WaveSpawnSystem) Start() {
	session := s.Session()
	if session == nil || session.Phase != components.SpawnPhaseIdle {
		return
	}
	session.Phase = components.SpawnPhaseStartDelay
	session.Remaining = s.startDelay
	log.Printf("[WaveSpawnSystem] Started: startDelay=%v, %d per wave, spawnDelay=%v, waveDelay=%v",
		s.startDelay, s.gameConfig.HazardsPerWave, s.spawnDelay, s.waveDelay)
}

// Cancel 停止生成循环，不触发重新开始回调
func (s *WaveSpawnSystem) Cancel() {
	if session := s.Session(); session != nil && session.Phase != components.SpawnPhaseFinished {
		session.Phase = components.SpawnPhaseFinished
		log.Printf("[WaveSpawnSystem] Cancelled after %d spawns", session.TotalSpawned)
	}
}

// IsFinished 生成循环是否已退出
func (s *WaveSpawnSystem) IsFinished() bool {
	session := s.Session()
	return session == nil || session.Phase == components.SpawnPhaseFinished
}

// Update 推进生成循环
func (s *WaveSpawnSystem) Update(deltaTime float64) {
	session := s.Session()
	if session == nil || session.Phase == components.SpawnPhaseIdle || session.Phase == components.SpawnPhaseFinished {
		return
	}

	session.Remaining -= config.Seconds(deltaTime)

	for session.Remaining <= 0 && session.Phase != components.SpawnPhaseFinished {
		switch session.Phase {
		case components.SpawnPhaseStartDelay:
			s.spawnNext(session)

		case components.SpawnPhaseSpawnDelay:
			if session.SpawnedInWave < s.gameConfig.HazardsPerWave {
				s.spawnNext(session)
			} else {
				session.Phase = components.SpawnPhaseWaveDelay
				session.Remaining += s.waveDelay
			}

		case components.SpawnPhaseWaveDelay:
			// 波次边界：检查游戏结束
			if s.gameState.GameOver {
				s.finish(session)
			} else {
				session.WaveIndex++
				session.SpawnedInWave = 0
				if s.verbose {
					log.Printf("[WaveSpawnSystem] Wave %d begins", session.WaveIndex+1)
				}
				s.spawnNext(session)
			}

		default:
			return
		}
	}
}

// spawnNext 生成一个危险物并进入 spawnDelay 等待
func (s *WaveSpawnSystem) spawnNext(session *components.SpawnSessionComponent) {
	root, err := s.spawnHazard(session.WaveIndex)
	if err != nil {
		log.Printf("[WaveSpawnSystem] WARNING: spawn failed: %v", err)
	} else if s.onSpawn != nil {
		s.onSpawn(root)
	}

	session.SpawnedInWave++
	session.TotalSpawned++
	session.Phase = components.SpawnPhaseSpawnDelay
	session.Remaining += s.spawnDelay
}

// spawnHazard 均匀选择模板，再按模板类别均匀选择定义
func (s *WaveSpawnSystem) spawnHazard(wave int) (ecs.EntityID, error) {
	cfg := s.gameConfig
	template := &cfg.Templates[s.rng.IntN(len(cfg.Templates))]

	var def config.HazardDefinition
	switch template.Kind {
	case types.HazardMachine:
		machine := cfg.Machines[s.rng.IntN(len(cfg.Machines))]
		def = &machine
	case types.HazardObstacle:
		obstacle := cfg.Obstacles[s.rng.IntN(len(cfg.Obstacles))]
		def = &obstacle
	default:
		return 0, fmt.Errorf("template %q has unknown kind", template.Name)
	}

	position := config.Vector3{
		X: utils.RangeFloat(s.rng, cfg.SpawnSpread.X),
		Y: cfg.SpawnSpread.Y,
		Z: cfg.SpawnSpread.Z,
	}

	root, err := entities.NewHazardEntity(s.entityManager, entities.HazardSpawn{
		Template:   template,
		Definition: def,
		Position:   position,
		Speed:      cfg.HazardSpeed,
		Wave:       wave,
	})
	if err != nil {
		return 0, err
	}

	SetLayerRecursive(s.entityManager, root, types.LayerForKind(template.Kind))

	if s.verbose {
		log.Printf("[WaveSpawnSystem] Spawned %s %q (template %q) at X=%.2f, wave %d",
			template.Kind, def.DisplayName(), template.Name, position.X, wave+1)
	}
	return root, nil
}

// finish 生成循环因游戏结束退出
func (s *WaveSpawnSystem) finish(session *components.SpawnSessionComponent) {
	session.Phase = components.SpawnPhaseFinished
	session.RestartAvailable = true
	s.gameState.MarkRestartPending()
	log.Printf("[WaveSpawnSystem] Game over at wave %d, %d hazards spawned; restart available",
		session.WaveIndex+1, session.TotalSpawned)

	if s.onRestartAvailable != nil {
		s.onRestartAvailable()
	}
}
