package systems

import (
	"log"
	"time"

	"github.com/decker502/hazardwaves/pkg/components"
	"github.com/decker502/hazardwaves/pkg/config"
	"github.com/decker502/hazardwaves/pkg/ecs"
	"github.com/decker502/hazardwaves/pkg/game"
)

// BackgroundCycleSystem 定时轮换背景贴图
// 与生成循环相互独立，只读共享贴图列表；当前索引写入 GameState.BackgroundIndex
type BackgroundCycleSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	timerEntityID ecs.EntityID
	enabled       bool
}

// NewBackgroundCycleSystem 创建背景轮换系统
// 参数:
//   - em: EntityManager 实例
//   - gs: 本局游戏状态
//   - images: 背景贴图资源 ID 列表，为空时系统不做任何事
//   - interval: 切换间隔
func NewBackgroundCycleSystem(em *ecs.EntityManager, gs *game.GameState, images []string, interval time.Duration) *BackgroundCycleSystem {
	s := &BackgroundCycleSystem{
		entityManager: em,
		gameState:     gs,
	}

	s.timerEntityID = em.CreateEntity()
	ecs.AddComponent(em, s.timerEntityID, &components.BackgroundCycleComponent{
		Images:    images,
		Interval:  interval,
		Remaining: interval,
	})

	if len(images) == 0 {
		log.Printf("[BackgroundCycleSystem] No backgrounds configured, cycling disabled")
	} else {
		log.Printf("[BackgroundCycleSystem] Initialized with %d backgrounds, interval=%v", len(images), interval)
	}
	return s
}

// Start 开始计时
func (s *BackgroundCycleSystem) Start() {
	s.enabled = true
}

// Stop 停止计时（保持当前背景）
func (s *BackgroundCycleSystem) Stop() {
	s.enabled = false
}

// Update 推进计时器，每到一个间隔切换到下一张背景，越过末尾后回到第一张
func (s *BackgroundCycleSystem) Update(deltaTime float64) {
	if !s.enabled {
		return
	}
	timer, ok := ecs.GetComponent[*components.BackgroundCycleComponent](s.entityManager, s.timerEntityID)
	if !ok || len(timer.Images) == 0 || timer.Interval <= 0 {
		return
	}

	timer.Remaining -= config.Seconds(deltaTime)
	for timer.Remaining <= 0 {
		timer.Remaining += timer.Interval
		next := s.gameState.BackgroundIndex + 1
		if next >= len(timer.Images) {
			next = 0
		}
		s.gameState.BackgroundIndex = next
	}
}

// CurrentImage 返回当前背景的资源 ID
func (s *BackgroundCycleSystem) CurrentImage() (string, bool) {
	timer, ok := ecs.GetComponent[*components.BackgroundCycleComponent](s.entityManager, s.timerEntityID)
	if !ok || len(timer.Images) == 0 {
		return "", false
	}
	idx := s.gameState.BackgroundIndex
	if idx < 0 || idx >= len(timer.Images) {
		return "", false
	}
	return timer.Images[idx], true
}
