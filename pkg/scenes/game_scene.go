// Package scenes 包含游戏场景
package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/hazardwaves/pkg/ecs"
	"github.com/decker502/hazardwaves/pkg/game"
	"github.com/decker502/hazardwaves/pkg/session"
	"github.com/decker502/hazardwaves/pkg/systems"
	"github.com/decker502/hazardwaves/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// 屏幕尺寸
	WindowWidth  = 800
	WindowHeight = 600

	// 世界坐标可见范围
	WorldHalfWidth = 8.0
	WorldFarZ      = 18.0

	// 文本位置
	hudX           = 10
	hudY           = 10
	hudLineHeight  = 16
	gameOverY      = WindowHeight/2 - 20
	restartY       = WindowHeight/2 + 4
	centerCharWide = 6 // DebugPrint 字体每个字符约 6 像素宽

	volumeStep = 0.1
)

// 按键
var (
	restartKey    = ebiten.KeyR
	statsKey      = ebiten.KeyF3
	muteKey       = ebiten.KeyM
	volumeDownKey = ebiten.KeyMinus
	volumeUpKey   = ebiten.KeyEqual
)

// GameSceneOptions GameScene 的依赖
type GameSceneOptions struct {
	Controller *session.WaveController // 必填
	Resources  *game.ResourceManager   // 必填
	Settings   *game.SettingsManager   // 可为 nil
	Audio      *game.AudioManager      // 可为 nil，音量调整只写入设置
	Profile    *game.SaveManager       // 可为 nil，用于显示最高分
	BoundaryZ  float64                 // 玩家边界，对应屏幕底端
}

// GameScene 主游戏场景
// 持有 WaveController，把按键转成控制器操作，并绘制背景、危险物与界面文本
type GameScene struct {
	controller *session.WaveController
	resources  *game.ResourceManager
	settings   *game.SettingsManager
	audio      *game.AudioManager
	profile    *game.SaveManager
	projection systems.Projection

	// renderSystem 绑定在会话的实体世界上，重新开始后重建
	renderSystem *systems.RenderSystem
	renderWorld  *ecs.EntityManager

	showStats bool
}

// NewGameScene 创建游戏场景并开始第一局
func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	if opts.Controller == nil {
		return nil, fmt.Errorf("wave controller cannot be nil")
	}
	if opts.Resources == nil {
		return nil, fmt.Errorf("resource manager cannot be nil")
	}

	s := &GameScene{
		controller: opts.Controller,
		resources:  opts.Resources,
		settings:   opts.Settings,
		audio:      opts.Audio,
		profile:    opts.Profile,
		projection: systems.Projection{
			ScreenWidth:    WindowWidth,
			ScreenHeight:   WindowHeight,
			WorldHalfWidth: WorldHalfWidth,
			FarZ:           WorldFarZ,
			NearZ:          opts.BoundaryZ,
		},
	}
	if opts.Settings != nil {
		s.showStats = opts.Settings.GetSettings().ShowStats
	}

	if opts.Controller.State() == session.StateIdle {
		if err := opts.Controller.Start(); err != nil {
			return nil, fmt.Errorf("failed to start session: %w", err)
		}
	}
	return s, nil
}

// Update 处理输入并推进控制器
func (s *GameScene) Update(deltaTime float64) {
	// 移动端没有键盘，点击屏幕同样可以重新开始
	if tapped, _, _ := utils.JustTapped(); tapped || inpututil.IsKeyJustPressed(restartKey) {
		s.RequestRestart()
	}
	if inpututil.IsKeyJustPressed(statsKey) {
		s.ToggleStats()
	}
	if inpututil.IsKeyJustPressed(muteKey) {
		s.ToggleSound()
	}
	if inpututil.IsKeyJustPressed(volumeDownKey) {
		s.AdjustVolume(-volumeStep)
	}
	if inpututil.IsKeyJustPressed(volumeUpKey) {
		s.AdjustVolume(volumeStep)
	}
	s.controller.Update(deltaTime)
}

// RequestRestart 玩家请求重新开始，只在提示显示后有效
func (s *GameScene) RequestRestart() bool {
	if !s.controller.RequestRestart() {
		return false
	}
	log.Printf("[GameScene] Restarted, session %s", s.controller.SessionID())
	return true
}

// ToggleStats 切换统计信息显示，并保存到设置
func (s *GameScene) ToggleStats() {
	s.showStats = !s.showStats
	if s.settings != nil {
		s.settings.GetSettings().ShowStats = s.showStats
	}
}

// ToggleSound 开关音效
func (s *GameScene) ToggleSound() {
	if s.settings == nil {
		return
	}
	enabled := !s.settings.GetSettings().SoundEnabled
	s.settings.SetSoundEnabled(enabled)
	log.Printf("[GameScene] Sound enabled: %v", enabled)
}

// AdjustVolume 调整音效音量（结果限制在 0.0 ~ 1.0）
func (s *GameScene) AdjustVolume(delta float64) {
	if s.settings == nil {
		return
	}
	volume := s.settings.GetSettings().SoundVolume + delta
	if s.audio != nil {
		s.audio.SetSoundVolume(volume)
	} else {
		s.settings.SetSoundVolume(volume)
	}
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	renderer := s.renderer()
	if renderer != nil {
		if bg, ok := s.controller.Background().CurrentImage(); ok {
			renderer.DrawBackground(screen, bg)
		}
		renderer.Draw(screen)
	}

	for i, line := range s.HUDLines() {
		ebitenutil.DebugPrintAt(screen, line, hudX, hudY+i*hudLineHeight)
	}

	gs := s.controller.GameState()
	if gs == nil {
		return
	}
	if text := gs.GameOverText(); text != "" {
		ebitenutil.DebugPrintAt(screen, text, centeredX(text), gameOverY)
	}
	if text := gs.RestartText(); text != "" {
		ebitenutil.DebugPrintAt(screen, text, centeredX(text), restartY)
	}
}

// renderer 返回绑定到当前会话实体世界的渲染系统
func (s *GameScene) renderer() *systems.RenderSystem {
	em := s.controller.EntityManager()
	if em == nil {
		return nil
	}
	if em != s.renderWorld {
		s.renderSystem = systems.NewRenderSystem(em, s.resources, s.projection)
		s.renderWorld = em
	}
	return s.renderSystem
}

// HUDLines 左上角显示的文本行
func (s *GameScene) HUDLines() []string {
	gs := s.controller.GameState()
	if gs == nil {
		return nil
	}

	lines := []string{
		gs.ScoreText(),
		fmt.Sprintf("Health: %d  Strength: %d", gs.PlayerHealth, gs.PlayerStrength),
	}
	if !s.showStats {
		return lines
	}

	summary := s.controller.Summary()
	lines = append(lines,
		fmt.Sprintf("Wave: %d  Spawned: %d  Resolved: %d", summary.WavesReached, summary.HazardsSpawned, summary.HazardsResolved),
		fmt.Sprintf("State: %s", s.controller.State()),
		fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()),
	)
	if last := s.controller.LastSpawn(); last != "" {
		lines = append(lines, "Last: "+last)
	}
	if s.settings != nil {
		settings := s.settings.GetSettings()
		sound := "off"
		if settings.SoundEnabled {
			sound = fmt.Sprintf("%.0f%%", settings.SoundVolume*100)
		}
		lines = append(lines, "Sound: "+sound)
	}
	if s.profile != nil {
		record := s.profile.GetRecord()
		lines = append(lines, fmt.Sprintf("Best: %d  Played: %d", record.BestScore, record.SessionsPlayed))
	}
	return lines
}

// SaveOnExit 实现 game.Saveable：记录已结束的会话并保存设置
func (s *GameScene) SaveOnExit() bool {
	s.controller.Close()
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
		return false
	}
	return true
}

// Controller 返回场景持有的控制器
func (s *GameScene) Controller() *session.WaveController {
	return s.controller
}

func centeredX(text string) int {
	return (WindowWidth - len(text)*centerCharWide) / 2
}
