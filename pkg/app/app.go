// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/hazardwaves/pkg/config"
	"github.com/decker502/hazardwaves/pkg/embedded"
	"github.com/decker502/hazardwaves/pkg/game"
	"github.com/decker502/hazardwaves/pkg/scenes"
	"github.com/decker502/hazardwaves/pkg/session"
	"github.com/decker502/hazardwaves/pkg/store"
	"github.com/decker502/hazardwaves/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// DefaultGameConfigPath 嵌入的默认游戏配置
	DefaultGameConfigPath = "data/game.yaml"
	// ResourceConfigPath 嵌入的资源映射
	ResourceConfigPath = "data/resources.yaml"

	// GameSceneName 游戏场景在 SceneManager 中的名字
	GameSceneName = "game"

	sampleRate = 48000
	fixedStep  = 1.0 / 60.0
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的游戏配置文件，为空则使用嵌入的 data/game.yaml
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed uint64
	// HistoryPath sqlite 会话历史文件，为空则不记录历史
	HistoryPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	history         *store.HistoryStore // 可为 nil
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] %d templates, %d machines, %d obstacles, %d backgrounds",
		len(gameConfig.Templates), len(gameConfig.Machines), len(gameConfig.Obstacles), len(gameConfig.Backgrounds))

	// 初始化音频上下文
	audioContext := audio.NewContext(sampleRate)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(embedded.FS(), audioContext)
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 存档与设置（gdata 不可用时只在内存中保存）
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	storage := game.OpenStorage(game.AppName)
	settingsManager := game.NewSettingsManager(storage)
	saveManager := game.NewSaveManager(storage)

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.PreloadSounds(SoundIDs(gameConfig))
	log.Printf("[App] AudioManager initialized")

	history := openHistory(cfg.HistoryPath)
	recorder := session.MultiRecorder{NewProfileRecorder(saveManager)}
	if history != nil {
		recorder = append(recorder, history)
	}

	rng := utils.NewPRNG(cfg.Seed)
	log.Printf("[App] Random seed: %d", rng.Seed())

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.Register(GameSceneName, func() (game.Scene, error) {
		controller, err := session.NewWaveController(session.Options{
			Config:   gameConfig,
			Random:   rng,
			Recorder: recorder,
			Sound:    audioManager,
			Verbose:  cfg.Verbose,
		})
		if err != nil {
			return nil, err
		}
		return scenes.NewGameScene(scenes.GameSceneOptions{
			Controller: controller,
			Resources:  resourceManager,
			Settings:   settingsManager,
			Audio:      audioManager,
			Profile:    saveManager,
			BoundaryZ:  gameConfig.BoundaryZ,
		})
	})

	if err := sceneManager.SwitchTo(GameSceneName); err != nil {
		if history != nil {
			history.Close()
		}
		return nil, err
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		history:         history,
		verbose:         cfg.Verbose,
	}, nil
}

// LoadGameConfig 加载游戏配置：path 为空时读取嵌入的默认配置
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("游戏配置加载失败: %w", err)
		}
		return cfg, nil
	}

	data, err := embedded.ReadFile(DefaultGameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	return cfg, nil
}

// SoundIDs 收集配置中引用的所有音效 ID（去重，保持出现顺序）
func SoundIDs(cfg *config.GameConfig) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, m := range cfg.Machines {
		if m.Sound != "" && !seen[m.Sound] {
			seen[m.Sound] = true
			ids = append(ids, m.Sound)
		}
	}
	return ids
}

// NewProfileRecorder 把会话结果写入 gdata 战绩
func NewProfileRecorder(sm *game.SaveManager) session.SessionRecorder {
	return session.RecorderFunc(func(_ context.Context, s session.Summary) error {
		newBest, err := sm.RecordSession(s.ID, s.Score)
		if newBest {
			log.Printf("[App] New best score: %d", s.Score)
		}
		return err
	})
}

// openHistory 打开 sqlite 会话历史，失败时返回 nil（不记录历史）
func openHistory(path string) *store.HistoryStore {
	if path == "" {
		return nil
	}
	history, err := store.Open(path)
	if err != nil {
		log.Printf("[App] Warning: session history unavailable: %v", err)
		return nil
	}
	if err := history.Migrate(); err != nil {
		log.Printf("[App] Warning: session history unavailable: %v", err)
		history.Close()
		return nil
	}
	log.Printf("[App] Session history: %s", path)
	return history
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(scenes.WindowWidth, scenes.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端始终全屏）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(fixedStep)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}
	a.settingsManager.SetFullscreen(fullscreen)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return scenes.WindowWidth, scenes.WindowHeight
}

// Close 在程序退出时保存当前场景并关闭会话历史
func (a *App) Close() {
	if !a.sceneManager.SaveCurrent() {
		log.Printf("[App] Warning: failed to save on exit")
	}
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			log.Printf("[App] Warning: failed to close session history: %v", err)
		}
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
