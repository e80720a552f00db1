package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数
// 场景在切换时才创建，避免 game 包依赖 scenes 包
type SceneFactory func() (Scene, error)

// SceneManager 管理当前活动场景，同一时间只有一个场景的 Update/Draw 被调用
type SceneManager struct {
	currentScene Scene
	currentName  string
	factories    map[string]SceneFactory
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[string]SceneFactory),
	}
}

// Register 注册具名场景
func (sm *SceneManager) Register(name string, factory SceneFactory) {
	sm.factories[name] = factory
}

// SwitchTo 创建并切换到具名场景
// 被替换的场景如果实现了 Saveable，会先保存
func (sm *SceneManager) SwitchTo(name string) error {
	factory, ok := sm.factories[name]
	if !ok {
		return fmt.Errorf("scene %q is not registered", name)
	}

	scene, err := factory()
	if err != nil {
		return fmt.Errorf("failed to create scene %q: %w", name, err)
	}

	sm.SaveCurrent()
	sm.currentScene = scene
	sm.currentName = name
	log.Printf("[SceneManager] Switched to scene: %s", name)
	return nil
}

// GetCurrentScene 返回当前活动场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回当前场景名
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// SaveCurrent 让当前场景保存状态（如果支持）
func (sm *SceneManager) SaveCurrent() bool {
	if saveable, ok := sm.currentScene.(Saveable); ok {
		return saveable.SaveOnExit()
	}
	return true
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
