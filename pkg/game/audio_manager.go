package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音效管理器
// 通过资源 ID 播放音效，音量与开关取自 SettingsManager
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager         // 可为 nil，使用默认音量
	soundPlayers    map[string]*audio.Player // 资源ID -> 播放器
	missing         map[string]bool          // 加载失败的资源ID，避免每帧重复加载
}

// NewAudioManager 创建音效管理器
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
	}
}

// PlaySound 播放音效，返回是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if soundID == "" {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.GetSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SetSoundVolume 设置音效音量并应用到已缓存的播放器
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(am.GetSoundVolume())
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}

// PreloadSounds 预加载音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	loaded := 0
	for _, soundID := range soundIDs {
		if am.getSoundPlayer(soundID) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
}

func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.missing[soundID] || am.resourceManager == nil {
		return nil
	}

	player, err := am.resourceManager.LoadSoundByID(soundID)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		am.missing[soundID] = true
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}
