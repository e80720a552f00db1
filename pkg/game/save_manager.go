package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	profileObject   = "profile"
	profileProperty = "records"
)

// ProfileRecord 跨会话的战绩记录
type ProfileRecord struct {
	BestScore      int    `yaml:"bestScore"`
	SessionsPlayed int    `yaml:"sessionsPlayed"`
	LastScore      int    `yaml:"lastScore"`
	LastSessionID  string `yaml:"lastSessionId"`
}

// SaveManager 战绩存档管理器
// gdataManager 为 nil 时只在内存中记录
type SaveManager struct {
	gdataManager *gdata.Manager
	record       ProfileRecord
}

// NewSaveManager 创建存档管理器并尝试加载已有记录
// 加载失败不是致命错误，记录从零开始
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	sm := &SaveManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to load profile: %v (starting fresh)", err)
	}
	return sm
}

// Load 从 gdata 加载记录
func (sm *SaveManager) Load() error {
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(profileObject, profileProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(profileObject, profileProperty)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	var record ProfileRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	sm.record = record
	log.Printf("[SaveManager] Profile loaded: best=%d sessions=%d", record.BestScore, record.SessionsPlayed)
	return nil
}

// Save 保存记录到 gdata
func (sm *SaveManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&sm.record)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(profileObject, profileProperty, data); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// RecordSession 记录一局结束的成绩并立即保存
// 返回是否刷新了最高分
func (sm *SaveManager) RecordSession(sessionID string, score int) (bool, error) {
	newBest := sm.record.SessionsPlayed == 0 || score > sm.record.BestScore
	if newBest {
		sm.record.BestScore = score
	}
	sm.record.SessionsPlayed++
	sm.record.LastScore = score
	sm.record.LastSessionID = sessionID

	if err := sm.Save(); err != nil {
		return newBest, err
	}
	return newBest, nil
}

// GetRecord 返回当前记录的副本
func (sm *SaveManager) GetRecord() ProfileRecord {
	return sm.record
}

// BestScore 返回最高分
func (sm *SaveManager) BestScore() int {
	return sm.record.BestScore
}
