package game

import (
	"fmt"

	"github.com/decker502/hazardwaves/pkg/config"
)

// 界面文本
const (
	scoreTextPrefix = "Score: "
	gameOverText    = "Game Over!"
	restartText     = "Press 'R' for Restart"
)

// GameState 单局游戏状态（记分板）
// 每次开始会话时创建，重新开始时整体丢弃并重建，不是全局单例
type GameState struct {
	Score           int  // 当前分数，可以为负
	GameOver        bool // 游戏结束标志，只会由 false 变为 true
	RestartPending  bool // 已显示重新开始提示，等待玩家按 R
	BackgroundIndex int  // 当前背景索引

	// 玩家属性（由障碍物/机甲碰撞结算修改）
	PlayerHealth   int
	PlayerStrength int

	scoreText    string
	gameOverText string
	restartText  string
}

// NewGameState 创建新的单局状态
func NewGameState(player config.PlayerConfig) *GameState {
	gs := &GameState{
		PlayerHealth:   player.Health,
		PlayerStrength: player.Strength,
	}
	gs.refreshScoreText()
	return gs
}

// AddScore 增加（或减少）分数，不做上下限截断
func (gs *GameState) AddScore(delta int) {
	gs.Score += delta
	gs.refreshScoreText()
}

// TriggerGameOver 设置游戏结束标志
// 幂等：重复调用不会改变状态。返回值表示本次调用是否真正触发
func (gs *GameState) TriggerGameOver() bool {
	if gs.GameOver {
		return false
	}
	gs.GameOver = true
	gs.gameOverText = gameOverText
	return true
}

// MarkRestartPending 显示重新开始提示
func (gs *GameState) MarkRestartPending() {
	gs.RestartPending = true
	gs.restartText = restartText
}

// ApplyHealthDelta 修改玩家生命值，返回修改后是否已死亡
func (gs *GameState) ApplyHealthDelta(delta int) bool {
	gs.PlayerHealth += delta
	return gs.PlayerHealth <= 0
}

// ApplyStrengthDelta 修改玩家力量值
func (gs *GameState) ApplyStrengthDelta(delta int) {
	gs.PlayerStrength += delta
}

// ScoreText 返回分数文本，如 "Score: 12"
func (gs *GameState) ScoreText() string {
	return gs.scoreText
}

// GameOverText 游戏结束后返回 "Game Over!"，否则为空
func (gs *GameState) GameOverText() string {
	return gs.gameOverText
}

// RestartText 等待重新开始时返回提示文本，否则为空
func (gs *GameState) RestartText() string {
	return gs.restartText
}

func (gs *GameState) refreshScoreText() {
	gs.scoreText = fmt.Sprintf("%s%d", scoreTextPrefix, gs.Score)
}
