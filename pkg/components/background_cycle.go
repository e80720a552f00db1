package components

import "time"

// BackgroundCycleComponent 背景轮换计时器
// 当前背景索引保存在 GameState.BackgroundIndex，这里只存计时数据
type BackgroundCycleComponent struct {
	Images    []string      // 背景贴图资源 ID 列表（只读）
	Interval  time.Duration // 切换间隔
	Remaining time.Duration // 距下一次切换的剩余时间
}
