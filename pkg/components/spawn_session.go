package components

import "time"

// SpawnPhase 生成循环当前所处的阶段
type SpawnPhase int

const (
	// SpawnPhaseIdle 尚未启动
	SpawnPhaseIdle SpawnPhase = iota
	// SpawnPhaseStartDelay 第一波之前的等待
	SpawnPhaseStartDelay
	// SpawnPhaseSpawnDelay 两次生成之间的等待
	SpawnPhaseSpawnDelay
	// SpawnPhaseWaveDelay 每波结束后的等待，结束时检查游戏结束标志
	SpawnPhaseWaveDelay
	// SpawnPhaseFinished 已退出（游戏结束或被取消），终态
	SpawnPhaseFinished
)

func (p SpawnPhase) String() string {
	switch p {
	case SpawnPhaseIdle:
		return "Idle"
	case SpawnPhaseStartDelay:
		return "StartDelay"
	case SpawnPhaseSpawnDelay:
		return "SpawnDelay"
	case SpawnPhaseWaveDelay:
		return "WaveDelay"
	case SpawnPhaseFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// SpawnSessionComponent 生成循环的会话状态
// 由 WaveSpawnSystem 读写；计时器是会话实体上的数据，重启时随实体世界一起丢弃
//
// 时间说明：
// Remaining 可以在一帧内降到负数，溢出的部分会计入下一段等待，
// 因此较大的 deltaTime 也不会丢失生成次数
type SpawnSessionComponent struct {
	// Phase 当前阶段
	Phase SpawnPhase

	// Remaining 当前阶段剩余等待时间
	Remaining time.Duration

	// WaveIndex 当前波次索引（0-based）
	WaveIndex int

	// SpawnedInWave 当前波次已生成数量
	SpawnedInWave int

	// TotalSpawned 本次会话累计生成数量
	TotalSpawned int

	// RestartAvailable 生成循环已因游戏结束退出，可以重新开始
	RestartAvailable bool
}
