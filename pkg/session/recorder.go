package session

import (
	"context"
	"errors"
	"time"
)

//go:generate go tool mockgen -destination=./mocks/recorder_mock.go -package=mocks . SessionRecorder

// Summary 一局结束后的汇总
type Summary struct {
	ID              string
	StartedAt       time.Time
	EndedAt         time.Time
	Score           int
	WavesReached    int // 到达的波次数（1-based）
	HazardsSpawned  int
	HazardsResolved int
	PlayerHealth    int
}

// Duration 本局时长
func (s Summary) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}

// SessionRecorder 持久化已结束的会话
type SessionRecorder interface {
	RecordSession(ctx context.Context, summary Summary) error
}

// RecorderFunc 将普通函数适配为 SessionRecorder
type RecorderFunc func(ctx context.Context, summary Summary) error

// RecordSession 调用 f
func (f RecorderFunc) RecordSession(ctx context.Context, summary Summary) error {
	return f(ctx, summary)
}

// MultiRecorder 依次调用多个 recorder，全部调用后合并错误
type MultiRecorder []SessionRecorder

// RecordSession 实现 SessionRecorder
func (m MultiRecorder) RecordSession(ctx context.Context, summary Summary) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.RecordSession(ctx, summary); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
