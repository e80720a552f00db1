// Package store 使用 SQLite 保存已结束的会话记录
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/decker502/hazardwaves/pkg/session"
)

// HistoryStore 每个已结束的会话一行
// 实现 session.SessionRecorder，可并发使用
type HistoryStore struct {
	db *sql.DB
}

var _ session.SessionRecorder = (*HistoryStore)(nil)

// Open 打开（不存在时创建）dbPath 处的历史数据库
// 首次使用前需调用 Migrate
func Open(dbPath string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: enable WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set busy timeout: %w", err)
	}
	return &HistoryStore{db: db}, nil
}

// NewFromDB 包装已有的 sql.DB
func NewFromDB(db *sql.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Migrate 按需创建表结构
func (s *HistoryStore) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			started_at DATETIME NOT NULL,
			ended_at DATETIME NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			waves_reached INTEGER NOT NULL DEFAULT 0,
			hazards_spawned INTEGER NOT NULL DEFAULT 0,
			hazards_resolved INTEGER NOT NULL DEFAULT 0,
			player_health INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ended ON sessions(ended_at)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_score ON sessions(score)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("store: migrate: %w", err)
		}
	}
	return nil
}

// Close 关闭数据库
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// RecordSession 写入一条已结束的会话，相同 ID 再次写入会覆盖旧记录
func (s *HistoryStore) RecordSession(ctx context.Context, summary session.Summary) error {
	if summary.ID == "" {
		summary.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO sessions
			(id, started_at, ended_at, score, waves_reached, hazards_spawned, hazards_resolved, player_health)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.ID, summary.StartedAt.UTC(), summary.EndedAt.UTC(), summary.Score,
		summary.WavesReached, summary.HazardsSpawned, summary.HazardsResolved, summary.PlayerHealth,
	)
	if err != nil {
		return fmt.Errorf("store: record session %s: %w", summary.ID, err)
	}
	return nil
}

// Get 按 ID 读取会话，不存在时返回 sql.ErrNoRows
func (s *HistoryStore) Get(ctx context.Context, id string) (session.Summary, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, ended_at, score, waves_reached, hazards_spawned, hazards_resolved, player_health
		 FROM sessions WHERE id = ?`, id)
	sum, err := scanSummary(row)
	if err != nil {
		return session.Summary{}, fmt.Errorf("store: get session %s: %w", id, err)
	}
	return sum, nil
}

// Recent 返回最多 limit 条会话，最近结束的在前
func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]session.Summary, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, ended_at, score, waves_reached, hazards_spawned, hazards_resolved, player_health
		 FROM sessions ORDER BY ended_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: recent sessions: %w", err)
	}
	defer rows.Close()

	var out []session.Summary
	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("store: scan session: %w", err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: recent sessions: %w", err)
	}
	return out, nil
}

// BestScore 返回最高分，没有记录时 ok=false
func (s *HistoryStore) BestScore(ctx context.Context) (int, bool, error) {
	var best sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(score) FROM sessions`).Scan(&best); err != nil {
		return 0, false, fmt.Errorf("store: best score: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// Count 返回已记录的会话数
func (s *HistoryStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count sessions: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(r scanner) (session.Summary, error) {
	var sum session.Summary
	var started, ended time.Time
	err := r.Scan(&sum.ID, &started, &ended, &sum.Score,
		&sum.WavesReached, &sum.HazardsSpawned, &sum.HazardsResolved, &sum.PlayerHealth)
	if err != nil {
		return session.Summary{}, err
	}
	sum.StartedAt = started
	sum.EndedAt = ended
	return sum, nil
}

// IsNotFound 判断 err 是否表示会话不存在
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
