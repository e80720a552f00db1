package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/decker502/hazardwaves/pkg/session"
)

func testStore(t *testing.T) *HistoryStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func summaryAt(id string, score int, ended time.Time) session.Summary {
	return session.Summary{
		ID:             id,
		StartedAt:      ended.Add(-time.Minute),
		EndedAt:        ended,
		Score:          score,
		WavesReached:   3,
		HazardsSpawned: 6,
		PlayerHealth:   4,
	}
}

func TestRecordAndGet(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	ended := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	if err := s.RecordSession(ctx, summaryAt("a", 30, ended)); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	got, err := s.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Score != 30 || got.WavesReached != 3 || got.HazardsSpawned != 6 || got.PlayerHealth != 4 {
		t.Errorf("got %+v", got)
	}
	if !got.EndedAt.Equal(ended) {
		t.Errorf("EndedAt = %v, want %v", got.EndedAt, ended)
	}
	if got.Duration() != time.Minute {
		t.Errorf("Duration = %v, want 1m", got.Duration())
	}
}

func TestGetMissing(t *testing.T) {
	s := testStore(t)
	_, err := s.Get(context.Background(), "nope")
	if !IsNotFound(err) {
		t.Errorf("Get missing error = %v, want not found", err)
	}
}

func TestRecordAssignsID(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	if err := s.RecordSession(ctx, session.Summary{Score: 1}); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestRecentAndBestScore(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, ok, err := s.BestScore(ctx); err != nil || ok {
		t.Fatalf("BestScore on empty store = ok %v, err %v", ok, err)
	}

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, score := range []int{10, 50, 20} {
		id := string(rune('a' + i))
		if err := s.RecordSession(ctx, summaryAt(id, score, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("RecordSession %s: %v", id, err)
		}
	}

	recent, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != "c" || recent[1].ID != "b" {
		t.Errorf("Recent = %+v, want [c b]", recent)
	}

	best, ok, err := s.BestScore(ctx)
	if err != nil || !ok || best != 50 {
		t.Errorf("BestScore = %d, %v, %v; want 50", best, ok, err)
	}

	if got, _ := s.Recent(ctx, 0); got != nil {
		t.Errorf("Recent(0) = %v, want nil", got)
	}
}

func TestRecordSameIDOverwrites(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	ended := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	_ = s.RecordSession(ctx, summaryAt("x", 1, ended))
	if err := s.RecordSession(ctx, summaryAt("x", 9, ended)); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	n, _ := s.Count(ctx)
	got, _ := s.Get(ctx, "x")
	if n != 1 || got.Score != 9 {
		t.Errorf("count=%d score=%d, want 1 and 9", n, got.Score)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := testStore(t)
	if err := s.Migrate(); err != nil {
		t.Errorf("second Migrate: %v", err)
	}
}
