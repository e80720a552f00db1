package systems

import (
	"testing"
	"time"

	"github.com/decker502/hazardwaves/pkg/config"
	"github.com/decker502/hazardwaves/pkg/ecs"
	"github.com/decker502/hazardwaves/pkg/game"
)

func newBackgroundFixture(images []string, interval time.Duration) (*BackgroundCycleSystem, *game.GameState) {
	gs := game.NewGameState(config.PlayerConfig{Health: 10})
	s := NewBackgroundCycleSystem(ecs.NewEntityManager(), gs, images, interval)
	s.Start()
	return s, gs
}

// TestBackgroundCycle_WrapsAfterCatalogSize k 张背景时，经过 k 个间隔回到索引 0
func TestBackgroundCycle_WrapsAfterCatalogSize(t *testing.T) {
	for k := 1; k <= 4; k++ {
		images := make([]string, k)
		for i := range images {
			images[i] = string(rune('a' + i))
		}
		s, gs := newBackgroundFixture(images, 10*time.Second)

		visited := map[int]bool{0: true}
		for tick := 1; tick <= k; tick++ {
			s.Update(10)
			if gs.BackgroundIndex < 0 || gs.BackgroundIndex >= k {
				t.Fatalf("k=%d: index %d out of range", k, gs.BackgroundIndex)
			}
			visited[gs.BackgroundIndex] = true
		}
		if gs.BackgroundIndex != 0 {
			t.Errorf("k=%d: index after %d ticks = %d, want 0", k, k, gs.BackgroundIndex)
		}
		if len(visited) != k {
			t.Errorf("k=%d: visited %d distinct backgrounds, want %d", k, len(visited), k)
		}
	}
}

func TestBackgroundCycle_Timing(t *testing.T) {
	s, gs := newBackgroundFixture([]string{"bg_a", "bg_b", "bg_c"}, 10*time.Second)

	for i := 0; i < 599; i++ {
		s.Update(1.0 / 60.0)
	}
	if gs.BackgroundIndex != 0 {
		t.Fatalf("switched before the interval elapsed")
	}
	s.Update(1.0 / 60.0)
	if gs.BackgroundIndex != 1 {
		t.Errorf("index = %d after 10s, want 1", gs.BackgroundIndex)
	}

	// 一次大的 deltaTime 会连续切换
	s.Update(20)
	if gs.BackgroundIndex != 0 {
		t.Errorf("index = %d after 30s, want 0", gs.BackgroundIndex)
	}

	if img, ok := s.CurrentImage(); !ok || img != "bg_a" {
		t.Errorf("CurrentImage = (%q, %v), want bg_a", img, ok)
	}
}

// TestBackgroundCycle_EmptyCatalog 没有背景时不做任何事
func TestBackgroundCycle_EmptyCatalog(t *testing.T) {
	s, gs := newBackgroundFixture(nil, 10*time.Second)
	for i := 0; i < 5; i++ {
		s.Update(10)
	}
	if gs.BackgroundIndex != 0 {
		t.Errorf("index = %d, want 0", gs.BackgroundIndex)
	}
	if _, ok := s.CurrentImage(); ok {
		t.Error("CurrentImage should report no background")
	}
}

func TestBackgroundCycle_StopAndZeroInterval(t *testing.T) {
	s, gs := newBackgroundFixture([]string{"a", "b"}, 10*time.Second)
	s.Stop()
	s.Update(30)
	if gs.BackgroundIndex != 0 {
		t.Error("stopped cycler must not advance")
	}

	z, zgs := newBackgroundFixture([]string{"a", "b"}, 0)
	z.Update(30)
	if zgs.BackgroundIndex != 0 {
		t.Error("zero interval must not advance")
	}
}
