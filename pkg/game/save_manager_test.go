package game

import "testing"

// TestSaveManagerNilGdata 降级模式：只在内存中记录
func TestSaveManagerNilGdata(t *testing.T) {
	sm := NewSaveManager(nil)

	newBest, err := sm.RecordSession("s1", 40)
	if err != nil {
		t.Fatalf("RecordSession error: %v", err)
	}
	if !newBest {
		t.Error("first session should set the best score")
	}
	if sm.BestScore() != 40 {
		t.Errorf("BestScore = %d, want 40", sm.BestScore())
	}
}

func TestSaveManagerRecordSession(t *testing.T) {
	tests := []struct {
		name     string
		scores   []int
		wantBest int
		lastBest bool
	}{
		{"improving", []int{10, 20}, 20, true},
		{"worse second", []int{30, 5}, 30, false},
		{"negative first", []int{-5}, -5, true},
		{"equal is not new best", []int{7, 7}, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSaveManager(nil)
			var newBest bool
			for i, s := range tt.scores {
				newBest, _ = sm.RecordSession(string(rune('a'+i)), s)
			}
			rec := sm.GetRecord()
			if rec.BestScore != tt.wantBest {
				t.Errorf("BestScore = %d, want %d", rec.BestScore, tt.wantBest)
			}
			if rec.SessionsPlayed != len(tt.scores) {
				t.Errorf("SessionsPlayed = %d, want %d", rec.SessionsPlayed, len(tt.scores))
			}
			if newBest != tt.lastBest {
				t.Errorf("last newBest = %v, want %v", newBest, tt.lastBest)
			}
		})
	}
}

// TestSaveManagerPersistence 记录写入 gdata 后可被新实例读取
func TestSaveManagerPersistence(t *testing.T) {
	manager := newTestGdataManager(t, "hazardwaves_test_save")

	sm := NewSaveManager(manager)
	if _, err := sm.RecordSession("first", 12); err != nil {
		t.Fatalf("RecordSession error: %v", err)
	}
	if _, err := sm.RecordSession("second", 8); err != nil {
		t.Fatalf("RecordSession error: %v", err)
	}

	reloaded := NewSaveManager(manager)
	rec := reloaded.GetRecord()
	if rec.BestScore != 12 || rec.SessionsPlayed != 2 || rec.LastScore != 8 || rec.LastSessionID != "second" {
		t.Errorf("unexpected reloaded record: %+v", rec)
	}
}

func TestSaveManagerCorruptedData(t *testing.T) {
	manager := newTestGdataManager(t, "hazardwaves_test_corrupt")
	if err := manager.SaveObjectProp(profileObject, profileProperty, []byte("bestScore: [oops")); err != nil {
		t.Fatalf("failed to write corrupted data: %v", err)
	}

	sm := NewSaveManager(manager)
	if sm.BestScore() != 0 {
		t.Errorf("corrupted profile should start fresh, got best %d", sm.BestScore())
	}
	if err := sm.Load(); err == nil {
		t.Error("Load should report the corrupted profile")
	}
}
