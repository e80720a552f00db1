package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/hazardwaves/pkg/config"
	"github.com/decker502/hazardwaves/pkg/embedded"
	"github.com/decker502/hazardwaves/pkg/game"
	"github.com/decker502/hazardwaves/pkg/session"
	"github.com/decker502/hazardwaves/pkg/types"
)

const testGameYAML = `
machines:
  - { name: Raider, image: machine_raider, health: 6, strength: 3, sound: laser }
  - { name: Lancer, image: machine_lancer, health: 8, strength: 5, sound: laser }
  - { name: Drone, image: machine_drone, health: 2, strength: 1 }
obstacles:
  - { name: Rock, image: rock_small, damage: -1, money: 10 }
templates:
  - { name: asteroid, kind: obstacle }
  - { name: raider, kind: machine }
backgrounds: [bg_a, bg_b]
spawnSpread: { x: 6, y: 0, z: 16 }
hazardsPerWave: 3
spawnDelay: 0.5
startDelay: 1
waveDelay: 2
`

func TestLoadGameConfig_Embedded(t *testing.T) {
	embedded.Init(fstest.MapFS{}, fstest.MapFS{
		DefaultGameConfigPath: {Data: []byte(testGameYAML)},
	})

	cfg, err := LoadGameConfig("")
	if err != nil {
		t.Fatalf("LoadGameConfig error: %v", err)
	}
	if cfg.HazardsPerWave != 3 {
		t.Errorf("HazardsPerWave = %d, want 3", cfg.HazardsPerWave)
	}
	if last := cfg.Templates[len(cfg.Templates)-1]; last.Kind != types.HazardMachine {
		t.Errorf("last template kind = %s, want machine", last.Kind)
	}
	if cfg.BackgroundInterval != config.DefaultBackgroundInterval {
		t.Errorf("BackgroundInterval = %v, want default", cfg.BackgroundInterval)
	}
}

func TestLoadGameConfig_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte(testGameYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig error: %v", err)
	}
	if len(cfg.Machines) != 3 {
		t.Errorf("Machines = %d, want 3", len(cfg.Machines))
	}

	if _, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSoundIDs(t *testing.T) {
	cfg, err := config.ParseGameConfig([]byte(testGameYAML))
	if err != nil {
		t.Fatalf("ParseGameConfig error: %v", err)
	}
	ids := SoundIDs(cfg)
	if len(ids) != 1 || ids[0] != "laser" {
		t.Errorf("SoundIDs = %v, want [laser]", ids)
	}
}

func TestProfileRecorder(t *testing.T) {
	sm := game.NewSaveManager(nil)
	recorder := NewProfileRecorder(sm)

	for _, score := range []int{20, 50, 30} {
		if err := recorder.RecordSession(context.Background(), session.Summary{ID: "s", Score: score}); err != nil {
			t.Fatalf("RecordSession error: %v", err)
		}
	}

	record := sm.GetRecord()
	if record.BestScore != 50 || record.SessionsPlayed != 3 || record.LastScore != 30 {
		t.Errorf("record = %+v", record)
	}
}

func TestOpenHistory(t *testing.T) {
	if openHistory("") != nil {
		t.Error("empty path should disable history")
	}

	history := openHistory(filepath.Join(t.TempDir(), "history.db"))
	if history == nil {
		t.Fatal("openHistory returned nil for a writable path")
	}
	defer history.Close()

	if err := history.RecordSession(context.Background(), session.Summary{ID: "a", Score: 3}); err != nil {
		t.Errorf("RecordSession error: %v", err)
	}
}
