package types

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestHazardKindFromString(t *testing.T) {
	tests := []struct {
		input string
		want  HazardKind
	}{
		{"obstacle", HazardObstacle},
		{"machine", HazardMachine},
		{"enemy", HazardMachine},
		{"ship", HazardMachine},
		{"comet", HazardUnknown},
		{"", HazardUnknown},
	}

	for _, tt := range tests {
		if got := HazardKindFromString(tt.input); got != tt.want {
			t.Errorf("HazardKindFromString(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHazardKindYAML(t *testing.T) {
	var doc struct {
		Kinds []HazardKind `yaml:"kinds"`
	}
	if err := yaml.Unmarshal([]byte("kinds: [obstacle, machine]"), &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(doc.Kinds) != 2 || doc.Kinds[0] != HazardObstacle || doc.Kinds[1] != HazardMachine {
		t.Errorf("unexpected kinds: %v", doc.Kinds)
	}

	if err := yaml.Unmarshal([]byte("kinds: [asteroid]"), &doc); err == nil {
		t.Error("expected error for unknown kind")
	}

	out, err := yaml.Marshal(HazardMachine)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != "machine\n" {
		t.Errorf("marshal = %q, want %q", out, "machine\n")
	}
}

func TestLayerForKind(t *testing.T) {
	if LayerForKind(HazardMachine) != LayerBackground {
		t.Error("machines should live on the background layer")
	}
	if LayerForKind(HazardObstacle) != LayerObstacle {
		t.Error("obstacles should live on the obstacle layer")
	}
	if LayerBackground.Collides() {
		t.Error("background layer must not collide")
	}
	if !LayerObstacle.Collides() {
		t.Error("obstacle layer must collide")
	}
}
