package game

import "testing"

func TestParseResourceConfig(t *testing.T) {
	data := []byte(`
basePath: assets
images:
  machine_raider: images/machines/raider
  rock_small: images/rocks/small.jpg
sounds:
  laser: sounds/laser.wav
  boom: sounds/boom
`)
	cfg, err := ParseResourceConfig(data)
	if err != nil {
		t.Fatalf("ParseResourceConfig failed: %v", err)
	}

	tests := []struct {
		name   string
		lookup func(string) (string, bool)
		id     string
		want   string
		found  bool
	}{
		{"image default extension", cfg.ImagePath, "machine_raider", "assets/images/machines/raider.png", true},
		{"image explicit extension", cfg.ImagePath, "rock_small", "assets/images/rocks/small.jpg", true},
		{"sound explicit extension", cfg.SoundPath, "laser", "assets/sounds/laser.wav", true},
		{"sound default extension", cfg.SoundPath, "boom", "assets/sounds/boom.ogg", true},
		{"missing image", cfg.ImagePath, "nope", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.lookup(tt.id)
			if ok != tt.found || got != tt.want {
				t.Errorf("lookup(%q) = (%q, %v), want (%q, %v)", tt.id, got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestParseResourceConfig_Empty(t *testing.T) {
	cfg, err := ParseResourceConfig([]byte(""))
	if err != nil {
		t.Fatalf("ParseResourceConfig failed: %v", err)
	}
	if _, ok := cfg.ImagePath("anything"); ok {
		t.Error("empty config should not resolve images")
	}
}

func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		base, rel, want string
	}{
		{"assets", "images/a.png", "assets/images/a.png"},
		{"assets", "/images/a.png", "assets/images/a.png"},
		{"", "images/a.png", "images/a.png"},
	}
	for _, tt := range tests {
		if got := buildFullPath(tt.base, tt.rel); got != tt.want {
			t.Errorf("buildFullPath(%q, %q) = %q, want %q", tt.base, tt.rel, got, tt.want)
		}
	}
}
