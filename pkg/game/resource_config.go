package game

import (
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// ResourceConfig maps resource IDs to asset paths.
// It defines the structure of data/resources.yaml:
//
//	basePath: assets
//	images:
//	  machine_raider: images/machines/raider
//	sounds:
//	  laser: sounds/laser.wav
type ResourceConfig struct {
	BasePath string            `yaml:"basePath"` // Base path for all resources (e.g., "assets")
	Images   map[string]string `yaml:"images"`   // Image ID -> relative path
	Sounds   map[string]string `yaml:"sounds"`   // Sound ID -> relative path
}

// ParseResourceConfig parses a resource configuration document.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}
	if cfg.Images == nil {
		cfg.Images = make(map[string]string)
	}
	if cfg.Sounds == nil {
		cfg.Sounds = make(map[string]string)
	}
	return &cfg, nil
}

// ImagePath resolves an image ID to its full path.
// Paths without an extension default to PNG.
func (c *ResourceConfig) ImagePath(id string) (string, bool) {
	rel, ok := c.Images[id]
	if !ok {
		return "", false
	}
	return withDefaultExt(buildFullPath(c.BasePath, rel), ".png"), true
}

// SoundPath resolves a sound ID to its full path.
// Paths without an extension default to OGG.
func (c *ResourceConfig) SoundPath(id string) (string, bool) {
	rel, ok := c.Sounds[id]
	if !ok {
		return "", false
	}
	return withDefaultExt(buildFullPath(c.BasePath, rel), ".ogg"), true
}

// buildFullPath combines the base path with a resource's relative path.
// The result always uses forward slashes, as io/fs requires.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return path.Clean(relativePath)
	}
	return path.Join(basePath, relativePath)
}

func withDefaultExt(p, ext string) string {
	if path.Ext(p) == "" {
		return p + ext
	}
	return p
}
