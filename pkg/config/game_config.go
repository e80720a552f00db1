package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/hazardwaves/pkg/types"
)

// 默认值
const (
	DefaultBackgroundInterval = 10.0 // 背景切换间隔（秒）
	DefaultHazardSpeed        = 5.0  // 危险物朝玩家移动的速度（单位/秒）
	DefaultBoundaryZ          = -10.0
	DefaultPlayerHealth       = 10
	DefaultPlayerStrength     = 5
	maxMachineStat            = 10
)

// Vector3 三维向量
type Vector3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// TemplatePart 模板中的一个子部件（相对父节点偏移）
type TemplatePart struct {
	Name   string  `yaml:"name"`
	Offset Vector3 `yaml:"offset"`
}

// HazardTemplate 危险物模板
// Kind 是显式判别字段；默认配置沿用"最后一个模板是机甲"的约定
type HazardTemplate struct {
	Name  string           `yaml:"name"`
	Kind  types.HazardKind `yaml:"kind"`
	Parts []TemplatePart   `yaml:"parts"`
}

// PlayerConfig 玩家初始属性
type PlayerConfig struct {
	Health   int `yaml:"health"`
	Strength int `yaml:"strength"`
}

// GameConfig 波次控制器的全部配置
// 所有时间字段单位为秒
type GameConfig struct {
	Machines           []MachineDefinition  `yaml:"machines"`
	Obstacles          []ObstacleDefinition `yaml:"obstacles"`
	Templates          []HazardTemplate     `yaml:"templates"`
	Backgrounds        []string             `yaml:"backgrounds"`
	SpawnSpread        Vector3              `yaml:"spawnSpread"`
	HazardsPerWave     int                  `yaml:"hazardsPerWave"`
	SpawnDelay         float64              `yaml:"spawnDelay"`
	StartDelay         float64              `yaml:"startDelay"`
	WaveDelay          float64              `yaml:"waveDelay"`
	BackgroundInterval float64              `yaml:"backgroundInterval"`
	HazardSpeed        float64              `yaml:"hazardSpeed"`
	BoundaryZ          float64              `yaml:"boundaryZ"`
	Player             PlayerConfig         `yaml:"player"`
}

// LoadGameConfig 从 YAML 文件加载游戏配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 数据，填充默认值并校验
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var config GameConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	config.ApplyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return &config, nil
}

// ApplyDefaults 为补充字段填充默认值
// 波次相关字段（hazardsPerWave 和各项延迟）不设默认值，0 本身是合法或需要报错的取值
func (c *GameConfig) ApplyDefaults() {
	if c.BackgroundInterval == 0 {
		c.BackgroundInterval = DefaultBackgroundInterval
	}
	if c.HazardSpeed == 0 {
		c.HazardSpeed = DefaultHazardSpeed
	}
	if c.BoundaryZ == 0 {
		c.BoundaryZ = DefaultBoundaryZ
	}
	if c.Player.Health == 0 {
		c.Player.Health = DefaultPlayerHealth
	}
	if c.Player.Strength == 0 {
		c.Player.Strength = DefaultPlayerStrength
	}
}

// maxDelaySeconds 可转换为 time.Duration 的最大秒数（不含）
const maxDelaySeconds = float64(math.MaxInt64) / float64(time.Second)

// Validate 校验配置，失败时返回 *ConfigurationError
func (c *GameConfig) Validate() error {
	if len(c.Templates) == 0 {
		return emptyCatalogError("templates")
	}
	for i, tmpl := range c.Templates {
		if tmpl.Kind != types.HazardMachine && tmpl.Kind != types.HazardObstacle {
			return newConfigError(fmt.Sprintf("templates[%d].kind", i), "template %q has no kind (expected obstacle or machine)", tmpl.Name)
		}
	}

	// 两个目录都必须非空，与模板是否引用无关
	if len(c.Machines) == 0 {
		return emptyCatalogError("machines")
	}
	if len(c.Obstacles) == 0 {
		return emptyCatalogError("obstacles")
	}

	for i, m := range c.Machines {
		if m.Health < 0 || m.Health > maxMachineStat {
			return newConfigError(fmt.Sprintf("machines[%d].health", i), "must be between 0 and %d, got %d", maxMachineStat, m.Health)
		}
		if m.Strength < 0 || m.Strength > maxMachineStat {
			return newConfigError(fmt.Sprintf("machines[%d].strength", i), "must be between 0 and %d, got %d", maxMachineStat, m.Strength)
		}
	}

	if c.HazardsPerWave < 1 {
		return newConfigError("hazardsPerWave", "must be >= 1, got %d", c.HazardsPerWave)
	}

	delays := []struct {
		field string
		value float64
	}{
		{"spawnDelay", c.SpawnDelay},
		{"startDelay", c.StartDelay},
		{"waveDelay", c.WaveDelay},
	}
	for _, d := range delays {
		if err := validateDelay(d.field, d.value); err != nil {
			return err
		}
	}
	// 两个延迟都为 0 时一次 Update 会无限生成
	if c.SpawnDelay == 0 && c.WaveDelay == 0 {
		return newConfigError("waveDelay", "spawnDelay and waveDelay cannot both be 0")
	}

	if err := validateDelay("backgroundInterval", c.BackgroundInterval); err != nil {
		return err
	}
	if c.BackgroundInterval <= 0 {
		return newConfigError("backgroundInterval", "must be > 0, got %g", c.BackgroundInterval)
	}

	finite := []struct {
		field string
		value float64
	}{
		{"spawnSpread.x", c.SpawnSpread.X},
		{"spawnSpread.y", c.SpawnSpread.Y},
		{"spawnSpread.z", c.SpawnSpread.Z},
		{"hazardSpeed", c.HazardSpeed},
		{"boundaryZ", c.BoundaryZ},
	}
	for _, f := range finite {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return newConfigError(f.field, "must be a finite number, got %g", f.value)
		}
	}
	if c.SpawnSpread.X < 0 {
		return newConfigError("spawnSpread.x", "must be >= 0, got %g", c.SpawnSpread.X)
	}
	if c.HazardSpeed < 0 {
		return newConfigError("hazardSpeed", "must be >= 0, got %g", c.HazardSpeed)
	}

	return nil
}

// validateDelay 延迟必须是有限、非负且能表示为 time.Duration 的秒数
func validateDelay(field string, seconds float64) error {
	switch {
	case math.IsNaN(seconds) || math.IsInf(seconds, 0):
		return newConfigError(field, "must be a finite number, got %g", seconds)
	case seconds < 0:
		return newConfigError(field, "must be >= 0, got %g", seconds)
	case seconds >= maxDelaySeconds:
		return newConfigError(field, "must be < %g seconds, got %g", maxDelaySeconds, seconds)
	}
	return nil
}

// SpawnDelayDuration 每次生成后的等待时间
func (c *GameConfig) SpawnDelayDuration() time.Duration { return Seconds(c.SpawnDelay) }

// StartDelayDuration 第一波之前的等待时间
func (c *GameConfig) StartDelayDuration() time.Duration { return Seconds(c.StartDelay) }

// WaveDelayDuration 每波结束后的等待时间
func (c *GameConfig) WaveDelayDuration() time.Duration { return Seconds(c.WaveDelay) }

// BackgroundIntervalDuration 背景切换间隔
func (c *GameConfig) BackgroundIntervalDuration() time.Duration {
	return Seconds(c.BackgroundInterval)
}

// Seconds 将秒（浮点）转换为 time.Duration，按纳秒四舍五入
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
