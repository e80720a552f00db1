package config

import "github.com/decker502/hazardwaves/pkg/types"

// HazardDefinition 危险物定义
// 每个生成的危险物实体都持有恰好一个定义
type HazardDefinition interface {
	Kind() types.HazardKind
	DisplayName() string
	ImageRef() string
}

// MachineDefinition 敌方机甲定义
type MachineDefinition struct {
	Image     string `yaml:"image"`    // 贴图资源 ID
	RangeFeet int    `yaml:"range"`    // 射程（英尺）
	Health    int    `yaml:"health"`   // 0-10
	Strength  int    `yaml:"strength"` // 0-10，撞击玩家时扣除的生命
	Name      string `yaml:"name"`
	Cost      int    `yaml:"cost"`
	Sound     string `yaml:"sound"` // 射击/撞击音效资源 ID
}

func (d *MachineDefinition) Kind() types.HazardKind { return types.HazardMachine }
func (d *MachineDefinition) DisplayName() string    { return d.Name }
func (d *MachineDefinition) ImageRef() string       { return d.Image }

// ObstacleDefinition 普通障碍物定义
// Damage 为带符号的生命变化：负数伤害玩家，正数治疗玩家
type ObstacleDefinition struct {
	Image    string `yaml:"image"`
	Damage   int    `yaml:"damage"`
	Strength int    `yaml:"strength"` // 力量变化（带符号）
	Money    int    `yaml:"money"`    // 碰撞后获得的分数
	Name     string `yaml:"name"`
}

func (d *ObstacleDefinition) Kind() types.HazardKind { return types.HazardObstacle }
func (d *ObstacleDefinition) DisplayName() string    { return d.Name }
func (d *ObstacleDefinition) ImageRef() string       { return d.Image }
