// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// HazardKind 危险物的类别判别字段
// 模板通过显式的 kind 字段声明类别，而不是依赖它在目录中的位置
type HazardKind int

const (
	// HazardUnknown 未知类别（配置错误）
	HazardUnknown HazardKind = iota
	// HazardObstacle 普通障碍物：碰撞后影响生命、力量与分数
	HazardObstacle
	// HazardMachine 敌方机甲：带有战斗属性的敌舰
	HazardMachine
)

// hazardKindStringMap 类别到配置字符串的映射
var hazardKindStringMap = map[HazardKind]string{
	HazardObstacle: "obstacle",
	HazardMachine:  "machine",
}

// stringToHazardKindMap 配置字符串到类别的反向映射
var stringToHazardKindMap map[string]HazardKind

func init() {
	stringToHazardKindMap = make(map[string]HazardKind)
	for k, s := range hazardKindStringMap {
		stringToHazardKindMap[s] = k
	}
	// 别名
	stringToHazardKindMap["enemy"] = HazardMachine
	stringToHazardKindMap["ship"] = HazardMachine
}

// String 返回类别的配置字符串表示
func (k HazardKind) String() string {
	if s, ok := hazardKindStringMap[k]; ok {
		return s
	}
	return "unknown"
}

// HazardKindFromString 将配置字符串转换为 HazardKind
func HazardKindFromString(s string) HazardKind {
	if k, ok := stringToHazardKindMap[s]; ok {
		return k
	}
	return HazardUnknown
}

// UnmarshalYAML 实现 yaml.Unmarshaler，允许在配置中写 kind: machine
func (k *HazardKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("hazard kind must be a string: %w", err)
	}
	kind := HazardKindFromString(s)
	if kind == HazardUnknown {
		return fmt.Errorf("unknown hazard kind %q (line %d)", s, value.Line)
	}
	*k = kind
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (k HazardKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}
