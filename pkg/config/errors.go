package config

import (
	"errors"
	"fmt"
)

// ErrEmptyCatalog 目录（模板/机甲/障碍物）为空
var ErrEmptyCatalog = errors.New("catalog is empty")

// ConfigurationError 配置校验失败
// 会话启动前返回，调用方可以用 errors.As 匹配
type ConfigurationError struct {
	Field  string // 出错的配置字段（YAML 键名）
	Reason string // 人类可读的原因
	Err    error  // 可选的底层错误（例如 ErrEmptyCatalog）
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func newConfigError(field, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func emptyCatalogError(field string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: "must not be empty", Err: ErrEmptyCatalog}
}
