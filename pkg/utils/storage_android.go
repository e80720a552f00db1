//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 gdata 在 Android 上使用的 saves 目录存在并可写
// gdata 使用 /data/data/{package}/ 但不会预先创建子目录，需要在 gdata.Open 之前调用
func EnsureStorageDir() error {
	dir := StorageDir()
	if dir == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	savesDir := filepath.Join(dir, "saves")
	if err := os.MkdirAll(savesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", savesDir, err)
	}

	probe := filepath.Join(savesDir, ".write_test")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", savesDir, err)
	}
	return os.Remove(probe)
}

// StorageDir 返回 /data/data/{package}，检测失败时返回空字符串
func StorageDir() string {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	// cmdline 以 NUL 分隔，第一段是包名
	if i := bytes.IndexByte(cmdline, 0); i >= 0 {
		cmdline = cmdline[:i]
	}
	pkg := string(bytes.TrimSpace(cmdline))
	if pkg == "" {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}
