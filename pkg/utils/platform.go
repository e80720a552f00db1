//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 1 时桌面端按移动端方式运行（用于本地调试）
const MobileEmulateEnv = "HAZARDWAVES_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
