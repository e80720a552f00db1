//go:build !android

package utils

// EnsureStorageDir 非 Android 平台由 gdata 自行创建目录
func EnsureStorageDir() error {
	return nil
}

// StorageDir 应用私有目录，非 Android 平台返回空字符串
func StorageDir() string {
	return ""
}
