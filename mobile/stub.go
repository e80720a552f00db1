//go:build !mobile

// 普通构建时 mobile.go 与 embed.go 不参与编译，
// 这里只保留 Dummy 让包在桌面端也能被引用
package mobile

// Dummy 是一个空导出函数
func Dummy() {}
