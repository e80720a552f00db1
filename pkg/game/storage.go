package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "hazardwaves"

// OpenStorage 打开跨平台存储
// 失败时返回 nil，调用方进入仅内存模式
func OpenStorage(appName string) *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[Storage] Warning: gdata unavailable: %v (memory-only mode)", err)
		return nil
	}
	return manager
}
