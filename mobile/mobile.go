//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前先把根目录的
// assets/ 与 data/ 复制到本目录：
//
//	cp -r assets data mobile/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.hazardwaves -o build/android/hazardwaves.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/HazardWaves.xcframework -v ./mobile
package mobile

import (
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/hazardwaves/pkg/app"
	"github.com/decker502/hazardwaves/pkg/embedded"
	"github.com/decker502/hazardwaves/pkg/utils"
)

func init() {
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	// 无法确定应用私有目录时不记录 sqlite 历史，战绩仍通过 gdata 保存
	cfg := app.Config{Verbose: true}
	if dir := utils.StorageDir(); dir != "" {
		cfg.HistoryPath = filepath.Join(dir, "history.db")
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
