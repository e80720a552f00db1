// hazardwaves 桌面端入口
//
// 用法：
//
//	go run . --config=mygame.yaml --seed=42 --verbose
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/hazardwaves/pkg/app"
	"github.com/decker502/hazardwaves/pkg/embedded"
	"github.com/decker502/hazardwaves/pkg/scenes"
)

var (
	configPath  = flag.String("config", "", "游戏配置文件路径（为空使用内置配置）")
	verbose     = flag.Bool("verbose", false, "详细日志")
	seed        = flag.Uint64("seed", 0, "随机种子（0 表示使用当前时间）")
	historyPath = flag.String("history", "hazardwaves_history.db", "sqlite 会话历史文件（为空则不记录）")
)

func main() {
	flag.Parse()

	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ConfigPath:  *configPath,
		Seed:        *seed,
		HistoryPath: *historyPath,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(scenes.WindowWidth, scenes.WindowHeight)
	ebiten.SetWindowTitle("Hazard Waves")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)

	// 窗口关闭：记录已结束的会话并保存设置
	gameApp.Close()

	if runErr != nil {
		log.Fatal(runErr)
	}
}
