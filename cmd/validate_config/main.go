// cmd/validate_config/main.go
// 校验游戏配置，可选地离线模拟一局并查看会话历史
//
// 用法：
//
//	go run ./cmd/validate_config --config=data/game.yaml
//	go run ./cmd/validate_config --config=data/game.yaml --simulate=60 --seed=42
//	go run ./cmd/validate_config --history=hazardwaves_history.db
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/hazardwaves/pkg/config"
	"github.com/decker502/hazardwaves/pkg/session"
	"github.com/decker502/hazardwaves/pkg/store"
	"github.com/decker502/hazardwaves/pkg/utils"
)

var (
	configPath  = flag.String("config", "data/game.yaml", "游戏配置文件路径")
	simulate    = flag.Float64("simulate", 0, "离线模拟的秒数（0 表示不模拟）")
	seed        = flag.Uint64("seed", 1, "模拟使用的随机种子")
	historyPath = flag.String("history", "", "打印 sqlite 会话历史")
	recent      = flag.Int("recent", 10, "打印的历史条数")
	verbose     = flag.Bool("verbose", false, "详细日志")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if *historyPath != "" {
		if err := printHistory(*historyPath, *recent); err != nil {
			fmt.Printf("❌ 读取历史失败: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			fmt.Printf("❌ 配置非法: 字段 %s: %s\n", cfgErr.Field, cfgErr.Reason)
		} else {
			fmt.Printf("❌ 加载失败: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("✅ 配置有效: %s\n", *configPath)
	fmt.Printf("   模板 %d 个（最后一个: %s / %s）\n",
		len(cfg.Templates), cfg.Templates[len(cfg.Templates)-1].Name, cfg.Templates[len(cfg.Templates)-1].Kind)
	fmt.Printf("   机甲 %d 个, 障碍物 %d 个, 背景 %d 张\n", len(cfg.Machines), len(cfg.Obstacles), len(cfg.Backgrounds))
	fmt.Printf("   每波 %d 个, spawnDelay=%v, startDelay=%v, waveDelay=%v\n",
		cfg.HazardsPerWave, cfg.SpawnDelayDuration(), cfg.StartDelayDuration(), cfg.WaveDelayDuration())

	if *simulate > 0 {
		if err := runSimulation(cfg, *simulate, *seed); err != nil {
			fmt.Printf("❌ 模拟失败: %v\n", err)
			os.Exit(1)
		}
	}
}

// runSimulation 以固定步长离线运行一局，越界的危险物照常结算
func runSimulation(cfg *config.GameConfig, seconds float64, seed uint64) error {
	var summary session.Summary
	recorder := session.RecorderFunc(func(_ context.Context, s session.Summary) error {
		summary = s
		return nil
	})
	controller, err := session.NewWaveController(session.Options{
		Config:   cfg,
		Random:   utils.NewPRNG(seed),
		Recorder: recorder,
		Verbose:  *verbose,
	})
	if err != nil {
		return err
	}
	if err := controller.Start(); err != nil {
		return err
	}

	const step = 1.0 / 60.0
	for elapsed := 0.0; elapsed < seconds; elapsed += step {
		controller.Update(step)
	}

	if controller.State() == session.StateGameOverPending {
		controller.Close()
		fmt.Printf("✅ 模拟 %.0fs: 游戏结束\n", seconds)
	} else {
		summary = controller.Summary()
		fmt.Printf("✅ 模拟 %.0fs: 仍在进行（%s）\n", seconds, controller.State())
	}
	fmt.Printf("   分数 %d, 生命 %d, 到达第 %d 波, 生成 %d, 结算 %d\n",
		summary.Score, summary.PlayerHealth, summary.WavesReached, summary.HazardsSpawned, summary.HazardsResolved)
	return nil
}

func printHistory(path string, limit int) error {
	history, err := store.Open(path)
	if err != nil {
		return err
	}
	defer history.Close()
	if err := history.Migrate(); err != nil {
		return err
	}

	ctx := context.Background()
	sessions, err := history.Recent(ctx, limit)
	if err != nil {
		return err
	}
	best, ok, err := history.BestScore(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("最近 %d 局:\n", len(sessions))
	for _, s := range sessions {
		fmt.Printf("  %s  %s  分数 %4d  第 %d 波  时长 %v\n",
			s.EndedAt.Local().Format("2006-01-02 15:04"), s.ID, s.Score, s.WavesReached, s.Duration().Round(time.Second))
	}
	if ok {
		fmt.Printf("最高分: %d\n", best)
	}
	return nil
}
