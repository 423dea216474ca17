// simulate 无头运行若干局，由内置机器人操作，输出每局结算
//
// 用法:
//
//	go run ./cmd/simulate -level library -runs 5 -duration 300
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/deadshelf/pkg/embedded"
	"github.com/decker502/deadshelf/pkg/game"
	"github.com/decker502/deadshelf/pkg/session"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	dataDir    = flag.String("data", ".", "包含 data/ 目录的根路径")
	levelID    = flag.String("level", "library", "关卡ID")
	seed       = flag.Int64("seed", 1, "第一局的随机种子，后续每局加一")
	runs       = flag.Int("runs", 1, "模拟局数")
	duration   = flag.Float64("duration", 300, "每局最长时间（秒）")
	fps        = flag.Int("fps", 30, "模拟帧率")
	combatOnly = flag.Bool("combat-only", false, "机器人只战斗，不整理书籍")
)

// collector 收集每局结算
type collector struct {
	summaries []game.RoundSummary
}

func (c *collector) ReportRound(s game.RoundSummary) {
	c.summaries = append(c.summaries, s)
	log.Printf("[Simulate] %s", s.String())
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if *fps <= 0 || *runs <= 0 || *duration <= 0 {
		fmt.Fprintln(os.Stderr, "fps, runs and duration must be positive")
		os.Exit(2)
	}

	embedded.Init(os.DirFS(*dataDir))
	gameConfig, err := embedded.LoadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load game config: %v\n", err)
		os.Exit(1)
	}
	layout, err := embedded.LoadLevel(*levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load level: %v\n", err)
		os.Exit(1)
	}

	results := &collector{}
	dt := 1.0 / float64(*fps)
	for i := 0; i < *runs; i++ {
		s, err := session.New(session.Config{
			Game:     gameConfig,
			Level:    layout,
			Reporter: results,
			Seed:     *seed + int64(i),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "create session: %v\n", err)
			os.Exit(1)
		}

		bot := session.NewBot(s)
		bot.ShelveBooks = !*combatOnly
		for s.ElapsedTime() < *duration && !s.Over() {
			bot.Step(dt)
			s.Update(dt)
		}
		s.Finish()
		s.Close()
	}

	out, err := yaml.Marshal(results.summaries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode results: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
