// check_config 校验 data/game.yaml 和所有关卡布局
//
// 用法:
//
//	go run ./cmd/check_config -data .
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/deadshelf/pkg/embedded"
	"github.com/decker502/deadshelf/pkg/session"
)

var dataDir = flag.String("data", ".", "包含 data/ 目录的根路径")

func main() {
	flag.Parse()
	embedded.Init(os.DirFS(*dataDir))

	failed := false

	gameConfig, err := embedded.LoadGameConfig()
	if err != nil {
		fmt.Printf("✗ %s: %v\n", embedded.GameConfigPath, err)
		os.Exit(1)
	}
	fmt.Printf("✓ %s\n", embedded.GameConfigPath)

	ids, err := embedded.LevelIDs()
	if err != nil {
		fmt.Printf("✗ list levels: %v\n", err)
		os.Exit(1)
	}
	if len(ids) == 0 {
		fmt.Println("✗ no levels found under data/levels")
		os.Exit(1)
	}

	for _, id := range ids {
		layout, err := embedded.LoadLevel(id)
		if err != nil {
			fmt.Printf("✗ %s: %v\n", id, err)
			failed = true
			continue
		}

		// 实际创建一次会话，确认实体和系统都能搭建
		s, err := session.New(session.Config{Game: gameConfig, Level: layout, Seed: 1})
		if err != nil {
			fmt.Printf("✗ %s: %v\n", id, err)
			failed = true
			continue
		}
		s.Close()
		fmt.Printf("✓ %s: %d spawn points, %d bookshelves, %d obstacles\n",
			id, len(layout.SpawnPoints), len(layout.Bookshelves), len(layout.Obstacles))
	}

	if failed {
		os.Exit(1)
	}
}
