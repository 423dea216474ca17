package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/deadshelf/pkg/app"
	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "输出详细日志")
	level := flag.String("level", "", "要加载的关卡ID（data/levels 下的文件名）")
	flag.Parse()

	// 必须在任何配置加载之前初始化
	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Level:   *level,
	})
	if err != nil {
		log.Fatalf("启动失败: %v", err)
	}
	defer game.Shutdown()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Dead Shelf")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
