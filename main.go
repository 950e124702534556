package main

import (
	"flag"
	"log"

	"github.com/decker502/trackswitch/pkg/app"
	"github.com/decker502/trackswitch/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	level := flag.String("level", "", "level id to load (default \"1\")")
	flag.Parse()

	game, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Level:   *level,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
