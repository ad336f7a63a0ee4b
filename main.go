package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/hexfolio/app"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (hot reload prefabs/camera.yaml)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	contentURL := flag.String("content-url", "", "base URL serving <object id>.html label fragments")
	statePath := flag.String("state", "", "state file (default: user config dir)")
	reset := flag.Bool("reset", false, "forget read props and replay the intro")
	skipIntro := flag.Bool("skip-intro", false, "skip the loading overlay and the entrance cinematic")
	levelName := flag.String("level", "", "island file in levels/ (default island.json)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("hexfolio")

	game, err := NewGame(app.Options{
		Debug:      *debug,
		ContentURL: *contentURL,
		StatePath:  *statePath,
		Reset:      *reset,
		SkipIntro:  *skipIntro,
		Level:      *levelName,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
