package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "draw the playable area, physics shapes and character state")
	configPath := flag.String("config", "", "scene spec YAML to load instead of the embedded prefab")
	width := flag.Float64("width", 0, "override the scene width")
	height := flag.Float64("height", 0, "override the scene height")
	watch := flag.Bool("watch", false, "reload character tunables when the scene spec changes on disk")
	flag.Parse()

	game, err := NewGame(Options{
		Debug:      *debug,
		ConfigPath: *configPath,
		Width:      *width,
		Height:     *height,
		Watch:      *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := game.SceneSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("animate guy")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
