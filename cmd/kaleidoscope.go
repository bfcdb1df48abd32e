package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	game_log "github.com/haruo-gabriel/kaleidoscope-vinyl-generator/internal/log"
	"github.com/haruo-gabriel/kaleidoscope-vinyl-generator/internal/ui"
)

func main() {
	logger := game_log.New(os.Stdout, game_log.LevelFromString(os.Getenv("KALEIDO_LOG")))
	g := ui.New(logger)

	ebiten.SetWindowSize(900, 700)
	ebiten.SetWindowTitle("Kaleidoscope Vinyl")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
