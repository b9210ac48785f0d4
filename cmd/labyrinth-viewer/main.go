package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"labyrinth"
	"labyrinth/internal/board"
)

func main() {
	flag.Parse()

	strategy, err := labyrinth.ParseStrategy(*strategyFlag)
	if err != nil {
		log.Fatal(err)
	}

	wallsFile := labyrinth.DefaultWallsFile
	if flag.NArg() > 0 {
		wallsFile = flag.Arg(0)
	}

	walls, err := labyrinth.LoadWallsAuto(wallsFile)
	switch {
	case err == nil:
		log.Printf("📂 Loaded %d walls from %s\n", len(walls), wallsFile)
	case errors.Is(err, os.ErrNotExist):
		log.Printf("ℹ️  No wall file %s, starting empty\n", wallsFile)
	default:
		log.Fatalf("❌ %v", err)
	}

	b := board.New(walls, log.Default(), labyrinth.WithStrategy(strategy))
	game := newGame(b)

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle(b.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
