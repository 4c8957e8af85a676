package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Garsondee/Mini-Doom/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	mode := flag.String("mode", "game", "runtime mode: game | selftest | diag")
	scale := flag.Int("scale", 4, "window pixels per panel pixel")
	mute := flag.Bool("mute", false, "disable feedback beeps")
	debug := flag.Bool("debug", false, "show the diagnostic text overlay")
	flag.Parse()

	if *mode == "diag" {
		runDiagnostics(os.Stdout)
		return
	}

	ebiten.SetWindowSize(game.FBWidth**scale, game.FBHeight**scale)
	ebiten.SetWindowTitle("Mini Doom")

	var runner ebiten.Game
	switch *mode {
	case "game":
		runner = newApp(*scale, *mute, *debug)
	case "selftest":
		runner = newSelfTest(*scale)
	default:
		log.Fatalf("unknown mode %q (want game, selftest or diag)", *mode)
	}

	if err := ebiten.RunGame(runner); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}

// runDiagnostics prints the static build facts a field report needs.
func runDiagnostics(w *os.File) {
	fmt.Fprintln(w, "mini-doom diagnostics")
	fmt.Fprintf(w, "panel:        %dx%d, %d byte framebuffer\n", game.FBWidth, game.FBHeight, game.FBBytes)
	fmt.Fprintf(w, "map:          %dx%d packed nibbles\n", game.MapWidth, game.MapHeight)
	fmt.Fprintf(w, "sprites:      %d slots\n", game.MaxSprites)
	fmt.Fprintf(w, "patterns:     %d validation patterns\n", game.PatternCount)
}
