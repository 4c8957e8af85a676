package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Garsondee/Mini-Doom/internal/game"
	"github.com/atotto/clipboard"
)

// runStats aggregates what a scripted headless run did, mined from the
// event log after the fact.
type runStats struct {
	ticks int

	shots     int
	hits      int
	misses    int
	dryFires  int
	kills     int
	wavesSeen int

	damageEvents int
	deaths       int

	finalState  game.GameState
	finalWave   uint8
	finalHealth uint8
	finalAmmo   uint8
	remaining   uint8
}

func main() {
	var (
		ticks     int
		fireEvery int
		advance   bool
		dump      bool
		verbose   bool
		toClip    bool
	)
	flag.IntVar(&ticks, "ticks", 2000, "ticks to simulate (20 per game second)")
	flag.IntVar(&fireEvery, "fire-every", 8, "pull the trigger every N ticks (0 = never)")
	flag.BoolVar(&advance, "advance", true, "hold UP most ticks so the player walks into the map")
	flag.BoolVar(&dump, "dump", false, "print the final framebuffer as ASCII")
	flag.BoolVar(&verbose, "verbose", false, "echo every log line while running")
	flag.BoolVar(&toClip, "clipboard", false, "also copy the report to the system clipboard")
	flag.Parse()

	opts := []game.SimOption{game.WithAutoWaves()}
	if verbose {
		opts = append(opts, game.WithLogSink(os.Stderr))
	}
	sim := game.NewHeadlessSim(opts...)

	runScript(sim, ticks, fireEvery, advance)

	report := formatReport(collectStats(sim, ticks))
	fmt.Print(report)
	if dump {
		fmt.Println()
		fmt.Print(sim.Game.DumpFramebuffer())
	}
	if toClip {
		if err := clipboard.WriteAll(report); err != nil {
			fmt.Fprintf(os.Stderr, "clipboard: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "report copied to clipboard")
	}
}

// runScript drives a simple deterministic player: walk forward with short
// pauses, sweep the view a little, and pull the trigger periodically.
// Because a fire edge also restarts from the game-over screen, the script
// keeps playing through deaths.
func runScript(sim *game.HeadlessSim, ticks, fireEvery int, advance bool) {
	for i := 0; i < ticks; i++ {
		var mask uint8
		if advance && i%5 != 4 {
			mask |= game.ButtonUp
		}
		if i%40 >= 30 {
			mask |= game.ButtonRight
		}
		if fireEvery > 0 && i%fireEvery == 0 {
			mask |= game.ButtonFire
		}
		sim.SetButtons(mask)
		sim.Tick()
	}
}

// collectStats mines the event log and the final game state.
func collectStats(sim *game.HeadlessSim, ticks int) runStats {
	g := sim.Game
	l := g.Log()
	return runStats{
		ticks:        ticks,
		shots:        l.Count(game.TagCombat, "Fire ("),
		hits:         l.Count(game.TagCombat, "hit at"),
		misses:       l.Count(game.TagCombat, "Miss"),
		dryFires:     l.Count(game.TagCombat, "Dry fire"),
		kills:        l.Count(game.TagEnemy, "died"),
		wavesSeen:    l.Count(game.TagFlow, "started"),
		damageEvents: l.Count(game.TagPlayer, "Took"),
		deaths:       l.Count(game.TagGameOver, "Player died"),
		finalState:   g.State(),
		finalWave:    g.Wave(),
		finalHealth:  g.Health(),
		finalAmmo:    g.Ammo(),
		remaining:    g.EnemiesRemaining(),
	}
}

// formatReport renders the stats block. Kept separate from I/O so tests can
// check the exact shape.
func formatReport(s runStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- mini-doom headless report ---\n")
	fmt.Fprintf(&b, "ticks=%d (%.1fs of game time)\n", s.ticks, float64(s.ticks)/20)
	fmt.Fprintf(&b, "combat:  shots=%d hits=%d misses=%d dry=%d kills=%d\n",
		s.shots, s.hits, s.misses, s.dryFires, s.kills)
	if s.shots > 0 {
		fmt.Fprintf(&b, "         accuracy=%.0f%%\n", float64(s.hits)*100/float64(s.shots))
	}
	fmt.Fprintf(&b, "waves:   started=%d current=%d remaining=%d\n", s.wavesSeen, s.finalWave, s.remaining)
	fmt.Fprintf(&b, "player:  damage_events=%d deaths=%d\n", s.damageEvents, s.deaths)
	fmt.Fprintf(&b, "final:   state=%s health=%d ammo=%d\n", s.finalState, s.finalHealth, s.finalAmmo)
	return b.String()
}
