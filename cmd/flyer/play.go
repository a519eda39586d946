package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flyer/internal/core"
	"github.com/vovakirdan/tui-flyer/internal/eventlog"
	"github.com/vovakirdan/tui-flyer/internal/games/flyer"
	"github.com/vovakirdan/tui-flyer/internal/platform/tui"
	"github.com/vovakirdan/tui-flyer/internal/registry"
)

// defaultGame is played when no game is named.
const defaultGame = "flyer"

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without an argument the flyer starts.

Controls:
  Space/W/Up     - Flap (hold to keep climbing)
  A/Left         - Bank left
  D/Right        - Bank right
  P/Esc          - Pause
  Tab            - Toggle autopilot
  R/Enter/Space  - Restart (after game over)
  ?              - Full help
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Start at the config's initial level, progresses to max
  normal - Start 30% of the way to max
  hard   - Start 70% of the way to max
  fixed  - No progression, stays at the config's initial level

Examples:
  flyer play
  flyer play flyer --difficulty hard
  flyer play --config ./my-flyer.yaml --log-file flyer.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'flyer list' to see available games.")
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal; try 'flyer sim' instead")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logOut, closeLog, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	logger, err := newLogger(logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	opts := tui.Options{Logger: logger}
	var recorder *eventlog.Recorder
	if fg, ok := game.(*flyer.Game); ok {
		recorder = eventlog.New(logger)
		fg.SetListener(recorder)
		opts.Pilot = pilotFor(fg)
		opts.Autopilot = flagAutopilot
	}

	if runErr := tui.Run(game, cfg, opts); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}

	if recorder != nil {
		s := recorder.Stats()
		fmt.Printf("Runs: %d  Best: %d  Last: %d  Rocks dodged: %d\n", s.Runs, s.BestScore, s.LastScore, s.Removed)
	}
}

// pilotFor binds an autopilot to g. The pilot is tuned on first use, after
// the host's Reset has loaded the game's config.
func pilotFor(g *flyer.Game) func() core.InputFrame {
	var pilot *flyer.Autopilot
	return func() core.InputFrame {
		if pilot == nil {
			pilot = flyer.NewAutopilot(g.Config())
		}
		return pilot.Decide(g.Player(), g.Field().Obstacles())
	}
}
