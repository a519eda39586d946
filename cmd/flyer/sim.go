package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flyer/internal/core"
	"github.com/vovakirdan/tui-flyer/internal/eventlog"
	"github.com/vovakirdan/tui-flyer/internal/games/flyer"
)

var (
	flagSimSeconds float64
	flagSimRuns    int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the flyer headless and print the results",
	Long: `Runs the flyer without a terminal UI at a fixed step of 1/fps seconds.
Each run lasts until the flyer crashes or the time limit is reached.
Events are logged to stderr (or --log-file); a results table goes to stdout.

Without --autopilot the flyer gets no input and simply drops.

Examples:
  flyer sim --autopilot
  flyer sim --seconds 300 --runs 10 --autopilot --seed 42
  flyer sim --autopilot --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 60, "Time limit per run in simulated seconds")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs, each with the next seed")
}

// simOptions controls a headless session.
type simOptions struct {
	Seconds   float64
	FPS       int
	Seed      int64
	Runs      int
	Autopilot bool
}

// simResult is the outcome of one run.
type simResult struct {
	Seed     int64
	Score    int
	Survived float64 // Simulated seconds
	Crashed  bool
	Rocks    int    // Rocks spawned during the run
	RunID    string // Matches the run field of the log lines
}

func runSim(cmd *cobra.Command, args []string) {
	if flagSimSeconds <= 0 || flagSimRuns <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --seconds and --runs must be > 0")
		os.Exit(1)
	}

	// Unlike play, sim logs to stderr unless told otherwise
	logOut, closeLog := io.Writer(os.Stderr), func() {}
	if flagLogFile != "" {
		var err error
		if logOut, closeLog, err = openLogFile(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	defer closeLog()

	logger, err := newLogger(logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	results, stats := simulate(simOptions{
		Seconds:   flagSimSeconds,
		FPS:       flagFPS,
		Seed:      seed,
		Runs:      flagSimRuns,
		Autopilot: flagAutopilot,
	}, logger)

	fmt.Println(resultsTable(results))
	fmt.Printf("\nRuns: %d  Best: %d  Rocks spawned: %d\n", stats.Runs, stats.BestScore, stats.Spawned)
}

// simulate plays opts.Runs runs back to back with seeds opts.Seed,
// opts.Seed+1, ... and returns one result per run.
func simulate(opts simOptions, logger *log.Logger) ([]simResult, eventlog.Stats) {
	recorder := eventlog.New(logger)
	results := make([]simResult, 0, opts.Runs)

	dt := 1 / float64(opts.FPS)
	steps := int(opts.Seconds * float64(opts.FPS))

	g := flyer.New()
	g.SetListener(recorder)

	for run := 0; run < opts.Runs; run++ {
		cfg := core.RuntimeConfig{TickRate: opts.FPS, Seed: opts.Seed + int64(run)}
		// Reset clears the previous run's rocks before the new run is tagged
		g.Reset(cfg)
		if run > 0 {
			recorder.StartRun()
		}
		spawnedBefore := recorder.Stats().Spawned
		pilot := flyer.NewAutopilot(g.Config())

		res := simResult{Seed: cfg.Seed, RunID: recorder.RunID().String()}
		for i := 1; i <= steps; i++ {
			var in core.InputFrame
			if opts.Autopilot {
				in = pilot.Decide(g.Player(), g.Field().Obstacles())
			}
			elapsed := float64(i) / float64(opts.FPS)
			step := g.Step(in, dt, elapsed)
			res.Score = step.State.Score
			res.Survived = elapsed
			if step.State.GameOver {
				res.Crashed = true
				break
			}
		}
		res.Rocks = recorder.Stats().Spawned - spawnedBefore

		logger.Info("run finished", "run", run+1, "seed", res.Seed, "score", res.Score, "crashed", res.Crashed)
		results = append(results, res)
	}

	return results, recorder.Stats()
}

// resultsTable renders the results as a static table.
func resultsTable(results []simResult) string {
	columns := []table.Column{
		{Title: "Run", Width: 4},
		{Title: "ID", Width: 8},
		{Title: "Seed", Width: 20},
		{Title: "Score", Width: 6},
		{Title: "Time", Width: 9},
		{Title: "Rocks", Width: 6},
		{Title: "Outcome", Width: 8},
	}

	rows := make([]table.Row, 0, len(results))
	for i, r := range results {
		outcome := "survived"
		if r.Crashed {
			outcome = "crashed"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			shortID(r.RunID),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Score),
			fmt.Sprintf("%.2fs", r.Survived),
			strconv.Itoa(r.Rocks),
			outcome,
		})
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // Header and its border
		table.WithStyles(s),
	)
	return t.View()
}

// shortID trims a run ID to its first block, enough to grep the log.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
