// flyer is a terminal pterodactyl flyer: dodge the rocks rushing at you.
//
// Usage:
//
//	flyer                    - Play (same as 'flyer play')
//	flyer play [game]        - Play a game (default: flyer)
//	flyer list               - List available games
//	flyer sim                - Run headless with the autopilot and print results
//	flyer config             - Print the default or resolved config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rock fields
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--autopilot           - Let the CPU pilot fly
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
//
// Every flag can also come from a FLYER_* environment variable or a .env
// file in the working directory, e.g. FLYER_LOG_LEVEL=debug.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flyer/internal/config"
	"github.com/vovakirdan/tui-flyer/internal/games/flyer"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagAutopilot  bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	loadDotEnv()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flyer",
	Short: "Pterodactyl Flyer - dodge rocks in your terminal",
	Long: `Pterodactyl Flyer puts you on the back of a flying creature speeding
through a field of rocks. Flap to climb, bank to dodge, and survive as long
as you can: every second is a point.

Available commands:
  play     - Play (default)
  list     - Show all available games
  sim      - Headless run with the autopilot
  config   - Print configuration

Examples:
  flyer
  flyer --difficulty hard
  flyer sim --seconds 120 --autopilot --runs 5
  flyer config --resolved --config ./my-flyer.yaml`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	Run:               runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom flyer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagAutopilot, "autopilot", false, "Let the CPU pilot fly")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup resolves environment defaults and hands the tuning choices to the game.
func setup(cmd *cobra.Command, args []string) error {
	if err := applyEnv(cmd.Flags()); err != nil {
		return err
	}
	return checkFlags()
}

// checkFlags validates the global flags, including the config they point
// at, so every command fails before it starts.
func checkFlags() error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be > 0, got %d", flagFPS)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if _, err := config.LoadFlyer(flagConfig); err != nil {
		return err
	}

	flyer.SetConfigPath(flagConfig)
	flyer.SetDifficultyPreset(preset)
	return nil
}
