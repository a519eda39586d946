package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flyer/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the flyer configuration",
	Long: `Prints the embedded default config, ready to copy to
~/.flyer/configs/flyer.yaml or ./configs/flyer.yaml and edit.

With --resolved, prints the config the game would actually use after the
search path, --config and --difficulty are applied.

Examples:
  flyer config > ~/.flyer/configs/flyer.yaml
  flyer config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the config after loading and presets")
}

func runConfig(cmd *cobra.Command, args []string) {
	if !flagResolved {
		os.Stdout.Write(config.GetDefaultYAML("flyer"))
		return
	}

	out, err := resolvedConfig(flagConfig, config.DifficultyPreset(flagDifficulty))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

// resolvedConfig loads the config the way the game does and renders it.
func resolvedConfig(path string, preset config.DifficultyPreset) ([]byte, error) {
	cfg, err := config.LoadFlyer(path)
	if err != nil {
		return nil, err
	}
	if preset != "" {
		config.ApplyFlyerPreset(&cfg, preset)
	}
	return config.Marshal(cfg)
}
