package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flyer/internal/config"
)

func TestEnvName(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{"fps", "FLYER_FPS"},
		{"log-level", "FLYER_LOG_LEVEL"},
		{"difficulty", "FLYER_DIFFICULTY"},
	}

	for _, tt := range tests {
		if got := envName(tt.flag); got != tt.want {
			t.Errorf("envName(%q) = %q, expected %q", tt.flag, got, tt.want)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fps := fs.Int("fps", 60, "")
	level := fs.String("log-level", "info", "")
	seed := fs.Int64("seed", 0, "")

	if err := fs.Parse([]string{"--seed", "7"}); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FLYER_FPS", "30")
	t.Setenv("FLYER_LOG_LEVEL", "debug")
	t.Setenv("FLYER_SEED", "99")

	if err := applyEnv(fs); err != nil {
		t.Fatalf("applyEnv() failed: %v", err)
	}
	if *fps != 30 || *level != "debug" {
		t.Errorf("env should fill unset flags, got fps=%d level=%q", *fps, *level)
	}
	if *seed != 7 {
		t.Errorf("command line should win over env, got seed=%d", *seed)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("fps", 60, "")
	t.Setenv("FLYER_FPS", "fast")

	err := applyEnv(fs)
	if err == nil || !strings.Contains(err.Error(), "FLYER_FPS") {
		t.Errorf("applyEnv() should name the bad variable, got %v", err)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	opts := simOptions{Seconds: 30, FPS: 60, Seed: 42, Runs: 3, Autopilot: true}
	logger := log.New(io.Discard)

	r1, s1 := simulate(opts, logger)
	r2, s2 := simulate(opts, logger)

	if len(r1) != 3 {
		t.Fatalf("expected 3 results, got %d", len(r1))
	}
	ids := make(map[string]bool)
	for i := range r1 {
		ids[r1[i].RunID] = true
		if r1[i].RunID == r2[i].RunID {
			t.Errorf("run %d: separate sessions should get separate run IDs", i)
		}
		a, b := r1[i], r2[i]
		a.RunID, b.RunID = "", ""
		if a != b {
			t.Errorf("run %d differs: %+v vs %+v", i, r1[i], r2[i])
		}
		if r1[i].Seed != 42+int64(i) {
			t.Errorf("run %d seed = %d, expected %d", i, r1[i].Seed, 42+i)
		}
		if !r1[i].Crashed && r1[i].Score != 30 {
			t.Errorf("run %d survived 30s but scored %d", i, r1[i].Score)
		}
	}
	if len(ids) != 3 {
		t.Errorf("each run should have its own ID, got %v", ids)
	}
	if s1 != s2 || s1.Runs != 3 {
		t.Errorf("stats = %+v vs %+v, expected 3 runs each", s1, s2)
	}
}

func TestResultsTable(t *testing.T) {
	out := resultsTable([]simResult{
		{Seed: 42, Score: 17, Survived: 17.5, Crashed: true, Rocks: 20, RunID: "3f2a9c1e-0000-4000-8000-000000000000"},
		{Seed: 43, Score: 60, Survived: 60, Rocks: 70, RunID: "b71d44aa-0000-4000-8000-000000000000"},
	})

	for _, want := range []string{"Score", "42", "17", "crashed", "survived", "17.50s", "3f2a9c1e"} {
		if !strings.Contains(out, want) {
			t.Errorf("table should contain %q, got:\n%s", want, out)
		}
	}
}

func TestResolvedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flyer.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  speed: 0.4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := resolvedConfig(path, config.DifficultyFixed)
	if err != nil {
		t.Fatalf("resolvedConfig() failed: %v", err)
	}

	var cfg config.FlyerConfig
	if err := yaml.Unmarshal(out, &cfg); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if cfg.Obstacles.Speed != 0.4 {
		t.Errorf("speed = %f, expected the file's 0.4", cfg.Obstacles.Speed)
	}
	if cfg.Difficulty.LevelStep != 0 || cfg.Difficulty.IntervalStep != 0 {
		t.Error("fixed preset should zero the progression steps")
	}
	if cfg.Player.Lift != config.DefaultFlyerConfig().Player.Lift {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestResolvedConfigMissingFile(t *testing.T) {
	if _, err := resolvedConfig(filepath.Join(t.TempDir(), "nope.yaml"), ""); err == nil {
		t.Error("a missing custom config should be an error")
	}
}

// withFlags restores the global flags after a test changes them.
func withFlags(t *testing.T) {
	t.Helper()
	fps, cfg, difficulty := flagFPS, flagConfig, flagDifficulty
	t.Cleanup(func() {
		flagFPS, flagConfig, flagDifficulty = fps, cfg, difficulty
	})
}

func TestCheckFlags(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("difficulty: {initial_level: -1}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		fps        int
		config     string
		difficulty string
		wantErr    string
	}{
		{"defaults", 60, "", "", ""},
		{"zero fps", 0, "", "", "--fps"},
		{"unknown preset", 60, "", "nightmare", "nightmare"},
		{"missing config", 60, filepath.Join(dir, "missing.yaml"), "", "missing.yaml"},
		{"invalid config", 60, invalid, "", "difficulty.initial_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t)
			flagFPS, flagConfig, flagDifficulty = tt.fps, tt.config, tt.difficulty

			err := checkFlags()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("checkFlags() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("checkFlags() = %v, expected error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestSimRejectsMissingConfig(t *testing.T) {
	withFlags(t)
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	rootCmd.SetArgs([]string{"sim", "--config", missing, "--seconds", "1"})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	if err := rootCmd.Execute(); err == nil {
		t.Error("sim with a missing --config should fail before running")
	}
}
