package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crowd-rush/internal/config"
	"github.com/vovakirdan/crowd-rush/internal/core"
	"github.com/vovakirdan/crowd-rush/internal/platform/tui"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run.

Controls:
  Mouse drag - Steer the crowd
  Left/A     - Nudge left
  Right/D    - Nudge right
  P/Esc      - Pause
  R          - Restart
  Q/Ctrl+C   - Quit

Examples:
  crowdrush play
  crowdrush play --seed 42
  crowdrush play --fps 30
  crowdrush play --config ./my-theme.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "crowdrush",
	})

	rc, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}
	if flagFPS > 0 {
		rc.Display.TickRate = flagFPS
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Terminal size determines the cell buffer only; the simulation
	// always runs in the fixed logical lane.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: rc.Display.TickRate,
		Seed:     seed,
	}

	if err := tui.Run(cfg, rc); err != nil {
		logger.Fatal("run ended with error", "error", err)
	}
}
