// crowdrush is a terminal crowd-runner: steer a crowd of runners down
// an endless lane, pick score gates, shoot through zombie waves and
// barricades, and survive the boss encounters.
//
// Usage:
//
//	crowdrush play            - Start a run
//	crowdrush config          - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crowdrush",
	Short: "Crowd Rush - a crowd-runner for your terminal",
	Long: `Crowd Rush is a terminal crowd-runner. Drag the pointer to steer a
crowd of runners down an endless lane, run through arithmetic gates to
grow the crowd, and shoot your way past zombie waves, barricades, and
bosses.

Available commands:
  play     - Start a run
  config   - Print the default configuration YAML

Examples:
  crowdrush play
  crowdrush play --seed 42
  crowdrush play --config ./my-theme.yaml
  crowdrush config > ~/.crowdrush/configs/runner.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
