package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crowd-rush/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the embedded default configuration to stdout.

Redirect it to a file to customize glyphs, colors, and display options:

  mkdir -p ~/.crowdrush/configs
  crowdrush config > ~/.crowdrush/configs/runner.yaml`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.GetDefaultYAML()))
	},
}
