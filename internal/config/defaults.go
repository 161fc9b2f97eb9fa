package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default configuration, used
// as the last-resort fallback if the embedded YAML cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Display: DisplayConfig{
			TickRate: 60,
			HUD:      "top",
			ShowHelp: true,
		},
		Theme: ThemeConfig{
			PlayerGlyph:   "█",
			PlayerColor:   "bright-cyan",
			ZombieGlyph:   "z",
			ZombieColor:   "green",
			BossGlyph:     "▓",
			BossColor:     "bright-red",
			ObstacleGlyph: "▒",
			ObstacleColor: "gray",
			ItemGlyph:     "◆",
			ItemColor:     "bright-yellow",
			BulletGlyph:   "|",
			BulletColor:   "white",
			GateGainColor: "bright-green",
			GateLossColor: "red",
		},
	}
}

// GetDefaultYAML returns the embedded default configuration YAML.
// Used by the `config` CLI command so players can dump and customize it.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
