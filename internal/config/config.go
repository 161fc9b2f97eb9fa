// Package config provides YAML-based presentation configuration for the
// runner. Only display concerns live here: glyphs, colors, HUD layout,
// tick rate. Gameplay and difficulty constants are fixed parameters of
// the simulation and are deliberately not configurable.
package config

import "github.com/vovakirdan/crowd-rush/internal/core"

// RunnerConfig contains all presentation configuration.
type RunnerConfig struct {
	Display DisplayConfig `yaml:"display"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// DisplayConfig defines runtime display parameters.
type DisplayConfig struct {
	TickRate int    `yaml:"tick_rate"` // Simulation ticks per second
	HUD      string `yaml:"hud"`       // "top" or "bottom"
	ShowHelp bool   `yaml:"show_help"` // Key-binding footer
}

// ThemeConfig defines the glyphs and colors used to draw each entity kind.
type ThemeConfig struct {
	PlayerGlyph   string `yaml:"player_glyph"`
	PlayerColor   string `yaml:"player_color"`
	ZombieGlyph   string `yaml:"zombie_glyph"`
	ZombieColor   string `yaml:"zombie_color"`
	BossGlyph     string `yaml:"boss_glyph"`
	BossColor     string `yaml:"boss_color"`
	ObstacleGlyph string `yaml:"obstacle_glyph"`
	ObstacleColor string `yaml:"obstacle_color"`
	ItemGlyph     string `yaml:"item_glyph"`
	ItemColor     string `yaml:"item_color"`
	BulletGlyph   string `yaml:"bullet_glyph"`
	BulletColor   string `yaml:"bullet_color"`
	GateGainColor string `yaml:"gate_gain_color"` // add/mul gates
	GateLossColor string `yaml:"gate_loss_color"` // sub/div gates
}

// colorNames maps config color names to screen colors.
var colorNames = map[string]core.Color{
	"default":       core.ColorDefault,
	"red":           core.ColorRed,
	"green":         core.ColorGreen,
	"yellow":        core.ColorYellow,
	"blue":          core.ColorBlue,
	"magenta":       core.ColorMagenta,
	"cyan":          core.ColorCyan,
	"white":         core.ColorWhite,
	"bright-red":    core.ColorBrightRed,
	"bright-green":  core.ColorBrightGreen,
	"bright-yellow": core.ColorBrightYellow,
	"bright-cyan":   core.ColorBrightCyan,
	"bright-white":  core.ColorBrightWhite,
	"orange":        core.ColorOrange,
	"gray":          core.ColorGray,
}

// ParseColor resolves a config color name. Unknown names fall back to
// the default color rather than failing the load.
func ParseColor(name string) core.Color {
	if c, ok := colorNames[name]; ok {
		return c
	}
	return core.ColorDefault
}

// Glyph returns the first rune of a configured glyph string, or the
// fallback if the string is empty.
func Glyph(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
