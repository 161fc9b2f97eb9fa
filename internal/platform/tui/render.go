package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crowd-rush/internal/config"
	"github.com/vovakirdan/crowd-rush/internal/core"
	"github.com/vovakirdan/crowd-rush/internal/sim"
)

// Theme holds the resolved glyphs and colors for drawing.
type Theme struct {
	PlayerGlyph   rune
	PlayerColor   core.Color
	ZombieGlyph   rune
	ZombieColor   core.Color
	BossGlyph     rune
	BossColor     core.Color
	ObstacleGlyph rune
	ObstacleColor core.Color
	ItemGlyph     rune
	ItemColor     core.Color
	BulletGlyph   rune
	BulletColor   core.Color
	GateGainColor core.Color
	GateLossColor core.Color
}

// NewTheme resolves a theme from presentation config.
func NewTheme(cfg config.ThemeConfig) Theme {
	return Theme{
		PlayerGlyph:   config.Glyph(cfg.PlayerGlyph, '█'),
		PlayerColor:   config.ParseColor(cfg.PlayerColor),
		ZombieGlyph:   config.Glyph(cfg.ZombieGlyph, 'z'),
		ZombieColor:   config.ParseColor(cfg.ZombieColor),
		BossGlyph:     config.Glyph(cfg.BossGlyph, '▓'),
		BossColor:     config.ParseColor(cfg.BossColor),
		ObstacleGlyph: config.Glyph(cfg.ObstacleGlyph, '▒'),
		ObstacleColor: config.ParseColor(cfg.ObstacleColor),
		ItemGlyph:     config.Glyph(cfg.ItemGlyph, '◆'),
		ItemColor:     config.ParseColor(cfg.ItemColor),
		BulletGlyph:   config.Glyph(cfg.BulletGlyph, '|'),
		BulletColor:   config.ParseColor(cfg.BulletColor),
		GateGainColor: config.ParseColor(cfg.GateGainColor),
		GateLossColor: config.ParseColor(cfg.GateLossColor),
	}
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderWorld draws the world state into the given screen buffer,
// scaling the fixed logical lane to the current cell dimensions. It only
// reads the world; no mutation happens on the render path.
func RenderWorld(w *sim.World, dst *core.Screen, th Theme) {
	dst.Clear()

	sx := float64(dst.Width()) / core.LaneW
	sy := float64(dst.Height()) / core.LaneH

	toCells := func(r core.RectF) (x, y, cw, ch int) {
		x = int(r.X * sx)
		y = int(r.Y * sy)
		cw = core.Max(1, int(r.W*sx))
		ch = core.Max(1, int(r.H*sy))
		return
	}

	// Lane margins
	leftEdge := int(18 * sx)
	rightEdge := int((core.LaneW - 18) * sx)
	for y := 0; y < dst.Height(); y++ {
		dst.SetCell(leftEdge, y, '·', core.ColorGray)
		dst.SetCell(rightEdge, y, '·', core.ColorGray)
	}

	// Gates: filled band with the operation label centered.
	for i := range w.Gates {
		g := &w.Gates[i]
		c := th.GateGainColor
		if g.Op.Kind == sim.GateSub || g.Op.Kind == sim.GateDiv {
			c = th.GateLossColor
		}
		x, y, cw, ch := toCells(g.RectF)
		dst.FillRect(x, y, cw, ch, '░', c)
		label := g.Op.Label()
		dst.DrawTextColored(x+(cw-len([]rune(label)))/2, y+ch/2, label, c)
	}

	for i := range w.Obstacles {
		x, y, cw, ch := toCells(w.Obstacles[i].RectF)
		dst.FillRect(x, y, cw, ch, th.ObstacleGlyph, th.ObstacleColor)
	}

	for i := range w.Items {
		x, y, _, _ := toCells(w.Items[i].RectF)
		dst.SetCell(x, y, th.ItemGlyph, th.ItemColor)
	}

	for i := range w.Zombies {
		x, y, cw, ch := toCells(w.Zombies[i].RectF)
		dst.FillRect(x, y, cw, ch, th.ZombieGlyph, th.ZombieColor)
	}

	for i := range w.Bosses {
		x, y, cw, ch := toCells(w.Bosses[i].RectF)
		dst.FillRect(x, y, cw, ch, th.BossGlyph, th.BossColor)
	}

	for i := range w.Bullets {
		x, y, _, _ := toCells(w.Bullets[i].RectF)
		dst.SetCell(x, y, th.BulletGlyph, th.BulletColor)
	}

	// Player crowd
	px, py, pw, ph := toCells(w.Player)
	dst.FillRect(px, py, pw, ph, th.PlayerGlyph, th.PlayerColor)

	// Floaters draw last so feedback stays readable.
	for i := range w.Floaters {
		f := &w.Floaters[i]
		c := core.ColorBrightGreen
		if strings.HasPrefix(f.Text, "-") {
			c = core.ColorBrightRed
		}
		dst.DrawTextColored(int(f.X*sx), int(f.Y*sy), f.Text, c)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
