package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crowd-rush/internal/config"
	"github.com/vovakirdan/crowd-rush/internal/core"
	"github.com/vovakirdan/crowd-rush/internal/sim"
)

// keyNudge is how far a single arrow-key press moves the pointer
// target, in logical lane units.
const keyNudge = 24.0

// Model is the bubbletea model wrapping a running world.
type Model struct {
	world   *sim.World
	screen  *core.Screen
	cfg     core.RuntimeConfig
	display config.DisplayConfig
	theme   Theme

	pointer core.Pointer
	keys    KeyMap
	help    help.Model

	lastTick time.Time
	paused   bool
	quitting bool
}

// NewModel builds a model around a freshly reset world.
func NewModel(cfg core.RuntimeConfig, rc config.RunnerConfig) Model {
	w := sim.NewWorld(cfg)

	laneH := cfg.ScreenH - 2 // one row for the HUD, one for help
	if laneH < 1 {
		laneH = 1
	}

	return Model{
		world:   w,
		screen:  core.NewScreen(cfg.ScreenW, laneH),
		cfg:     cfg,
		display: rc.Display,
		theme:   NewTheme(rc.Theme),
		pointer: core.Pointer{TargetX: core.LaneW / 2},
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		// The logical lane never changes; only the cell buffer does.
		laneH := msg.Height - 2
		if laneH < 1 {
			laneH = 1
		}
		m.screen.Resize(msg.Width, laneH)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, tea.Quit
		}
		now := time.Time(msg)
		dt := 0.0
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick).Seconds()
		}
		m.lastTick = now
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
		if !m.paused {
			m.world.Update(dt, m.pointer)
		}
		return m, tickCmd(m.cfg.TickRate)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if m.world.Snapshot().Alive {
			m.paused = !m.paused
		}

	case core.ActionRestart:
		m.world.Reset(time.Now().UnixNano())
		m.pointer = core.Pointer{TargetX: core.LaneW / 2}
		m.paused = false

	case core.ActionLeft:
		m.pointer.TargetX = core.ClampF(m.pointer.TargetX-keyNudge, 0, core.LaneW)

	case core.ActionRight:
		m.pointer.TargetX = core.ClampF(m.pointer.TargetX+keyNudge, 0, core.LaneW)
	}
	return m, nil
}

// handleMouse maps terminal cell coordinates to the logical lane. Only
// drags count as steering: press engages, motion while held retargets,
// release lets the crowd settle where it is.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pointer.Down = true
			m.pointer.TargetX = m.cellToLaneX(msg.X)
		}
	case tea.MouseActionMotion:
		if m.pointer.Down {
			m.pointer.TargetX = m.cellToLaneX(msg.X)
		}
	case tea.MouseActionRelease:
		m.pointer.Down = false
	}
}

func (m *Model) cellToLaneX(cellX int) float64 {
	if m.screen.Width() == 0 {
		return core.LaneW / 2
	}
	x := (float64(cellX) + 0.5) / float64(m.screen.Width()) * core.LaneW
	return core.ClampF(x, 0, core.LaneW)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.world.Snapshot()

	RenderWorld(m.world, m.screen, m.theme)
	if m.paused {
		drawCenteredMessage(m.screen, "PAUSED", "press p to resume")
	} else if !snap.Alive {
		drawCenteredMessage(m.screen, "RUN OVER", "press r to restart")
	}
	lane := RenderScreen(m.screen)

	hud := fmt.Sprintf(" crowd %d   dist %dm", snap.Value, snap.Dist)
	footer := ""
	if m.display.ShowHelp {
		footer = m.help.View(m.keys)
	}

	if m.display.HUD == "bottom" {
		return lane + "\n" + hud + "\n" + footer
	}
	return hud + "\n" + lane + "\n" + footer
}

// Run starts the interactive session and blocks until it ends.
func Run(cfg core.RuntimeConfig, rc config.RunnerConfig) error {
	p := tea.NewProgram(
		NewModel(cfg, rc),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
