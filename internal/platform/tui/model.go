package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvols/termsnake/internal/config"
	"github.com/kvols/termsnake/internal/core"
	"github.com/kvols/termsnake/internal/game"
)

// Model is the Bubble Tea model that drives one game: it owns the frame
// clock, maps keys to input actions, and renders the screen buffer. All
// game mutation happens on the update goroutine, one logical step per tick.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keymap   KeyMap
	styles   Styles
	frame    core.InputFrame
	state    core.GameState
	quitting bool
}

// NewModel creates a model for a fresh game.
func NewModel(cfg core.RuntimeConfig, theme config.ThemeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.DefaultTickRate
	}

	return Model{
		game:   game.New(),
		screen: core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-1)), // bottom line is the help footer
		config: cfg,
		keymap: DefaultKeyMap(),
		styles: NewStyles(theme),
		frame:  core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(screenConfig(m.config))
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey maps a keypress to an input action. Quit terminates
// immediately in any state; everything else is queued for the next tick
// in arrival order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keymap.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.frame.Append(action)
	return m, nil
}

// handleResize adjusts the screen buffer and recenters the board.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
	m.game.Resize(screenConfig(m.config))
	return m, nil
}

// handleTick runs one simulation step and reschedules the clock.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.frame)
	m.state = result.State
	m.frame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current frame plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen, m.styles))
	sb.WriteRune('\n')
	sb.WriteString(m.helpLine())
	return sb.String()
}

// helpLine builds the footer from the key bindings.
func (m Model) helpLine() string {
	parts := make([]string, 0, 5)
	for _, b := range m.keymap.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	line := " " + strings.Join(parts, " • ")
	return m.styles.style(core.ColorGray).Render(line)
}

// screenConfig returns the runtime config with the height the game
// actually renders into (screen minus the footer line).
func screenConfig(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH = core.Max(1, cfg.ScreenH-1)
	return cfg
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg core.RuntimeConfig, theme config.ThemeConfig) error {
	p := tea.NewProgram(
		NewModel(cfg, theme),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
