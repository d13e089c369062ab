package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/games/rocket"
	"github.com/vovakirdan/rocket-arcade/internal/platform/events"
)

// helpHeight is the number of rows reserved below the play field.
const helpHeight = 1

// Model is the Bubble Tea model for running the rocket game.
type Model struct {
	game     *rocket.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	journal  *events.Journal
	tickGen  int // Current tick chain; stale TickMsgs are dropped
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *rocket.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	keys := DefaultKeyMap()
	keys.SetPhase(game.State().Phase)

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpHeight, 1)),
		config:  cfg,
		keys:    keys,
		help:    help.New(),
		journal: events.NewJournal(logger, game.ID()),
	}
}

// Init starts in the title screen. No ticks run until a round starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m.apply(action)
}

// handleMouse maps a left press to the action the current screen offers:
// start on the title, thrust while playing, play again after a crash.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil
	}
	return m.apply(clickAction(m.game.State().Phase))
}

func clickAction(p rocket.Phase) core.Action {
	switch p {
	case rocket.PhaseIdle:
		return core.ActionStart
	case rocket.PhasePlaying:
		return core.ActionActivate
	case rocket.PhaseGameOver:
		return core.ActionRestart
	}
	return core.ActionNone
}

// apply hands an action to the game. Entering a round starts a fresh tick
// chain.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	if action == core.ActionNone {
		return m, nil
	}

	result := m.game.Handle(action)
	m.journal.Record(result)
	m.keys.SetPhase(result.State.Phase)

	if result.Transition.Changed() && result.Transition.To == rocket.PhasePlaying {
		m.tickGen++
		return m, tickCmd(m.config.TickRate, m.tickGen)
	}
	return m, nil
}

// handleResize processes window resize events. The round keeps running;
// only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation and schedules the next tick while the
// round is still running.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || m.game.State().Phase != rocket.PhasePlaying {
		return m, nil
	}

	result := m.game.Advance()
	m.journal.Record(result)
	m.keys.SetPhase(result.State.Phase)

	if result.State.Phase != rocket.PhasePlaying {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game *rocket.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
