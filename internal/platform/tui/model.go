package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// ErrNoStore is passed to a RunHook when the model has no score database.
var ErrNoStore = errors.New("tui: no score database")

// RunHook is called once per finished game. On success run is the stored
// row. Otherwise err says why it was not stored and run carries the
// unsaved result.
type RunHook func(run storage.Run, err error)

// Model is the Bubble Tea model for a running game.
type Model struct {
	game       *tetris.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	keys       KeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	onRun      RunHook
	quitting   bool
	backToMenu bool
	runSaved   bool // whether the current game over has been recorded
}

// NewModel creates a model for the game and starts it. An empty player is
// recorded as storage.PlayerLocal.
func NewModel(game *tetris.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if player == "" {
		player = storage.PlayerLocal
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// OnRun registers a hook called after each finished game.
func (m *Model) OnRun(fn RunHook) {
	m.onRun = fn
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	// After game over Esc leaves instead of pausing.
	over := m.gameState.GameOver
	if key.Matches(msg, m.keys.Back) && (over || m.gameState.Paused) || over && msg.String() == "esc" {
		m.backToMenu = true
		return m, tea.Quit
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one platform frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished game and reports it to the hook. Games that
// never started are skipped.
func (m *Model) recordRun() {
	snap, ok := m.game.Snapshot()
	if !ok {
		return
	}

	run := storage.Run{
		Player:     m.player,
		Score:      snap.Score,
		Level:      snap.Level,
		Lines:      snap.Lines,
		Difficulty: snap.Difficulty,
		EndReason:  m.game.EndReason(),
	}
	err := ErrNoStore
	if m.store != nil {
		var saved storage.Run
		if saved, err = m.store.SaveRun(run); err == nil {
			run = saved
		}
	}
	if m.onRun != nil {
		m.onRun(run, err)
	}
}

// saveScreenshot writes the current screen to ~/.tetris/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Config returns the runtime config, including the latest terminal size.
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// RunResult describes how a game program ended.
type RunResult struct {
	Config     core.RuntimeConfig
	BackToMenu bool
	Quit       bool
}

// Run plays the game in its own Bubble Tea program until the user quits or
// goes back to the menu.
func Run(game *tetris.Game, store *storage.Store, cfg core.RuntimeConfig, onRun RunHook) (RunResult, error) {
	model := NewModel(game, store, cfg, storage.PlayerLocal)
	model.OnRun(onRun)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return RunResult{Config: cfg, Quit: true}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return RunResult{Config: cfg, Quit: true}, nil
	}
	return RunResult{
		Config:     m.Config(),
		BackToMenu: m.BackToMenu(),
		Quit:       m.IsQuitting(),
	}, nil
}
