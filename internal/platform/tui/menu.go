package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	tcore "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// MenuItem is a row of the main menu.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuDifficulty
	MenuLevel
	MenuHighScores
	MenuQuit
)

var menuItems = []MenuItem{MenuStart, MenuDifficulty, MenuLevel, MenuHighScores, MenuQuit}

// levelPage is how far pgup/pgdown move the level selector.
const levelPage = 10

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu: start a game, pick
// difficulty and starting level, or open the high score table.
type MenuModel struct {
	cursor     int
	difficulty int
	level      int
	best       int
	width      int
	height     int
	config     core.RuntimeConfig
	keys       MenuKeyMap
	help       help.Model

	quitting       bool
	start          bool
	openScoreboard bool
}

// NewMenuModel creates a menu preselecting the given difficulty and level.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, difficulty, level int) MenuModel {
	m := MenuModel{
		difficulty: core.Clamp(difficulty, tcore.MinDifficulty, tcore.MaxDifficulty),
		level:      core.Clamp(level, tcore.MinLevel, tcore.MaxInitialLevel),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keys:       DefaultMenuKeyMap(),
		help:       help.New(),
	}
	if store != nil {
		if best, err := store.HighScore(); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item := menuItems[m.cursor]

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		m.adjust(item, -1)

	case key.Matches(msg, m.keys.Right):
		m.adjust(item, 1)

	case msg.String() == "pgup" && item == MenuLevel:
		m.adjust(item, levelPage)

	case msg.String() == "pgdown" && item == MenuLevel:
		m.adjust(item, -levelPage)

	case key.Matches(msg, m.keys.Select):
		switch item {
		case MenuStart:
			m.start = true
			return m, tea.Quit
		case MenuHighScores:
			m.openScoreboard = true
			return m, tea.Quit
		case MenuQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuDifficulty, MenuLevel:
			m.adjust(item, 1)
		}
	}

	return m, nil
}

// adjust changes a selector, wrapping around at either end.
func (m *MenuModel) adjust(item MenuItem, delta int) {
	switch item {
	case MenuDifficulty:
		m.difficulty = wrap(m.difficulty+delta, tcore.MinDifficulty, tcore.MaxDifficulty)
	case MenuLevel:
		if delta == 1 || delta == -1 {
			m.level = wrap(m.level+delta, tcore.MinLevel, tcore.MaxInitialLevel)
			return
		}
		m.level = core.Clamp(m.level+delta, tcore.MinLevel, tcore.MaxInitialLevel)
	}
}

func wrap(v, lo, hi int) int {
	switch {
	case v < lo:
		return hi
	case v > hi:
		return lo
	}
	return v
}

func (m MenuModel) label(item MenuItem) string {
	switch item {
	case MenuStart:
		return "Start Game"
	case MenuDifficulty:
		return fmt.Sprintf("Difficulty  < %s >", config.DifficultyLabel(m.difficulty))
	case MenuLevel:
		return fmt.Sprintf("Level       < %d >", m.level)
	case MenuHighScores:
		return "High Scores"
	case MenuQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  T E T R I S  "), m.width))
	b.WriteString("\n\n")

	if m.best > 0 {
		b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("Best score: %d", m.best)), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		line := "  " + m.label(item)
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + m.label(item))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Difficulty returns the selected difficulty (1..5).
func (m MenuModel) Difficulty() int {
	return m.difficulty
}

// Level returns the selected starting level (1..100).
func (m MenuModel) Level() int {
	return m.level
}

// WantsStart returns true if the user chose Start Game.
func (m MenuModel) WantsStart() bool {
	return m.start
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Start           bool
	Difficulty      int
	Level           int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, difficulty, level int) (MenuResult, error) {
	model := NewMenuModel(store, cfg, difficulty, level)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Difficulty: m.Difficulty(),
		Level:      m.Level(),
		Config:     m.Config(),
	}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.WantsStart():
		result.Start = true
	default:
		result.Quit = true
	}
	return result, nil
}
