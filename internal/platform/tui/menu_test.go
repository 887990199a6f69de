package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func press(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestMenuStart(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), 3, 1)

	next, cmd := m.Update(keyEnter)
	m = next.(MenuModel)
	if !m.WantsStart() {
		t.Error("enter on Start Game should start")
	}
	if cmd == nil {
		t.Error("selecting should end the menu program")
	}
}

func TestMenuDifficultySelectorWraps(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), 3, 1)
	m = press(m, keyDown) // Difficulty

	m = press(m, keyRight, keyRight)
	if m.Difficulty() != 5 {
		t.Errorf("Difficulty() = %d, expected 5", m.Difficulty())
	}
	m = press(m, keyRight)
	if m.Difficulty() != 1 {
		t.Errorf("Difficulty() = %d, expected wrap to 1", m.Difficulty())
	}
	m = press(m, keyLeft)
	if m.Difficulty() != 5 {
		t.Errorf("Difficulty() = %d, expected wrap to 5", m.Difficulty())
	}
	if m.WantsStart() {
		t.Error("changing a selector should not start the game")
	}
}

func TestMenuLevelSelector(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), 3, 1)
	m = press(m, keyDown, keyDown) // Level

	m = press(m, keyLeft)
	if m.Level() != 100 {
		t.Errorf("Level() = %d, expected wrap to 100", m.Level())
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyPgDown})
	if m.Level() != 90 {
		t.Errorf("Level() = %d, expected 90", m.Level())
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyPgUp}, tea.KeyMsg{Type: tea.KeyPgUp})
	if m.Level() != 100 {
		t.Errorf("Level() = %d, expected clamp at 100", m.Level())
	}
}

func TestMenuClampsInitialValues(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), 0, 500)
	if m.Difficulty() != 1 || m.Level() != 100 {
		t.Errorf("got difficulty %d level %d", m.Difficulty(), m.Level())
	}
}

func TestMenuScoresAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), 3, 1)
	if got := press(m, tea.KeyMsg{Type: tea.KeyTab}); !got.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
	if got := press(m, keyDown, keyDown, keyDown, keyEnter); !got.WantsScoreboard() {
		t.Error("High Scores item should open the scoreboard")
	}
	if got := press(m, runeKey('q')); !got.IsQuitting() {
		t.Error("q should quit the menu")
	}
	if got := press(m, keyUp, keyDown, keyDown, keyDown, keyDown, keyDown, keyDown, keyEnter); !got.IsQuitting() {
		t.Error("Quit item should quit")
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), 5, 42)
	out := m.View()

	for _, want := range []string{"T E T R I S", "Start Game", "hard", "42", "High Scores"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu view missing %q:\n%s", want, out)
		}
	}
}
