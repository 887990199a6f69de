package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValueForPreset returns the gravity divisor for a preset, or 0 if unknown.
func ValueForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return core.MinDifficulty
	case DifficultyNormal:
		return core.DefaultDifficulty
	case DifficultyHard:
		return core.MaxDifficulty
	default:
		return 0
	}
}

// ParseDifficulty accepts a preset name or a number in 1..5.
// An empty string means the default difficulty.
func ParseDifficulty(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return core.DefaultDifficulty, nil
	}
	if v := ValueForPreset(DifficultyPreset(s)); v != 0 {
		return v, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or %d..%d)",
			s, core.MinDifficulty, core.MaxDifficulty)
	}
	if n < core.MinDifficulty || n > core.MaxDifficulty {
		return 0, fmt.Errorf("difficulty %d outside %d..%d", n, core.MinDifficulty, core.MaxDifficulty)
	}
	return n, nil
}

// DifficultyLabel names a numeric difficulty for menus and score tables.
func DifficultyLabel(n int) string {
	switch n {
	case core.MinDifficulty:
		return "easy"
	case core.DefaultDifficulty:
		return "normal"
	case core.MaxDifficulty:
		return "hard"
	default:
		return strconv.Itoa(n)
	}
}
