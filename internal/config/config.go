// Package config provides YAML-based game configuration and difficulty
// presets.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// TetrisConfig contains all tunable settings for a game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Game    GameConfig    `yaml:"game"`
}

// BoardConfig defines the playfield.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	SpawnRow int `yaml:"spawn_row"`
}

// TimingConfig defines gravity and input timing.
type TimingConfig struct {
	FallDelayMS           int     `yaml:"fall_delay_ms"`
	Decay                 float64 `yaml:"decay"`
	DownMultiplier        float64 `yaml:"down_multiplier"`
	SoftDropReleaseFrames int     `yaml:"soft_drop_release_frames"`
	MaxTicksPerFrame      int     `yaml:"max_ticks_per_frame"`
}

// ScoringConfig defines points per cleared row.
type ScoringConfig struct {
	BaseScore   int   `yaml:"base_score"`
	Multipliers []int `yaml:"multipliers"` // indexed by rows cleared, 0..4
}

// GameConfig holds the settings a player usually picks in the menu.
type GameConfig struct {
	Difficulty   string `yaml:"difficulty"` // preset name or "1".."5"
	InitialLevel int    `yaml:"initial_level"`
}

// Rules converts the board, timing and scoring sections into engine rules.
func (c TetrisConfig) Rules() core.Rules {
	r := core.Rules{
		Width:          c.Board.Width,
		Height:         c.Board.Height,
		SpawnRow:       c.Board.SpawnRow,
		FallDelay:      time.Duration(c.Timing.FallDelayMS) * time.Millisecond,
		Decay:          c.Timing.Decay,
		DownMultiplier: c.Timing.DownMultiplier,
		BaseScore:      c.Scoring.BaseScore,
	}
	copy(r.Multipliers[:], c.Scoring.Multipliers)
	return r
}

// Difficulty returns the numeric difficulty from the game section.
func (c TetrisConfig) Difficulty() (int, error) {
	return ParseDifficulty(c.Game.Difficulty)
}

// Validate reports the first setting that cannot produce a playable game.
func (c TetrisConfig) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(c.Scoring.Multipliers) != core.MaxRowsScored+1 {
		return fmt.Errorf("config: scoring.multipliers needs %d entries, got %d",
			core.MaxRowsScored+1, len(c.Scoring.Multipliers))
	}
	if c.Timing.SoftDropReleaseFrames < 1 {
		return errors.New("config: timing.soft_drop_release_frames must be at least 1")
	}
	if c.Timing.MaxTicksPerFrame < 1 {
		return errors.New("config: timing.max_ticks_per_frame must be at least 1")
	}
	if _, err := c.Difficulty(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Game.InitialLevel < core.MinLevel || c.Game.InitialLevel > core.MaxInitialLevel {
		return fmt.Errorf("config: game.initial_level %d outside %d..%d",
			c.Game.InitialLevel, core.MinLevel, core.MaxInitialLevel)
	}
	return nil
}
