package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// Frame-level defaults that have no counterpart in the engine rules.
const (
	DefaultSoftDropReleaseFrames = 6
	DefaultMaxTicksPerFrame      = 8
)

// DefaultTetrisConfig returns the hard-coded configuration. It matches
// defaults/tetris.yaml and is used when the embedded file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:    core.DefaultWidth,
			Height:   core.DefaultHeight,
			SpawnRow: core.DefaultSpawnRow,
		},
		Timing: TimingConfig{
			FallDelayMS:           int(core.DefaultFallDelay.Milliseconds()),
			Decay:                 core.DefaultDecay,
			DownMultiplier:        core.DefaultDownMultiplier,
			SoftDropReleaseFrames: DefaultSoftDropReleaseFrames,
			MaxTicksPerFrame:      DefaultMaxTicksPerFrame,
		},
		Scoring: ScoringConfig{
			BaseScore:   core.DefaultBaseScore,
			Multipliers: append([]int(nil), core.DefaultMultipliers[:]...),
		},
		Game: GameConfig{
			Difficulty:   string(DifficultyNormal),
			InitialLevel: core.MinLevel,
		},
	}
}
