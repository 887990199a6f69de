package core

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Gameplay constants matching the reference rules.
const (
	DefaultWidth          = 16
	DefaultHeight         = 22
	DefaultSpawnRow       = -1
	DefaultFallDelay      = 250 * time.Millisecond
	DefaultDecay          = 0.03
	DefaultDownMultiplier = 0.1
	DefaultBaseScore      = 100

	MinDifficulty     = 1
	MaxDifficulty     = 5
	DefaultDifficulty = 3

	MinLevel = 1
	// MaxInitialLevel bounds the starting level a player may pick;
	// the level itself keeps growing during play.
	MaxInitialLevel = 100

	// MaxRowsScored caps the row count used for scoring in one lock.
	MaxRowsScored = 4
)

// DefaultMultipliers is indexed by rows cleared (0..4).
var DefaultMultipliers = [MaxRowsScored + 1]int{1, 1, 2, 4, 7}

// Rules holds the tunable parameters of a game instance.
type Rules struct {
	Width          int
	Height         int
	SpawnRow       int // added to template y offsets at spawn; negative starts above row 0
	FallDelay      time.Duration
	Decay          float64
	DownMultiplier float64
	BaseScore      int
	Multipliers    [MaxRowsScored + 1]int
}

// DefaultRules returns the reference rule set.
func DefaultRules() Rules {
	return Rules{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		SpawnRow:       DefaultSpawnRow,
		FallDelay:      DefaultFallDelay,
		Decay:          DefaultDecay,
		DownMultiplier: DefaultDownMultiplier,
		BaseScore:      DefaultBaseScore,
		Multipliers:    DefaultMultipliers,
	}
}

// Validate checks that the rules describe a playable board.
func (r Rules) Validate() error {
	switch {
	case r.Width < 5:
		return fmt.Errorf("core: board width %d too small (min 5)", r.Width)
	case r.Height < 2:
		return fmt.Errorf("core: board height %d too small (min 2)", r.Height)
	case r.SpawnRow > 0 || r.SpawnRow < -2:
		return fmt.Errorf("core: spawn row %d outside -2..0", r.SpawnRow)
	case r.FallDelay <= 0:
		return errors.New("core: fall delay must be positive")
	case r.Decay < 0:
		return errors.New("core: decay must not be negative")
	case r.DownMultiplier <= 0 || r.DownMultiplier > 1:
		return fmt.Errorf("core: down multiplier %v outside (0, 1]", r.DownMultiplier)
	case r.BaseScore < 0:
		return errors.New("core: base score must not be negative")
	}
	return nil
}

// LevelFactor is floor((ln(level) + 1) / 10) * 10, with level clamped to 1.
func LevelFactor(level int) float64 {
	if level < MinLevel {
		level = MinLevel
	}
	return math.Floor((math.Log(float64(level))+1)/10) * 10
}

// ScoreDelta returns the points awarded for clearing rows at the given level:
// n * base * multiplier[n] * LevelFactor(level), n clamped to [0, 4].
func (r Rules) ScoreDelta(rows, level int) int {
	n := max(0, min(rows, MaxRowsScored))
	if n == 0 {
		return 0
	}
	return int(float64(n*r.BaseScore*r.Multipliers[n]) * LevelFactor(level))
}

// Interval returns the gravity tick interval:
// FallDelay / e^(level*Decay) / difficulty, times DownMultiplier during soft drop.
func (r Rules) Interval(level, difficulty int, softDrop bool) time.Duration {
	if difficulty < MinDifficulty {
		difficulty = MinDifficulty
	}
	d := float64(r.FallDelay) / math.Exp(float64(level)*r.Decay) / float64(difficulty)
	if softDrop {
		d *= r.DownMultiplier
	}
	return time.Duration(d)
}
