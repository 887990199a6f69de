// Package highscore reads and writes the legacy plain-text high score file:
// up to ten whitespace-separated numbers, best first.
package highscore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Size is the number of entries in a table.
const Size = 10

// DefaultFile is the file name the legacy game read from its working directory.
const DefaultFile = "highscores.txt"

// Table holds the best scores in descending order. Empty slots are zero.
type Table struct {
	scores [Size]int
}

// FromScores builds a table from arbitrary scores, keeping the best Size.
func FromScores(scores []int) Table {
	var t Table
	for _, s := range scores {
		t.Insert(s)
	}
	return t
}

// Scores returns the entries, best first, always Size long.
func (t Table) Scores() []int {
	out := make([]int, Size)
	copy(out, t.scores[:])
	return out
}

// Best returns the top score, or 0 for an empty table.
func (t Table) Best() int {
	return t.scores[0]
}

// Qualifies reports whether score would enter the table.
func (t Table) Qualifies(score int) bool {
	return score > 0 && score > t.scores[Size-1]
}

// Insert places score in the table and returns its 1-based rank.
// Returns 0 if the score does not qualify.
func (t *Table) Insert(score int) int {
	if !t.Qualifies(score) {
		return 0
	}
	i := 0
	for i < Size && t.scores[i] >= score {
		i++
	}
	copy(t.scores[i+1:], t.scores[i:Size-1])
	t.scores[i] = score
	return i + 1
}

// Parse reads whitespace-separated numbers. Reading stops at the first token
// that is not a number or after Size entries. Fractions are truncated and
// negative values dropped. The result is sorted best first.
func Parse(r io.Reader) (Table, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var scores []int
	for len(scores) < Size && sc.Scan() {
		f, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			break
		}
		scores = append(scores, int(f))
	}
	if err := sc.Err(); err != nil {
		return Table{}, fmt.Errorf("highscore: read: %w", err)
	}

	slices.Sort(scores)
	slices.Reverse(scores)
	var t Table
	for i, s := range scores {
		t.scores[i] = max(s, 0)
	}
	return t, nil
}

// Load reads a table from path. A missing file yields an empty table.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Table{}, nil
	}
	if err != nil {
		return Table{}, fmt.Errorf("highscore: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// WriteTo writes one score per line, best first.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, s := range t.scores {
		sb.WriteString(strconv.Itoa(s))
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// Save writes the table to path through a temporary file in the same
// directory, so readers never see a partial file.
func Save(path string, t Table) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".highscores-*")
	if err != nil {
		return fmt.Errorf("highscore: create temp: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after rename

	if _, err := t.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("highscore: rename: %w", err)
	}
	return nil
}
