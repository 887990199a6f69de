package core

import "math/rand"

// Generator hands out shapes using bag randomization: every bag holds each
// shape exactly once in shuffled order and is refilled only when empty.
type Generator struct {
	rng   *rand.Rand
	queue []Shape
	drawn uint64
}

// NewGenerator creates a generator seeded for deterministic sequences.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// refill appends a freshly shuffled bag (Fisher-Yates).
func (g *Generator) refill() {
	bag := AllShapes()
	for i := len(bag) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		bag[i], bag[j] = bag[j], bag[i]
	}
	g.queue = append(g.queue, bag...)
}

// Next removes and returns the next shape.
func (g *Generator) Next() Shape {
	if len(g.queue) == 0 {
		g.refill()
	}
	s := g.queue[0]
	g.queue = g.queue[1:]
	g.drawn++
	return s
}

// Peek returns the next n shapes without consuming them.
// Whole bags are appended as needed, so peeking never changes the sequence.
func (g *Generator) Peek(n int) []Shape {
	for len(g.queue) < n {
		g.refill()
	}
	out := make([]Shape, n)
	copy(out, g.queue[:n])
	return out
}
