package namegen

import (
	"testing"
)

// midpointSource always returns the middle of the requested range.
type midpointSource struct{}

func (midpointSource) IntN(n int) int { return n / 2 }

// scriptedSource replays a fixed list of draws, wrapping around at the end.
// Each value is reduced modulo the requested range.
type scriptedSource struct {
	draws []int
	next  int
}

func (s *scriptedSource) IntN(n int) int {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v % n
}

// testCorpus is a small realistic list of first names.
var testCorpus = []string{
	"Marco", "Luca", "Giovanni", "Paolo", "Andrea", "Francesco", "Alessandro",
	"Matteo", "Lorenzo", "Davide", "Simone", "Federico", "Riccardo", "Stefano",
	"Roberto", "Antonio", "Giuseppe", "Fabio", "Emanuele", "Daniele", "Nicola",
	"Pietro", "Tommaso", "Gabriele", "Filippo", "Edoardo", "Leonardo", "Michele",
}

// setupTrained returns a generator trained on names with the given options.
func setupTrained(t testing.TB, names []string, opts ...Option) *Generator {
	t.Helper()
	g := NewGenerator(opts...)
	if err := g.TrainFromCorpus(names); err != nil {
		t.Fatalf("setup: TrainFromCorpus() failed: %v", err)
	}
	return g
}

// snapshotCounts copies every row of the generator's count table.
func snapshotCounts(t *testing.T, g *Generator) map[[2]rune][]int {
	t.Helper()
	rows := make(map[[2]rune][]int)
	for _, p2 := range g.Symbols() {
		for _, p1 := range g.Symbols() {
			row, err := g.CountsFor(p2, p1)
			if err != nil {
				t.Fatalf("CountsFor(%q, %q) failed: %v", p2, p1, err)
			}
			rows[[2]rune{p2, p1}] = row
		}
	}
	return rows
}
