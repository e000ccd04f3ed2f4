package namegen

import (
	"sort"
	"strings"
)

// nameTracker holds the two name sets used for uniqueness checks: names the
// model was trained on, and names accepted during the current session.
type nameTracker struct {
	corpus    map[string]struct{}
	generated map[string]struct{}
}

func newNameTracker() *nameTracker {
	return &nameTracker{
		corpus:    make(map[string]struct{}),
		generated: make(map[string]struct{}),
	}
}

func (t *nameTracker) addCorpus(name string) {
	t.corpus[name] = struct{}{}
}

func (t *nameTracker) addGenerated(name string) {
	t.generated[name] = struct{}{}
}

func (t *nameTracker) has(name string) bool {
	if _, ok := t.corpus[name]; ok {
		return true
	}
	_, ok := t.generated[name]
	return ok
}

func (t *nameTracker) clearGenerated() {
	t.generated = make(map[string]struct{})
}

// HasName reports whether name (lowercased) is part of the training corpus or
// has already been generated or added this session.
func (g *Generator) HasName(name string) bool {
	return g.names.has(strings.ToLower(name))
}

// AddName records an externally sourced name so that later unique generation
// will not produce it.
func (g *Generator) AddName(name string) {
	g.names.addGenerated(strings.ToLower(name))
}

// GeneratedNames returns a sorted snapshot of the names accepted this session.
func (g *Generator) GeneratedNames() []string {
	names := make([]string, 0, len(g.names.generated))
	for name := range g.names.generated {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
