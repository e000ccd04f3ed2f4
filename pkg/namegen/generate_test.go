package namegen

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

func TestGenerateNameGolden(t *testing.T) {
	g := setupTrained(t, []string{"ana", "anna", "anya"}, WithSource(midpointSource{}))

	// (T,T)->a, (T,a)->n, (a,n) picks n from {a,n,y}, (n,n)->a, (n,a)->T.
	for i := 0; i < 3; i++ {
		name, err := g.GenerateName()
		if err != nil {
			t.Fatalf("GenerateName() failed: %v", err)
		}
		if name != "anna" {
			t.Errorf("GenerateName() call %d = %q, want %q", i, name, "anna")
		}
	}
}

func TestGenerateNameUsesAlphabet(t *testing.T) {
	g := setupTrained(t, append([]string{"O'Brien", "Jean-Luc", "MÜLLER"}, testCorpus...), WithSource(NewSource(7)))

	for i := 0; i < 200; i++ {
		name, err := g.GenerateName()
		if err != nil {
			t.Fatalf("GenerateName() failed: %v", err)
		}
		for _, r := range name {
			if r == Terminator || !g.Recognizes(r) {
				t.Fatalf("generated name %q contains symbol %q outside the alphabet", name, r)
			}
		}
	}
}

func TestGenerateNameNotTrained(t *testing.T) {
	g := NewGenerator()
	if _, err := g.GenerateName(); !errors.Is(err, ErrNotTrained) {
		t.Errorf("expected ErrNotTrained, got %v", err)
	}
}

func TestGenerateNameEmpty(t *testing.T) {
	// A name with no recognized symbols teaches (T,T)->T.
	g := setupTrained(t, []string{"123"}, WithSource(midpointSource{}))
	name, err := g.GenerateName()
	if err != nil {
		t.Fatalf("GenerateName() failed: %v", err)
	}
	if name != "" {
		t.Errorf("expected an empty name, got %q", name)
	}
}

// abScript drives a model trained on "ab" and "abab" through the outputs
// "ab", "abab" and finally "ababab".
var abScript = []int{0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1}

func TestGenerateUniqueName(t *testing.T) {
	g := setupTrained(t, []string{"ab", "abab"}, WithSource(&scriptedSource{draws: abScript}))

	name, err := g.GenerateUniqueName(3)
	if err != nil {
		t.Fatalf("GenerateUniqueName(3) failed: %v", err)
	}
	if name != "ababab" {
		t.Errorf("GenerateUniqueName(3) = %q, want %q", name, "ababab")
	}
	if !g.HasName("ababab") {
		t.Error("expected the accepted name to be recorded")
	}
	if got := g.GeneratedNames(); !reflect.DeepEqual(got, []string{"ababab"}) {
		t.Errorf("GeneratedNames() = %v, want [ababab]", got)
	}
}

func TestGenerateUniqueNameExhausted(t *testing.T) {
	testCases := []struct {
		name        string
		corpus      []string
		src         Source
		maxAttempts int
	}{
		{
			name:        "Deterministic source only reproduces a corpus name",
			corpus:      []string{"ana", "anna", "anya"},
			src:         midpointSource{},
			maxAttempts: 25,
		},
		{
			name:        "Budget one short of a novel name",
			corpus:      []string{"ab", "abab"},
			src:         &scriptedSource{draws: abScript},
			maxAttempts: 2,
		},
		{
			name:        "Zero budget",
			corpus:      []string{"ab"},
			src:         midpointSource{},
			maxAttempts: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := setupTrained(t, tc.corpus, WithSource(tc.src))
			name, err := g.GenerateUniqueName(tc.maxAttempts)
			if !errors.Is(err, ErrAttemptsExhausted) {
				t.Fatalf("expected ErrAttemptsExhausted, got name %q and error %v", name, err)
			}
			if name != "" {
				t.Errorf("expected no name on exhaustion, got %q", name)
			}
			if got := g.GeneratedNames(); len(got) != 0 {
				t.Errorf("expected no recorded names after exhaustion, got %v", got)
			}
		})
	}
}

func TestGenerateUniqueNameNovelty(t *testing.T) {
	g := setupTrained(t, testCorpus, WithSource(NewSource(2024)))

	corpus := make(map[string]bool, len(testCorpus))
	for _, name := range testCorpus {
		corpus[strings.ToLower(name)] = true
	}

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		name, err := g.GenerateUniqueName(1000)
		if err != nil {
			t.Fatalf("GenerateUniqueName() failed after %d names: %v", i, err)
		}
		if corpus[name] {
			t.Errorf("generated name %q is a corpus name", name)
		}
		if seen[name] {
			t.Errorf("generated name %q twice", name)
		}
		seen[name] = true
	}
	if got := len(g.GeneratedNames()); got != 25 {
		t.Errorf("expected 25 recorded names, got %d", got)
	}
}

func TestMustGenerateUniqueName(t *testing.T) {
	g := setupTrained(t, []string{"ab", "abab"}, WithSource(&scriptedSource{draws: abScript}))
	name, err := g.MustGenerateUniqueName()
	if err != nil {
		t.Fatalf("MustGenerateUniqueName() failed: %v", err)
	}
	if name != "ababab" {
		t.Errorf("MustGenerateUniqueName() = %q, want %q", name, "ababab")
	}
}

func TestGenerateDeadEnd(t *testing.T) {
	corpus := []string{"abc", "abd"}

	t.Run("Unseen context is reported", func(t *testing.T) {
		g := setupTrained(t, corpus, WithSource(midpointSource{}))
		g.Prune(1)
		_, err := g.GenerateName()
		if !errors.Is(err, ErrUnseenContext) {
			t.Errorf("expected ErrUnseenContext after pruning, got %v", err)
		}
		if _, err = g.GenerateUniqueName(5); !errors.Is(err, ErrUnseenContext) {
			t.Errorf("expected GenerateUniqueName to surface ErrUnseenContext, got %v", err)
		}
	})

	t.Run("Dead end terminates the name", func(t *testing.T) {
		g := setupTrained(t, corpus, WithSource(midpointSource{}), WithDeadEndTermination(true))
		g.Prune(1)
		name, err := g.GenerateName()
		if err != nil {
			t.Fatalf("GenerateName() failed: %v", err)
		}
		if name != "ab" {
			t.Errorf("expected generation to stop at the dead end with %q, got %q", "ab", name)
		}
	})

	t.Run("Dead end at the start is logged readably", func(t *testing.T) {
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
		g := setupTrained(t, []string{"a", "a", "ab"},
			WithSource(midpointSource{}), WithDeadEndTermination(true), WithLogger(logger))

		// Only (^,^)->a survives, leaving the (^,a) context empty.
		if cleared := g.Prune(2); cleared != 3 {
			t.Fatalf("Prune(2) cleared %d cells, want 3", cleared)
		}
		name, err := g.GenerateName()
		if err != nil {
			t.Fatalf("GenerateName() failed: %v", err)
		}
		if name != "a" {
			t.Errorf("GenerateName() = %q, want %q", name, "a")
		}

		out := logs.String()
		if !strings.Contains(out, "context=^a") {
			t.Errorf("expected the dead-end context to be logged as ^a, got:\n%s", out)
		}
		if strings.ContainsRune(out, Terminator) || strings.Contains(out, `\x00`) {
			t.Errorf("log output contains a raw terminator:\n%s", out)
		}
	})
}

func BenchmarkGenerateName(b *testing.B) {
	g := setupTrained(b, testCorpus, WithSource(NewSource(1)))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.GenerateName(); err != nil {
			b.Fatalf("GenerateName() failed: %v", err)
		}
	}
}
