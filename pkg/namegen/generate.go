package namegen

import (
	"fmt"
	"log/slog"
	"strings"
)

// GenerateName walks the chain from the start context, drawing one symbol at a
// time until the Terminator is drawn. The result may be empty if the
// Terminator comes first; that mirrors the trained distribution.
func (g *Generator) GenerateName() (string, error) {
	if !g.trained {
		return "", ErrNotTrained
	}

	var builder strings.Builder
	term := g.alphabet.IndexOf(Terminator)
	p2, p1 := term, term

	for {
		next, err := g.sampler.Choose(g.model.Row(p2, p1))
		if err != nil {
			if g.deadEndTerminate {
				g.logger.Debug("Generation terminated due to dead-end",
					slog.String("context", string([]rune{g.alphabet.label(p2), g.alphabet.label(p1)})),
					slog.Int("generated_length", builder.Len()),
				)
				break
			}
			return "", fmt.Errorf("after %q: %w", builder.String(), err)
		}
		if next == term {
			break
		}
		builder.WriteRune(g.alphabet.Symbol(next))
		p2, p1 = p1, next
	}

	return builder.String(), nil
}

// GenerateUniqueName draws at most maxAttempts names and returns the first one
// that is neither in the training corpus nor already generated, recording it
// as generated. If every draw collides it returns an empty string and
// ErrAttemptsExhausted; duplicates are never recorded.
func (g *Generator) GenerateUniqueName(maxAttempts int) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		name, err := g.GenerateName()
		if err != nil {
			return "", err
		}
		if g.names.has(name) {
			continue
		}
		g.names.addGenerated(name)
		return name, nil
	}

	g.logger.Debug("Unique generation gave up",
		slog.Int("max_attempts", maxAttempts),
		slog.Int("generated_names", len(g.names.generated)),
	)
	return "", fmt.Errorf("%w: no novel name in %d draws", ErrAttemptsExhausted, maxAttempts)
}

// MustGenerateUniqueName keeps drawing until a novel name appears. It only
// returns early on a model error, so on a degenerate model (e.g. one whose
// every output is already taken) it never returns. Prefer GenerateUniqueName.
func (g *Generator) MustGenerateUniqueName() (string, error) {
	for {
		name, err := g.GenerateName()
		if err != nil {
			return "", err
		}
		if !g.names.has(name) {
			g.names.addGenerated(name)
			return name, nil
		}
	}
}
