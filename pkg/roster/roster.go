// Package roster composes "first last" names for squads, either by drawing
// from two trained name generators or by sampling two literal name lists.
package roster

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/Endorrage/SoccerManager/pkg/namegen"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNegativeCount is returned when a negative number of pairs is requested.
var ErrNegativeCount = errors.New("roster: negative pair count")

// NameSource produces one candidate name per call. *namegen.Generator
// satisfies it.
type NameSource interface {
	GenerateName() (string, error)
}

// Option configures a Composer.
type Option func(*Composer)

// WithTitleCase capitalizes each generated name part before joining, turning
// "marco rossi" into "Marco Rossi".
func WithTitleCase() Option {
	return func(c *Composer) {
		c.caser = cases.Title(language.Und)
		c.titleCase = true
	}
}

// WithLogger sets the logger. By default, all logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Composer builds pairs from two independent name sources.
type Composer struct {
	first     NameSource
	last      NameSource
	caser     cases.Caser
	titleCase bool
	logger    *slog.Logger
}

// NewComposer returns a Composer drawing first names from first and last
// names from last.
func NewComposer(first, last NameSource, opts ...Option) *Composer {
	c := &Composer{
		first:  first,
		last:   last,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pairs draws count "first last" names. Every draw from either source counts
// against budget, and names whose length in runes falls outside
// [minLength, maxLength] are rejected. If the budget runs out first, the pairs
// built so far are returned together with namegen.ErrAttemptsExhausted; the
// result is never padded. A negative count yields ErrNegativeCount.
func (c *Composer) Pairs(count, minLength, maxLength, budget int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	pairs := make([]string, 0, count)
	attempts := 0

	draw := func(src NameSource) (string, bool, error) {
		for attempts < budget {
			attempts++
			name, err := src.GenerateName()
			if err != nil {
				return "", false, err
			}
			if n := utf8.RuneCountInString(name); n >= minLength && n <= maxLength {
				return c.format(name), true, nil
			}
		}
		return "", false, nil
	}

	for len(pairs) < count {
		first, ok, err := draw(c.first)
		if err != nil {
			return pairs, fmt.Errorf("drawing first name: %w", err)
		}
		if !ok {
			break
		}
		last, ok, err := draw(c.last)
		if err != nil {
			return pairs, fmt.Errorf("drawing last name: %w", err)
		}
		if !ok {
			break
		}
		pairs = append(pairs, first+" "+last)
	}

	if len(pairs) < count {
		c.logger.Warn("Pair generation ran out of attempts",
			slog.Int("requested", count),
			slog.Int("produced", len(pairs)),
			slog.Int("budget", budget),
		)
		return pairs, fmt.Errorf("%w: produced %d of %d pairs", namegen.ErrAttemptsExhausted, len(pairs), count)
	}
	return pairs, nil
}

func (c *Composer) format(name string) string {
	if !c.titleCase {
		return name
	}
	return c.caser.String(name)
}

// Sample draws count pairs uniformly, with replacement, from the literal lists
// firsts and lasts. Every result already exists verbatim in the lists. Either
// list being empty yields namegen.ErrEmptyCorpus, and a negative count
// yields ErrNegativeCount.
func Sample(src namegen.Source, count int, firsts, lasts []string) ([]string, error) {
	if len(firsts) == 0 || len(lasts) == 0 {
		return nil, namegen.ErrEmptyCorpus
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}

	pairs := make([]string, count)
	for i := range pairs {
		pairs[i] = firsts[src.IntN(len(firsts))] + " " + lasts[src.IntN(len(lasts))]
	}
	return pairs, nil
}
