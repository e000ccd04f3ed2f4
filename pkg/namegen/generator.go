package namegen

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode"
)

var (
	// ErrEmptyCorpus is returned when training is requested with no names.
	ErrEmptyCorpus = errors.New("namegen: empty corpus")
	// ErrUnseenContext is returned when sampling from a context that has no
	// recorded transitions.
	ErrUnseenContext = errors.New("namegen: unseen context")
	// ErrAttemptsExhausted is returned when a bounded request could not be
	// satisfied within its attempt budget.
	ErrAttemptsExhausted = errors.New("namegen: attempts exhausted")
	// ErrNotTrained is returned when generating from an untrained model.
	ErrNotTrained = errors.New("namegen: model not trained")
	// ErrSymbolExists is returned when adding a symbol already in the alphabet.
	ErrSymbolExists = errors.New("namegen: symbol already in alphabet")
	// ErrUnknownSymbol is returned for a symbol outside the alphabet.
	ErrUnknownSymbol = errors.New("namegen: symbol not in alphabet")
	// ErrReservedSymbol is returned when trying to remove the Terminator.
	ErrReservedSymbol = errors.New("namegen: terminator cannot be removed")
)

// Option configures a Generator.
type Option func(*generatorOptions)

type generatorOptions struct {
	symbols          []rune
	src              Source
	logger           *slog.Logger
	deadEndTerminate bool
}

// WithSymbols replaces the default a-z alphabet. Symbols are lowercased.
func WithSymbols(symbols ...rune) Option {
	return func(o *generatorOptions) { o.symbols = symbols }
}

// WithSource sets the random source used for every draw. Inject a fixed
// sequence here for deterministic output.
func WithSource(src Source) Option {
	return func(o *generatorOptions) { o.src = src }
}

// WithLogger sets the logger. By default, all logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *generatorOptions) { o.logger = logger }
}

// WithDeadEndTermination controls what happens when generation reaches a
// context with no recorded transitions. When enabled the name ends there, as if
// the Terminator had been drawn; otherwise ErrUnseenContext is returned.
// Default: false
func WithDeadEndTermination(terminate bool) Option {
	return func(o *generatorOptions) { o.deadEndTerminate = terminate }
}

// Generator is the training and generation entry point. It owns the alphabet,
// the trigram counts, the sampler and the set of names seen this session.
type Generator struct {
	alphabet         *Alphabet
	model            *TrigramModel
	sampler          *Sampler
	names            *nameTracker
	trained          bool
	deadEndTerminate bool
	logger           *slog.Logger
}

// NewGenerator returns an untrained Generator.
func NewGenerator(opts ...Option) *Generator {
	options := &generatorOptions{
		symbols: DefaultSymbols,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.src == nil {
		options.src = NewSource(0)
	}
	if options.logger == nil {
		options.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	symbols := make([]rune, len(options.symbols))
	for i, s := range options.symbols {
		symbols[i] = unicode.ToLower(s)
	}
	alphabet := NewAlphabet(symbols...)

	return &Generator{
		alphabet:         alphabet,
		model:            NewTrigramModel(alphabet),
		sampler:          NewSampler(options.src),
		names:            newNameTracker(),
		deadEndTerminate: options.deadEndTerminate,
		logger:           options.logger,
	}
}

// SetLogger sets the logger for the Generator. A nil logger is ignored.
func (g *Generator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// IsTrained reports whether the counts reflect a completed training call since
// the last reset.
func (g *Generator) IsTrained() bool {
	return g.trained
}

// Reset zeroes the counts, forgets the names generated this session and marks
// the generator untrained. The training corpus record is kept, so corpus names
// still count as taken.
func (g *Generator) Reset() {
	g.model.Reset()
	g.names.clearGenerated()
	g.trained = false
}

// Recognizes reports whether symbol (lowercased) is in the alphabet.
func (g *Generator) Recognizes(symbol rune) bool {
	return g.alphabet.Contains(unicode.ToLower(symbol))
}

// Symbols returns the alphabet in index order, Terminator included.
func (g *Generator) Symbols() []rune {
	return g.alphabet.Symbols()
}

// AddSymbol adds a symbol to the alphabet and resets the model, since every
// count depends on the alphabet's size and order.
func (g *Generator) AddSymbol(symbol rune) error {
	if err := g.alphabet.Add(unicode.ToLower(symbol)); err != nil {
		return err
	}
	g.Reset()
	g.logger.Debug("Symbol added, model reset", slog.String("symbol", string(symbol)))
	return nil
}

// RemoveSymbol removes a symbol from the alphabet and resets the model.
func (g *Generator) RemoveSymbol(symbol rune) error {
	if err := g.alphabet.Remove(unicode.ToLower(symbol)); err != nil {
		return err
	}
	g.Reset()
	g.logger.Debug("Symbol removed, model reset", slog.String("symbol", string(symbol)))
	return nil
}

// CountsFor returns a copy of the count row for the context (prev2, prev1),
// one entry per alphabet symbol in index order. Use Terminator for "no
// predecessor".
func (g *Generator) CountsFor(prev2, prev1 rune) ([]int, error) {
	p2 := g.alphabet.IndexOf(prev2)
	if p2 < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, prev2)
	}
	p1 := g.alphabet.IndexOf(prev1)
	if p1 < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, prev1)
	}
	row := g.model.Row(p2, p1)
	out := make([]int, len(row))
	copy(out, row)
	return out, nil
}
