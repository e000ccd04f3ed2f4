package namegen

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Endorrage/SoccerManager/pkg/corpus"
)

// TrainFromCorpus folds every name into the trigram counts and records the
// lowercased names in the training set. Training is additive: calling it again
// adds to the existing counts.
func (g *Generator) TrainFromCorpus(names []string) error {
	if len(names) == 0 {
		return ErrEmptyCorpus
	}

	var transitions int
	for _, name := range names {
		transitions += g.model.Train(name)
		g.names.addCorpus(strings.ToLower(name))
	}
	g.trained = true

	g.logger.Info("Training completed",
		slog.Int("names_processed", len(names)),
		slog.Int("transitions_recorded", transitions),
		slog.Int("alphabet_size", g.alphabet.Len()),
	)
	return nil
}

// TrainFromReader reads whitespace-delimited names from r and trains on them.
func (g *Generator) TrainFromReader(r io.Reader) error {
	names, err := corpus.ReadNames(r)
	if err != nil {
		return fmt.Errorf("could not read training names: %w", err)
	}
	return g.TrainFromCorpus(names)
}
