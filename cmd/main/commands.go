package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Endorrage/SoccerManager/pkg/corpus"
	"github.com/Endorrage/SoccerManager/pkg/namegen"
	"github.com/Endorrage/SoccerManager/pkg/roster"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

// nameList identifies which of the two configured name lists to use.
type nameList string

const (
	firstNames nameList = "first"
	lastNames  nameList = "last"
)

func (a *app) listSource(list nameList) (path, corpusName string, err error) {
	switch list {
	case firstNames:
		return a.config.FirstNamesPath, a.config.FirstCorpus, nil
	case lastNames:
		return a.config.LastNamesPath, a.config.LastCorpus, nil
	default:
		return "", "", fmt.Errorf("unknown name list %q, expected %q or %q", list, firstNames, lastNames)
	}
}

// loadList reads a name list from its configured file, or from the corpus store
// when no file is configured. lines selects one-name-per-line parsing.
func (a *app) loadList(ctx context.Context, list nameList, lines bool) ([]string, error) {
	path, corpusName, err := a.listSource(list)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if lines {
			return corpus.LoadLines(path)
		}
		return corpus.LoadNames(path)
	}
	store, err := a.corpusStore()
	if err != nil {
		return nil, err
	}
	return store.Names(ctx, corpusName)
}

// seed returns the configured seed shifted by offset, or 0 (clock seeded)
// when no seed is configured.
func (a *app) seed(offset uint64) uint64 {
	if a.config.Seed == 0 {
		return 0
	}
	return a.config.Seed + offset
}

// newGenerator builds and trains a generator on the given list.
func (a *app) newGenerator(ctx context.Context, list nameList, seedOffset uint64) (*namegen.Generator, error) {
	names, err := a.loadList(ctx, list, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s names: %w", list, err)
	}

	symbols := append([]rune{}, namegen.DefaultSymbols...)
	symbols = append(symbols, []rune(a.config.ExtraSymbols)...)
	gen := namegen.NewGenerator(
		namegen.WithSymbols(symbols...),
		namegen.WithSource(namegen.NewSource(a.seed(seedOffset))),
		namegen.WithLogger(a.logger.With(slog.String("list", string(list)))),
		namegen.WithDeadEndTermination(a.config.PruneBelow > 0),
	)
	if err = gen.TrainFromCorpus(names); err != nil {
		return nil, fmt.Errorf("failed to train on %s names: %w", list, err)
	}
	if a.config.PruneBelow > 0 {
		gen.Prune(a.config.PruneBelow)
	}
	return gen, nil
}

// emit writes results to --out atomically, or to the command's output.
func (a *app) emit(cmd *cobra.Command, results []string) error {
	if a.outPath == "" {
		for _, r := range results {
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}
		return nil
	}
	var data string
	if len(results) > 0 {
		data = strings.Join(results, "\n") + "\n"
	}
	if err := atomic.WriteFile(a.outPath, strings.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.outPath, err)
	}
	a.logger.Info("Results written", "path", a.outPath, "count", len(results))
	return nil
}

// checkCount rejects a negative --count before any model is trained.
func checkCount(count int) error {
	if count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", count)
	}
	return nil
}

func newGenerateCmd(a *app) *cobra.Command {
	var count int
	var list string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate novel single names from one name list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkCount(count); err != nil {
				return err
			}
			gen, err := a.newGenerator(cmd.Context(), nameList(list), 0)
			if err != nil {
				return err
			}

			names := make([]string, 0, count)
			for len(names) < count {
				name, err := gen.GenerateUniqueName(a.config.UniqueAttempts)
				if err != nil {
					if errors.Is(err, namegen.ErrAttemptsExhausted) {
						a.logger.Warn("Stopped early", "requested", count, "produced", len(names))
						if emitErr := a.emit(cmd, names); emitErr != nil {
							return emitErr
						}
					}
					return err
				}
				names = append(names, name)
			}
			return a.emit(cmd, names)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of names to generate")
	cmd.Flags().StringVar(&list, "list", string(firstNames), "name list to train on (first or last)")
	return cmd
}

func newPairsCmd(a *app) *cobra.Command {
	var count int
	var title bool

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Generate \"first last\" names from two trained models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkCount(count); err != nil {
				return err
			}
			first, err := a.newGenerator(cmd.Context(), firstNames, 0)
			if err != nil {
				return err
			}
			last, err := a.newGenerator(cmd.Context(), lastNames, 1)
			if err != nil {
				return err
			}

			opts := []roster.Option{roster.WithLogger(a.logger)}
			if title {
				opts = append(opts, roster.WithTitleCase())
			}
			composer := roster.NewComposer(first, last, opts...)

			pairs, err := composer.Pairs(count, a.config.MinNameLength, a.config.MaxNameLength, a.config.AttemptBudget)
			if emitErr := a.emit(cmd, pairs); emitErr != nil {
				return emitErr
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of pairs to generate")
	cmd.Flags().BoolVar(&title, "title", true, "capitalize each name part")
	return cmd
}

func newSampleCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Combine real first and last names drawn at random from the lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkCount(count); err != nil {
				return err
			}
			firsts, err := a.loadList(cmd.Context(), firstNames, true)
			if err != nil {
				return fmt.Errorf("failed to load first names: %w", err)
			}
			lasts, err := a.loadList(cmd.Context(), lastNames, true)
			if err != nil {
				return fmt.Errorf("failed to load last names: %w", err)
			}

			pairs, err := roster.Sample(namegen.NewSource(a.seed(0)), count, firsts, lasts)
			if err != nil {
				return err
			}
			return a.emit(cmd, pairs)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of pairs to sample")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Train on both name lists and print model statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lines []string
			for i, list := range []nameList{firstNames, lastNames} {
				gen, err := a.newGenerator(cmd.Context(), list, uint64(i))
				if err != nil {
					return err
				}
				s := gen.Stats()
				lines = append(lines,
					fmt.Sprintf("%s: corpus=%d symbols=%d contexts=%d transitions=%d total_frequency=%d starting_symbols=%d",
						list, s.CorpusNames, s.Symbols, s.Contexts, s.Transitions, s.TotalFrequency, s.StartingTokens),
				)
			}
			return a.emit(cmd, lines)
		},
	}
}

func newCorpusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Manage the name lists kept in the corpus database",
	}

	var lines bool
	importCmd := &cobra.Command{
		Use:   "import <corpus> <file>",
		Short: "Add the names in a text file to a stored corpus",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			read := corpus.LoadNames
			if lines {
				read = corpus.LoadLines
			}
			names, err := read(args[1])
			if err != nil {
				return err
			}
			store, err := a.corpusStore()
			if err != nil {
				return err
			}
			added, err := store.AddNames(cmd.Context(), args[0], names)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %d of %d names to %s\n", added, len(names), args[0])
			return nil
		},
	}
	importCmd.Flags().BoolVar(&lines, "lines", false, "read one name per line instead of whitespace-delimited tokens")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored corpora",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.corpusStore()
			if err != nil {
				return err
			}
			corpora, err := store.Corpora(cmd.Context())
			if err != nil {
				return err
			}
			out := make([]string, 0, len(corpora))
			for _, c := range corpora {
				out = append(out, fmt.Sprintf("%s\t%d", c.Name, c.Size))
			}
			return a.emit(cmd, out)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <corpus>",
		Short: "Delete a stored corpus and its names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.corpusStore()
			if err != nil {
				return err
			}
			return store.RemoveCorpus(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(importCmd, listCmd, removeCmd)
	return cmd
}
