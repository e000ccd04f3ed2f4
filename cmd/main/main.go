package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/Endorrage/SoccerManager/pkg/corpus"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// app carries the state shared by every command.
type app struct {
	configPath string
	outPath    string
	config     *Config
	logger     *slog.Logger
	db         *sql.DB
	store      *corpus.Store
}

// corpusStore opens the corpus database on first use.
func (a *app) corpusStore() (*corpus.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	db, store, err := openStore(a.config.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize corpus store: %w", err)
	}
	store.SetLogger(a.logger)
	a.db, a.store = db, store
	return store, nil
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("Failed to close database", "error", err)
		}
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "namegen",
		Short:         "Generate player and club names from trigram statistics of real names",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(a.configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			a.config = config
			a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.Level()}))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "./namegen.json", "path to the JSON config file")
	root.PersistentFlags().StringVarP(&a.outPath, "out", "o", "", "write results to this file instead of stdout")

	root.AddCommand(
		newGenerateCmd(a),
		newPairsCmd(a),
		newSampleCmd(a),
		newStatsCmd(a),
		newCorpusCmd(a),
	)
	return root
}

func main() {
	a := &app{}
	err := newRootCmd(a).ExecuteContext(context.Background())
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
