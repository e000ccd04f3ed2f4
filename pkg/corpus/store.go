package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrCorpusNotFound is returned when a named corpus does not exist in the store.
var ErrCorpusNotFound = errors.New("corpus: not found")

// Info holds the metadata for one stored corpus.
type Info struct {
	Id   int
	Name string
	Size int
}

// SetupSchema initializes the corpus tables in the provided database. It is
// idempotent and safe to call on an already-initialized database.
func SetupSchema(db *sql.DB) error {

	const (
		schemaCorpora = `
CREATE TABLE IF NOT EXISTS corpora (
    corpus_id INTEGER PRIMARY KEY,
    corpus_name TEXT NOT NULL UNIQUE
);
`
		schemaNames = `
CREATE TABLE IF NOT EXISTS corpus_names (
    name_id INTEGER PRIMARY KEY,
    corpus_id INTEGER NOT NULL,
    name_text TEXT NOT NULL,
    UNIQUE (corpus_id, name_text)
);
`
	)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schemaCorpora); err != nil {
		return fmt.Errorf("could not create corpora schema: %w", err)
	}

	if _, err = tx.Exec(schemaNames); err != nil {
		return fmt.Errorf("could not create names schema: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	return nil
}

// Store keeps named name lists in a SQLite database. It holds prepared
// statements for the common lookups.
type Store struct {
	db                    *sql.DB
	stmtGetCorpusID       *sql.Stmt
	stmtGetOrInsertCorpus *sql.Stmt
	stmtInsertName        *sql.Stmt
	stmtGetNames          *sql.Stmt
	stmtGetCorpora        *sql.Stmt
	logger                *slog.Logger
}

// NewStore pre-compiles the store's SQL statements. SetupSchema must have been
// called on db first.
func NewStore(db *sql.DB) (*Store, error) {
	stmtGetCorpusID, err := db.Prepare(`SELECT corpus_id FROM corpora WHERE corpus_name = ?;`)
	if err != nil {
		return nil, err
	}

	stmtGetOrInsertCorpus, err := db.Prepare(`INSERT INTO corpora (corpus_name) VALUES (?) ON CONFLICT(corpus_name) DO UPDATE SET corpus_name=excluded.corpus_name RETURNING corpus_id;`)
	if err != nil {
		return nil, err
	}

	stmtInsertName, err := db.Prepare(`INSERT OR IGNORE INTO corpus_names (corpus_id, name_text) VALUES (?, ?);`)
	if err != nil {
		return nil, err
	}

	stmtGetNames, err := db.Prepare(`SELECT name_text FROM corpus_names WHERE corpus_id = ? ORDER BY name_id;`)
	if err != nil {
		return nil, err
	}

	stmtGetCorpora, err := db.Prepare(`
SELECT c.corpus_id, c.corpus_name, COUNT(n.name_id)
FROM corpora c LEFT JOIN corpus_names n ON n.corpus_id = c.corpus_id
GROUP BY c.corpus_id, c.corpus_name
ORDER BY c.corpus_name;`)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:                    db,
		stmtGetCorpusID:       stmtGetCorpusID,
		stmtGetOrInsertCorpus: stmtGetOrInsertCorpus,
		stmtInsertName:        stmtInsertName,
		stmtGetNames:          stmtGetNames,
		stmtGetCorpora:        stmtGetCorpora,
		logger:                slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// Close releases all prepared statements held by the Store.
func (s *Store) Close() {
	_ = s.stmtGetCorpusID.Close()
	_ = s.stmtGetOrInsertCorpus.Close()
	_ = s.stmtInsertName.Close()
	_ = s.stmtGetNames.Close()
	_ = s.stmtGetCorpora.Close()
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// CreateCorpus makes sure an empty corpus with the given name exists and
// returns its ID. An existing corpus is left untouched.
func (s *Store) CreateCorpus(ctx context.Context, corpusName string) (int, error) {
	var corpusID int
	if err := s.stmtGetOrInsertCorpus.QueryRowContext(ctx, corpusName).Scan(&corpusID); err != nil {
		return 0, fmt.Errorf("failed to get or insert corpus '%s': %w", corpusName, err)
	}
	return corpusID, nil
}

// AddNames appends names to the named corpus, creating the corpus if needed.
// Names already in the corpus are skipped. It returns how many were added.
// The operation is performed within a single transaction.
func (s *Store) AddNames(ctx context.Context, corpusName string, names []string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	var corpusID int
	if err = tx.StmtContext(ctx, s.stmtGetOrInsertCorpus).QueryRowContext(ctx, corpusName).Scan(&corpusID); err != nil {
		return 0, fmt.Errorf("failed to get or insert corpus '%s': %w", corpusName, err)
	}

	stmtInsertName := tx.StmtContext(ctx, s.stmtInsertName)
	added := 0
	for _, name := range names {
		res, err := stmtInsertName.ExecContext(ctx, corpusID, name)
		if err != nil {
			return 0, fmt.Errorf("failed to insert name '%s': %w", name, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to count inserted name '%s': %w", name, err)
		}
		added += int(n)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("could not commit names: %w", err)
	}

	s.logger.InfoContext(ctx, "Names added to corpus",
		slog.String("corpus_name", corpusName),
		slog.Int("corpus_id", corpusID),
		slog.Int("names_offered", len(names)),
		slog.Int("names_added", added),
	)
	return added, nil
}

// Names returns the names in the named corpus in insertion order.
func (s *Store) Names(ctx context.Context, corpusName string) ([]string, error) {
	corpusID, err := s.corpusID(ctx, corpusName)
	if err != nil {
		return nil, err
	}

	rows, err := s.stmtGetNames.QueryContext(ctx, corpusID)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Corpora returns metadata for every stored corpus, ordered by name.
func (s *Store) Corpora(ctx context.Context) ([]Info, error) {
	rows, err := s.stmtGetCorpora.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var corpora []Info
	for rows.Next() {
		var info Info
		if err = rows.Scan(&info.Id, &info.Name, &info.Size); err != nil {
			return nil, err
		}
		corpora = append(corpora, info)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return corpora, nil
}

// RemoveCorpus deletes a corpus and all of its names. The operation is
// performed within a transaction.
func (s *Store) RemoveCorpus(ctx context.Context, corpusName string) error {
	corpusID, err := s.corpusID(ctx, corpusName)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.ExecContext(ctx, "DELETE FROM corpus_names WHERE corpus_id = ?", corpusID); err != nil {
		return fmt.Errorf("failed to remove names for corpus %d: %w", corpusID, err)
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM corpora WHERE corpus_id = ?", corpusID); err != nil {
		return fmt.Errorf("failed to remove corpus %d: %w", corpusID, err)
	}

	s.logger.InfoContext(ctx, "Corpus removed successfully",
		slog.String("corpus_name", corpusName),
		slog.Int("corpus_id", corpusID),
	)

	return tx.Commit()
}

func (s *Store) corpusID(ctx context.Context, corpusName string) (int, error) {
	var corpusID int
	err := s.stmtGetCorpusID.QueryRowContext(ctx, corpusName).Scan(&corpusID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: '%s'", ErrCorpusNotFound, corpusName)
	}
	if err != nil {
		return 0, fmt.Errorf("could not look up corpus '%s': %w", corpusName, err)
	}
	return corpusID, nil
}
