package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Endorrage/SoccerManager/pkg/corpus"
)

// openStore opens the corpus database with the driver selected at build time
// and makes sure the schema exists.
func openStore(dataSource string) (*sql.DB, *corpus.Store, error) {
	path, _, _ := strings.Cut(dataSource, "?")
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open(sqlDriver, dataSource)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	if err = corpus.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	store, err := corpus.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("prepare corpus store: %w", err)
	}
	return db, store, nil
}
