package commands

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jask/tacostay/internal/catalog"
	"github.com/jask/tacostay/internal/config"
	"github.com/jask/tacostay/internal/database"
	"github.com/jask/tacostay/internal/database/repository"
)

func noop() {}

// openDB migrates and opens the sqlite catalog, seeding it from the built-in
// catalog when empty.
func openDB(ctx context.Context, st *state) (*sql.DB, error) {
	path := st.cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	builtin, err := catalog.Load(ctx, catalog.Builtin{})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := database.SeedCatalog(ctx, db, builtin); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	return db, nil
}

// loadCatalog reads the configured catalog source. The returned func releases
// whatever the source holds open.
func loadCatalog(ctx context.Context, st *state) (catalog.Catalog, func(), error) {
	var src catalog.Source
	closeFn := noop
	switch st.cfg.Catalog.Source {
	case config.SourceYAML:
		src = catalog.YAMLFile{Path: st.cfg.Catalog.Path}
	case config.SourceSQLite:
		db, err := openDB(ctx, st)
		if err != nil {
			return catalog.Catalog{}, noop, err
		}
		src = repository.NewCatalogSource(db)
		closeFn = func() { _ = db.Close() }
	default:
		src = catalog.Builtin{}
	}
	c, err := catalog.Load(ctx, src)
	if err != nil {
		closeFn()
		return catalog.Catalog{}, noop, fmt.Errorf("load %s catalog: %w", st.cfg.Catalog.Source, err)
	}
	return c, closeFn, nil
}
