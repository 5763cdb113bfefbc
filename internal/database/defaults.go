package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/tacostay/internal/catalog"
	"github.com/jask/tacostay/internal/database/repository"
)

// SeedCatalog loads c into an empty database. It is idempotent and safe to
// run on every startup: a database that already has sitters is left alone.
func SeedCatalog(ctx context.Context, db *sql.DB, c catalog.Catalog) error {
	n, err := repository.NewSitterRepo(db).Count(ctx)
	if err != nil {
		return fmt.Errorf("count sitters: %w", err)
	}
	if n > 0 {
		return nil
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		return InsertCatalog(ctx, tx, c)
	})
}

// InsertCatalog writes every sitter and pulse event in catalog order.
func InsertCatalog(ctx context.Context, q repository.DBTX, c catalog.Catalog) error {
	sitters := repository.NewSitterRepo(q)
	for i, s := range c.Sitters {
		if err := sitters.Upsert(ctx, s, i); err != nil {
			return fmt.Errorf("seed sitter %d: %w", s.ID, err)
		}
	}
	events := repository.NewPulseEventRepo(q)
	for i, e := range c.Events {
		if err := events.Insert(ctx, i, e); err != nil {
			return fmt.Errorf("seed pulse event %d: %w", i, err)
		}
	}
	return nil
}
