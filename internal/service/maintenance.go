package service

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/tacostay/internal/catalog"
	"github.com/jask/tacostay/internal/database"
)

// MaintenanceService houses destructive catalog operations surfaced through the CLI.
type MaintenanceService struct {
	DB  *sql.DB
	Log *zap.Logger
}

// Reseed wipes the sqlite catalog and loads c in its place. The schema is kept.
func (s *MaintenanceService) Reseed(ctx context.Context, c catalog.Catalog) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		tables := []string{
			"sitter_tags",
			"pulse_events",
			"sitters",
		}
		for _, t := range tables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return database.InsertCatalog(ctx, tx, c)
	})
	if err != nil {
		return err
	}
	if s.Log != nil {
		s.Log.Info("catalog reseeded", zap.Int("sitters", len(c.Sitters)), zap.Int("pulse_events", len(c.Events)))
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
