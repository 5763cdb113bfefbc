package service

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jask/tacostay/internal/catalog"
	"github.com/jask/tacostay/internal/database"
	"github.com/jask/tacostay/internal/database/repository"
)

func TestLengthVerifier(t *testing.T) {
	t.Parallel()
	var v LengthVerifier
	require.False(t, v.Verify("98765", "000"))
	require.True(t, v.Verify("98765", "0000"))
	require.True(t, v.Verify("", "abcd"))
	require.False(t, v.Verify("98765", "00000"))
}

func TestLocalVaultHoldAndRelease(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	v := NewLocalVault(zaptest.NewLogger(t))

	h, err := v.Hold(ctx, 2, 4124)
	require.NoError(t, err)
	require.NotEmpty(t, h.Reference)
	require.Equal(t, int64(4124), h.Amount)
	require.False(t, h.Released)

	h2, err := v.Hold(ctx, 2, 4124)
	require.NoError(t, err)
	require.NotEqual(t, h.Reference, h2.Reference)

	require.NoError(t, v.Release(ctx, h.Reference))
	got, ok := v.Lookup(h.Reference)
	require.True(t, ok)
	require.True(t, got.Released)
	require.NoError(t, v.Release(ctx, h.Reference), "release is idempotent")

	require.ErrorIs(t, v.Release(ctx, "missing"), ErrUnknownHold)
}

func TestMaintenanceReseed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	full, err := catalog.Load(ctx, catalog.Builtin{})
	require.NoError(t, err)
	require.NoError(t, database.SeedCatalog(ctx, db, full))

	smaller := catalog.Catalog{Sitters: full.Sitters[:1], Events: full.Events[:3]}
	svc := &MaintenanceService{DB: db, Log: zaptest.NewLogger(t)}
	require.NoError(t, svc.Reseed(ctx, smaller))

	got, err := catalog.Load(ctx, repository.NewCatalogSource(db))
	require.NoError(t, err)
	require.Equal(t, smaller, got)

	require.Error(t, svc.Reseed(ctx, catalog.Catalog{}))
	require.Error(t, (&MaintenanceService{}).Reseed(ctx, full))
}

func TestReseedAcceptsLowercaseYAMLTiers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var buf bytes.Buffer
	require.NoError(t, catalog.WriteYAML(&buf, catalog.Catalog{Sitters: catalog.BuiltinSitters(), Events: catalog.BuiltinPulseEvents()}))
	doc := strings.ReplaceAll(buf.String(), "tier: Elite", "tier: elite")
	require.NotEqual(t, buf.String(), doc)

	c, err := catalog.ReadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	svc := &MaintenanceService{DB: db, Log: zaptest.NewLogger(t)}
	require.NoError(t, svc.Reseed(ctx, c))

	got, err := catalog.Load(ctx, repository.NewCatalogSource(db))
	require.NoError(t, err)
	require.Equal(t, catalog.TierElite, got.Sitters[0].Tier)

	// a catalog built in code must already use the catalog spelling
	raw := catalog.Catalog{Sitters: catalog.BuiltinSitters()}
	raw.Sitters[0].Tier = "elite"
	err = svc.Reseed(ctx, raw)
	require.ErrorContains(t, err, "unknown tier")
}
