package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/tacostay/internal/catalog"
)

// isolate points HOME and every config lookup at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TACOSTAY_CONFIG", filepath.Join(home, "config.toml"))
	return home
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestQuoteCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "quote", "--tier", "Elite", "--addon")
	require.NoError(t, err)
	require.Contains(t, out, "Elite Stay × 3 nights")
	require.Contains(t, out, "Active Care Package")
	require.Contains(t, out, "₹5,324")

	out, err = run(t, "quote", "--tier", "daycare")
	require.NoError(t, err)
	require.Contains(t, out, "₹599")
	require.NotContains(t, out, "medical insurance")

	_, err = run(t, "quote", "--tier", "gold")
	require.ErrorContains(t, err, `unknown tier "gold"`)
}

func TestCatalogCommandFilters(t *testing.T) {
	isolate(t)
	out, err := run(t, "catalog", "--tier", "elite")
	require.NoError(t, err)
	require.Contains(t, out, "Priya Menon")
	require.Contains(t, out, "Sneha Iyer")
	require.NotContains(t, out, "Arjun Kapoor")

	out, err = run(t, "catalog", "--search", "prija")
	require.NoError(t, err)
	require.Contains(t, out, "Priya Menon")
	require.NotContains(t, out, "Sneha Iyer")

	out, err = run(t, "catalog", "--tier", "classic", "--search", "priya")
	require.NoError(t, err)
	require.Contains(t, out, "No sitters match.")
}

func TestExportFeedsYAMLSource(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "catalog.yaml")
	out, err := run(t, "catalog", "export", "--out", path)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote 3 sitters")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	trimmed := strings.Replace(string(raw), "Arjun Kapoor", "Arjun K", 1)
	require.NoError(t, os.WriteFile(path, []byte(trimmed), 0o644))

	t.Setenv("TACOSTAY_CATALOG_SOURCE", "yaml")
	t.Setenv("TACOSTAY_CATALOG_PATH", path)
	out, err = run(t, "catalog")
	require.NoError(t, err)
	require.Contains(t, out, "Arjun K")
	require.NotContains(t, out, "Arjun Kapoor")
}

func TestSQLiteSourceAndReseed(t *testing.T) {
	home := isolate(t)
	t.Setenv("TACOSTAY_CATALOG_SOURCE", "sqlite")

	out, err := run(t, "catalog")
	require.NoError(t, err)
	require.Contains(t, out, "Arjun Kapoor")

	c, err := catalog.Load(context.Background(), catalog.Builtin{})
	require.NoError(t, err)
	c.Sitters = c.Sitters[:1]
	var buf bytes.Buffer
	require.NoError(t, catalog.WriteYAML(&buf, c))
	from := filepath.Join(home, "one.yaml")
	require.NoError(t, os.WriteFile(from, buf.Bytes(), 0o644))

	out, err = run(t, "catalog", "reseed", "--from", from)
	require.NoError(t, err)
	require.Contains(t, out, "with 1 sitters")

	out, err = run(t, "catalog")
	require.NoError(t, err)
	require.Contains(t, out, "Priya Menon")
	require.NotContains(t, out, "Arjun Kapoor")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	home := isolate(t)
	out, err := run(t, "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, filepath.Join(home, "config.toml"))

	_, err = run(t, "config", "init")
	require.ErrorContains(t, err, "already exists")

	_, err = run(t, "config", "init", "--force")
	require.NoError(t, err)

	// the written file loads cleanly
	_, err = run(t, "quote")
	require.NoError(t, err)
}

func TestMalformedConfigFails(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte("[ui\nframe_width ="), 0o644))
	_, err := run(t, "quote")
	require.ErrorContains(t, err, "read config")
}

func TestConfigInitRepairsMalformedFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\nframe_width ="), 0o644))

	_, err := run(t, "config", "init")
	require.ErrorContains(t, err, "already exists")

	out, err := run(t, "config", "init", "--force")
	require.NoError(t, err)
	require.Contains(t, out, path)

	out, err = run(t, "quote")
	require.NoError(t, err)
	require.Contains(t, out, "₹3,699")
}

func TestReplayRevealsWholeLog(t *testing.T) {
	t.Parallel()
	events := catalog.BuiltinPulseEvents()
	var out bytes.Buffer
	shown, err := replay(context.Background(), &out, events, time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, len(events), shown)
	require.Contains(t, out.String(), events[len(events)-1].Text)
	require.Contains(t, out.String(), "Stay complete.")
	require.Contains(t, out.String(), "[gps]")
}

func TestReplayStopsOnCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	shown, err := replay(ctx, &out, catalog.BuiltinPulseEvents(), time.Hour)
	require.NoError(t, err)
	require.Equal(t, 2, shown)
	require.Contains(t, out.String(), "(stopped)")
	require.NotContains(t, out.String(), "Stay complete.")
}
