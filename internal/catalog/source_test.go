package catalog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalogIsValid(t *testing.T) {
	t.Parallel()
	c, err := Load(context.Background(), Builtin{})
	require.NoError(t, err)
	require.Len(t, c.Sitters, 3)
	require.Len(t, c.Events, 8)
	require.Equal(t, "Priya", c.Sitters[0].FirstName())
	require.True(t, c.Sitters[0].IsElite())
	require.False(t, c.Sitters[1].IsElite())
}

func TestBuiltinReturnsFreshCopies(t *testing.T) {
	t.Parallel()
	a := BuiltinSitters()
	a[0].Name = "changed"
	require.Equal(t, "Priya Menon", BuiltinSitters()[0].Name)
}

func TestValidateRejectsBadRecords(t *testing.T) {
	t.Parallel()
	cases := map[string]Catalog{
		"empty":     {},
		"duplicate": {Sitters: []Sitter{{ID: 1, Name: "A", Tier: TierElite}, {ID: 1, Name: "B", Tier: TierClassic}}},
		"tier":      {Sitters: []Sitter{{ID: 1, Name: "A", Tier: "Gold"}}},
		"tier case": {Sitters: []Sitter{{ID: 1, Name: "A", Tier: "elite"}}},
		"rating":    {Sitters: []Sitter{{ID: 1, Name: "A", Tier: TierElite, Rating: 5.1}}},
		"empathy":   {Sitters: []Sitter{{ID: 1, Name: "A", Tier: TierElite, EmpathyScore: 101}}},
		"event":     {Sitters: []Sitter{{ID: 1, Name: "A", Tier: TierElite}}, Events: []PulseEvent{{Time: "9:00 AM"}}},
	}
	for name, c := range cases {
		require.Error(t, c.Validate(), name)
	}
	require.ErrorIs(t, Catalog{}.Validate(), ErrEmptyCatalog)
}

func TestSitterByIDReturnsPointerIntoCatalog(t *testing.T) {
	t.Parallel()
	c := Catalog{Sitters: BuiltinSitters()}
	s := c.SitterByID(3)
	require.NotNil(t, s)
	require.Same(t, &c.Sitters[2], s)
	require.Nil(t, c.SitterByID(42))
}

func TestYAMLFileMatchesBuiltin(t *testing.T) {
	t.Parallel()
	builtin, err := Load(context.Background(), Builtin{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, builtin))
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := Load(context.Background(), YAMLFile{Path: path})
	require.NoError(t, err)
	require.Equal(t, builtin, got)
}

func TestReadYAMLRejectsUnknownFields(t *testing.T) {
	t.Parallel()
	doc := strings.Join([]string{
		"sitters:",
		"  - id: 1",
		"    name: Test Sitter",
		"    tier: Elite",
		"    favourite_colour: blue",
	}, "\n")
	_, err := ReadYAML(strings.NewReader(doc))
	require.Error(t, err)
}

func TestReadYAMLCanonicalisesTier(t *testing.T) {
	t.Parallel()
	doc := strings.Join([]string{
		"sitters:",
		"  - id: 1",
		"    name: Test Sitter",
		"    tier: elite",
		"  - id: 2",
		"    name: Other Sitter",
		"    tier: ' CLASSIC'",
	}, "\n")
	c, err := ReadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, TierElite, c.Sitters[0].Tier)
	require.Equal(t, TierClassic, c.Sitters[1].Tier)
	require.NoError(t, c.Validate())
	require.Equal(t, Tier("Gold"), Tier("Gold").Canonical())
}

func TestYAMLFileMissing(t *testing.T) {
	t.Parallel()
	_, err := Load(context.Background(), YAMLFile{Path: filepath.Join(t.TempDir(), "nope.yaml")})
	require.ErrorIs(t, err, os.ErrNotExist)
}
