package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func names(list []*Sitter) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Name)
	}
	return out
}

func TestFilterAllReturnsCatalogInOrder(t *testing.T) {
	t.Parallel()
	sitters := BuiltinSitters()
	got := Filter(sitters, FilterAll)
	require.Len(t, got, len(sitters))
	for i := range sitters {
		require.Same(t, &sitters[i], got[i])
	}
}

func TestFilterEliteKeepsOrder(t *testing.T) {
	t.Parallel()
	got := Filter(BuiltinSitters(), FilterElite)
	require.Equal(t, []string{"Priya Menon", "Sneha Iyer"}, names(got))
	for _, s := range got {
		require.Equal(t, TierElite, s.Tier)
	}
}

func TestFilterClassic(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"Arjun Kapoor"}, names(Filter(BuiltinSitters(), FilterClassic)))
}

func TestFilterTierIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	sitters := []Sitter{
		{ID: 1, Name: "A", Tier: "ELITE"},
		{ID: 2, Name: "B", Tier: "classic"},
		{ID: 3, Name: "C", Tier: "Elite"},
	}
	require.Equal(t, []string{"A", "C"}, names(Filter(sitters, FilterElite)))
	require.Equal(t, []string{"B"}, names(Filter(sitters, ParseTierFilter("Classic"))))
}

func TestParseTierFilter(t *testing.T) {
	t.Parallel()
	require.Equal(t, FilterElite, ParseTierFilter(" Elite "))
	require.Equal(t, FilterClassic, ParseTierFilter("CLASSIC"))
	require.Equal(t, FilterAll, ParseTierFilter("all"))
	require.Equal(t, FilterAll, ParseTierFilter("gold"))
}

func TestSearchEmptyQueryIsNoop(t *testing.T) {
	t.Parallel()
	sitters := BuiltinSitters()
	base := Filter(sitters, FilterElite)
	require.Equal(t, base, Search(base, "   "))
	require.Equal(t, names(Filter(sitters, FilterAll)), names(Browse(sitters, FilterAll, "")))
}

func TestSearchSubstringAndTags(t *testing.T) {
	t.Parallel()
	sitters := BuiltinSitters()
	require.Equal(t, []string{"Priya Menon"}, names(Browse(sitters, FilterAll, "priya")))
	require.Equal(t, []string{"Sneha Iyer"}, names(Browse(sitters, FilterAll, "cat friendly")))
	require.Equal(t, []string{"Arjun Kapoor"}, names(Browse(sitters, FilterAll, "rescue")))
}

func TestSearchToleratesOneTypo(t *testing.T) {
	t.Parallel()
	sitters := BuiltinSitters()
	require.Equal(t, []string{"Priya Menon"}, names(Browse(sitters, FilterAll, "prija")))
	// short words need an exact substring
	require.Empty(t, Browse(sitters, FilterAll, "ijr"))
}

func TestSearchAppliesAfterTierFilter(t *testing.T) {
	t.Parallel()
	require.Empty(t, Browse(BuiltinSitters(), FilterClassic, "priya"))
}
