package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// TierFilter selects which sitter tiers the home list shows.
type TierFilter string

const (
	FilterAll     TierFilter = "all"
	FilterElite   TierFilter = "elite"
	FilterClassic TierFilter = "classic"
)

// TierFilters lists the filter chips in display order.
var TierFilters = []TierFilter{FilterAll, FilterElite, FilterClassic}

// Label is the chip text shown for the filter.
func (f TierFilter) Label() string {
	switch f {
	case FilterElite:
		return "🏅 Elite"
	case FilterClassic:
		return "⭐ Classic"
	default:
		return "🌟 All"
	}
}

// ParseTierFilter accepts all/elite/classic in any case; anything else is all.
func ParseTierFilter(s string) TierFilter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(FilterElite):
		return FilterElite
	case string(FilterClassic):
		return FilterClassic
	default:
		return FilterAll
	}
}

// Filter returns pointers into sitters matching the tier filter, in source order.
func Filter(sitters []Sitter, f TierFilter) []*Sitter {
	out := make([]*Sitter, 0, len(sitters))
	for i := range sitters {
		if f == FilterAll || f == "" || strings.ToLower(string(sitters[i].Tier)) == string(f) {
			out = append(out, &sitters[i])
		}
	}
	return out
}

// fuzzyMinLen is the shortest query word that may match with one edit.
const fuzzyMinLen = 4

// Search narrows list to sitters matching query, keeping order. An empty query
// returns list unchanged.
func Search(list []*Sitter, query string) []*Sitter {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	out := make([]*Sitter, 0, len(list))
	for _, s := range list {
		if matches(s, q) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s *Sitter, q string) bool {
	if strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(strings.ToLower(s.Bio), q) {
		return true
	}
	for _, t := range s.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	for _, qw := range strings.Fields(q) {
		if len([]rune(qw)) < fuzzyMinLen {
			continue
		}
		for _, nw := range strings.Fields(strings.ToLower(s.Name)) {
			if levenshtein.ComputeDistance(qw, nw) <= 1 {
				return true
			}
		}
	}
	return false
}

// Browse applies the tier filter then the search query.
func Browse(sitters []Sitter, f TierFilter, query string) []*Sitter {
	return Search(Filter(sitters, f), query)
}
