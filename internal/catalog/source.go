package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Source provides the read-only catalog data consumed by the app.
type Source interface {
	Sitters(ctx context.Context) ([]Sitter, error)
	PulseEvents(ctx context.Context) ([]PulseEvent, error)
}

// Catalog is a loaded, validated snapshot of a Source.
type Catalog struct {
	Sitters []Sitter
	Events  []PulseEvent
}

var ErrEmptyCatalog = errors.New("catalog: no sitters")

// Load reads both lists from src and validates them.
func Load(ctx context.Context, src Source) (Catalog, error) {
	sitters, err := src.Sitters(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("load sitters: %w", err)
	}
	events, err := src.PulseEvents(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("load pulse events: %w", err)
	}
	c := Catalog{Sitters: sitters, Events: events}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Validate checks record ranges and id uniqueness.
func (c Catalog) Validate() error {
	if len(c.Sitters) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[int]struct{}, len(c.Sitters))
	for _, s := range c.Sitters {
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("catalog: duplicate sitter id %d", s.ID)
		}
		seen[s.ID] = struct{}{}
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("catalog: sitter %d has no name", s.ID)
		}
		switch s.Tier {
		case TierElite, TierClassic:
		default:
			return fmt.Errorf("catalog: sitter %d has unknown tier %q", s.ID, s.Tier)
		}
		if s.Rating < 0 || s.Rating > 5 {
			return fmt.Errorf("catalog: sitter %d rating %.1f out of range", s.ID, s.Rating)
		}
		if s.EmpathyScore < 0 || s.EmpathyScore > 100 {
			return fmt.Errorf("catalog: sitter %d empathy score %d out of range", s.ID, s.EmpathyScore)
		}
	}
	for i, e := range c.Events {
		if strings.TrimSpace(e.Text) == "" {
			return fmt.Errorf("catalog: pulse event %d has no text", i)
		}
	}
	return nil
}

// SitterByID returns a pointer into c.Sitters, or nil.
func (c *Catalog) SitterByID(id int) *Sitter {
	for i := range c.Sitters {
		if c.Sitters[i].ID == id {
			return &c.Sitters[i]
		}
	}
	return nil
}
