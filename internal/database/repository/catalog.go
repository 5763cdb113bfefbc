package repository

import (
	"context"

	"github.com/jask/tacostay/internal/catalog"
)

// CatalogSource serves the catalog from sqlite. It implements catalog.Source.
type CatalogSource struct {
	SitterRepo *SitterRepo
	EventRepo  *PulseEventRepo
}

func NewCatalogSource(db DBTX) *CatalogSource {
	return &CatalogSource{SitterRepo: NewSitterRepo(db), EventRepo: NewPulseEventRepo(db)}
}

func (s *CatalogSource) Sitters(ctx context.Context) ([]catalog.Sitter, error) {
	return s.SitterRepo.List(ctx)
}

func (s *CatalogSource) PulseEvents(ctx context.Context) ([]catalog.PulseEvent, error) {
	return s.EventRepo.List(ctx)
}
