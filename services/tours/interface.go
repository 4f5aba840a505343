package tours

import (
	"context"

	"touringplaces/models"
)

// TourSearchResult carries the capped result page plus the pre-cap match count.
type TourSearchResult struct {
	Tours        []models.TourResult
	TotalResults int
}

// TourService defines the tour search boundary.
type TourService interface {
	Search(ctx context.Context, req models.TourSearchRequest) (*TourSearchResult, error)
}

// DefaultTourService selects from the curated-by-country catalog. No live
// provider backs tours; every invocation is a pure function over the catalog.
type DefaultTourService struct{}
