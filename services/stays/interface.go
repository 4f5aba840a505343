package stays

import (
	"context"
	"net/http"

	"touringplaces/models"
)

// StaySearchResult tags results with their source so operators can tell live
// inventory from the curated fallback.
type StaySearchResult struct {
	Stays  []models.StayResult
	Source string
}

// StayService defines the stay search boundary.
type StayService interface {
	Search(ctx context.Context, req models.StaySearchRequest) (*StaySearchResult, error)
}

// DefaultStayService resolves a location against the live inventory provider
// and falls through to the curated dataset when the provider is unavailable
// or empty. The fallback guarantees a non-empty result set.
type DefaultStayService struct {
	APIKey       string
	LocationsURL string
	StaysURL     string
	Currency     string
	Client       *http.Client
}
