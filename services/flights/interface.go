package flights

import (
	"context"
	"net/http"

	"touringplaces/models"
)

// FlightSearchResult bundles normalized fares with the provider's search
// metadata for the response envelope.
type FlightSearchResult struct {
	Flights  []models.FlightResult
	Currency string
	SearchID string
}

// FlightService defines the flight fare search boundary.
type FlightService interface {
	Search(ctx context.Context, req models.FlightSearchRequest) (*FlightSearchResult, error)
}

// DefaultFlightService queries a Tequila-compatible fare API. There is no
// static fallback for flights: live pricing has no substitute.
type DefaultFlightService struct {
	APIKey     string
	BaseURL    string
	PartnerTag string
	Currency   string
	Client     *http.Client
}
