package tours

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"touringplaces/models"
	"touringplaces/utils"
)

const tourResultLimit = 30

// Search selects tours from the curated catalog. Matching runs in priority
// order: country key, then per-tour destination/name substring, then the
// featured blend. The result is never empty.
func (s *DefaultTourService) Search(_ context.Context, req models.TourSearchRequest) (*TourSearchResult, error) {
	logger := utils.GetLogger()
	query := strings.ToLower(strings.TrimSpace(req.Destination))

	matches := matchByCountry(query)
	if len(matches) == 0 {
		matches = matchByTour(query)
	}
	if len(matches) == 0 {
		logger.Info("No curated tours matched query, serving featured blend",
			zap.String("destination", req.Destination))
		matches = featuredTours()
	}

	total := len(matches)
	if len(matches) > tourResultLimit {
		matches = matches[:tourResultLimit]
	}

	return &TourSearchResult{Tours: matches, TotalResults: total}, nil
}

// matchByCountry matches the query against catalog country keys, substring in
// either direction ("kenya safari" hits kenya, "ken" hits kenya too).
func matchByCountry(query string) []models.TourResult {
	if query == "" {
		return nil
	}
	var matched []models.TourResult
	for _, country := range countryOrder {
		if strings.Contains(query, country) || strings.Contains(country, query) {
			matched = append(matched, tourCatalog[country]...)
		}
	}
	return matched
}

// matchByTour accumulates individual tours whose destination or name contains
// the query, across all countries in catalog order.
func matchByTour(query string) []models.TourResult {
	if query == "" {
		return nil
	}
	var matched []models.TourResult
	for _, country := range countryOrder {
		for _, t := range tourCatalog[country] {
			if strings.Contains(strings.ToLower(t.Destination), query) ||
				strings.Contains(strings.ToLower(t.Name), query) {
				matched = append(matched, t)
			}
		}
	}
	return matched
}
