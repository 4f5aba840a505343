package stays

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"touringplaces/models"
	"touringplaces/utils"
)

const stayResultLimit = 30

type providerLocation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type locationsResponse struct {
	Locations []providerLocation `json:"locations"`
}

type providerStay struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	City         string      `json:"city"`
	Price        interface{} `json:"price"`
	Rating       float64     `json:"rating"`
	ReviewCount  int         `json:"review_count"`
	ImageURL     string      `json:"image_url"`
	Amenities    []string    `json:"amenities"`
	PropertyType string      `json:"property_type"`
	DeepLink     string      `json:"deep_link"`
}

type staysResponse struct {
	Stays []providerStay `json:"stays"`
}

// Search runs the live-provider chain and falls through to the curated
// dataset on any failure or empty result. Live failures are logged, never
// surfaced: a stay search always succeeds.
func (s *DefaultStayService) Search(ctx context.Context, req models.StaySearchRequest) (*StaySearchResult, error) {
	logger := utils.GetLogger()

	if s.APIKey == "" {
		logger.Info("Stay provider credential not configured, serving curated stays",
			zap.String("location", req.Location))
		return &StaySearchResult{Stays: fallbackStays(req.Location), Source: models.StaySourceMock}, nil
	}

	live, err := s.searchLive(ctx, req)
	if err != nil {
		logger.Warn("Stay provider unavailable, serving curated stays",
			zap.String("location", req.Location), zap.Error(err))
		return &StaySearchResult{Stays: fallbackStays(req.Location), Source: models.StaySourceMock}, nil
	}
	if len(live) == 0 {
		logger.Info("Stay provider returned no inventory, serving curated stays",
			zap.String("location", req.Location))
		return &StaySearchResult{Stays: fallbackStays(req.Location), Source: models.StaySourceMock}, nil
	}

	return &StaySearchResult{Stays: live, Source: models.StaySourceLive}, nil
}

// searchLive resolves the query to a provider location, then fetches
// inventory for it. The locations call must complete first: the inventory
// query needs the resolved identifier.
func (s *DefaultStayService) searchLive(ctx context.Context, req models.StaySearchRequest) ([]models.StayResult, error) {
	locationID, err := s.resolveLocation(ctx, req.Location)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(s.StaysURL)
	if err != nil {
		return nil, fmt.Errorf("invalid stays URL: %w", err)
	}
	q := u.Query()
	q.Set("location_id", locationID)
	q.Set("checkin", req.CheckIn)
	q.Set("checkout", req.CheckOut)
	guests := req.Guests
	if guests <= 0 {
		guests = 1
	}
	q.Set("adults", cast.ToString(guests))
	q.Set("currency", s.Currency)
	q.Set("limit", cast.ToString(stayResultLimit))
	q.Set("sort", "price")
	u.RawQuery = q.Encode()

	var payload staysResponse
	if err := s.getJSON(ctx, u.String(), &payload); err != nil {
		return nil, err
	}

	results := make([]models.StayResult, 0, len(payload.Stays))
	for _, p := range payload.Stays {
		results = append(results, normalizeStay(p, s.Currency))
	}
	if len(results) > stayResultLimit {
		results = results[:stayResultLimit]
	}
	return results, nil
}

// resolveLocation maps a free-text query to the provider's internal location
// identifier. Only city and airport locations are considered, best match only.
func (s *DefaultStayService) resolveLocation(ctx context.Context, query string) (string, error) {
	u, err := url.Parse(s.LocationsURL)
	if err != nil {
		return "", fmt.Errorf("invalid locations URL: %w", err)
	}
	q := u.Query()
	q.Set("term", query)
	q.Set("location_types", "city,airport")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	var payload locationsResponse
	if err := s.getJSON(ctx, u.String(), &payload); err != nil {
		return "", err
	}
	if len(payload.Locations) == 0 {
		return "", fmt.Errorf("no provider location for %q", query)
	}
	return payload.Locations[0].ID, nil
}

func (s *DefaultStayService) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("apikey", s.APIKey)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client().Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("stay provider returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// normalizeStay maps a provider row into the result contract, substituting
// sentinels for anything the provider left out.
func normalizeStay(p providerStay, currency string) models.StayResult {
	rating := p.Rating
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	propertyType := p.PropertyType
	if propertyType == "" {
		propertyType = "Hotel"
	}

	return models.StayResult{
		ID:            p.ID,
		Name:          p.Name,
		Location:      p.City,
		PricePerNight: cast.ToFloat64(p.Price),
		Currency:      currency,
		Rating:        rating,
		ReviewCount:   p.ReviewCount,
		ImageURL:      p.ImageURL,
		Amenities:     amenities,
		PropertyType:  propertyType,
		DeepLink:      p.DeepLink,
	}
}

func (s *DefaultStayService) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return &http.Client{Timeout: 15 * time.Second}
}
