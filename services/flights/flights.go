package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"touringplaces/models"
	"touringplaces/utils"
)

const (
	// Providers are asked for at most one stopover and at most this many fares.
	flightResultLimit = 30
	maxStopovers      = 1
)

// tequilaFlight mirrors one fare from the provider. Timestamp fields are
// heterogeneous across provider versions: dTime/aTime come as epoch seconds,
// local_departure/local_arrival as ISO-8601 strings; either pair may be absent.
type tequilaFlight struct {
	ID             string                `json:"id"`
	CityFrom       string                `json:"cityFrom"`
	FlyFrom        string                `json:"flyFrom"`
	CityTo         string                `json:"cityTo"`
	FlyTo          string                `json:"flyTo"`
	Price          float64               `json:"price"`
	Airlines       []string              `json:"airlines"`
	Route          []json.RawMessage     `json:"route"`
	Duration       models.FlightDuration `json:"duration"`
	DTime          interface{}           `json:"dTime"`
	ATime          interface{}           `json:"aTime"`
	LocalDeparture string                `json:"local_departure"`
	LocalArrival   string                `json:"local_arrival"`
	DeepLink       string                `json:"deep_link"`
}

type tequilaResponse struct {
	SearchID string          `json:"search_id"`
	Currency string          `json:"currency"`
	Data     []tequilaFlight `json:"data"`
}

// Search queries the fare API and returns normalized results sorted by price
// ascending (total duration breaks ties). Zero provider matches is a valid
// outcome and yields an empty slice, not an error.
func (s *DefaultFlightService) Search(ctx context.Context, req models.FlightSearchRequest) (*FlightSearchResult, error) {
	logger := utils.GetLogger()

	if s.APIKey == "" {
		return nil, NewConfigError("Flight search is not configured. Please contact support.")
	}

	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return nil, NewSearchError("Flight search failed. Please try again.")
	}

	q := u.Query()
	q.Set("fly_from", req.FlyFrom)
	q.Set("fly_to", req.FlyTo)
	q.Set("date_from", req.DateFrom)
	dateTo := req.DateTo
	if dateTo == "" {
		dateTo = req.DateFrom
	}
	q.Set("date_to", dateTo)
	if req.ReturnFrom != "" {
		q.Set("return_from", req.ReturnFrom)
	}
	if req.ReturnTo != "" {
		q.Set("return_to", req.ReturnTo)
	}
	adults := req.Adults
	if adults <= 0 {
		adults = 1
	}
	q.Set("adults", cast.ToString(adults))
	if req.Children > 0 {
		q.Set("children", cast.ToString(req.Children))
	}
	if req.Infants > 0 {
		q.Set("infants", cast.ToString(req.Infants))
	}
	q.Set("curr", s.Currency)
	q.Set("limit", cast.ToString(flightResultLimit))
	q.Set("max_stopovers", cast.ToString(maxStopovers))
	q.Set("sort", "price")
	q.Set("asc", "1")
	q.Set("partner", s.PartnerTag)
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, NewSearchError("Flight search failed. Please try again.")
	}
	httpReq.Header.Set("apikey", s.APIKey)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client().Do(httpReq)
	if err != nil {
		logger.Error("Flight provider request failed", zap.Error(err))
		return nil, NewSearchError("Flight search failed. Please try again.")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		logger.Error("Flight provider denied access", zap.Int("status", resp.StatusCode))
		return nil, NewAccessError("Flight search access denied. Please contact support.")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("Flight provider returned non-OK status", zap.Int("status", resp.StatusCode))
		return nil, NewSearchError("Flight search failed. Please try again.")
	}

	var payload tequilaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Error("Failed to decode flight provider response", zap.Error(err))
		return nil, NewSearchError("Flight search failed. Please try again.")
	}

	currency := payload.Currency
	if currency == "" {
		currency = s.Currency
	}

	results := make([]models.FlightResult, 0, len(payload.Data))
	for _, f := range payload.Data {
		normalized := normalizeFlight(f, currency)
		if normalized == nil {
			continue
		}
		results = append(results, *normalized)
	}

	// Price ascending, total duration as the documented tie-break.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Price != results[j].Price {
			return results[i].Price < results[j].Price
		}
		return results[i].Duration.Total < results[j].Duration.Total
	})
	if len(results) > flightResultLimit {
		results = results[:flightResultLimit]
	}

	return &FlightSearchResult{
		Flights:  results,
		Currency: currency,
		SearchID: payload.SearchID,
	}, nil
}

// normalizeFlight maps one provider fare into the result contract. Fares that
// violate the contract (negative price, stop count above the requested
// maximum) are dropped rather than patched.
func normalizeFlight(f tequilaFlight, currency string) *models.FlightResult {
	if f.Price < 0 {
		return nil
	}

	stops := 0
	if len(f.Route) > 1 {
		stops = len(f.Route) - 1
	}
	if stops > maxStopovers {
		return nil
	}

	dTime, localDep := normalizeTimestamp(f.DTime, f.LocalDeparture)
	aTime, localArr := normalizeTimestamp(f.ATime, f.LocalArrival)

	airlines := f.Airlines
	if airlines == nil {
		airlines = []string{}
	}

	return &models.FlightResult{
		ID:             f.ID,
		CityFrom:       f.CityFrom,
		FlyFrom:        f.FlyFrom,
		CityTo:         f.CityTo,
		FlyTo:          f.FlyTo,
		Price:          f.Price,
		Currency:       currency,
		DepartureTime:  dTime,
		ArrivalTime:    aTime,
		LocalDeparture: localDep,
		LocalArrival:   localArr,
		Airlines:       airlines,
		Stops:          stops,
		Duration:       f.Duration,
		DeepLink:       f.DeepLink,
	}
}

// normalizeTimestamp reconciles the two timestamp representations a provider
// may send. Whichever representation arrives, both canonical forms go out.
func normalizeTimestamp(epoch interface{}, iso string) (int64, string) {
	sec := cast.ToInt64(epoch)
	if sec > 0 && iso != "" {
		return sec, iso
	}
	if sec > 0 {
		return sec, time.Unix(sec, 0).UTC().Format("2006-01-02T15:04:05")
	}
	if iso != "" {
		if t, err := parseISO(iso); err == nil {
			return t.Unix(), iso
		}
		return 0, iso
	}
	return 0, ""
}

func parseISO(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000Z", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func (s *DefaultFlightService) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return &http.Client{Timeout: 20 * time.Second}
}
