package models

// TourResult is the normalized tour search result. Duration is a display
// label ("Full Day", "3 Days"), not a machine-parseable duration.
type TourResult struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Destination string   `json:"destination"`
	Duration    string   `json:"duration"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	ImageURL    string   `json:"imageUrl"`
	Highlights  []string `json:"highlights"`
}

// TourSearchRequest is the client-facing search input.
type TourSearchRequest struct {
	Destination string `json:"destination"`
	DateFrom    string `json:"dateFrom"`
	DateTo      string `json:"dateTo"`
	Travelers   int    `json:"travelers"`
}

// TourSearchResponse is the endpoint envelope for tour searches.
// TotalResults reflects the match count before the result cap is applied.
type TourSearchResponse struct {
	Success      bool         `json:"success"`
	Tours        []TourResult `json:"tours"`
	TotalResults int          `json:"totalResults"`
}
