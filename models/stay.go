package models

// Stay result sources. Clients use these for observability only.
const (
	StaySourceLive = "kiwi"
	StaySourceMock = "mock"
)

// StayResult is the normalized stay (accommodation) search result.
type StayResult struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"pricePerNight"`
	Currency      string   `json:"currency"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	ImageURL      string   `json:"imageUrl"`
	Amenities     []string `json:"amenities"`
	PropertyType  string   `json:"propertyType"`
	DeepLink      string   `json:"deep_link,omitempty"`
}

// StaySearchRequest is the client-facing search input. Dates use yyyy-mm-dd.
type StaySearchRequest struct {
	Location string `json:"location" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
	Guests   int    `json:"guests"`
}

// StaySearchResponse is the endpoint envelope for stay searches.
type StaySearchResponse struct {
	Success bool         `json:"success"`
	Stays   []StayResult `json:"stays"`
	Source  string       `json:"source"`
}
