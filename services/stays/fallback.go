package stays

import (
	"strings"

	"touringplaces/models"
)

// staticStays is the curated fallback inventory. Read-only after init; every
// lookup returns copies.
var staticStays = []models.StayResult{
	{
		ID:            "stay-cpt-001",
		Name:          "Table Bay Waterfront Suites",
		Location:      "Cape Town, South Africa",
		PricePerNight: 2450,
		Currency:      "ZAR",
		Rating:        4.7,
		ReviewCount:   1284,
		ImageURL:      "https://images.touringplaces.co.za/stays/table-bay-suites.jpg",
		Amenities:     []string{"Free WiFi", "Pool", "Sea View", "Breakfast", "Gym"},
		PropertyType:  "Apartment Hotel",
	},
	{
		ID:            "stay-nbo-002",
		Name:          "Acacia Gardens Lodge",
		Location:      "Nairobi, Kenya",
		PricePerNight: 1780,
		Currency:      "ZAR",
		Rating:        4.5,
		ReviewCount:   893,
		ImageURL:      "https://images.touringplaces.co.za/stays/acacia-gardens.jpg",
		Amenities:     []string{"Free WiFi", "Restaurant", "Airport Shuttle", "Garden"},
		PropertyType:  "Lodge",
	},
	{
		ID:            "stay-znz-003",
		Name:          "Spice Island Beach Bungalows",
		Location:      "Zanzibar, Tanzania",
		PricePerNight: 2120,
		Currency:      "ZAR",
		Rating:        4.8,
		ReviewCount:   647,
		ImageURL:      "https://images.touringplaces.co.za/stays/spice-island.jpg",
		Amenities:     []string{"Beachfront", "Free WiFi", "Bar", "Snorkelling", "Breakfast"},
		PropertyType:  "Bungalow",
	},
	{
		ID:            "stay-vfa-004",
		Name:          "Gorge View River Camp",
		Location:      "Victoria Falls, Zimbabwe",
		PricePerNight: 1950,
		Currency:      "ZAR",
		Rating:        4.6,
		ReviewCount:   512,
		ImageURL:      "https://images.touringplaces.co.za/stays/gorge-view.jpg",
		Amenities:     []string{"River View", "Guided Walks", "Restaurant", "Pool"},
		PropertyType:  "Tented Camp",
	},
	{
		ID:            "stay-mqp-005",
		Name:          "Marula Bush Villas",
		Location:      "Kruger National Park, South Africa",
		PricePerNight: 3280,
		Currency:      "ZAR",
		Rating:        4.9,
		ReviewCount:   1045,
		ImageURL:      "https://images.touringplaces.co.za/stays/marula-bush.jpg",
		Amenities:     []string{"Game Drives", "Private Deck", "Pool", "All Meals", "Free WiFi"},
		PropertyType:  "Safari Villa",
	},
}

// fallbackStays filters the curated set by case-insensitive substring match on
// location or name. A query that matches nothing returns the whole set, so a
// narrow query never produces an empty screen.
func fallbackStays(query string) []models.StayResult {
	q := strings.ToLower(strings.TrimSpace(query))

	matched := make([]models.StayResult, 0, len(staticStays))
	for _, s := range staticStays {
		if q == "" ||
			strings.Contains(strings.ToLower(s.Location), q) ||
			strings.Contains(strings.ToLower(s.Name), q) {
			matched = append(matched, s)
		}
	}
	if len(matched) == 0 {
		matched = append(matched, staticStays...)
	}
	return matched
}
