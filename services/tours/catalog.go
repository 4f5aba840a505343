package tours

import "touringplaces/models"

// countryOrder fixes the iteration order over the catalog so matching and the
// featured blend stay deterministic across calls.
var countryOrder = []string{"kenya", "south africa", "tanzania", "egypt", "morocco", "zimbabwe"}

// tourCatalog is the curated tour inventory, keyed by lower-cased country
// name. Read-only after init.
var tourCatalog = map[string][]models.TourResult{
	"kenya": {
		{
			ID: "tour-ke-001", Name: "Maasai Mara Great Migration Safari", Destination: "Maasai Mara, Kenya",
			Duration: "3 Days", Price: 12800, Currency: "ZAR", Rating: 4.9, ReviewCount: 1530,
			ImageURL:   "https://images.touringplaces.co.za/tours/maasai-mara.jpg",
			Highlights: []string{"Big Five game drives", "Mara River crossing", "Maasai village visit"},
		},
		{
			ID: "tour-ke-002", Name: "Amboseli Elephants & Kilimanjaro Views", Destination: "Amboseli, Kenya",
			Duration: "2 Days", Price: 8400, Currency: "ZAR", Rating: 4.8, ReviewCount: 968,
			ImageURL:   "https://images.touringplaces.co.za/tours/amboseli.jpg",
			Highlights: []string{"Elephant herds", "Kilimanjaro sunrise", "Observation Hill"},
		},
		{
			ID: "tour-ke-003", Name: "Nairobi National Park Day Trip", Destination: "Nairobi, Kenya",
			Duration: "Full Day", Price: 2100, Currency: "ZAR", Rating: 4.6, ReviewCount: 2240,
			ImageURL:   "https://images.touringplaces.co.za/tours/nairobi-park.jpg",
			Highlights: []string{"Rhino sanctuary", "Giraffe Centre", "City skyline backdrop"},
		},
		{
			ID: "tour-ke-004", Name: "Lake Nakuru Flamingo Safari", Destination: "Lake Nakuru, Kenya",
			Duration: "Full Day", Price: 3400, Currency: "ZAR", Rating: 4.7, ReviewCount: 815,
			ImageURL:   "https://images.touringplaces.co.za/tours/lake-nakuru.jpg",
			Highlights: []string{"Flamingo flocks", "Baboon Cliff viewpoint", "White rhino tracking"},
		},
		{
			ID: "tour-ke-005", Name: "Diani Beach & Wasini Island Escape", Destination: "Diani Beach, Kenya",
			Duration: "2 Days", Price: 5600, Currency: "ZAR", Rating: 4.8, ReviewCount: 692,
			ImageURL:   "https://images.touringplaces.co.za/tours/diani-beach.jpg",
			Highlights: []string{"Dhow sailing", "Dolphin watching", "Kisite Marine Park snorkelling"},
		},
		{
			ID: "tour-ke-006", Name: "Samburu Special Five Expedition", Destination: "Samburu, Kenya",
			Duration: "3 Days", Price: 11200, Currency: "ZAR", Rating: 4.7, ReviewCount: 441,
			ImageURL:   "https://images.touringplaces.co.za/tours/samburu.jpg",
			Highlights: []string{"Grevy's zebra", "Reticulated giraffe", "Ewaso Ng'iro river camp"},
		},
		{
			ID: "tour-ke-007", Name: "Mount Kenya Foothills Trek", Destination: "Mount Kenya, Kenya",
			Duration: "4 Days", Price: 9800, Currency: "ZAR", Rating: 4.5, ReviewCount: 377,
			ImageURL:   "https://images.touringplaces.co.za/tours/mount-kenya.jpg",
			Highlights: []string{"Sirimon route", "Alpine moorland", "Mackinder's Valley"},
		},
		{
			ID: "tour-ke-008", Name: "Lamu Old Town Cultural Walk", Destination: "Lamu, Kenya",
			Duration: "Full Day", Price: 1900, Currency: "ZAR", Rating: 4.6, ReviewCount: 284,
			ImageURL:   "https://images.touringplaces.co.za/tours/lamu.jpg",
			Highlights: []string{"Swahili architecture", "Donkey-lane alleys", "Sunset dhow cruise"},
		},
		{
			ID: "tour-ke-009", Name: "Hell's Gate Cycling Safari", Destination: "Naivasha, Kenya",
			Duration: "Full Day", Price: 2600, Currency: "ZAR", Rating: 4.7, ReviewCount: 529,
			ImageURL:   "https://images.touringplaces.co.za/tours/hells-gate.jpg",
			Highlights: []string{"Cycle among zebra", "Ol Njorowa gorge", "Fischer's Tower"},
		},
		{
			ID: "tour-ke-010", Name: "Tsavo East Red Elephants Safari", Destination: "Tsavo, Kenya",
			Duration: "2 Days", Price: 7300, Currency: "ZAR", Rating: 4.5, ReviewCount: 316,
			ImageURL:   "https://images.touringplaces.co.za/tours/tsavo.jpg",
			Highlights: []string{"Red-dust elephants", "Lugard Falls", "Aruba Dam waterhole"},
		},
	},
	"south africa": {
		{
			ID: "tour-za-001", Name: "Cape Peninsula & Penguins Tour", Destination: "Cape Town, South Africa",
			Duration: "Full Day", Price: 1850, Currency: "ZAR", Rating: 4.8, ReviewCount: 3120,
			ImageURL:   "https://images.touringplaces.co.za/tours/cape-peninsula.jpg",
			Highlights: []string{"Cape Point", "Boulders Beach penguins", "Chapman's Peak Drive"},
		},
		{
			ID: "tour-za-002", Name: "Kruger Classic Safari", Destination: "Kruger National Park, South Africa",
			Duration: "3 Days", Price: 10400, Currency: "ZAR", Rating: 4.9, ReviewCount: 1876,
			ImageURL:   "https://images.touringplaces.co.za/tours/kruger.jpg",
			Highlights: []string{"Big Five game drives", "Night safari", "Panorama Route"},
		},
		{
			ID: "tour-za-003", Name: "Winelands Tasting Trail", Destination: "Stellenbosch, South Africa",
			Duration: "Full Day", Price: 1600, Currency: "ZAR", Rating: 4.7, ReviewCount: 2040,
			ImageURL:   "https://images.touringplaces.co.za/tours/winelands.jpg",
			Highlights: []string{"Estate tastings", "Franschhoek tram", "Cellar tour"},
		},
		{
			ID: "tour-za-004", Name: "Drakensberg Amphitheatre Hike", Destination: "Drakensberg, South Africa",
			Duration: "2 Days", Price: 4200, Currency: "ZAR", Rating: 4.6, ReviewCount: 655,
			ImageURL:   "https://images.touringplaces.co.za/tours/drakensberg.jpg",
			Highlights: []string{"Tugela Falls", "Chain ladders", "Basotho culture stop"},
		},
		{
			ID: "tour-za-005", Name: "Garden Route Explorer", Destination: "Knysna, South Africa",
			Duration: "4 Days", Price: 8900, Currency: "ZAR", Rating: 4.8, ReviewCount: 1188,
			ImageURL:   "https://images.touringplaces.co.za/tours/garden-route.jpg",
			Highlights: []string{"Knysna Heads", "Tsitsikamma canopy", "Plettenberg Bay beaches"},
		},
	},
	"tanzania": {
		{
			ID: "tour-tz-001", Name: "Serengeti & Ngorongoro Crater Safari", Destination: "Serengeti, Tanzania",
			Duration: "4 Days", Price: 15600, Currency: "ZAR", Rating: 4.9, ReviewCount: 1320,
			ImageURL:   "https://images.touringplaces.co.za/tours/serengeti.jpg",
			Highlights: []string{"Crater floor game drive", "Endless plains", "Olduvai Gorge"},
		},
		{
			ID: "tour-tz-002", Name: "Zanzibar Stone Town & Spice Farms", Destination: "Zanzibar, Tanzania",
			Duration: "Full Day", Price: 1700, Currency: "ZAR", Rating: 4.7, ReviewCount: 1954,
			ImageURL:   "https://images.touringplaces.co.za/tours/stone-town.jpg",
			Highlights: []string{"Spice plantation walk", "Old Fort", "Forodhani night market"},
		},
		{
			ID: "tour-tz-003", Name: "Kilimanjaro Machame Route Trek", Destination: "Kilimanjaro, Tanzania",
			Duration: "7 Days", Price: 24500, Currency: "ZAR", Rating: 4.8, ReviewCount: 486,
			ImageURL:   "https://images.touringplaces.co.za/tours/kilimanjaro.jpg",
			Highlights: []string{"Uhuru Peak summit", "Barranco Wall", "Rainforest start"},
		},
		{
			ID: "tour-tz-004", Name: "Mnemba Atoll Snorkelling Day", Destination: "Mnemba, Tanzania",
			Duration: "Full Day", Price: 2300, Currency: "ZAR", Rating: 4.6, ReviewCount: 377,
			ImageURL:   "https://images.touringplaces.co.za/tours/mnemba.jpg",
			Highlights: []string{"Coral gardens", "Dolphin pods", "Sandbank lunch"},
		},
	},
	"egypt": {
		{
			ID: "tour-eg-001", Name: "Pyramids of Giza & Sphinx Tour", Destination: "Cairo, Egypt",
			Duration: "Full Day", Price: 2200, Currency: "ZAR", Rating: 4.8, ReviewCount: 4210,
			ImageURL:   "https://images.touringplaces.co.za/tours/giza.jpg",
			Highlights: []string{"Great Pyramid", "Sphinx", "Egyptian Museum"},
		},
		{
			ID: "tour-eg-002", Name: "Nile Felucca Sunset Cruise", Destination: "Aswan, Egypt",
			Duration: "Half Day", Price: 950, Currency: "ZAR", Rating: 4.6, ReviewCount: 1340,
			ImageURL:   "https://images.touringplaces.co.za/tours/felucca.jpg",
			Highlights: []string{"Traditional felucca", "Elephantine Island", "Nubian village tea"},
		},
		{
			ID: "tour-eg-003", Name: "Luxor Valley of the Kings", Destination: "Luxor, Egypt",
			Duration: "Full Day", Price: 2600, Currency: "ZAR", Rating: 4.9, ReviewCount: 2875,
			ImageURL:   "https://images.touringplaces.co.za/tours/luxor.jpg",
			Highlights: []string{"Tutankhamun's tomb", "Karnak Temple", "Hatshepsut Temple"},
		},
	},
	"morocco": {
		{
			ID: "tour-ma-001", Name: "Marrakech Medina & Souks Walk", Destination: "Marrakech, Morocco",
			Duration: "Full Day", Price: 1400, Currency: "ZAR", Rating: 4.7, ReviewCount: 2650,
			ImageURL:   "https://images.touringplaces.co.za/tours/marrakech.jpg",
			Highlights: []string{"Jemaa el-Fnaa", "Bahia Palace", "Spice souks"},
		},
		{
			ID: "tour-ma-002", Name: "Sahara Desert Camp Under the Stars", Destination: "Merzouga, Morocco",
			Duration: "3 Days", Price: 6800, Currency: "ZAR", Rating: 4.9, ReviewCount: 1430,
			ImageURL:   "https://images.touringplaces.co.za/tours/sahara.jpg",
			Highlights: []string{"Camel trek", "Erg Chebbi dunes", "Berber drumming night"},
		},
		{
			ID: "tour-ma-003", Name: "Chefchaouen Blue City Day Trip", Destination: "Chefchaouen, Morocco",
			Duration: "Full Day", Price: 1750, Currency: "ZAR", Rating: 4.6, ReviewCount: 980,
			ImageURL:   "https://images.touringplaces.co.za/tours/chefchaouen.jpg",
			Highlights: []string{"Blue-washed lanes", "Spanish Mosque viewpoint", "Kasbah museum"},
		},
	},
	"zimbabwe": {
		{
			ID: "tour-zw-001", Name: "Victoria Falls Tour of the Smoke", Destination: "Victoria Falls, Zimbabwe",
			Duration: "Full Day", Price: 2900, Currency: "ZAR", Rating: 4.9, ReviewCount: 2210,
			ImageURL:   "https://images.touringplaces.co.za/tours/victoria-falls.jpg",
			Highlights: []string{"Rainforest trail", "Devil's Cataract", "Zambezi sunset cruise"},
		},
		{
			ID: "tour-zw-002", Name: "Hwange Elephant Safari", Destination: "Hwange, Zimbabwe",
			Duration: "2 Days", Price: 7600, Currency: "ZAR", Rating: 4.7, ReviewCount: 498,
			ImageURL:   "https://images.touringplaces.co.za/tours/hwange.jpg",
			Highlights: []string{"Waterhole hides", "Presidential herd", "Night drive"},
		},
	},
}

// featuredPicks defines the blended default served when nothing matches:
// slice counts per country, in serving order. Placeholder policy, not a
// ranking signal.
var featuredPicks = []struct {
	country string
	count   int
}{
	{"kenya", 3},
	{"south africa", 2},
	{"tanzania", 1},
	{"egypt", 1},
	{"morocco", 1},
}

// featuredTours returns the deterministic blended default set.
func featuredTours() []models.TourResult {
	var blend []models.TourResult
	for _, pick := range featuredPicks {
		list := tourCatalog[pick.country]
		n := pick.count
		if n > len(list) {
			n = len(list)
		}
		blend = append(blend, list[:n]...)
	}
	return blend
}
