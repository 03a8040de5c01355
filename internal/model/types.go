package model

import (
	"strconv"
	"time"

	"github.com/paulmach/orb"
)

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// String renders the coordinates as "lat,lng" using the shortest exact decimal form.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// Point converts the coordinates to an orb point (lon, lat order).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Category is a place type understood by the places API.
type Category string

const (
	CategoryRestaurant  Category = "restaurant"
	CategoryCafe        Category = "cafe"
	CategoryHospital    Category = "hospital"
	CategoryPharmacy    Category = "pharmacy"
	CategoryATM         Category = "atm"
	CategoryBank        Category = "bank"
	CategoryGasStation  Category = "gas_station"
	CategorySupermarket Category = "supermarket"
)

// DefaultCategory is selected on first launch.
const DefaultCategory = CategoryRestaurant

// Categories lists the selectable categories in picker order.
var Categories = []Category{
	CategoryRestaurant,
	CategoryCafe,
	CategoryHospital,
	CategoryPharmacy,
	CategoryATM,
	CategoryBank,
	CategoryGasStation,
	CategorySupermarket,
}

var categoryLabels = map[Category]string{
	CategoryRestaurant:  "Restaurant",
	CategoryCafe:        "Cafe",
	CategoryHospital:    "Hospital",
	CategoryPharmacy:    "Pharmacy",
	CategoryATM:         "ATM",
	CategoryBank:        "Bank",
	CategoryGasStation:  "Gas Station",
	CategorySupermarket: "Supermarket",
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display name, or the raw value for unknown categories.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Index returns the position of c in Categories, or -1.
func (c Category) Index() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return -1
}

// Search radius bounds in meters.
const (
	MinRadius     = 1000
	MaxRadius     = 20000
	RadiusStep    = 1000
	DefaultRadius = 5000
)

// ClampRadius snaps meters to the nearest step inside [MinRadius, MaxRadius].
func ClampRadius(meters int) int {
	if meters <= MinRadius {
		return MinRadius
	}
	if meters >= MaxRadius {
		return MaxRadius
	}
	steps := (meters + RadiusStep/2) / RadiusStep
	return steps * RadiusStep
}

// SearchCriteria is the tuple that parameterizes a nearby search.
type SearchCriteria struct {
	Center       Coordinates
	RadiusMeters int
	Category     Category
}

// Place is a nearby search result.
type Place struct {
	ID       string
	Name     string
	Location Coordinates
	Vicinity string
}

// PlaceDetails is the enriched record for one place.
type PlaceDetails struct {
	ID               string
	Name             string
	FormattedAddress string
	Rating           *float64 // 1.0-5.0
	PhotoReference   string
}

// SelectionState describes the selected place and its details fetch.
type SelectionState struct {
	SelectedPlaceID string
	Details         *PlaceDetails
	DetailsLoading  bool
}

// SavedPlace is a bookmarked place persisted locally.
type SavedPlace struct {
	ID        int64
	PlaceID   string
	Name      string
	Vicinity  string
	Category  string
	Latitude  float64
	Longitude float64
	Rating    *float64
	CreatedAt time.Time
}

// NewSavedPlace represents data for bookmarking a place.
type NewSavedPlace struct {
	PlaceID   string
	Name      string
	Vicinity  string
	Category  string
	Latitude  float64
	Longitude float64
	Rating    *float64
}

// ToPlace converts a saved place back to a search result shape.
func (s SavedPlace) ToPlace() Place {
	return Place{
		ID:       s.PlaceID,
		Name:     s.Name,
		Location: Coordinates{Latitude: s.Latitude, Longitude: s.Longitude},
		Vicinity: s.Vicinity,
	}
}
