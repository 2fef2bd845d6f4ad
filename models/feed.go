package models

// FeedCard is a single provider card rendered on the services listing page.
type FeedCard struct {
	ListingID  string  `json:"listingId"`
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	Image      string  `json:"image"`
	Rating     float64 `json:"rating"`
	Reviews    int     `json:"reviews"`
	City       string  `json:"city"`
	Duration   string  `json:"duration"`
	HourlyRate float64 `json:"hourlyRate"`
	DistanceKm float64 `json:"distanceKm"`
	Verified   bool    `json:"verified"`
}

// MapMarker is the map-view overlay payload for a provider location.
type MapMarker struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Verified  bool    `json:"verified"`
}

// FilterCriteria is the ANDed filter set from the listing page sidebar.
type FilterCriteria struct {
	PriceMin     float64  `json:"priceMin" form:"priceMin"`
	PriceMax     float64  `json:"priceMax" form:"priceMax"`
	Ratings      []int    `json:"ratings" form:"ratings"`
	DistanceKm   float64  `json:"distance" form:"distance"`
	Availability []string `json:"availability" form:"availability"`
	VerifiedOnly bool     `json:"verified" form:"verified"`
}

// SortKey selects the feed comparator.
type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortRating      SortKey = "rating"
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortDistance    SortKey = "distance"
)

// FeedPage is one page of the filtered, sorted feed.
type FeedPage struct {
	Cards      []FeedCard `json:"cards"`
	Markers    []MapMarker `json:"markers,omitempty"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
	Total      int        `json:"total"`
}
