package feed

import (
	"testing"

	"urbanease/models"

	"github.com/stretchr/testify/assert"
)

func testCards() []models.FeedCard {
	return []models.FeedCard{
		{ListingID: "a", Name: "Alice Plumbing", Specialty: "Plumbing", HourlyRate: 50, Rating: 4.8, DistanceKm: 1.2, Verified: true},
		{ListingID: "b", Name: "Bob Cleaners", Specialty: "Cleaning", HourlyRate: 30, Rating: 3.5, DistanceKm: 3.0, Verified: false},
		{ListingID: "c", Name: "Carol Electric", Specialty: "Electrical", HourlyRate: 120, Rating: 4.2, DistanceKm: 4.9, Verified: true},
		{ListingID: "d", Name: "Dan Paints", Specialty: "Painting", HourlyRate: 45, Rating: 2.9, DistanceKm: 8.0, Verified: false},
	}
}

func ids(cards []models.FeedCard) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ListingID)
	}
	return out
}

func TestApplyFilters_Defaults(t *testing.T) {
	// Default sidebar: price 0-200, 5 km. Only the 8 km card drops.
	got := ApplyFilters(testCards(), DefaultCriteria())
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestApplyFilters_PriceRange(t *testing.T) {
	criteria := models.FilterCriteria{PriceMin: 40, PriceMax: 60, DistanceKm: 100}
	got := ApplyFilters(testCards(), criteria)
	assert.Equal(t, []string{"a", "d"}, ids(got))
}

func TestApplyFilters_RatingThresholdsAreORed(t *testing.T) {
	// Checking "4+" and "3+" admits anything rated at least 3.
	criteria := models.FilterCriteria{PriceMax: 200, DistanceKm: 100, Ratings: []int{4, 3}}
	got := ApplyFilters(testCards(), criteria)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))

	criteria.Ratings = []int{5}
	got = ApplyFilters(testCards(), criteria)
	assert.Empty(t, got)
}

func TestApplyFilters_VerifiedOnly(t *testing.T) {
	criteria := models.FilterCriteria{PriceMax: 200, DistanceKm: 100, VerifiedOnly: true}
	got := ApplyFilters(testCards(), criteria)
	assert.Equal(t, []string{"a", "c"}, ids(got))
}

func TestApplyFilters_CriteriaAreANDed(t *testing.T) {
	criteria := models.FilterCriteria{
		PriceMax:     200,
		DistanceKm:   5,
		Ratings:      []int{4},
		VerifiedOnly: true,
	}
	got := ApplyFilters(testCards(), criteria)
	assert.Equal(t, []string{"a", "c"}, ids(got))
}

func TestApplyFilters_AvailabilityIsIgnored(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.Availability = []string{"Morning (8AM - 12PM)"}
	got := ApplyFilters(testCards(), criteria)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestApplyFilters_PreservesOrder(t *testing.T) {
	got := ApplyFilters(testCards(), models.FilterCriteria{PriceMax: 200, DistanceKm: 100})
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(got))
}
