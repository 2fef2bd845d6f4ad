package feed

import "urbanease/models"

// defaultDuration is shown when a listing has no estimated duration.
const defaultDuration = "1h"

// AssembleCards builds provider cards from raw listings: provider fields are
// flattened with defined defaults and the display image is resolved.
func AssembleCards(listings []models.Listing) []models.FeedCard {
	cards := make([]models.FeedCard, 0, len(listings))
	for _, listing := range listings {
		cards = append(cards, assembleCard(listing))
	}
	return cards
}

func assembleCard(listing models.Listing) models.FeedCard {
	card := models.FeedCard{
		ListingID:  listing.ID,
		Name:       listing.Title,
		Image:      ResolveImage(listing),
		City:       "Nearby",
		Duration:   defaultDuration,
		HourlyRate: listing.Price,
		DistanceKm: listing.DistanceKm,
	}

	if listing.Duration != "" {
		card.Duration = listing.Duration
	}

	provider := listing.Provider
	if provider != nil {
		card.Specialty = provider.BusinessName
		if card.Specialty == "" {
			card.Specialty = provider.Name
		}
		if provider.City != "" {
			card.City = provider.City
		}
		card.Verified = provider.Verified
		rating := provider.RatingOrZero()
		card.Rating = rating.Average
		card.Reviews = rating.Count
	}
	if card.Specialty == "" {
		card.Specialty = "Unknown Provider"
	}

	return card
}

// BuildMarkers collects map markers for listings whose provider carries
// coordinates. Listings without a located provider are skipped rather than
// guessed at.
func BuildMarkers(listings []models.Listing) []models.MapMarker {
	var markers []models.MapMarker
	for _, listing := range listings {
		p := listing.Provider
		if p == nil || (p.Latitude == 0 && p.Longitude == 0) {
			continue
		}
		name := p.BusinessName
		if name == "" {
			name = listing.Title
		}
		markers = append(markers, models.MapMarker{
			Name:      name,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Verified:  p.Verified,
		})
	}
	return markers
}

// defaultMapCenter is used when no geolocation hint is available.
var defaultMapCenter = models.MapMarker{Name: "center", Latitude: 40.7128, Longitude: -74.0060}

// DefaultMapCenter returns the fallback map center.
func DefaultMapCenter() models.MapMarker {
	return defaultMapCenter
}
