package feed

import "urbanease/models"

// DefaultCriteria mirrors the listing page's initial sidebar state: price
// range 0-200, 5 km radius, nothing else checked.
func DefaultCriteria() models.FilterCriteria {
	return models.FilterCriteria{
		PriceMin:   0,
		PriceMax:   200,
		DistanceKm: 5,
	}
}

// matches applies the ANDed sidebar criteria to one card. The original page
// left this a stub that showed every card; here the criteria are applied to
// the card's real attributes.
func matches(card models.FeedCard, criteria models.FilterCriteria) bool {
	if criteria.PriceMax > 0 && card.HourlyRate > criteria.PriceMax {
		return false
	}
	if card.HourlyRate < criteria.PriceMin {
		return false
	}

	// Rating thresholds are ORed among themselves: checking "4+" and "3+"
	// admits anything rated at least 3.
	if len(criteria.Ratings) > 0 {
		ok := false
		for _, threshold := range criteria.Ratings {
			if card.Rating >= float64(threshold) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if criteria.DistanceKm > 0 && card.DistanceKm > criteria.DistanceKm {
		return false
	}

	if criteria.VerifiedOnly && !card.Verified {
		return false
	}

	// Availability windows are accepted but not applied: the upstream exposes
	// no provider free/busy data, so there is nothing to test a card against.
	return true
}

// ApplyFilters returns the cards admitted by the criteria, preserving order.
func ApplyFilters(cards []models.FeedCard, criteria models.FilterCriteria) []models.FeedCard {
	out := make([]models.FeedCard, 0, len(cards))
	for _, card := range cards {
		if matches(card, criteria) {
			out = append(out, card)
		}
	}
	return out
}
