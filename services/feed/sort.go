package feed

import (
	"sort"

	"urbanease/models"
)

// SortCards orders cards in place by the given key. "recommended" (or any
// unknown key) keeps the incoming order. All sorts are stable so equal cards
// never swap.
func SortCards(cards []models.FeedCard, key models.SortKey) {
	switch key {
	case models.SortRating:
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].Rating > cards[j].Rating
		})
	case models.SortPriceLow:
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].HourlyRate < cards[j].HourlyRate
		})
	case models.SortPriceHigh:
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].HourlyRate > cards[j].HourlyRate
		})
	case models.SortDistance:
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].DistanceKm < cards[j].DistanceKm
		})
	}
}
