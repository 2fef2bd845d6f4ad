package feed

import (
	"strings"

	"urbanease/models"
)

// minQueryLength is the shortest query that triggers filtering; anything
// shorter shows all cards.
const minQueryLength = 2

// SearchCards filters cards by a case-insensitive substring match against the
// card name and specialty.
func SearchCards(cards []models.FeedCard, query string) []models.FeedCard {
	if len(query) < minQueryLength {
		return cards
	}

	needle := strings.ToLower(query)
	out := make([]models.FeedCard, 0, len(cards))
	for _, card := range cards {
		name := strings.ToLower(card.Name)
		specialty := strings.ToLower(card.Specialty)
		if strings.Contains(name, needle) || strings.Contains(specialty, needle) {
			out = append(out, card)
		}
	}
	return out
}
