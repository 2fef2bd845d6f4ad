package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchCards_ShortQueryShowsAll(t *testing.T) {
	cards := testCards()
	assert.Len(t, SearchCards(cards, ""), 4)
	assert.Len(t, SearchCards(cards, "a"), 4)
}

func TestSearchCards_MatchesName(t *testing.T) {
	got := SearchCards(testCards(), "alice")
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestSearchCards_MatchesSpecialty(t *testing.T) {
	got := SearchCards(testCards(), "clean")
	assert.Equal(t, []string{"b"}, ids(got))
}

func TestSearchCards_CaseInsensitive(t *testing.T) {
	got := SearchCards(testCards(), "PLUMB")
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestSearchCards_NoMatch(t *testing.T) {
	assert.Empty(t, SearchCards(testCards(), "zzqq"))
}
