package booking

import (
	"testing"

	"urbanease/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.BookingStatus
		want     bool
	}{
		{models.StatusPending, models.StatusAccepted, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusAccepted, models.StatusCompleted, true},
		{models.StatusAccepted, models.StatusCancelled, true},
		{models.StatusAccepted, models.StatusPending, false},
		{models.StatusCompleted, models.StatusCancelled, false},
		{models.StatusCompleted, models.StatusPending, false},
		{models.StatusCancelled, models.StatusAccepted, false},
		{models.StatusCancelled, models.StatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(models.StatusPending))
	assert.False(t, IsTerminal(models.StatusAccepted))
	assert.True(t, IsTerminal(models.StatusCompleted))
	assert.True(t, IsTerminal(models.StatusCancelled))
}

func TestCanTransition_NoSelfLoops(t *testing.T) {
	for _, status := range []models.BookingStatus{
		models.StatusPending,
		models.StatusAccepted,
		models.StatusCompleted,
		models.StatusCancelled,
	} {
		assert.False(t, CanTransition(status, status), "self loop on %s", status)
	}
}
