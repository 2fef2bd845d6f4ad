package booking

import "urbanease/models"

// allowedTransitions is the provider-driven booking lifecycle. Completed and
// Cancelled are terminal.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:  {models.StatusAccepted, models.StatusCancelled},
	models.StatusAccepted: {models.StatusCompleted, models.StatusCancelled},
}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to models.BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions exist for a status.
func IsTerminal(status models.BookingStatus) bool {
	return len(allowedTransitions[status]) == 0
}
