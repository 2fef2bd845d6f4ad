package booking

import (
	"strings"
	"time"

	"urbanease/models"
)

// slotLayout parses the offered slot labels ("10:00 AM").
const slotLayout = "03:04 PM"

// CombineDateTime merges the selected calendar date with the selected slot
// into a single timestamp.
func CombineDateTime(date time.Time, slot string) (time.Time, error) {
	t, err := time.Parse(slotLayout, slot)
	if err != nil {
		return time.Time{}, newSelectionError("invalid time slot format")
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// NormalizePhone strips non-digits and formats a 10-digit number as
// "(xxx) xxx-xxxx". Shorter input is returned digits-only for the upstream to
// judge.
func NormalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 10 {
		return d
	}
	return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
}

// ConfirmRequest carries the contact fields entered at confirmation time.
type ConfirmRequest struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

// validateConfirm checks every required field before any payload is composed.
// The first failure aborts; nothing is submitted partially.
func validateConfirm(session models.BookingSession, req ConfirmRequest, now time.Time) error {
	if session.SelectedDate == nil || session.SelectedTime == "" {
		return newValidationError("please select both a date and time")
	}
	if session.SelectedDate.Before(midnight(now)) {
		return newValidationError("booking date must be today or later")
	}
	if strings.TrimSpace(req.Address) == "" || strings.TrimSpace(req.Phone) == "" {
		return newValidationError("please fill in address and phone number")
	}
	return nil
}
