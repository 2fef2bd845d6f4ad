package booking

import (
	"fmt"
	"time"

	"urbanease/models"
)

// TimeSlots lists the offered appointment slots. At most one may be selected
// at a time.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
}

// IsValidTimeSlot reports whether slot is one of the offered slots.
func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Summary is the booking sidebar recap: the chosen service, its rate, the
// min/max estimate, labels for the current selection, and whether confirming
// is allowed. It is recomputed on every selection change.
type Summary struct {
	ServiceName string  `json:"serviceName"`
	Rate        float64 `json:"rate"`
	TotalMin    float64 `json:"totalMin"`
	TotalMax    float64 `json:"totalMax"`
	DateLabel   string  `json:"dateLabel,omitempty"`
	TimeLabel   string  `json:"timeLabel,omitempty"`
	CanConfirm  bool    `json:"canConfirm"`
}

// SelectDay sets the session's sole selected day, replacing any previous
// selection. Days before today are rejected; today itself is allowed.
func SelectDay(session *models.BookingSession, year, month, day int, now time.Time) error {
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	if date.Before(midnight(now)) {
		return newSelectionError("cannot select a past date")
	}
	session.SelectedDate = &date
	return nil
}

// SelectTimeSlot sets the session's sole selected slot, replacing any
// previous one.
func SelectTimeSlot(session *models.BookingSession, slot string) error {
	if !IsValidTimeSlot(slot) {
		return newSelectionError(fmt.Sprintf("unknown time slot %q", slot))
	}
	session.SelectedTime = slot
	return nil
}

// SelectService switches the active service variant.
func SelectService(session *models.BookingSession, key string) error {
	if _, ok := LookupService(key); !ok {
		return newSelectionError(fmt.Sprintf("unknown service %q", key))
	}
	session.ServiceKey = key
	return nil
}

// ComputeSummary derives the sidebar recap from the current selection state.
// Confirmation is enabled only when both a date and a time slot are chosen.
func ComputeSummary(session models.BookingSession) Summary {
	opt, ok := LookupService(session.ServiceKey)
	if !ok {
		opt, _ = LookupService(DefaultServiceKey)
	}
	min, max := EstimateRange(opt.Rate)

	summary := Summary{
		ServiceName: opt.Name,
		Rate:        opt.Rate,
		TotalMin:    min,
		TotalMax:    max,
		TimeLabel:   session.SelectedTime,
	}
	if session.SelectedDate != nil {
		summary.DateLabel = session.SelectedDate.Format("Monday, January 2, 2006")
	}
	summary.CanConfirm = session.SelectedDate != nil && session.SelectedTime != ""
	return summary
}

// RenderSessionMonth renders the session's displayed month with its selection
// applied.
func RenderSessionMonth(session models.BookingSession, now time.Time) MonthGrid {
	return RenderMonth(session.Year, session.Month, now, session.SelectedDate)
}

// Navigate moves the session's displayed month. The selected date is kept;
// its highlight reappears when the user navigates back to its month.
func Navigate(session *models.BookingSession, direction int) {
	session.Year, session.Month = NavigateMonth(session.Year, session.Month, direction)
}
