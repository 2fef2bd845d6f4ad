package models

import "time"

// UserSession is the gateway-held account session, replacing the browser's
// localStorage keys (token, userEmail, userRole, isLoggedIn, hasSeenIntro).
type UserSession struct {
	SessionID     string    `json:"sessionId"`
	UserID        string    `json:"userId"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	UpstreamToken string    `json:"upstreamToken"`
	IntroSeen     bool      `json:"introSeen"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// BookingSession is the ephemeral selection state of one booking page
// instance: the chosen day, time slot, service variant and booking type.
// It is discarded when the session is cancelled or expires.
type BookingSession struct {
	SessionID    string      `json:"sessionId"`
	UserID       string      `json:"userId"`
	ListingID    string      `json:"listingId"`
	ProviderID   string      `json:"providerId"`
	Year         int         `json:"year"`
	Month        int         `json:"month"` // 1..12, displayed month
	SelectedDate *time.Time  `json:"selectedDate,omitempty"`
	SelectedTime string      `json:"selectedTime,omitempty"`
	ServiceKey   string      `json:"serviceKey"`
	BookingType  BookingType `json:"bookingType"`
	CreatedAt    time.Time   `json:"createdAt"`
}
