package models

import "time"

// BookingStatus enumerates the provider-driven lifecycle of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusAccepted  BookingStatus = "Accepted"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
)

// BookingType distinguishes a full service visit from a cheaper on-site
// inspection.
type BookingType string

const (
	BookingTypeService    BookingType = "Service"
	BookingTypeInspection BookingType = "Inspection"
)

// Booking represents a customer's request for a listed service, mirrored from
// the upstream API.
type Booking struct {
	ID           string        `json:"_id"`
	ListingID    string        `json:"listingId,omitempty"`
	ProviderID   string        `json:"providerId,omitempty"`
	UserID       string        `json:"userId,omitempty"`
	ServiceLabel string        `json:"serviceId"`
	Date         time.Time     `json:"date"`
	Time         string        `json:"time,omitempty"`
	BookingType  BookingType   `json:"bookingType"`
	Status       BookingStatus `json:"status"`
	Address      string        `json:"address,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	Provider     *ProviderRef  `json:"provider,omitempty"`
}

// NewBookingRequest is the payload posted to the upstream to create a booking.
type NewBookingRequest struct {
	ProviderID  string      `json:"providerId"`
	ListingID   string      `json:"listingId"`
	ServiceID   string      `json:"serviceId"`
	Date        time.Time   `json:"date"`
	BookingType BookingType `json:"bookingType"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Notes       string      `json:"notes,omitempty"`
}

// BookingStatusUpdate is the payload for provider-driven status transitions.
type BookingStatusUpdate struct {
	Status BookingStatus `json:"status"`
}

// RebookTarget resolves which listing a past booking should rebook against.
// New bookings carry a listing reference; legacy ones only a provider.
func (b Booking) RebookTarget() (string, bool) {
	if b.ListingID != "" {
		return b.ListingID, true
	}
	if b.ProviderID != "" {
		return b.ProviderID, true
	}
	return "", false
}
