package models

import "time"

// Review is a customer's rating of a completed booking. Created once per
// booking, never mutated after submission.
type Review struct {
	ID        string    `json:"_id,omitempty"`
	BookingID string    `json:"bookingId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UserName  string    `json:"userName,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// NewReviewRequest is the payload posted to the upstream reviews endpoint.
type NewReviewRequest struct {
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}
