package user

import (
	"context"

	"urbanease/models"
)

// AuthResponse is returned after a successful sign-in: the gateway session
// token plus the public session fields.
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IntroSeen bool   `json:"introSeen"`
}

// BookingView is a customer booking with its review gate resolved.
type BookingView struct {
	models.Booking
	CanReview bool `json:"canReview"`
}

// UserService covers the customer-facing flows: authentication, the bookings
// dashboard, rebooking and reviews.
type UserService interface {
	SignIn(ctx context.Context, email, password string) (*AuthResponse, error)
	SignOut(ctx context.Context, sessionID string) error
	ResolveSession(ctx context.Context, token string) (*models.UserSession, error)
	MarkIntroSeen(ctx context.Context, sessionID string) error

	MyBookings(ctx context.Context, session models.UserSession) ([]BookingView, error)
	RebookTarget(ctx context.Context, session models.UserSession, bookingID string) (string, error)
	SubmitReview(ctx context.Context, session models.UserSession, req models.NewReviewRequest) error
}
