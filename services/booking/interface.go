package booking

import (
	"context"

	"urbanease/models"
)

// FlowService drives one booking page session: start it against a listing,
// mutate the selection, and confirm or discard it.
type FlowService interface {
	StartSession(ctx context.Context, user models.UserSession, listingID string) (*models.BookingSession, *models.Listing, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectDay(ctx context.Context, sessionID string, year, month, day int) (*models.BookingSession, Summary, error)
	SelectTimeSlot(ctx context.Context, sessionID, slot string) (*models.BookingSession, Summary, error)
	SelectService(ctx context.Context, sessionID, serviceKey string) (*models.BookingSession, Summary, error)
	SetBookingType(ctx context.Context, sessionID string, bookingType models.BookingType) (*models.BookingSession, error)
	NavigateMonth(ctx context.Context, sessionID string, direction int) (*models.BookingSession, MonthGrid, error)
	Confirm(ctx context.Context, user models.UserSession, sessionID string, req ConfirmRequest) (*models.Booking, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// StatusService performs provider-driven booking status transitions, gated on
// upstream success.
type StatusService interface {
	Transition(ctx context.Context, user models.UserSession, booking models.Booking, to models.BookingStatus) error
}
