package provider

import (
	"context"
	"strings"

	"urbanease/models"
	bookingSvc "urbanease/services/booking"
	"urbanease/upstream"
)

// Dashboard is the provider dashboard payload: listings, incoming bookings
// and the counters derived from them. Counters come from this authoritative
// list, never from re-reading rendered state.
type Dashboard struct {
	Listings      []models.Listing `json:"listings"`
	Bookings      []models.Booking `json:"bookings"`
	PendingCount  int              `json:"pendingCount"`
	AcceptedCount int              `json:"acceptedCount"`
}

// ProviderService covers listing management and incoming-booking handling.
type ProviderService interface {
	GetDashboard(ctx context.Context, session models.UserSession) (*Dashboard, error)
	CreateListing(ctx context.Context, session models.UserSession, req models.NewListingRequest) (*models.Listing, error)
	DeleteListing(ctx context.Context, session models.UserSession, listingID string) error
	Accept(ctx context.Context, session models.UserSession, bookingID string) error
	Decline(ctx context.Context, session models.UserSession, bookingID string) error
	Complete(ctx context.Context, session models.UserSession, bookingID string) error
}

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	API    *upstream.Client
	Status bookingSvc.StatusService
}

func (s *DefaultProviderService) GetDashboard(ctx context.Context, session models.UserSession) (*Dashboard, error) {
	listings, err := s.API.GetMyListings(ctx, session.UpstreamToken)
	if err != nil {
		return nil, err
	}
	bookings, err := s.API.GetProviderBookings(ctx, session.UpstreamToken)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{Listings: listings, Bookings: bookings}
	for _, b := range bookings {
		switch b.Status {
		case models.StatusPending:
			dash.PendingCount++
		case models.StatusAccepted:
			dash.AcceptedCount++
		}
	}
	return dash, nil
}

// CreateListing validates locally before touching the upstream: a listing
// needs a title, a category and a positive price.
func (s *DefaultProviderService) CreateListing(ctx context.Context, session models.UserSession, req models.NewListingRequest) (*models.Listing, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Category) == "" {
		return nil, &ValidationError{Message: "title and category are required"}
	}
	if req.Price <= 0 {
		return nil, &ValidationError{Message: "price must be greater than zero"}
	}
	if req.InspectionPrice <= 0 {
		req.InspectionPrice = models.DefaultInspectionPrice
	}
	return s.API.CreateListing(ctx, session.UpstreamToken, req)
}

// DeleteListing removes a listing upstream. Callers drop it from their local
// list only after this returns nil.
func (s *DefaultProviderService) DeleteListing(ctx context.Context, session models.UserSession, listingID string) error {
	return s.API.DeleteListing(ctx, session.UpstreamToken, listingID)
}

// findBooking resolves the current booking from the provider's own list so
// transition checks run against the authoritative status, not whatever the
// client last rendered.
func (s *DefaultProviderService) findBooking(ctx context.Context, session models.UserSession, bookingID string) (*models.Booking, error) {
	bookings, err := s.API.GetProviderBookings(ctx, session.UpstreamToken)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == bookingID {
			return &bookings[i], nil
		}
	}
	return nil, &ValidationError{Message: "booking not found"}
}

func (s *DefaultProviderService) Accept(ctx context.Context, session models.UserSession, bookingID string) error {
	return s.transition(ctx, session, bookingID, models.StatusAccepted)
}

func (s *DefaultProviderService) Decline(ctx context.Context, session models.UserSession, bookingID string) error {
	return s.transition(ctx, session, bookingID, models.StatusCancelled)
}

func (s *DefaultProviderService) Complete(ctx context.Context, session models.UserSession, bookingID string) error {
	return s.transition(ctx, session, bookingID, models.StatusCompleted)
}

func (s *DefaultProviderService) transition(ctx context.Context, session models.UserSession, bookingID string, target models.BookingStatus) error {
	booking, err := s.findBooking(ctx, session, bookingID)
	if err != nil {
		return err
	}
	return s.Status.Transition(ctx, session, *booking, target)
}

// ValidationError is a local form validation failure; no upstream call was
// made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
