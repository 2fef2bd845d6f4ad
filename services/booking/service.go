package booking

import (
	"context"
	"time"

	"urbanease/models"
	"urbanease/upstream"
	"urbanease/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultFlowService implements FlowService over the upstream API and a Redis
// session store.
type DefaultFlowService struct {
	API   *upstream.Client
	Store SessionStore
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultFlowService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// StartSession opens a booking session against a listing. The displayed month
// starts at the current month; the default service and a full-service booking
// type are pre-selected.
func (s *DefaultFlowService) StartSession(ctx context.Context, user models.UserSession, listingID string) (*models.BookingSession, *models.Listing, error) {
	if user.Role == "provider" {
		return nil, nil, newValidationError("providers cannot book services; use a customer account")
	}

	listing, err := s.API.GetListingByID(ctx, listingID)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	session := models.BookingSession{
		SessionID:   uuid.NewString(),
		UserID:      user.UserID,
		ListingID:   listing.ID,
		Year:        now.Year(),
		Month:       int(now.Month()),
		ServiceKey:  DefaultServiceKey,
		BookingType: models.BookingTypeService,
		CreatedAt:   now,
	}
	if listing.Provider != nil {
		session.ProviderID = listing.Provider.ID
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	return &session, listing, nil
}

func (s *DefaultFlowService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Store.Get(ctx, sessionID)
}

func (s *DefaultFlowService) SelectDay(ctx context.Context, sessionID string, year, month, day int) (*models.BookingSession, Summary, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		return SelectDay(session, year, month, day, s.now())
	})
}

func (s *DefaultFlowService) SelectTimeSlot(ctx context.Context, sessionID, slot string) (*models.BookingSession, Summary, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		return SelectTimeSlot(session, slot)
	})
}

func (s *DefaultFlowService) SelectService(ctx context.Context, sessionID, serviceKey string) (*models.BookingSession, Summary, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		return SelectService(session, serviceKey)
	})
}

func (s *DefaultFlowService) SetBookingType(ctx context.Context, sessionID string, bookingType models.BookingType) (*models.BookingSession, error) {
	if bookingType != models.BookingTypeService && bookingType != models.BookingTypeInspection {
		return nil, newSelectionError("unknown booking type")
	}
	session, _, err := s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.BookingType = bookingType
		return nil
	})
	return session, err
}

func (s *DefaultFlowService) NavigateMonth(ctx context.Context, sessionID string, direction int) (*models.BookingSession, MonthGrid, error) {
	session, _, err := s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		Navigate(session, direction)
		return nil
	})
	if err != nil {
		return nil, MonthGrid{}, err
	}
	return session, RenderSessionMonth(*session, s.now()), nil
}

// Confirm validates the selection and contact fields, submits the booking
// upstream, and discards the session. The resulting booking starts Pending.
func (s *DefaultFlowService) Confirm(ctx context.Context, user models.UserSession, sessionID string, req ConfirmRequest) (*models.Booking, error) {
	if user.Role == "provider" {
		return nil, newValidationError("providers cannot book services; use a customer account")
	}

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := validateConfirm(*session, req, now); err != nil {
		return nil, err
	}

	when, err := CombineDateTime(*session.SelectedDate, session.SelectedTime)
	if err != nil {
		return nil, err
	}

	opt, _ := LookupService(session.ServiceKey)
	payload := models.NewBookingRequest{
		ProviderID:  session.ProviderID,
		ListingID:   session.ListingID,
		ServiceID:   opt.Name,
		Date:        when,
		BookingType: session.BookingType,
		Address:     req.Address,
		Phone:       NormalizePhone(req.Phone),
		Notes:       req.Notes,
	}

	booking, err := s.API.CreateBooking(ctx, user.UpstreamToken, payload)
	if err != nil {
		return nil, err
	}
	if booking.Status == "" {
		booking.Status = models.StatusPending
	}

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("Failed to delete booking session after confirm",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return booking, nil
}

func (s *DefaultFlowService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// mutate loads the session, applies fn, saves, and returns the fresh summary.
func (s *DefaultFlowService) mutate(ctx context.Context, sessionID string, fn func(*models.BookingSession) error) (*models.BookingSession, Summary, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, Summary{}, err
	}
	if err := fn(session); err != nil {
		return nil, Summary{}, err
	}
	if err := s.Store.Save(ctx, *session); err != nil {
		return nil, Summary{}, err
	}
	return session, ComputeSummary(*session), nil
}

// DefaultStatusService implements StatusService.
type DefaultStatusService struct {
	API *upstream.Client
}

// Transition requests a provider-driven status change upstream. Callers must
// not touch local list state unless this returns nil; the optimistic update
// is gated on upstream success.
func (s *DefaultStatusService) Transition(ctx context.Context, user models.UserSession, booking models.Booking, to models.BookingStatus) error {
	if !CanTransition(booking.Status, to) {
		return newTransitionError(string(booking.Status) + " bookings cannot move to " + string(to))
	}
	return s.API.UpdateBookingStatus(ctx, user.UpstreamToken, booking.ID, to)
}
