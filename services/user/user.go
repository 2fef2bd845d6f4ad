package user

import (
	"context"
	"sort"
	"time"

	"urbanease/config"
	"urbanease/models"
	"urbanease/upstream"
	"urbanease/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// reviewedPrefix marks bookings this account has already reviewed, so the
// review UI gate survives page reloads. The upstream enforces once-per-booking
// authoritatively; this is only the client-side gate.
const reviewedPrefix = "reviewed:"

// DefaultUserService implements UserService.
type DefaultUserService struct {
	API      *upstream.Client
	Sessions SessionStore
	Cache    *redis.Client
}

// SignIn relays credentials upstream and, on success, opens a gateway session
// holding the upstream bearer token.
func (s *DefaultUserService) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, newAuthError("email and password are required")
	}

	resp, err := s.API.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	session := models.UserSession{
		SessionID:     uuid.NewString(),
		UserID:        resp.User.ID,
		Email:         resp.User.Email,
		Role:          resp.User.Role,
		UpstreamToken: resp.Token,
		CreatedAt:     time.Now(),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	ttl := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	token, err := utils.GenerateSessionToken(session.SessionID, session.Email, ttl)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token:  token,
		UserID: resp.User.ID,
		Name:   resp.User.Name,
		Email:  resp.User.Email,
		Role:   resp.User.Role,
	}, nil
}

func (s *DefaultUserService) SignOut(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// ResolveSession validates a gateway token and loads its session.
func (s *DefaultUserService) ResolveSession(ctx context.Context, token string) (*models.UserSession, error) {
	sessionID, err := utils.ExtractSessionIDFromToken(token)
	if err != nil {
		return nil, newAuthError("invalid session token")
	}
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, newAuthError("session expired or revoked")
	}
	return session, nil
}

func (s *DefaultUserService) MarkIntroSeen(ctx context.Context, sessionID string) error {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	session.IntroSeen = true
	return s.Sessions.Save(ctx, *session)
}

// MyBookings returns the customer's bookings newest-first with the review
// gate resolved per booking.
func (s *DefaultUserService) MyBookings(ctx context.Context, session models.UserSession) ([]BookingView, error) {
	bookings, err := s.API.GetUserBookings(ctx, session.UpstreamToken)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Date.After(bookings[j].Date)
	})

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, BookingView{
			Booking:   b,
			CanReview: b.Status == models.StatusCompleted && !s.alreadyReviewed(ctx, session.UserID, b.ID),
		})
	}
	return views, nil
}

// RebookTarget resolves which listing a rebook action should open.
func (s *DefaultUserService) RebookTarget(ctx context.Context, session models.UserSession, bookingID string) (string, error) {
	bookings, err := s.API.GetUserBookings(ctx, session.UpstreamToken)
	if err != nil {
		return "", err
	}
	for _, b := range bookings {
		if b.ID == bookingID {
			if target, ok := b.RebookTarget(); ok {
				return target, nil
			}
			return "", newFlowError("cannot rebook this service, details unavailable")
		}
	}
	return "", newFlowError("booking not found")
}

// SubmitReview posts a review for a completed booking. The rating must be
// 1..5 and the booking must belong to this account, be Completed, and not
// already be reviewed through this gateway.
func (s *DefaultUserService) SubmitReview(ctx context.Context, session models.UserSession, req models.NewReviewRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return newFlowError("rating must be between 1 and 5")
	}
	if req.BookingID == "" {
		return newFlowError("booking reference is required")
	}

	bookings, err := s.API.GetUserBookings(ctx, session.UpstreamToken)
	if err != nil {
		return err
	}
	var target *models.Booking
	for i := range bookings {
		if bookings[i].ID == req.BookingID {
			target = &bookings[i]
			break
		}
	}
	if target == nil {
		return newFlowError("booking not found")
	}
	if target.Status != models.StatusCompleted {
		return newFlowError("only completed bookings can be reviewed")
	}
	if s.alreadyReviewed(ctx, session.UserID, req.BookingID) {
		return newFlowError("this booking has already been reviewed")
	}

	if err := s.API.SubmitReview(ctx, session.UpstreamToken, req); err != nil {
		return err
	}

	// Record the gate only after the upstream accepted the review.
	if s.Cache != nil {
		s.Cache.SAdd(ctx, reviewedPrefix+session.UserID, req.BookingID)
	}
	return nil
}

func (s *DefaultUserService) alreadyReviewed(ctx context.Context, userID, bookingID string) bool {
	if s.Cache == nil {
		return false
	}
	ok, err := s.Cache.SIsMember(ctx, reviewedPrefix+userID, bookingID).Result()
	return err == nil && ok
}
