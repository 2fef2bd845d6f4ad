package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"urbanease/models"
	"urbanease/upstream"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) SessionStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisSessionStore(client, time.Minute)
}

// stubUpstream serves the listing detail and records the booking payload.
func stubUpstream(t *testing.T, created *models.NewBookingRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/listings/l1":
			json.NewEncoder(w).Encode(models.Listing{
				ID:       "l1",
				Title:    "Pipe Repair",
				Price:    50,
				Provider: &models.ProviderRef{ID: "p1", Name: "Alice"},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/bookings":
			require.NoError(t, json.NewDecoder(r.Body).Decode(created))
			json.NewEncoder(w).Encode(models.Booking{
				ID:           "b1",
				ListingID:    created.ListingID,
				ProviderID:   created.ProviderID,
				ServiceLabel: created.ServiceID,
				Date:         created.Date,
				Status:       models.StatusPending,
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
		}
	}))
}

func customerSession() models.UserSession {
	return models.UserSession{
		SessionID:     "us-1",
		UserID:        "u1",
		Email:         "carol@example.com",
		Role:          "user",
		UpstreamToken: "tok",
	}
}

func TestFlowService_FullBookingFlow(t *testing.T) {
	var created models.NewBookingRequest
	srv := stubUpstream(t, &created)
	defer srv.Close()

	svc := &DefaultFlowService{
		API:   upstream.NewClient(srv.URL),
		Store: newTestStore(t),
		Now:   func() time.Time { return testNow },
	}
	ctx := context.Background()

	session, listing, err := svc.StartSession(ctx, customerSession(), "l1")
	require.NoError(t, err)
	assert.Equal(t, "l1", listing.ID)
	assert.Equal(t, "p1", session.ProviderID)
	assert.Equal(t, 2025, session.Year)
	assert.Equal(t, 6, session.Month)
	assert.Equal(t, DefaultServiceKey, session.ServiceKey)
	assert.Equal(t, models.BookingTypeService, session.BookingType)

	// Confirming before selecting anything is rejected locally.
	_, err = svc.Confirm(ctx, customerSession(), session.SessionID, ConfirmRequest{
		Address: "1 Main St", Phone: "5551234567",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, summary, err := svc.SelectDay(ctx, session.SessionID, 2025, 6, 15)
	require.NoError(t, err)
	assert.False(t, summary.CanConfirm)

	_, summary, err = svc.SelectTimeSlot(ctx, session.SessionID, "10:00 AM")
	require.NoError(t, err)
	assert.True(t, summary.CanConfirm)

	booking, err := svc.Confirm(ctx, customerSession(), session.SessionID, ConfirmRequest{
		Address: "1 Main St", Phone: "555-123-4567", Notes: "ring twice",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, booking.Status)

	// The upstream payload carries the combined timestamp, the normalized
	// phone and the resolved service name.
	assert.Equal(t, "l1", created.ListingID)
	assert.Equal(t, "p1", created.ProviderID)
	assert.Equal(t, "Pipe Repair & Replacement", created.ServiceID)
	assert.Equal(t, time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), created.Date.UTC())
	assert.Equal(t, "(555) 123-4567", created.Phone)
	assert.Equal(t, models.BookingTypeService, created.BookingType)

	// The session is gone after a successful confirm.
	_, err = svc.GetSession(ctx, session.SessionID)
	assert.Error(t, err)
}

func TestFlowService_ProviderCannotBook(t *testing.T) {
	svc := &DefaultFlowService{Store: newTestStore(t)}

	providerSession := customerSession()
	providerSession.Role = "provider"

	_, _, err := svc.StartSession(context.Background(), providerSession, "l1")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = svc.Confirm(context.Background(), providerSession, "whatever", ConfirmRequest{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestFlowService_NavigateMonthPersists(t *testing.T) {
	var created models.NewBookingRequest
	srv := stubUpstream(t, &created)
	defer srv.Close()

	svc := &DefaultFlowService{
		API:   upstream.NewClient(srv.URL),
		Store: newTestStore(t),
		Now:   func() time.Time { return testNow },
	}
	ctx := context.Background()

	session, _, err := svc.StartSession(ctx, customerSession(), "l1")
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		_, _, err = svc.NavigateMonth(ctx, session.SessionID, 1)
		require.NoError(t, err)
	}
	got, err := svc.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year)
	assert.Equal(t, 1, got.Month)
}

func TestFlowService_RejectsUnknownBookingType(t *testing.T) {
	var created models.NewBookingRequest
	srv := stubUpstream(t, &created)
	defer srv.Close()

	svc := &DefaultFlowService{
		API:   upstream.NewClient(srv.URL),
		Store: newTestStore(t),
		Now:   func() time.Time { return testNow },
	}
	ctx := context.Background()

	session, _, err := svc.StartSession(ctx, customerSession(), "l1")
	require.NoError(t, err)

	_, err = svc.SetBookingType(ctx, session.SessionID, models.BookingType("Weekly"))
	require.Error(t, err)

	updated, err := svc.SetBookingType(ctx, session.SessionID, models.BookingTypeInspection)
	require.NoError(t, err)
	assert.Equal(t, models.BookingTypeInspection, updated.BookingType)
}

func TestStatusService_BlocksIllegalTransition(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := &DefaultStatusService{API: upstream.NewClient(srv.URL)}
	ctx := context.Background()

	completed := models.Booking{ID: "b1", Status: models.StatusCompleted}
	err := svc.Transition(ctx, customerSession(), completed, models.StatusCancelled)
	require.Error(t, err)
	assert.Zero(t, calls, "upstream must not be called for an illegal transition")

	pending := models.Booking{ID: "b2", Status: models.StatusPending}
	require.NoError(t, svc.Transition(ctx, customerSession(), pending, models.StatusAccepted))
	assert.Equal(t, 1, calls)
}
