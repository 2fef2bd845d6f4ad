package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"urbanease/models"
	bookingSvc "urbanease/services/booking"
	"urbanease/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func providerStub(t *testing.T, bookings []models.Booking, statusCalls *[]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/listings/my":
			json.NewEncoder(w).Encode([]models.Listing{{ID: "l1", Title: "Pipe Repair"}})
		case r.Method == http.MethodGet && r.URL.Path == "/bookings/provider":
			json.NewEncoder(w).Encode(bookings)
		case r.Method == http.MethodPut:
			var upd models.BookingStatusUpdate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&upd))
			if statusCalls != nil {
				*statusCalls = append(*statusCalls, r.URL.Path+":"+string(upd.Status))
			}
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPost && r.URL.Path == "/listings":
			var req models.NewListingRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			json.NewEncoder(w).Encode(models.Listing{ID: "new", Title: req.Title, Price: req.Price, InspectionPrice: req.InspectionPrice})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newProviderService(upstreamURL string) *DefaultProviderService {
	api := upstream.NewClient(upstreamURL)
	return &DefaultProviderService{
		API:    api,
		Status: &bookingSvc.DefaultStatusService{API: api},
	}
}

func providerAccount() models.UserSession {
	return models.UserSession{UserID: "p1", Role: "provider", UpstreamToken: "tok"}
}

func TestGetDashboard_CountsFromAuthoritativeList(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", Status: models.StatusPending},
		{ID: "b2", Status: models.StatusPending},
		{ID: "b3", Status: models.StatusAccepted},
		{ID: "b4", Status: models.StatusCompleted},
		{ID: "b5", Status: models.StatusCancelled},
	}
	srv := providerStub(t, bookings, nil)
	defer srv.Close()
	svc := newProviderService(srv.URL)

	dash, err := svc.GetDashboard(context.Background(), providerAccount())
	require.NoError(t, err)
	assert.Len(t, dash.Listings, 1)
	assert.Len(t, dash.Bookings, 5)
	assert.Equal(t, 2, dash.PendingCount)
	assert.Equal(t, 1, dash.AcceptedCount)
}

func TestCreateListing_Validation(t *testing.T) {
	srv := providerStub(t, nil, nil)
	defer srv.Close()
	svc := newProviderService(srv.URL)
	ctx := context.Background()

	_, err := svc.CreateListing(ctx, providerAccount(), models.NewListingRequest{Category: "Plumbing", Price: 50})
	assert.Error(t, err, "missing title")

	_, err = svc.CreateListing(ctx, providerAccount(), models.NewListingRequest{Title: "Pipe Repair", Price: 50})
	assert.Error(t, err, "missing category")

	_, err = svc.CreateListing(ctx, providerAccount(), models.NewListingRequest{Title: "Pipe Repair", Category: "Plumbing"})
	assert.Error(t, err, "missing price")

	listing, err := svc.CreateListing(ctx, providerAccount(), models.NewListingRequest{
		Title: "Pipe Repair", Category: "Plumbing", Price: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(models.DefaultInspectionPrice), listing.InspectionPrice)
}

func TestBookingActions_GateOnCurrentStatus(t *testing.T) {
	var calls []string
	bookings := []models.Booking{
		{ID: "pending", Status: models.StatusPending},
		{ID: "accepted", Status: models.StatusAccepted},
		{ID: "done", Status: models.StatusCompleted},
	}
	srv := providerStub(t, bookings, &calls)
	defer srv.Close()
	svc := newProviderService(srv.URL)
	ctx := context.Background()

	require.NoError(t, svc.Accept(ctx, providerAccount(), "pending"))
	require.NoError(t, svc.Complete(ctx, providerAccount(), "accepted"))
	require.NoError(t, svc.Decline(ctx, providerAccount(), "pending"))

	// Completed is terminal; no upstream call is made.
	err := svc.Decline(ctx, providerAccount(), "done")
	require.Error(t, err)

	err = svc.Complete(ctx, providerAccount(), "pending")
	require.Error(t, err, "pending cannot complete directly")

	err = svc.Accept(ctx, providerAccount(), "missing")
	require.Error(t, err)

	assert.Equal(t, []string{
		"/bookings/pending:Accepted",
		"/bookings/accepted:Completed",
		"/bookings/pending:Cancelled",
	}, calls)
}
