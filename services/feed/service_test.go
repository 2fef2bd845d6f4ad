package feed

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

func catalogueStub(t *testing.T, hits *int) *httptest.Server {
	t.Helper()
	listings := []models.Listing{
		{ID: "l1", Title: "Pipe Repair", Category: "Plumbing", Price: 50,
			Provider: &models.ProviderRef{ID: "p1", BusinessName: "Alice Plumbing", City: "Brooklyn",
				Verified: true, Latitude: 40.7, Longitude: -74.0,
				Rating: &models.Rating{Average: 4.8, Count: 20}}},
		{ID: "l2", Title: "Deep Clean", Category: "Cleaning", Price: 30,
			Provider: &models.ProviderRef{ID: "p2", Name: "Bob", Rating: &models.Rating{Average: 3.5, Count: 4}}},
		{ID: "l3", Title: "Rewiring", Category: "Electrical", Price: 300,
			Provider: &models.ProviderRef{ID: "p3", Name: "Carol"}},
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/services":
			if hits != nil {
				*hits++
			}
			json.NewEncoder(w).Encode(listings)
		case r.URL.Path == "/listings/l1":
			json.NewEncoder(w).Encode(listings[0])
		case r.URL.Path == "/reviews/p1":
			json.NewEncoder(w).Encode([]models.Review{{ID: "r1", Rating: 5, Comment: "solid work"}})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
		}
	}))
}

func newFeedService(t *testing.T, upstreamURL string) *DefaultFeedService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &DefaultFeedService{
		API:   upstream.NewClient(upstreamURL),
		Cache: NewRedisListingCache(client, time.Minute),
	}
}

func TestBrowse_AssemblesFiltersAndPaginates(t *testing.T) {
	srv := catalogueStub(t, nil)
	defer srv.Close()
	svc := newFeedService(t, srv.URL)

	page, err := svc.Browse(context.Background(), BrowseQuery{Criteria: DefaultCriteria()})
	require.NoError(t, err)

	// The 300/hr listing falls outside the default 0-200 price range.
	require.Len(t, page.Cards, 2)
	assert.Equal(t, "Pipe Repair", page.Cards[0].Name)
	assert.Equal(t, "Alice Plumbing", page.Cards[0].Specialty)
	assert.Equal(t, "Brooklyn", page.Cards[0].City)
	assert.Equal(t, 4.8, page.Cards[0].Rating)
	assert.Equal(t, 20, page.Cards[0].Reviews)

	// Markers cover every located provider, unaffected by filtering.
	require.Len(t, page.Markers, 1)
	assert.Equal(t, "Alice Plumbing", page.Markers[0].Name)
}

func TestBrowse_SearchAndSort(t *testing.T) {
	srv := catalogueStub(t, nil)
	defer srv.Close()
	svc := newFeedService(t, srv.URL)

	criteria := models.FilterCriteria{PriceMax: 500, DistanceKm: 100}
	page, err := svc.Browse(context.Background(), BrowseQuery{
		Criteria: criteria,
		Sort:     models.SortPriceHigh,
	})
	require.NoError(t, err)
	require.Len(t, page.Cards, 3)
	assert.Equal(t, "Rewiring", page.Cards[0].Name)

	page, err = svc.Browse(context.Background(), BrowseQuery{
		Criteria: criteria,
		Query:    "clean",
	})
	require.NoError(t, err)
	require.Len(t, page.Cards, 1)
	assert.Equal(t, "Deep Clean", page.Cards[0].Name)
}

func TestBrowse_ServesSecondRequestFromCache(t *testing.T) {
	hits := 0
	srv := catalogueStub(t, &hits)
	defer srv.Close()
	svc := newFeedService(t, srv.URL)
	ctx := context.Background()

	_, err := svc.Browse(ctx, BrowseQuery{Criteria: DefaultCriteria()})
	require.NoError(t, err)
	_, err = svc.Browse(ctx, BrowseQuery{Criteria: DefaultCriteria()})
	require.NoError(t, err)
	assert.Equal(t, 1, hits)

	// Refresh invalidates the snapshot and re-pulls.
	require.NoError(t, svc.Refresh(ctx))
	assert.Equal(t, 2, hits)
}

func TestGetListing_WithReviews(t *testing.T) {
	srv := catalogueStub(t, nil)
	defer srv.Close()
	svc := newFeedService(t, srv.URL)

	listing, reviews, err := svc.GetListing(context.Background(), "l1")
	require.NoError(t, err)
	assert.Equal(t, "Pipe Repair", listing.Title)
	require.Len(t, reviews, 1)
	assert.Equal(t, "solid work", reviews[0].Comment)
}

func TestGetListing_NotFound(t *testing.T) {
	srv := catalogueStub(t, nil)
	defer srv.Close()
	svc := newFeedService(t, srv.URL)

	_, _, err := svc.GetListing(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, upstream.IsNotFound(err))
}
