package feed

import (
	"context"

	"urbanease/models"
	"urbanease/upstream"
	"urbanease/utils"

	"go.uber.org/zap"
)

// DefaultFeedService implements FeedService over the upstream API with a
// Redis listing snapshot in front of it.
type DefaultFeedService struct {
	API   *upstream.Client
	Cache ListingCache
}

func (s *DefaultFeedService) Browse(ctx context.Context, q BrowseQuery) (*models.FeedPage, error) {
	listings, err := s.fetchListings(ctx)
	if err != nil {
		return nil, err
	}

	cards := AssembleCards(listings)
	cards = ApplyFilters(cards, q.Criteria)
	cards = SearchCards(cards, q.Query)
	SortCards(cards, q.Sort)

	page := Paginate(cards, q.Page, q.PageSize)
	page.Markers = BuildMarkers(listings)
	return &page, nil
}

func (s *DefaultFeedService) GetListing(ctx context.Context, id string) (*models.Listing, []models.Review, error) {
	listing, err := s.API.GetListingByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var reviews []models.Review
	if listing.Provider != nil && listing.Provider.ID != "" {
		reviews, err = s.API.GetReviewsForProvider(ctx, listing.Provider.ID, listing.Title)
		if err != nil {
			// Reviews are decoration on the detail page; the listing itself
			// is still served.
			utils.GetLogger().Warn("Failed to fetch reviews for listing",
				zap.String("listingID", id), zap.Error(err))
			reviews = nil
		}
	}
	return listing, reviews, nil
}

// Refresh drops the cached snapshot and pulls a fresh one.
func (s *DefaultFeedService) Refresh(ctx context.Context) error {
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx); err != nil {
			utils.GetLogger().Warn("Failed to invalidate listing cache", zap.Error(err))
		}
	}
	_, err := s.fetchListings(ctx)
	return err
}

func (s *DefaultFeedService) fetchListings(ctx context.Context) ([]models.Listing, error) {
	if s.Cache != nil {
		if listings, ok := s.Cache.Get(ctx); ok {
			return listings, nil
		}
	}

	listings, err := s.API.GetServices(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, listings); err != nil {
			utils.GetLogger().Warn("Failed to cache listing snapshot", zap.Error(err))
		}
	}
	return listings, nil
}
