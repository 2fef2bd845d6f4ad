package feed

import (
	"context"

	"urbanease/models"
)

// BrowseQuery bundles everything the listing page sends when the user touches
// a filter, the sort select, the search box or the pager.
type BrowseQuery struct {
	Criteria models.FilterCriteria
	Sort     models.SortKey
	Query    string
	Page     int
	PageSize int
}

// FeedService assembles the provider-card feed for the services listing page.
type FeedService interface {
	Browse(ctx context.Context, q BrowseQuery) (*models.FeedPage, error)
	GetListing(ctx context.Context, id string) (*models.Listing, []models.Review, error)
	Refresh(ctx context.Context) error
}
