package upstream

import (
	"context"
	"fmt"
	"net/url"

	"urbanease/models"
)

// GetServices fetches the public services catalogue shown on the listing page.
func (c *Client) GetServices(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	if err := c.get(ctx, "/services", "", &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// GetServiceByID fetches a single service entry.
func (c *Client) GetServiceByID(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	if err := c.get(ctx, "/services/"+url.PathEscape(id), "", &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// GetListings fetches all published listings.
func (c *Client) GetListings(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	if err := c.get(ctx, "/listings", "", &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// GetListingByID fetches one listing with its embedded provider reference.
func (c *Client) GetListingByID(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	if err := c.get(ctx, "/listings/"+url.PathEscape(id), "", &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// GetMyListings fetches the authenticated provider's own listings.
func (c *Client) GetMyListings(ctx context.Context, token string) ([]models.Listing, error) {
	var listings []models.Listing
	if err := c.get(ctx, "/listings/my", token, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// CreateListing publishes a new listing and returns the stored record.
func (c *Client) CreateListing(ctx context.Context, token string, req models.NewListingRequest) (*models.Listing, error) {
	var listing models.Listing
	if err := c.post(ctx, "/listings", token, req, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// DeleteListing removes a listing owned by the authenticated provider.
func (c *Client) DeleteListing(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/listings/"+url.PathEscape(id), token)
}

// GetReviewsForProvider fetches reviews for a provider, optionally scoped to a
// service title.
func (c *Client) GetReviewsForProvider(ctx context.Context, providerID, serviceTitle string) ([]models.Review, error) {
	path := "/reviews/" + url.PathEscape(providerID)
	if serviceTitle != "" {
		path = fmt.Sprintf("%s?service=%s", path, url.QueryEscape(serviceTitle))
	}
	var reviews []models.Review
	if err := c.get(ctx, path, "", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SubmitReview posts a review for a completed booking.
func (c *Client) SubmitReview(ctx context.Context, token string, req models.NewReviewRequest) error {
	return c.post(ctx, "/reviews", token, req, nil)
}
