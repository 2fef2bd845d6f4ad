package upstream

import (
	"context"
	"net/url"

	"urbanease/models"
)

// GetAdminStats fetches the platform headline counters.
func (c *Client) GetAdminStats(ctx context.Context, token string) (*models.PlatformStats, error) {
	var stats models.PlatformStats
	if err := c.get(ctx, "/admin/stats", token, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetAdminUsers fetches all platform accounts.
func (c *Client) GetAdminUsers(ctx context.Context, token string) ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := c.get(ctx, "/admin/users", token, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteAdminUser removes a platform account.
func (c *Client) DeleteAdminUser(ctx context.Context, token, userID string) error {
	return c.delete(ctx, "/admin/users/"+url.PathEscape(userID), token)
}

// GetAdminAnalytics fetches the optional analytics payload. Callers treat a
// failure here as non-fatal.
func (c *Client) GetAdminAnalytics(ctx context.Context, token string) (*models.Analytics, error) {
	var analytics models.Analytics
	if err := c.get(ctx, "/admin/analytics", token, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}
