package upstream

import (
	"context"
	"net/url"

	"urbanease/models"
)

// GetUserBookings fetches the authenticated customer's bookings.
func (c *Client) GetUserBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.get(ctx, "/bookings/user", token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetProviderBookings fetches bookings addressed to the authenticated provider.
func (c *Client) GetProviderBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.get(ctx, "/bookings/provider", token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking submits a new booking request and returns the stored record.
func (c *Client) CreateBooking(ctx context.Context, token string, req models.NewBookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.post(ctx, "/bookings", token, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus requests a status transition for a booking. The caller
// must not mutate any local state until this returns nil.
func (c *Client) UpdateBookingStatus(ctx context.Context, token, bookingID string, status models.BookingStatus) error {
	return c.put(ctx, "/bookings/"+url.PathEscape(bookingID), token, models.BookingStatusUpdate{Status: status}, nil)
}
