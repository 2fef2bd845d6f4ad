package handlers

import (
	"urbanease/services/user"
)

// HandlerBundle groups the endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	UserSvc user.UserService

	Auth     *AuthHandler
	Feed     *FeedHandler
	Booking  *BookingHandler
	User     *UserHandler
	Provider *ProviderHandler
	Admin    *AdminHandler
}
