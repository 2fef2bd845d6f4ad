package routes

import (
	"net/http"
	"time"

	"urbanease/handlers"
	"urbanease/middleware"
	"urbanease/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers sign-in and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)

		// Protected routes (require a gateway session)
		api.Use(middleware.SessionAuthMiddleware(hb.UserSvc))
		api.POST("/logout", hb.Auth.Logout)
		api.GET("/me", hb.Auth.Me)
		api.PUT("/intro-seen", hb.Auth.MarkIntroSeen)
	}
}

// RegisterFeedRoutes registers the browse feed. Browsing is public; only the
// cache refresh needs a session.
func RegisterFeedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feed")
	{
		api.GET("/listings", hb.Feed.Browse)
		api.GET("/listings/:id", hb.Feed.GetListing)
		api.GET("/map-center", hb.Feed.MapCenter)

		api.Use(middleware.SessionAuthMiddleware(hb.UserSvc))
		api.POST("/refresh", hb.Feed.Refresh)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.SessionAuthMiddleware(hb.UserSvc))
		bookingGroup.POST("/session", hb.Booking.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PUT("/session/:sessionID/month", hb.Booking.Navigate)
		bookingGroup.PUT("/session/:sessionID/select", hb.Booking.Select)
		bookingGroup.PUT("/session/:sessionID/type", hb.Booking.SetType)
		bookingGroup.POST("/confirm", hb.Booking.Confirm)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterUserRoutes registers the customer bookings dashboard.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/user")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.UserSvc))
		api.GET("/bookings", hb.User.MyBookings)
		api.GET("/bookings/:bookingID/rebook", hb.User.Rebook)
		api.POST("/reviews", hb.User.SubmitReview)
	}
}

// RegisterProviderRoutes registers provider dashboard endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/provider")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.UserSvc))
		api.Use(middleware.RequireRole("provider"))
		api.GET("/dashboard", hb.Provider.Dashboard)
		api.POST("/listings", hb.Provider.CreateListing)
		api.DELETE("/listings/:listingID", hb.Provider.DeleteListing)
		api.PUT("/bookings/:bookingID", hb.Provider.UpdateBooking)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.SessionAuthMiddleware(hb.UserSvc))
		adminGroup.Use(middleware.RequireRole("admin"))
		adminGroup.GET("/overview", hb.Admin.Overview)
		adminGroup.DELETE("/users/:userID", hb.Admin.DeleteUser)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Upstream {
			code = http.StatusServiceUnavailable
		}
		for _, ok := range status.Redis {
			if !ok {
				code = http.StatusServiceUnavailable
			}
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterFeedRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
