package handlers

import (
	"errors"
	"net/http"

	"urbanease/middleware"
	"urbanease/models"
	"urbanease/services/user"
	"urbanease/upstream"
	"urbanease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the customer bookings dashboard.
type UserHandler struct {
	UserSvc user.UserService
	Logger  *zap.Logger
}

func NewUserHandler(userSvc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{UserSvc: userSvc, Logger: logger}
}

// MyBookings handles GET /api/user/bookings.
func (h *UserHandler) MyBookings(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	views, err := h.UserSvc.MyBookings(c.Request.Context(), *session)
	if err != nil {
		if upstream.IsUnauthorized(err) {
			utils.JSONError(c, http.StatusUnauthorized, "session expired, please sign in again", "")
			return
		}
		h.Logger.Error("Failed to load bookings", zap.String("userID", session.UserID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to load bookings", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": views})
}

// Rebook handles GET /api/user/bookings/:bookingID/rebook. It resolves where
// a new booking session for the same service should start.
func (h *UserHandler) Rebook(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	target, err := h.UserSvc.RebookTarget(c.Request.Context(), *session, c.Param("bookingID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"listingId": target})
}

// SubmitReview handles POST /api/user/reviews. A review is accepted once per
// completed booking.
func (h *UserHandler) SubmitReview(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	var req models.NewReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.UserSvc.SubmitReview(c.Request.Context(), *session, req); err != nil {
		var flowErr *user.FlowError
		if errors.As(err, &flowErr) {
			utils.JSONError(c, http.StatusBadRequest, flowErr.Message, "")
			return
		}
		h.Logger.Error("Failed to submit review", zap.String("bookingID", req.BookingID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to submit review", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted"})
}
