package handlers

import (
	"errors"
	"net/http"

	"urbanease/middleware"
	"urbanease/models"
	"urbanease/services/booking"
	"urbanease/services/provider"
	"urbanease/upstream"
	"urbanease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves the provider dashboard: listings and incoming
// booking decisions.
type ProviderHandler struct {
	ProviderSvc provider.ProviderService
	Logger      *zap.Logger
}

func NewProviderHandler(providerSvc provider.ProviderService, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{ProviderSvc: providerSvc, Logger: logger}
}

func (h *ProviderHandler) respondError(c *gin.Context, action string, err error) {
	var validationErr *provider.ValidationError
	if errors.As(err, &validationErr) {
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message, "")
		return
	}
	var flowErr *booking.FlowError
	if errors.As(err, &flowErr) {
		// Disallowed status transitions surface as a conflict.
		utils.JSONError(c, http.StatusConflict, flowErr.Message, "")
		return
	}
	if upstream.IsUnauthorized(err) {
		utils.JSONError(c, http.StatusUnauthorized, "session expired, please sign in again", "")
		return
	}
	h.Logger.Error("Provider action failed", zap.String("action", action), zap.Error(err))
	utils.JSONError(c, http.StatusBadGateway, "provider action failed", err.Error())
}

// Dashboard handles GET /api/provider/dashboard.
func (h *ProviderHandler) Dashboard(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	dash, err := h.ProviderSvc.GetDashboard(c.Request.Context(), *session)
	if err != nil {
		h.respondError(c, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// CreateListing handles POST /api/provider/listings.
func (h *ProviderHandler) CreateListing(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	var req models.NewListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	listing, err := h.ProviderSvc.CreateListing(c.Request.Context(), *session, req)
	if err != nil {
		h.respondError(c, "create-listing", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Listing created",
		"listing": listing,
	})
}

// DeleteListing handles DELETE /api/provider/listings/:listingID.
func (h *ProviderHandler) DeleteListing(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	if err := h.ProviderSvc.DeleteListing(c.Request.Context(), *session, c.Param("listingID")); err != nil {
		h.respondError(c, "delete-listing", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}

// UpdateBooking handles PUT /api/provider/bookings/:bookingID. The action is
// one of accept, decline or complete.
func (h *ProviderHandler) UpdateBooking(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	var body struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	bookingID := c.Param("bookingID")
	ctx := c.Request.Context()

	var err error
	switch body.Action {
	case "accept":
		err = h.ProviderSvc.Accept(ctx, *session, bookingID)
	case "decline":
		err = h.ProviderSvc.Decline(ctx, *session, bookingID)
	case "complete":
		err = h.ProviderSvc.Complete(ctx, *session, bookingID)
	default:
		utils.JSONError(c, http.StatusBadRequest, "unknown action: "+body.Action, "")
		return
	}
	if err != nil {
		h.respondError(c, body.Action, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}
