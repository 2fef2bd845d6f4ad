package handlers

import (
	"net/http"
	"time"

	"urbanease/middleware"
	"urbanease/models"
	"urbanease/services/booking"
	"urbanease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler drives the booking page session flow.
type BookingHandler struct {
	FlowSvc booking.FlowService
	Logger  *zap.Logger
}

func NewBookingHandler(flowSvc booking.FlowService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{FlowSvc: flowSvc, Logger: logger}
}

// respondFlowError maps booking-flow failures to status codes: local
// validation is the caller's fault, anything else is an upstream problem.
func (h *BookingHandler) respondFlowError(c *gin.Context, action string, err error) {
	if booking.IsValidation(err) {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	h.Logger.Error("Booking flow failed", zap.String("action", action), zap.Error(err))
	utils.JSONError(c, http.StatusBadGateway, "booking action failed", err.Error())
}

// StartSession handles POST /api/booking/session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "you must be logged in to book", "")
		return
	}

	var body struct {
		ListingID   string             `json:"listingId" binding:"required"`
		BookingType models.BookingType `json:"bookingType"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	bs, listing, err := h.FlowSvc.StartSession(c.Request.Context(), *session, body.ListingID)
	if err != nil {
		h.respondFlowError(c, "start", err)
		return
	}

	// A rebook arrives with the previous booking's type pre-selected.
	if body.BookingType == models.BookingTypeInspection || body.BookingType == models.BookingTypeService {
		bs, err = h.FlowSvc.SetBookingType(c.Request.Context(), bs.SessionID, body.BookingType)
		if err != nil {
			h.respondFlowError(c, "start", err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"session":   bs,
		"listing":   listing,
		"grid":      booking.RenderSessionMonth(*bs, time.Now()),
		"services":  booking.ServiceCatalogue(),
		"timeSlots": booking.TimeSlots,
		"summary":   booking.ComputeSummary(*bs),
	})
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	bs, err := h.FlowSvc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking session not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": bs,
		"grid":    booking.RenderSessionMonth(*bs, time.Now()),
		"summary": booking.ComputeSummary(*bs),
	})
}

// Navigate handles PUT /api/booking/session/:sessionID/month.
func (h *BookingHandler) Navigate(c *gin.Context) {
	var body struct {
		Direction int `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	bs, grid, err := h.FlowSvc.NavigateMonth(c.Request.Context(), c.Param("sessionID"), body.Direction)
	if err != nil {
		h.respondFlowError(c, "navigate", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": bs,
		"grid":    grid,
		"summary": booking.ComputeSummary(*bs),
	})
}

// Select handles PUT /api/booking/session/:sessionID/select. One call mutates
// one selection so the summary reacts to each change.
func (h *BookingHandler) Select(c *gin.Context) {
	var body struct {
		Day        *struct{ Year, Month, Day int } `json:"day"`
		TimeSlot   string                          `json:"timeSlot"`
		ServiceKey string                          `json:"serviceKey"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	sessionID := c.Param("sessionID")
	ctx := c.Request.Context()

	var (
		bs      *models.BookingSession
		summary booking.Summary
		err     error
	)
	switch {
	case body.Day != nil:
		bs, summary, err = h.FlowSvc.SelectDay(ctx, sessionID, body.Day.Year, body.Day.Month, body.Day.Day)
	case body.TimeSlot != "":
		bs, summary, err = h.FlowSvc.SelectTimeSlot(ctx, sessionID, body.TimeSlot)
	case body.ServiceKey != "":
		bs, summary, err = h.FlowSvc.SelectService(ctx, sessionID, body.ServiceKey)
	default:
		utils.JSONError(c, http.StatusBadRequest, "nothing to select", "")
		return
	}
	if err != nil {
		h.respondFlowError(c, "select", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": bs,
		"grid":    booking.RenderSessionMonth(*bs, time.Now()),
		"summary": summary,
	})
}

// SetType handles PUT /api/booking/session/:sessionID/type.
func (h *BookingHandler) SetType(c *gin.Context) {
	var body struct {
		BookingType models.BookingType `json:"bookingType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	bs, err := h.FlowSvc.SetBookingType(c.Request.Context(), c.Param("sessionID"), body.BookingType)
	if err != nil {
		h.respondFlowError(c, "set-type", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": bs})
}

// Confirm handles POST /api/booking/confirm.
func (h *BookingHandler) Confirm(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "you must be logged in to book", "")
		return
	}

	var body struct {
		SessionID string `json:"sessionId" binding:"required"`
		Address   string `json:"address"`
		Phone     string `json:"phone"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.FlowSvc.Confirm(c.Request.Context(), *session, body.SessionID, booking.ConfirmRequest{
		Address: body.Address,
		Phone:   body.Phone,
		Notes:   body.Notes,
	})
	if err != nil {
		h.respondFlowError(c, "confirm", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking confirmed",
		"booking": result,
	})
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.FlowSvc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to discard session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session discarded"})
}
