package handlers

import (
	"net/http"

	"urbanease/middleware"
	"urbanease/services/admin"
	"urbanease/upstream"
	"urbanease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the admin overview.
type AdminHandler struct {
	AdminSvc admin.AdminService
	Logger   *zap.Logger
}

func NewAdminHandler(adminSvc admin.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{AdminSvc: adminSvc, Logger: logger}
}

// Overview handles GET /api/admin/overview. Analytics may be nil when the
// upstream analytics endpoint is unavailable; stats and users are required.
func (h *AdminHandler) Overview(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	overview, err := h.AdminSvc.GetOverview(c.Request.Context(), *session)
	if err != nil {
		if upstream.IsUnauthorized(err) {
			utils.JSONError(c, http.StatusForbidden, "admin access required", "")
			return
		}
		h.Logger.Error("Failed to load admin overview", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to load overview", err.Error())
		return
	}

	c.JSON(http.StatusOK, overview)
}

// DeleteUser handles DELETE /api/admin/users/:userID.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	if err := h.AdminSvc.DeleteUser(c.Request.Context(), *session, c.Param("userID")); err != nil {
		if upstream.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "user not found", "")
			return
		}
		h.Logger.Error("Failed to delete user", zap.String("userID", c.Param("userID")), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to delete user", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
