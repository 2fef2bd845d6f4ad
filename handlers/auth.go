package handlers

import (
	"net/http"

	"urbanease/middleware"
	"urbanease/services/user"
	"urbanease/upstream"
	"urbanease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes sign-in/sign-out over the gateway session layer.
type AuthHandler struct {
	UserSvc user.UserService
	Logger  *zap.Logger
}

func NewAuthHandler(userSvc user.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{UserSvc: userSvc, Logger: logger}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	resp, err := h.UserSvc.SignIn(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		if upstream.IsUnauthorized(err) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
			return
		}
		h.Logger.Error("Login failed", zap.String("email", body.Email), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "login failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "no active session", "")
		return
	}
	if err := h.UserSvc.SignOut(c.Request.Context(), session.SessionID); err != nil {
		h.Logger.Error("Logout failed", zap.String("sessionID", session.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to end session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "no active session", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId":    session.UserID,
		"email":     session.Email,
		"role":      session.Role,
		"introSeen": session.IntroSeen,
	})
}

// MarkIntroSeen handles PUT /api/auth/intro-seen. The landing animation is
// shown once per account; this flips the flag.
func (h *AuthHandler) MarkIntroSeen(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "no active session", "")
		return
	}
	if err := h.UserSvc.MarkIntroSeen(c.Request.Context(), session.SessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"introSeen": true})
}
