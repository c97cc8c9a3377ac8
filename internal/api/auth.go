package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/auth"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"
)

type authHandler struct {
	svc auth.Service
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func (h *authHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	token, expiresIn, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.FromCtx(c.Request.Context()).Info("admin logged in", zap.String("username", req.Username))

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"username":     req.Username,
		"expires_in":   expiresIn,
	})
}

func (h *authHandler) verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"username":      c.GetString(ctxUsername),
	})
}

// logout is a client-side concern with bearer tokens; the endpoint exists so
// the frontend has something to call and tokens are invalidated for real only
// by a password change.
func (h *authHandler) logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "logged out",
		"username": c.GetString(ctxUsername),
	})
}

func (h *authHandler) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	username := c.GetString(ctxUsername)
	if err := h.svc.ChangePassword(c.Request.Context(), username, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	logger.FromCtx(c.Request.Context()).Info("admin password changed", zap.String("username", username))

	c.JSON(http.StatusOK, gin.H{
		"message":  "password updated, please log in again",
		"username": username,
	})
}
