package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/alwaha/restaurant-backend/internal/hash"
	"github.com/alwaha/restaurant-backend/internal/jwtmiddleware"
	"github.com/alwaha/restaurant-backend/internal/logging"
	"github.com/alwaha/restaurant-backend/internal/models"
)

// AuthHandler implements the server-side admin login that replaces the
// old client-side credential check.
type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret []byte
}

func (h *AuthHandler) Login(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "admin_login")

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}

	var admin models.AdminUser
	if err := h.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		l.Warn("login_failed", "reason", "unknown_user")
		return respondError(c, http.StatusUnauthorized, "invalid username or password")
	}
	if !hash.CheckPassword(admin.PasswordHash, req.Password) {
		l.Warn("login_failed", "reason", "bad_password")
		return respondError(c, http.StatusUnauthorized, "invalid username or password")
	}

	token, err := jwtmiddleware.SignAdminToken(admin.ID, admin.Username, h.JWTSecret)
	if err != nil {
		l.Error("login_failed", "reason", "cannot_sign_token", "error", err)
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	l.Info("login_successful", "username", admin.Username)
	return respondData(c, http.StatusOK, echo.Map{"token": token})
}
