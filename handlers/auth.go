package handlers

import (
	"errors"
	"flora_cargo_app_go/middleware"
	"flora_cargo_app_go/models"
	"flora_cargo_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// AuthHandler serves login/logout
type AuthHandler struct {
	DB *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db}
}

// LoginRequest is the POST /auth/login body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and returns a bearer token
func (h *AuthHandler) Login(c echo.Context) error {
	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	session, err := services.Login(h.DB, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
		}
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
	})
}

// Logout invalidates the caller's session
func (h *AuthHandler) Logout(c echo.Context) error {
	session, ok := c.Get(middleware.ContextKeySession).(*models.Session)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	if err := services.DeleteSession(h.DB, session.Token); err != nil {
		return respondServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
