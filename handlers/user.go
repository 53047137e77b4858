package handlers

import (
	"flora_cargo_app_go/config"
	"flora_cargo_app_go/models"
	"flora_cargo_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler serves the user resource
type UserHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserHandler(db *gorm.DB, cfg *config.Config) *UserHandler {
	return &UserHandler{DB: db, Cfg: cfg}
}

// CreateUserRequest is the POST body
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateUserRequest is the PATCH body; absent fields are left untouched
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Activo   *bool   `json:"activo"`
}

// AssignUserRoleRequest is the body for granting a role to a user
type AssignUserRoleRequest struct {
	RoleID uint `json:"roleId" validate:"required"`
}

// GetUsers returns all users
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := services.GetUsers(h.DB)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser returns a single user by id
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	user, err := services.GetUserByID(h.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser creates an active user (admin only) and sends a welcome email
func (h *UserHandler) CreateUser(c echo.Context) error {
	req := new(CreateUserRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	user, err := services.CreateUser(h.DB, services.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	// Welcome email never blocks the response
	email := services.BuildWelcomeEmail(user.Email, user.Username, h.Cfg.AppURL)
	services.SendEmailAsync(h.Cfg, email)

	return c.JSON(http.StatusCreated, user)
}

// UpdateUser applies a partial patch to a user (admin only)
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	req := new(UpdateUserRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	user, err := services.UpdateUser(h.DB, id, services.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Activo:   req.Activo,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser deactivates a user (admin only). Accounts are never removed;
// the row stays with Activo=false.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	if _, err := services.DeactivateUser(h.DB, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignRole grants a role to a user with PENDING state (admin only)
func (h *UserHandler) AssignRole(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	req := new(AssignUserRoleRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	userRole, err := services.AssignRole(h.DB, id, req.RoleID, models.UserRolePending)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, userRole)
}
