package handlers

import (
	"flora_cargo_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// RoleHandler serves the role resource
type RoleHandler struct {
	DB *gorm.DB
}

func NewRoleHandler(db *gorm.DB) *RoleHandler {
	return &RoleHandler{DB: db}
}

// CreateRoleRequest is the POST body
type CreateRoleRequest struct {
	Nombre      string `json:"nombre" validate:"required,uppercase"`
	Descripcion string `json:"descripcion"`
}

// UpdateRoleRequest is the PATCH body; absent fields are left untouched
type UpdateRoleRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,uppercase"`
	Descripcion *string `json:"descripcion"`
}

// GetRoles returns all roles
func (h *RoleHandler) GetRoles(c echo.Context) error {
	roles, err := services.GetRoles(h.DB)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, roles)
}

// GetRole returns a single role by id
func (h *RoleHandler) GetRole(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	role, err := services.GetRoleByID(h.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, role)
}

// CreateRole creates a role (admin only)
func (h *RoleHandler) CreateRole(c echo.Context) error {
	req := new(CreateRoleRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	role, err := services.CreateRole(h.DB, services.CreateRoleInput{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, role)
}

// UpdateRole applies a partial patch to a role (admin only)
func (h *RoleHandler) UpdateRole(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	req := new(UpdateRoleRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	role, err := services.UpdateRole(h.DB, id, services.UpdateRoleInput{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, role)
}

// DeleteRole removes a role (admin only).
// Blocked with 400 while users still carry it.
func (h *RoleHandler) DeleteRole(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	if _, err := services.DeleteRole(h.DB, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
