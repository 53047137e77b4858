package handlers

import (
	"flora_cargo_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// AcuerdoHandler serves the tariff agreement resource
type AcuerdoHandler struct {
	DB *gorm.DB
}

func NewAcuerdoHandler(db *gorm.DB) *AcuerdoHandler {
	return &AcuerdoHandler{DB: db}
}

// CreateAcuerdoRequest is the POST body
type CreateAcuerdoRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

// UpdateAcuerdoRequest is the PATCH body; absent fields are left untouched
type UpdateAcuerdoRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=1"`
}

// GetAcuerdos returns all tariff agreements
func (h *AcuerdoHandler) GetAcuerdos(c echo.Context) error {
	acuerdos, err := services.GetAcuerdos(h.DB)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, acuerdos)
}

// GetAcuerdo returns a single tariff agreement by id
func (h *AcuerdoHandler) GetAcuerdo(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	acuerdo, err := services.GetAcuerdoByID(h.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, acuerdo)
}

// CreateAcuerdo creates a tariff agreement (admin only)
func (h *AcuerdoHandler) CreateAcuerdo(c echo.Context) error {
	req := new(CreateAcuerdoRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	acuerdo, err := services.CreateAcuerdo(h.DB, services.CreateAcuerdoInput{Nombre: req.Nombre})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, acuerdo)
}

// UpdateAcuerdo applies a partial patch to a tariff agreement (admin only)
func (h *AcuerdoHandler) UpdateAcuerdo(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	req := new(UpdateAcuerdoRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	acuerdo, err := services.UpdateAcuerdo(h.DB, id, services.UpdateAcuerdoInput{Nombre: req.Nombre})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, acuerdo)
}

// DeleteAcuerdo removes a tariff agreement (admin only).
// Blocked with 400 while countries still reference it.
func (h *AcuerdoHandler) DeleteAcuerdo(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	if _, err := services.DeleteAcuerdo(h.DB, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
