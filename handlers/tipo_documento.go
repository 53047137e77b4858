package handlers

import (
	"flora_cargo_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// TipoDocumentoHandler serves the farm document type resource
type TipoDocumentoHandler struct {
	DB *gorm.DB
}

func NewTipoDocumentoHandler(db *gorm.DB) *TipoDocumentoHandler {
	return &TipoDocumentoHandler{DB: db}
}

// CreateTipoDocumentoRequest is the POST body
type CreateTipoDocumentoRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
	Requerido   bool   `json:"requerido"`
}

// UpdateTipoDocumentoRequest is the PATCH body; absent fields are left untouched
type UpdateTipoDocumentoRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1"`
	Descripcion *string `json:"descripcion"`
	Requerido   *bool   `json:"requerido"`
}

// GetTiposDocumento returns all document types
func (h *TipoDocumentoHandler) GetTiposDocumento(c echo.Context) error {
	tipos, err := services.GetTiposDocumento(h.DB)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, tipos)
}

// GetTipoDocumento returns a single document type by id
func (h *TipoDocumentoHandler) GetTipoDocumento(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	tipo, err := services.GetTipoDocumentoByID(h.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, tipo)
}

// CreateTipoDocumento creates a document type (admin only)
func (h *TipoDocumentoHandler) CreateTipoDocumento(c echo.Context) error {
	req := new(CreateTipoDocumentoRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	tipo, err := services.CreateTipoDocumento(h.DB, services.CreateTipoDocumentoInput{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Requerido:   req.Requerido,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, tipo)
}

// UpdateTipoDocumento applies a partial patch to a document type (admin only)
func (h *TipoDocumentoHandler) UpdateTipoDocumento(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	req := new(UpdateTipoDocumentoRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	tipo, err := services.UpdateTipoDocumento(h.DB, id, services.UpdateTipoDocumentoInput{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Requerido:   req.Requerido,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, tipo)
}

// DeleteTipoDocumento removes a document type (admin only).
// Blocked with 400 while farms still reference it.
func (h *TipoDocumentoHandler) DeleteTipoDocumento(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	if _, err := services.DeleteTipoDocumento(h.DB, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
