package handlers

import (
	"flora_cargo_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FincaHandler serves the farm resource
type FincaHandler struct {
	DB *gorm.DB
}

func NewFincaHandler(db *gorm.DB) *FincaHandler {
	return &FincaHandler{DB: db}
}

// CreateFincaRequest is the POST body
type CreateFincaRequest struct {
	Nombre                string  `json:"nombre" validate:"required"`
	Nit                   *string `json:"nit"`
	TipoDocumentoID       *uint   `json:"tipo_documento_id"`
	GeneraGuiaCertificada bool    `json:"genera_guia_certificada"`
	Contacto              string  `json:"contacto"`
	Telefono              string  `json:"telefono"`
	Email                 string  `json:"email" validate:"omitempty,email"`
	Direccion             string  `json:"direccion"`
	Ciudad                string  `json:"ciudad"`
}

// UpdateFincaRequest is the PATCH body; absent fields are left untouched
type UpdateFincaRequest struct {
	Nombre                *string `json:"nombre" validate:"omitempty,min=1"`
	Nit                   *string `json:"nit"`
	TipoDocumentoID       *uint   `json:"tipo_documento_id"`
	GeneraGuiaCertificada *bool   `json:"genera_guia_certificada"`
	Contacto              *string `json:"contacto"`
	Telefono              *string `json:"telefono"`
	Email                 *string `json:"email" validate:"omitempty,email"`
	Direccion             *string `json:"direccion"`
	Ciudad                *string `json:"ciudad"`
	Activo                *bool   `json:"activo"`
}

// AssignChoferRequest is the body for assigning a driver to a farm
type AssignChoferRequest struct {
	ChoferID uint `json:"choferId" validate:"required"`
}

// AssignProductoRequest is the body for assigning a product to a farm
type AssignProductoRequest struct {
	ProductoID uint `json:"productoId" validate:"required"`
}

// GetFincas returns all farms
func (h *FincaHandler) GetFincas(c echo.Context) error {
	fincas, err := services.GetFincas(h.DB)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, fincas)
}

// GetFinca returns a single farm by id
func (h *FincaHandler) GetFinca(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	finca, err := services.GetFincaByID(h.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, finca)
}

// CreateFinca creates a farm (admin only)
func (h *FincaHandler) CreateFinca(c echo.Context) error {
	req := new(CreateFincaRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	finca, err := services.CreateFinca(h.DB, services.CreateFincaInput{
		Nombre:                req.Nombre,
		Nit:                   req.Nit,
		TipoDocumentoID:       req.TipoDocumentoID,
		GeneraGuiaCertificada: req.GeneraGuiaCertificada,
		Contacto:              req.Contacto,
		Telefono:              req.Telefono,
		Email:                 req.Email,
		Direccion:             req.Direccion,
		Ciudad:                req.Ciudad,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, finca)
}

// UpdateFinca applies a partial patch to a farm (admin only)
func (h *FincaHandler) UpdateFinca(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	req := new(UpdateFincaRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	finca, err := services.UpdateFinca(h.DB, id, services.UpdateFincaInput{
		Nombre:                req.Nombre,
		Nit:                   req.Nit,
		TipoDocumentoID:       req.TipoDocumentoID,
		GeneraGuiaCertificada: req.GeneraGuiaCertificada,
		Contacto:              req.Contacto,
		Telefono:              req.Telefono,
		Email:                 req.Email,
		Direccion:             req.Direccion,
		Ciudad:                req.Ciudad,
		Activo:                req.Activo,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, finca)
}

// DeleteFinca removes a farm (admin only).
// Blocked with 400 while drivers or products are still assigned.
func (h *FincaHandler) DeleteFinca(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	if _, err := services.DeleteFinca(h.DB, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignChofer assigns a driver to a farm (admin only)
func (h *FincaHandler) AssignChofer(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	req := new(AssignChoferRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	chofer, err := services.AssignChofer(h.DB, id, req.ChoferID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, chofer)
}

// AssignProducto assigns a product to a farm (admin only)
func (h *FincaHandler) AssignProducto(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	req := new(AssignProductoRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	producto, err := services.AssignProducto(h.DB, id, req.ProductoID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, producto)
}

// ExportFincas streams the farm master data as an xlsx attachment (admin only)
func (h *FincaHandler) ExportFincas(c echo.Context) error {
	workbook, err := services.BuildFincasWorkbook(h.DB)
	if err != nil {
		return respondServiceError(c, err)
	}
	defer workbook.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="fincas.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	if err := workbook.Write(c.Response()); err != nil {
		return err
	}
	return nil
}
