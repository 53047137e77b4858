package handlers

import (
	"flora_cargo_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// PaisHandler serves the country resource
type PaisHandler struct {
	DB *gorm.DB
}

func NewPaisHandler(db *gorm.DB) *PaisHandler {
	return &PaisHandler{DB: db}
}

// CreatePaisRequest is the POST body
type CreatePaisRequest struct {
	Nombre               string `json:"nombre" validate:"required"`
	Codigo               string `json:"codigo" validate:"required,len=3,uppercase"`
	AcuerdoArancelarioID *uint  `json:"acuerdo_arancelario_id"`
}

// UpdatePaisRequest is the PATCH body. Sending acuerdo_arancelario_id as 0
// clears the agreement assignment; omitting it leaves it untouched.
type UpdatePaisRequest struct {
	Nombre               *string `json:"nombre" validate:"omitempty,min=1"`
	Codigo               *string `json:"codigo" validate:"omitempty,len=3,uppercase"`
	AcuerdoArancelarioID *uint   `json:"acuerdo_arancelario_id"`
}

// GetPaises returns all countries
func (h *PaisHandler) GetPaises(c echo.Context) error {
	paises, err := services.GetPaises(h.DB)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, paises)
}

// GetPais returns a single country by id
func (h *PaisHandler) GetPais(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	pais, err := services.GetPaisByID(h.DB, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, pais)
}

// CreatePais creates a country (admin only)
func (h *PaisHandler) CreatePais(c echo.Context) error {
	req := new(CreatePaisRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	pais, err := services.CreatePais(h.DB, services.CreatePaisInput{
		Nombre:               req.Nombre,
		Codigo:               req.Codigo,
		AcuerdoArancelarioID: req.AcuerdoArancelarioID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, pais)
}

// UpdatePais applies a partial patch to a country (admin only)
func (h *PaisHandler) UpdatePais(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	req := new(UpdatePaisRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return validationErrorResponse(c, err)
	}

	input := services.UpdatePaisInput{
		Nombre: req.Nombre,
		Codigo: req.Codigo,
	}
	if req.AcuerdoArancelarioID != nil {
		input.SetAcuerdo = true
		if *req.AcuerdoArancelarioID != 0 {
			input.AcuerdoArancelarioID = req.AcuerdoArancelarioID
		}
	}

	pais, err := services.UpdatePais(h.DB, id, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, pais)
}

// DeletePais removes a country (admin only)
func (h *PaisHandler) DeletePais(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	if _, err := services.DeletePais(h.DB, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
