package handlers

import (
	"errors"
	"flora_cargo_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// respondServiceError maps typed service errors to HTTP responses:
// NotFoundError -> 404, InUseError -> 400 with the dependent count,
// DuplicateError -> 409. Anything else is a generic 500.
func respondServiceError(c echo.Context, err error) error {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": notFound.Error()})
	}

	var inUse *services.InUseError
	if errors.As(err, &inUse) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":      inUse.Error(),
			"dependents": inUse.Dependents,
		})
	}

	var duplicate *services.DuplicateError
	if errors.As(err, &duplicate) {
		return c.JSON(http.StatusConflict, map[string]string{"error": duplicate.Error()})
	}

	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

// invalidIDResponse is the structured 400 for a non-integer :id parameter
func invalidIDResponse(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "Id parameter must be a positive integer"})
}
