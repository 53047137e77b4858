package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts go-playground/validator to Echo's Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the validator used for all request DTOs
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// validationErrorResponse turns validator violations into a 400 listing the
// violated fields
func validationErrorResponse(c echo.Context, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s: failed on %q", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":  "Validation failed",
			"fields": fields,
		})
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
}

// parseIDParam parses the :id path parameter as a positive integer
func parseIDParam(c echo.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id parameter %q", raw)
	}
	return uint(id), nil
}
