package handlers

import (
	"encoding/json"
	"flora_cargo_app_go/models"
	"flora_cargo_app_go/services"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateFincaHandler(t *testing.T) {
	db := setupTestDB(t)
	h := NewFincaHandler(db)

	t.Run("Valid body returns 201", func(t *testing.T) {
		body := `{"nombre":"Flores del Valle","ciudad":"Medellín","genera_guia_certificada":true}`
		_, c, rec := setupEcho(http.MethodPost, "/datos-maestros/fincas", strings.NewReader(body))

		assert.NoError(t, h.CreateFinca(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var got models.Finca
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.GeneraGuiaCertificada)
		assert.True(t, got.Activo)
	})

	t.Run("Missing nombre returns 400", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/datos-maestros/fincas", strings.NewReader(`{"ciudad":"Bogotá"}`))

		assert.NoError(t, h.CreateFinca(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAssignChoferHandler(t *testing.T) {
	db := setupTestDB(t)
	h := NewFincaHandler(db)

	finca, err := services.CreateFinca(db, services.CreateFincaInput{Nombre: "El Rosal"})
	assert.NoError(t, err)
	chofer := models.Chofer{Nombre: "Carlos Pérez", Cedula: "1020304050"}
	db.Create(&chofer)

	t.Run("Assigns driver", func(t *testing.T) {
		body := fmt.Sprintf(`{"choferId":%d}`, chofer.ID)
		_, c, rec := setupEcho(http.MethodPost, "/datos-maestros/fincas/1/choferes", strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprint(finca.ID))

		assert.NoError(t, h.AssignChofer(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing choferId returns 400", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/datos-maestros/fincas/1/choferes", strings.NewReader(`{}`))
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprint(finca.ID))

		assert.NoError(t, h.AssignChofer(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown driver returns 404", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/datos-maestros/fincas/1/choferes", strings.NewReader(`{"choferId":999}`))
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprint(finca.ID))

		assert.NoError(t, h.AssignChofer(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestExportFincasHandler(t *testing.T) {
	db := setupTestDB(t)
	h := NewFincaHandler(db)

	_, err := services.CreateFinca(db, services.CreateFincaInput{Nombre: "Valle Verde", Ciudad: "Medellín"})
	assert.NoError(t, err)

	_, c, rec := setupEcho(http.MethodGet, "/datos-maestros/fincas/export", nil)

	assert.NoError(t, h.ExportFincas(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "fincas.xlsx")
	assert.NotZero(t, rec.Body.Len())
}
