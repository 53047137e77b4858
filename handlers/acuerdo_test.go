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

func TestGetAcuerdos(t *testing.T) {
	db := setupTestDB(t)
	h := NewAcuerdoHandler(db)

	_, err := services.CreateAcuerdo(db, services.CreateAcuerdoInput{Nombre: "Mercosur"})
	assert.NoError(t, err)

	_, c, rec := setupEcho(http.MethodGet, "/datos-maestros/acuerdos-arancelarios", nil)

	err = h.GetAcuerdos(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var acuerdos []models.AcuerdoArancelario
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &acuerdos))
	assert.Len(t, acuerdos, 1)
	assert.Equal(t, "Mercosur", acuerdos[0].Nombre)
}

func TestGetAcuerdo(t *testing.T) {
	db := setupTestDB(t)
	h := NewAcuerdoHandler(db)

	acuerdo, err := services.CreateAcuerdo(db, services.CreateAcuerdoInput{Nombre: "Pacto Andino"})
	assert.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/datos-maestros/acuerdos-arancelarios/1", nil)
		c.SetParamNames("id")
		c.SetParamValues("1")

		assert.NoError(t, h.GetAcuerdo(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got models.AcuerdoArancelario
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, acuerdo.ID, got.ID)
	})

	t.Run("Unknown id returns 404", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/datos-maestros/acuerdos-arancelarios/999", nil)
		c.SetParamNames("id")
		c.SetParamValues("999")

		assert.NoError(t, h.GetAcuerdo(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Non-integer id returns 400", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/datos-maestros/acuerdos-arancelarios/abc", nil)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		assert.NoError(t, h.GetAcuerdo(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateAcuerdoHandler(t *testing.T) {
	db := setupTestDB(t)
	h := NewAcuerdoHandler(db)

	t.Run("Valid body returns 201", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/datos-maestros/acuerdos-arancelarios", strings.NewReader(`{"nombre":"TLC UE"}`))

		assert.NoError(t, h.CreateAcuerdo(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var got models.AcuerdoArancelario
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.NotZero(t, got.ID)
		assert.Equal(t, "TLC UE", got.Nombre)
	})

	t.Run("Missing nombre returns 400 with field detail", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/datos-maestros/acuerdos-arancelarios", strings.NewReader(`{}`))

		assert.NoError(t, h.CreateAcuerdo(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "nombre")
	})

	t.Run("Duplicate nombre returns 409", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/datos-maestros/acuerdos-arancelarios", strings.NewReader(`{"nombre":"TLC UE"}`))

		assert.NoError(t, h.CreateAcuerdo(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUpdateAcuerdoHandler(t *testing.T) {
	db := setupTestDB(t)
	h := NewAcuerdoHandler(db)

	acuerdo, err := services.CreateAcuerdo(db, services.CreateAcuerdoInput{Nombre: "CAN"})
	assert.NoError(t, err)

	t.Run("Empty patch returns entity unchanged", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPatch, "/datos-maestros/acuerdos-arancelarios/1", strings.NewReader(`{}`))
		c.SetParamNames("id")
		c.SetParamValues("1")

		assert.NoError(t, h.UpdateAcuerdo(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got models.AcuerdoArancelario
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, acuerdo.ID, got.ID)
		assert.Equal(t, "CAN", got.Nombre)
	})

	t.Run("Unknown id returns 404", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPatch, "/datos-maestros/acuerdos-arancelarios/999", strings.NewReader(`{"nombre":"X"}`))
		c.SetParamNames("id")
		c.SetParamValues("999")

		assert.NoError(t, h.UpdateAcuerdo(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteAcuerdoHandler(t *testing.T) {
	db := setupTestDB(t)
	h := NewAcuerdoHandler(db)

	t.Run("Blocked delete returns 400 with dependent count", func(t *testing.T) {
		acuerdo, err := services.CreateAcuerdo(db, services.CreateAcuerdoInput{Nombre: "TLC USA"})
		assert.NoError(t, err)
		db.Create(&models.Pais{Nombre: "Estados Unidos", Codigo: "USA", AcuerdoArancelarioID: &acuerdo.ID})

		_, c, rec := setupEcho(http.MethodDelete, "/datos-maestros/acuerdos-arancelarios/"+fmt.Sprint(acuerdo.ID), nil)
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprint(acuerdo.ID))

		assert.NoError(t, h.DeleteAcuerdo(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, float64(1), body["dependents"])
	})

	t.Run("Successful delete returns 204 with no body", func(t *testing.T) {
		acuerdo, err := services.CreateAcuerdo(db, services.CreateAcuerdoInput{Nombre: "Efímero"})
		assert.NoError(t, err)

		_, c, rec := setupEcho(http.MethodDelete, "/datos-maestros/acuerdos-arancelarios/"+fmt.Sprint(acuerdo.ID), nil)
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprint(acuerdo.ID))

		assert.NoError(t, h.DeleteAcuerdo(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
