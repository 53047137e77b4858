package handlers

import (
	"encoding/json"
	"flora_cargo_app_go/config"
	"flora_cargo_app_go/models"
	"flora_cargo_app_go/services"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testUserConfig() *config.Config {
	return &config.Config{
		Environment:   "test",
		EmailTestMode: true,
		AppURL:        "http://localhost:8080",
	}
}

func TestCreateUserHandler(t *testing.T) {
	db := setupTestDB(t)
	h := NewUserHandler(db, testUserConfig())

	t.Run("Valid body returns 201 without password", func(t *testing.T) {
		body := `{"username":"maria","email":"maria@test.com","password":"Secret123!"}`
		_, c, rec := setupEcho(http.MethodPost, "/datos-maestros/usuarios", strings.NewReader(body))

		assert.NoError(t, h.CreateUser(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Secret123!")

		var got models.User
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.NotZero(t, got.ID)
		assert.True(t, got.Activo)
	})

	t.Run("Invalid email returns 400", func(t *testing.T) {
		body := `{"username":"x","email":"not-an-email","password":"Secret123!"}`
		_, c, rec := setupEcho(http.MethodPost, "/datos-maestros/usuarios", strings.NewReader(body))

		assert.NoError(t, h.CreateUser(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "email")
	})

	t.Run("Short password returns 400", func(t *testing.T) {
		body := `{"username":"x","email":"x@test.com","password":"short"}`
		_, c, rec := setupEcho(http.MethodPost, "/datos-maestros/usuarios", strings.NewReader(body))

		assert.NoError(t, h.CreateUser(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Duplicate email returns 409", func(t *testing.T) {
		body := `{"username":"maria2","email":"maria@test.com","password":"Other123!"}`
		_, c, rec := setupEcho(http.MethodPost, "/datos-maestros/usuarios", strings.NewReader(body))

		assert.NoError(t, h.CreateUser(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	db := setupTestDB(t)
	h := NewUserHandler(db, testUserConfig())

	user, err := services.CreateUser(db, services.CreateUserInput{Username: "pedro", Email: "pedro@test.com", Password: "Secret123!"})
	assert.NoError(t, err)

	_, c, rec := setupEcho(http.MethodDelete, "/datos-maestros/usuarios/"+fmt.Sprint(user.ID), nil)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(user.ID))

	assert.NoError(t, h.DeleteUser(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Deactivated, not removed
	fetched, err := services.GetUserByID(db, user.ID)
	assert.NoError(t, err)
	assert.False(t, fetched.Activo)
}

func TestAssignRoleHandler(t *testing.T) {
	db := setupTestDB(t)
	h := NewUserHandler(db, testUserConfig())

	user, _ := services.CreateUser(db, services.CreateUserInput{Username: "jorge", Email: "jorge@test.com", Password: "Secret123!"})
	role, _ := services.CreateRole(db, services.CreateRoleInput{Nombre: "CLIENT"})

	t.Run("Grants pending role", func(t *testing.T) {
		body := fmt.Sprintf(`{"roleId":%d}`, role.ID)
		_, c, rec := setupEcho(http.MethodPost, "/datos-maestros/usuarios/1/roles", strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprint(user.ID))

		assert.NoError(t, h.AssignRole(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var got models.UserRole
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, models.UserRolePending, got.Estado)
	})

	t.Run("Missing roleId returns 400", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/datos-maestros/usuarios/1/roles", strings.NewReader(`{}`))
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprint(user.ID))

		assert.NoError(t, h.AssignRole(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
