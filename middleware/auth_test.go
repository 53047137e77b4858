package middleware

import (
	"flora_cargo_app_go/models"
	"flora_cargo_app_go/services"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthMiddlewareTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Role{}, &models.User{}, &models.UserRole{}, &models.Session{}))
	return db
}

func newAuthContext(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/datos-maestros/acuerdos-arancelarios", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireAuth(t *testing.T) {
	db := setupAuthMiddlewareTestDB(t)

	user, err := services.CreateUser(db, services.CreateUserInput{Username: "ana", Email: "ana@test.com", Password: "Secret123!"})
	assert.NoError(t, err)
	session, err := services.CreateSession(db, user.ID)
	assert.NoError(t, err)

	t.Run("Missing token returns 401", func(t *testing.T) {
		c, _ := newAuthContext("")

		err := RequireAuth(db)(okHandler)(c)
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
	})

	t.Run("Unknown token returns 401", func(t *testing.T) {
		c, _ := newAuthContext("deadbeef")

		err := RequireAuth(db)(okHandler)(c)
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
	})

	t.Run("Valid token stores user in context", func(t *testing.T) {
		c, rec := newAuthContext(session.Token)

		err := RequireAuth(db)(okHandler)(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, user.ID, GetCurrentUser(c).ID)
	})

	t.Run("Inactive user returns 401", func(t *testing.T) {
		_, err := services.DeactivateUser(db, user.ID)
		assert.NoError(t, err)

		c, _ := newAuthContext(session.Token)
		err = RequireAuth(db)(okHandler)(c)
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
	})
}

func TestRequireRole(t *testing.T) {
	db := setupAuthMiddlewareTestDB(t)

	admin, err := services.CreateUser(db, services.CreateUserInput{Username: "admin", Email: "admin@test.com", Password: "Secret123!"})
	assert.NoError(t, err)
	adminRole, err := services.CreateRole(db, services.CreateRoleInput{Nombre: models.RoleAdmin})
	assert.NoError(t, err)

	t.Run("No user in context returns 401", func(t *testing.T) {
		c, _ := newAuthContext("")

		err := RequireRole(models.RoleAdmin)(okHandler)(c)
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
	})

	t.Run("Pending role is not enough", func(t *testing.T) {
		_, err := services.AssignRole(db, admin.ID, adminRole.ID, models.UserRolePending)
		assert.NoError(t, err)

		loaded, err := services.GetUserByID(db, admin.ID)
		assert.NoError(t, err)

		c, _ := newAuthContext("")
		c.Set(ContextKeyUser, loaded)

		err = RequireRole(models.RoleAdmin)(okHandler)(c)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)
	})

	t.Run("Approved role passes", func(t *testing.T) {
		assert.NoError(t, db.Model(&models.UserRole{}).
			Where("user_id = ? AND role_id = ?", admin.ID, adminRole.ID).
			Update("estado", models.UserRoleApproved).Error)

		loaded, err := services.GetUserByID(db, admin.ID)
		assert.NoError(t, err)

		c, rec := newAuthContext("")
		c.Set(ContextKeyUser, loaded)

		assert.NoError(t, RequireRole(models.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
