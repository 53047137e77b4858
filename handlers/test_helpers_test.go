package handlers

import (
	"flora_cargo_app_go/models"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared memory name isolates tests while keeping one database
	// per test across connections
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.AcuerdoArancelario{},
		&models.Pais{},
		&models.TipoDocumentoFinca{},
		&models.Finca{},
		&models.Chofer{},
		&models.Producto{},
		&models.Role{},
		&models.User{},
		&models.UserRole{},
		&models.Session{},
	)
	assert.NoError(t, err)

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return e, c, rec
}
