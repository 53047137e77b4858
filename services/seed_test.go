package services

import (
	"flora_cargo_app_go/config"
	"flora_cargo_app_go/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db.AutoMigrate(&models.Role{}, &models.User{}, &models.UserRole{}, &models.TipoDocumentoFinca{})
	return db
}

func seedTestConfig() *config.Config {
	return &config.Config{
		Environment:   "test",
		AdminEmail:    "admin@test.com",
		AdminPassword: "admin123",
		AdminUsername: "admin",
	}
}

func TestSeedAll(t *testing.T) {
	t.Run("Creates roles, admin and document types", func(t *testing.T) {
		db := setupSeedTestDB()

		err := SeedAll(db, seedTestConfig())
		assert.NoError(t, err)

		var roleCount int64
		db.Model(&models.Role{}).Count(&roleCount)
		assert.Equal(t, int64(3), roleCount)

		for _, nombre := range []string{models.RoleAdmin, models.RoleClient, models.RoleFarm} {
			_, err := GetRoleByNombre(db, nombre)
			assert.NoError(t, err)
		}

		admin, err := GetUserByEmail(db, "admin@test.com")
		assert.NoError(t, err)
		assert.True(t, admin.Activo)
		assert.True(t, admin.HasApprovedRole(models.RoleAdmin))
		assert.True(t, CheckPassword("admin123", admin.Password))

		var tipoCount int64
		db.Model(&models.TipoDocumentoFinca{}).Count(&tipoCount)
		assert.Equal(t, int64(5), tipoCount)
	})

	t.Run("Running twice is a no-op", func(t *testing.T) {
		db := setupSeedTestDB()

		assert.NoError(t, SeedAll(db, seedTestConfig()))
		assert.NoError(t, SeedAll(db, seedTestConfig()))

		var roleCount, userCount, userRoleCount, tipoCount int64
		db.Model(&models.Role{}).Count(&roleCount)
		db.Model(&models.User{}).Count(&userCount)
		db.Model(&models.UserRole{}).Count(&userRoleCount)
		db.Model(&models.TipoDocumentoFinca{}).Count(&tipoCount)

		assert.Equal(t, int64(3), roleCount)
		assert.Equal(t, int64(1), userCount)
		assert.Equal(t, int64(1), userRoleCount)
		assert.Equal(t, int64(5), tipoCount)
	})
}

func TestSeedAdminUser(t *testing.T) {
	t.Run("Fails atomically when the ADMIN role is missing", func(t *testing.T) {
		db := setupSeedTestDB()

		// No roles seeded: the admin step must write nothing at all
		err := SeedAdminUser(db, seedTestConfig())
		assert.Error(t, err)

		var userCount, userRoleCount int64
		db.Model(&models.User{}).Count(&userCount)
		db.Model(&models.UserRole{}).Count(&userRoleCount)
		assert.Equal(t, int64(0), userCount)
		assert.Equal(t, int64(0), userRoleCount)
	})

	t.Run("Skips when the admin email already exists", func(t *testing.T) {
		db := setupSeedTestDB()
		assert.NoError(t, SeedRoles(db))

		existing, err := CreateUser(db, CreateUserInput{Username: "someone", Email: "admin@test.com", Password: "Other123!"})
		assert.NoError(t, err)

		assert.NoError(t, SeedAdminUser(db, seedTestConfig()))

		fetched, err := GetUserByID(db, existing.ID)
		assert.NoError(t, err)
		assert.Equal(t, "someone", fetched.Username)

		var userCount int64
		db.Model(&models.User{}).Count(&userCount)
		assert.Equal(t, int64(1), userCount)
	})
}
