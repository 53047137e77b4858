package services

import (
	"errors"
	"flora_cargo_app_go/config"
	"flora_cargo_app_go/models"
	"fmt"
	"log"

	"gorm.io/gorm"
)

// defaultRoles are the baseline roles installed at bootstrap
var defaultRoles = []models.Role{
	{Nombre: models.RoleAdmin, Descripcion: "Platform administrator"},
	{Nombre: models.RoleClient, Descripcion: "Exporter / client account"},
	{Nombre: models.RoleFarm, Descripcion: "Farm account"},
}

// defaultTiposDocumento are the reference document types farms must provide
var defaultTiposDocumento = []models.TipoDocumentoFinca{
	{Nombre: "RUT", Descripcion: "Registro Único Tributario", Requerido: true},
	{Nombre: "CAMARA_COMERCIO", Descripcion: "Certificado de Cámara de Comercio", Requerido: true},
	{Nombre: "ICA", Descripcion: "Registro ICA de predio productor", Requerido: true},
	{Nombre: "CERTIFICADO_FITOSANITARIO", Descripcion: "Certificado fitosanitario vigente", Requerido: false},
	{Nombre: "POLIZA_TRANSPORTE", Descripcion: "Póliza de transporte de carga", Requerido: false},
}

// SeedAll runs the full bootstrap: roles, admin account, document types.
// Every step is idempotent; re-running against a seeded database is a no-op.
func SeedAll(db *gorm.DB, cfg *config.Config) error {
	if err := SeedRoles(db); err != nil {
		return fmt.Errorf("seeding roles: %w", err)
	}
	if err := SeedAdminUser(db, cfg); err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}
	if err := SeedTiposDocumento(db); err != nil {
		return fmt.Errorf("seeding tipos de documento: %w", err)
	}
	return nil
}

// SeedRoles creates the baseline roles, looking each up by name first
func SeedRoles(db *gorm.DB) error {
	for _, role := range defaultRoles {
		var existing models.Role
		err := db.Where("nombre = ?", role.Nombre).First(&existing).Error
		if err == nil {
			log.Printf("[SEED] Role %s already exists, skipping", role.Nombre)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := db.Create(&role).Error; err != nil {
			return err
		}
		log.Printf("[SEED] Created role %s", role.Nombre)
	}
	return nil
}

// SeedAdminUser creates the bootstrap admin account with an APPROVED ADMIN
// role assignment. User creation and role assignment share one transaction:
// if the ADMIN role is missing the whole step fails and nothing is written,
// so a half-seeded admin (user without role) can never exist.
func SeedAdminUser(db *gorm.DB, cfg *config.Config) error {
	var existing models.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		log.Printf("[SEED] Admin user %s already exists, skipping", cfg.AdminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var adminRole models.Role
		if err := tx.Where("nombre = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("role %s not found; run role seeding first", models.RoleAdmin)
			}
			return err
		}

		user := models.User{
			Username: cfg.AdminUsername,
			Email:    cfg.AdminEmail,
			Password: hashedPassword,
			Activo:   true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		userRole := models.UserRole{
			UserID: user.ID,
			RoleID: adminRole.ID,
			Estado: models.UserRoleApproved,
		}
		if err := tx.Create(&userRole).Error; err != nil {
			return err
		}

		log.Printf("[SEED] Created admin user %s with role %s", cfg.AdminEmail, models.RoleAdmin)
		return nil
	})
}

// SeedTiposDocumento creates the reference document types, looking each up
// by name first
func SeedTiposDocumento(db *gorm.DB) error {
	for _, tipo := range defaultTiposDocumento {
		var existing models.TipoDocumentoFinca
		err := db.Where("nombre = ?", tipo.Nombre).First(&existing).Error
		if err == nil {
			log.Printf("[SEED] Tipo de documento %s already exists, skipping", tipo.Nombre)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := db.Create(&tipo).Error; err != nil {
			return err
		}
		log.Printf("[SEED] Created tipo de documento %s", tipo.Nombre)
	}
	return nil
}
