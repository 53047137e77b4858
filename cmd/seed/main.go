package main

import (
	"flora_cargo_app_go/config"
	"flora_cargo_app_go/db"
	"flora_cargo_app_go/models"
	"flora_cargo_app_go/services"
	"log"
	"os"
)

// Seeds baseline roles, the bootstrap admin account and the reference farm
// document types. Safe to re-run: every item is looked up by its natural key
// before being created.
func main() {
	cfg := config.Load()

	database, err := db.Initialize(cfg.DBPath, cfg.Environment)
	if err != nil {
		log.Printf("Failed to initialize database: %v", err)
		os.Exit(1)
	}

	err = db.AutoMigrate(database,
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
	if err != nil {
		log.Printf("Failed to run migrations: %v", err)
		db.Close(database)
		os.Exit(1)
	}

	if err := services.SeedAll(database, cfg); err != nil {
		log.Printf("[SEED] Seeding failed: %v", err)
		db.Close(database)
		os.Exit(1)
	}

	if err := db.Close(database); err != nil {
		log.Printf("Failed to close database: %v", err)
		os.Exit(1)
	}

	log.Println("[SEED] Seeding completed successfully")
}
