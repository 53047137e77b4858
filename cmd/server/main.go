package main

import (
	"flora_cargo_app_go/config"
	"flora_cargo_app_go/db"
	"flora_cargo_app_go/handlers"
	"flora_cargo_app_go/middleware"
	"flora_cargo_app_go/models"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	database, err := db.Initialize(cfg.DBPath, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close(database)

	// Run migrations
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
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.Validator = handlers.NewValidator()

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Handlers
	authHandler := handlers.NewAuthHandler(database)
	acuerdoHandler := handlers.NewAcuerdoHandler(database)
	paisHandler := handlers.NewPaisHandler(database)
	fincaHandler := handlers.NewFincaHandler(database)
	tipoDocumentoHandler := handlers.NewTipoDocumentoHandler(database)
	roleHandler := handlers.NewRoleHandler(database)
	userHandler := handlers.NewUserHandler(database, cfg)

	requireAdmin := []echo.MiddlewareFunc{
		middleware.RequireAuth(database),
		middleware.RequireRole(models.RoleAdmin),
	}

	// Auth routes
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, middleware.RequireAuth(database))

	// Master data routes. Reads are public; mutations require the ADMIN role.
	maestros := e.Group("/datos-maestros")

	acuerdos := maestros.Group("/acuerdos-arancelarios")
	acuerdos.GET("", acuerdoHandler.GetAcuerdos)
	acuerdos.GET("/:id", acuerdoHandler.GetAcuerdo)
	acuerdos.POST("", acuerdoHandler.CreateAcuerdo, requireAdmin...)
	acuerdos.PATCH("/:id", acuerdoHandler.UpdateAcuerdo, requireAdmin...)
	acuerdos.DELETE("/:id", acuerdoHandler.DeleteAcuerdo, requireAdmin...)

	paises := maestros.Group("/paises")
	paises.GET("", paisHandler.GetPaises)
	paises.GET("/:id", paisHandler.GetPais)
	paises.POST("", paisHandler.CreatePais, requireAdmin...)
	paises.PATCH("/:id", paisHandler.UpdatePais, requireAdmin...)
	paises.DELETE("/:id", paisHandler.DeletePais, requireAdmin...)

	fincas := maestros.Group("/fincas")
	fincas.GET("", fincaHandler.GetFincas)
	fincas.GET("/export", fincaHandler.ExportFincas, requireAdmin...)
	fincas.GET("/:id", fincaHandler.GetFinca)
	fincas.POST("", fincaHandler.CreateFinca, requireAdmin...)
	fincas.PATCH("/:id", fincaHandler.UpdateFinca, requireAdmin...)
	fincas.DELETE("/:id", fincaHandler.DeleteFinca, requireAdmin...)
	fincas.POST("/:id/choferes", fincaHandler.AssignChofer, requireAdmin...)
	fincas.POST("/:id/productos", fincaHandler.AssignProducto, requireAdmin...)

	tipos := maestros.Group("/tipos-documento-finca")
	tipos.GET("", tipoDocumentoHandler.GetTiposDocumento)
	tipos.GET("/:id", tipoDocumentoHandler.GetTipoDocumento)
	tipos.POST("", tipoDocumentoHandler.CreateTipoDocumento, requireAdmin...)
	tipos.PATCH("/:id", tipoDocumentoHandler.UpdateTipoDocumento, requireAdmin...)
	tipos.DELETE("/:id", tipoDocumentoHandler.DeleteTipoDocumento, requireAdmin...)

	roles := maestros.Group("/roles")
	roles.GET("", roleHandler.GetRoles)
	roles.GET("/:id", roleHandler.GetRole)
	roles.POST("", roleHandler.CreateRole, requireAdmin...)
	roles.PATCH("/:id", roleHandler.UpdateRole, requireAdmin...)
	roles.DELETE("/:id", roleHandler.DeleteRole, requireAdmin...)

	usuarios := maestros.Group("/usuarios")
	usuarios.GET("", userHandler.GetUsers)
	usuarios.GET("/:id", userHandler.GetUser)
	usuarios.POST("", userHandler.CreateUser, requireAdmin...)
	usuarios.PATCH("/:id", userHandler.UpdateUser, requireAdmin...)
	usuarios.DELETE("/:id", userHandler.DeleteUser, requireAdmin...)
	usuarios.POST("/:id/roles", userHandler.AssignRole, requireAdmin...)

	log.Printf("Starting server on port %s (%s)", cfg.ServerPort, cfg.Environment)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
