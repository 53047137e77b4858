package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DevAdminEmail is the bootstrap admin email used when none is configured.
	// Acceptable only in development; production requires explicit values.
	DevAdminEmail = "admin@example.com"
	// DevAdminPassword is the bootstrap admin password used when none is configured.
	DevAdminPassword = "admin123"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	// Bootstrap admin account (used by the seed command)
	AdminEmail    string
	AdminPassword string
	AdminUsername string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// Other
	AllowedOrigins []string
	AppURL         string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	adminEmail := getEnv("ADMIN_EMAIL", DevAdminEmail)
	adminPassword := getEnv("ADMIN_PASSWORD", DevAdminPassword)

	// The literal defaults are for local development only
	ValidateAdminCredentials(adminEmail, adminPassword, environment)

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		DBPath:         getEnv("DB_PATH", "db/app.db"),
		Environment:    environment,
		AdminEmail:     adminEmail,
		AdminPassword:  adminPassword,
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		EmailFrom:      getEnv("EMAIL_FROM", "noreply@floracargo.co"),
		EmailFromName:  getEnv("EMAIL_FROM_NAME", "FloraCargo"),
		EmailTestMode:  getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		AppURL:         getEnv("APP_URL", "http://localhost:8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// ValidateAdminCredentials refuses the development bootstrap credentials in
// production. The seed command must never install admin@example.com/admin123
// on a real deployment.
func ValidateAdminCredentials(email, password, environment string) {
	if environment != "production" {
		return
	}

	if email == DevAdminEmail || password == DevAdminPassword {
		log.Fatal("[CRITICAL] ADMIN_EMAIL/ADMIN_PASSWORD are set to development defaults. Set explicit values before seeding in production.")
	}

	if len(password) < 12 {
		log.Fatalf("[CRITICAL] ADMIN_PASSWORD must be at least 12 characters in production (current: %d)", len(password))
	}
}
