package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flora_cargo_app_go/models"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing
	BcryptCost = 10
	// SessionTokenLength is the length of the session token in bytes (64 chars hex)
	SessionTokenLength = 32
	// DefaultSessionDuration is the default session duration (7 days)
	DefaultSessionDuration = 7 * 24 * time.Hour
)

// ErrInvalidCredentials is returned when login email/password do not match an active user
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrSessionInvalid is returned when a session token is unknown or expired
var ErrSessionInvalid = errors.New("session invalid or expired")

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword verifies a password against a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateSessionToken generates a cryptographically secure random token
func GenerateSessionToken() (string, error) {
	bytes := make([]byte, SessionTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// Login verifies credentials and opens a session for an active user
func Login(db *gorm.DB, email, password string) (*models.Session, error) {
	user, err := GetUserByEmail(db, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.Activo || !CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return CreateSession(db, user.ID)
}

// CreateSession creates a new session for a user
func CreateSession(db *gorm.DB, userID uint) (*models.Session, error) {
	token, err := GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	session := models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(DefaultSessionDuration),
	}

	if err := db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &session, nil
}

// ValidateSession resolves a token to its session with the user and the
// user's role assignments preloaded
func ValidateSession(db *gorm.DB, token string) (*models.Session, error) {
	var session models.Session
	err := db.Preload("User.Roles.Role").Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	if session.IsExpired() {
		// Best effort cleanup of the expired row
		db.Delete(&models.Session{}, session.ID)
		return nil, ErrSessionInvalid
	}

	return &session, nil
}

// DeleteSession removes a session by token (logout)
func DeleteSession(db *gorm.DB, token string) error {
	if err := db.Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
