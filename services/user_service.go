package services

import (
	"errors"
	"flora_cargo_app_go/models"
	"fmt"

	"gorm.io/gorm"
)

// CreateUserInput holds the fields accepted when creating a user
type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

// UpdateUserInput holds the optional fields of a partial update.
// Passwords are not updatable through this path.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Activo   *bool
}

// GetUsers returns all users with their role assignments preloaded
func GetUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Preload("Roles.Role").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// GetUserByID returns a single user with role assignments preloaded
func GetUserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.Preload("Roles.Role").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch user %d: %w", id, err)
	}
	return &user, nil
}

// GetUserByEmail returns a user by its natural key, or gorm.ErrRecordNotFound
func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Preload("Roles.Role").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new active user with a bcrypt-hashed password
func CreateUser(db *gorm.DB, input CreateUserInput) (*models.User, error) {
	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
		Activo:   true,
	}

	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateError{Entity: "user", Field: "email", Value: input.Email}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// UpdateUser applies a partial patch to an existing user
func UpdateUser(db *gorm.DB, id uint, input UpdateUserInput) (*models.User, error) {
	var updated *models.User

	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := GetUserByID(tx, id)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if input.Username != nil {
			updates["username"] = *input.Username
		}
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if input.Activo != nil {
			updates["activo"] = *input.Activo
		}

		if len(updates) > 0 {
			if err := tx.Model(user).Updates(updates).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return &DuplicateError{Entity: "user", Field: "email", Value: user.Email}
				}
				return fmt.Errorf("failed to update user %d: %w", id, err)
			}
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeactivateUser is the "delete" for users: the row is kept and Activo is
// cleared, matching the platform convention of never removing accounts.
func DeactivateUser(db *gorm.DB, id uint) (*models.User, error) {
	var deactivated *models.User

	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := GetUserByID(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Model(user).Update("activo", false).Error; err != nil {
			return fmt.Errorf("failed to deactivate user %d: %w", id, err)
		}

		deactivated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deactivated, nil
}

// AssignRole grants a role to a user with the given approval state
func AssignRole(db *gorm.DB, userID, roleID uint, estado string) (*models.UserRole, error) {
	var assigned *models.UserRole

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetUserByID(tx, userID); err != nil {
			return err
		}
		if _, err := GetRoleByID(tx, roleID); err != nil {
			return err
		}

		userRole := models.UserRole{
			UserID: userID,
			RoleID: roleID,
			Estado: estado,
		}

		if err := tx.Create(&userRole).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &DuplicateError{Entity: "user role", Field: "user/role", Value: fmt.Sprintf("%d/%d", userID, roleID)}
			}
			return fmt.Errorf("failed to assign role %d to user %d: %w", roleID, userID, err)
		}

		assigned = &userRole
		return nil
	})
	if err != nil {
		return nil, err
	}

	return assigned, nil
}
