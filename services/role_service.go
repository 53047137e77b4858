package services

import (
	"errors"
	"flora_cargo_app_go/models"
	"fmt"

	"gorm.io/gorm"
)

// CreateRoleInput holds the fields accepted when creating a role
type CreateRoleInput struct {
	Nombre      string
	Descripcion string
}

// UpdateRoleInput holds the optional fields of a partial update
type UpdateRoleInput struct {
	Nombre      *string
	Descripcion *string
}

// GetRoles returns all roles
func GetRoles(db *gorm.DB) ([]models.Role, error) {
	var roles []models.Role
	if err := db.Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch roles: %w", err)
	}
	return roles, nil
}

// GetRoleByID returns a single role
func GetRoleByID(db *gorm.DB, id uint) (*models.Role, error) {
	var role models.Role
	if err := db.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "role", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch role %d: %w", id, err)
	}
	return &role, nil
}

// GetRoleByNombre returns a role by its natural key
func GetRoleByNombre(db *gorm.DB, nombre string) (*models.Role, error) {
	var role models.Role
	if err := db.Where("nombre = ?", nombre).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "role"}
		}
		return nil, fmt.Errorf("failed to fetch role %q: %w", nombre, err)
	}
	return &role, nil
}

// CreateRole inserts a new role
func CreateRole(db *gorm.DB, input CreateRoleInput) (*models.Role, error) {
	role := models.Role{
		Nombre:      input.Nombre,
		Descripcion: input.Descripcion,
	}

	if err := db.Create(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateError{Entity: "role", Field: "nombre", Value: input.Nombre}
		}
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	return &role, nil
}

// UpdateRole applies a partial patch to an existing role
func UpdateRole(db *gorm.DB, id uint, input UpdateRoleInput) (*models.Role, error) {
	var updated *models.Role

	err := db.Transaction(func(tx *gorm.DB) error {
		role, err := GetRoleByID(tx, id)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if input.Nombre != nil {
			updates["nombre"] = *input.Nombre
		}
		if input.Descripcion != nil {
			updates["descripcion"] = *input.Descripcion
		}

		if len(updates) > 0 {
			if err := tx.Model(role).Updates(updates).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return &DuplicateError{Entity: "role", Field: "nombre", Value: role.Nombre}
				}
				return fmt.Errorf("failed to update role %d: %w", id, err)
			}
		}

		updated = role
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteRole removes a role unless user-role assignments still reference it
func DeleteRole(db *gorm.DB, id uint) (*models.Role, error) {
	var deleted *models.Role

	err := db.Transaction(func(tx *gorm.DB) error {
		role, err := GetRoleByID(tx, id)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.UserRole{}).Where("role_id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count user roles for role %d: %w", id, err)
		}
		if count > 0 {
			return &InUseError{Entity: "role", ID: id, Dependents: count}
		}

		if err := tx.Delete(&models.Role{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete role %d: %w", id, err)
		}

		deleted = role
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
