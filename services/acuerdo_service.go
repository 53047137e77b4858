package services

import (
	"errors"
	"flora_cargo_app_go/models"
	"fmt"

	"gorm.io/gorm"
)

// CreateAcuerdoInput holds the fields accepted when creating a tariff agreement
type CreateAcuerdoInput struct {
	Nombre string
}

// UpdateAcuerdoInput holds the optional fields of a partial update
type UpdateAcuerdoInput struct {
	Nombre *string
}

// GetAcuerdos returns all tariff agreements with their countries preloaded
func GetAcuerdos(db *gorm.DB) ([]models.AcuerdoArancelario, error) {
	var acuerdos []models.AcuerdoArancelario
	if err := db.Preload("Paises").Find(&acuerdos).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch acuerdos arancelarios: %w", err)
	}
	return acuerdos, nil
}

// GetAcuerdoByID returns a single tariff agreement with its countries.
// This is the canonical existence check reused by update and delete.
func GetAcuerdoByID(db *gorm.DB, id uint) (*models.AcuerdoArancelario, error) {
	var acuerdo models.AcuerdoArancelario
	if err := db.Preload("Paises").First(&acuerdo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "acuerdo arancelario", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch acuerdo arancelario %d: %w", id, err)
	}
	return &acuerdo, nil
}

// CreateAcuerdo inserts a new tariff agreement. A duplicate name is reported
// as a DuplicateError rather than a raw constraint violation.
func CreateAcuerdo(db *gorm.DB, input CreateAcuerdoInput) (*models.AcuerdoArancelario, error) {
	acuerdo := models.AcuerdoArancelario{
		Nombre: input.Nombre,
		Paises: []models.Pais{},
	}

	if err := db.Create(&acuerdo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateError{Entity: "acuerdo arancelario", Field: "nombre", Value: input.Nombre}
		}
		return nil, fmt.Errorf("failed to create acuerdo arancelario: %w", err)
	}

	return &acuerdo, nil
}

// UpdateAcuerdo applies a partial patch to an existing agreement. The
// existence check and the write run inside one transaction so a concurrent
// delete cannot slip between them.
func UpdateAcuerdo(db *gorm.DB, id uint, input UpdateAcuerdoInput) (*models.AcuerdoArancelario, error) {
	var updated *models.AcuerdoArancelario

	err := db.Transaction(func(tx *gorm.DB) error {
		acuerdo, err := GetAcuerdoByID(tx, id)
		if err != nil {
			return err
		}

		if input.Nombre != nil {
			if err := tx.Model(acuerdo).Update("nombre", *input.Nombre).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return &DuplicateError{Entity: "acuerdo arancelario", Field: "nombre", Value: *input.Nombre}
				}
				return fmt.Errorf("failed to update acuerdo arancelario %d: %w", id, err)
			}
		}

		updated = acuerdo
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteAcuerdo removes an agreement unless countries still reference it.
// The verify, the dependent count and the delete share one transaction.
func DeleteAcuerdo(db *gorm.DB, id uint) (*models.AcuerdoArancelario, error) {
	var deleted *models.AcuerdoArancelario

	err := db.Transaction(func(tx *gorm.DB) error {
		acuerdo, err := GetAcuerdoByID(tx, id)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Pais{}).Where("acuerdo_arancelario_id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count paises for acuerdo arancelario %d: %w", id, err)
		}
		if count > 0 {
			return &InUseError{Entity: "acuerdo arancelario", ID: id, Dependents: count}
		}

		if err := tx.Delete(&models.AcuerdoArancelario{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete acuerdo arancelario %d: %w", id, err)
		}

		deleted = acuerdo
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
