package services

import (
	"errors"
	"flora_cargo_app_go/models"
	"fmt"

	"gorm.io/gorm"
)

// CreatePaisInput holds the fields accepted when creating a country
type CreatePaisInput struct {
	Nombre               string
	Codigo               string
	AcuerdoArancelarioID *uint
}

// UpdatePaisInput holds the optional fields of a partial update.
// SetAcuerdo distinguishes "leave the agreement alone" from "clear it".
type UpdatePaisInput struct {
	Nombre               *string
	Codigo               *string
	AcuerdoArancelarioID *uint
	SetAcuerdo           bool
}

// GetPaises returns all countries with their agreement preloaded
func GetPaises(db *gorm.DB) ([]models.Pais, error) {
	var paises []models.Pais
	if err := db.Preload("AcuerdoArancelario").Find(&paises).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch paises: %w", err)
	}
	return paises, nil
}

// GetPaisByID returns a single country with its agreement preloaded
func GetPaisByID(db *gorm.DB, id uint) (*models.Pais, error) {
	var pais models.Pais
	if err := db.Preload("AcuerdoArancelario").First(&pais, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "pais", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch pais %d: %w", id, err)
	}
	return &pais, nil
}

// CreatePais inserts a new country, optionally linked to a tariff agreement.
// The referenced agreement must exist.
func CreatePais(db *gorm.DB, input CreatePaisInput) (*models.Pais, error) {
	if input.AcuerdoArancelarioID != nil {
		if _, err := GetAcuerdoByID(db, *input.AcuerdoArancelarioID); err != nil {
			return nil, err
		}
	}

	pais := models.Pais{
		Nombre:               input.Nombre,
		Codigo:               input.Codigo,
		AcuerdoArancelarioID: input.AcuerdoArancelarioID,
	}

	if err := db.Create(&pais).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateError{Entity: "pais", Field: "codigo", Value: input.Codigo}
		}
		return nil, fmt.Errorf("failed to create pais: %w", err)
	}

	return &pais, nil
}

// UpdatePais applies a partial patch to an existing country
func UpdatePais(db *gorm.DB, id uint, input UpdatePaisInput) (*models.Pais, error) {
	var updated *models.Pais

	err := db.Transaction(func(tx *gorm.DB) error {
		pais, err := GetPaisByID(tx, id)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if input.Nombre != nil {
			updates["nombre"] = *input.Nombre
		}
		if input.Codigo != nil {
			updates["codigo"] = *input.Codigo
		}
		if input.SetAcuerdo {
			if input.AcuerdoArancelarioID != nil {
				if _, err := GetAcuerdoByID(tx, *input.AcuerdoArancelarioID); err != nil {
					return err
				}
			}
			updates["acuerdo_arancelario_id"] = input.AcuerdoArancelarioID
		}

		if len(updates) > 0 {
			if err := tx.Model(pais).Updates(updates).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return &DuplicateError{Entity: "pais", Field: "codigo", Value: pais.Codigo}
				}
				return fmt.Errorf("failed to update pais %d: %w", id, err)
			}
		}

		updated = pais
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeletePais removes a country. Countries have no dependents in this layer.
func DeletePais(db *gorm.DB, id uint) (*models.Pais, error) {
	var deleted *models.Pais

	err := db.Transaction(func(tx *gorm.DB) error {
		pais, err := GetPaisByID(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Delete(&models.Pais{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete pais %d: %w", id, err)
		}

		deleted = pais
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
