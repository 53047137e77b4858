package services

import (
	"errors"
	"flora_cargo_app_go/models"
	"fmt"

	"gorm.io/gorm"
)

// CreateTipoDocumentoInput holds the fields accepted when creating a document type
type CreateTipoDocumentoInput struct {
	Nombre      string
	Descripcion string
	Requerido   bool
}

// UpdateTipoDocumentoInput holds the optional fields of a partial update
type UpdateTipoDocumentoInput struct {
	Nombre      *string
	Descripcion *string
	Requerido   *bool
}

// GetTiposDocumento returns all farm document types
func GetTiposDocumento(db *gorm.DB) ([]models.TipoDocumentoFinca, error) {
	var tipos []models.TipoDocumentoFinca
	if err := db.Find(&tipos).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tipos de documento: %w", err)
	}
	return tipos, nil
}

// GetTipoDocumentoByID returns a single document type
func GetTipoDocumentoByID(db *gorm.DB, id uint) (*models.TipoDocumentoFinca, error) {
	var tipo models.TipoDocumentoFinca
	if err := db.First(&tipo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "tipo de documento", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch tipo de documento %d: %w", id, err)
	}
	return &tipo, nil
}

// CreateTipoDocumento inserts a new document type
func CreateTipoDocumento(db *gorm.DB, input CreateTipoDocumentoInput) (*models.TipoDocumentoFinca, error) {
	tipo := models.TipoDocumentoFinca{
		Nombre:      input.Nombre,
		Descripcion: input.Descripcion,
		Requerido:   input.Requerido,
	}

	if err := db.Create(&tipo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateError{Entity: "tipo de documento", Field: "nombre", Value: input.Nombre}
		}
		return nil, fmt.Errorf("failed to create tipo de documento: %w", err)
	}

	return &tipo, nil
}

// UpdateTipoDocumento applies a partial patch to an existing document type
func UpdateTipoDocumento(db *gorm.DB, id uint, input UpdateTipoDocumentoInput) (*models.TipoDocumentoFinca, error) {
	var updated *models.TipoDocumentoFinca

	err := db.Transaction(func(tx *gorm.DB) error {
		tipo, err := GetTipoDocumentoByID(tx, id)
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
		if input.Requerido != nil {
			updates["requerido"] = *input.Requerido
		}

		if len(updates) > 0 {
			if err := tx.Model(tipo).Updates(updates).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return &DuplicateError{Entity: "tipo de documento", Field: "nombre", Value: tipo.Nombre}
				}
				return fmt.Errorf("failed to update tipo de documento %d: %w", id, err)
			}
		}

		updated = tipo
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTipoDocumento removes a document type unless farms still reference it
func DeleteTipoDocumento(db *gorm.DB, id uint) (*models.TipoDocumentoFinca, error) {
	var deleted *models.TipoDocumentoFinca

	err := db.Transaction(func(tx *gorm.DB) error {
		tipo, err := GetTipoDocumentoByID(tx, id)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Finca{}).Where("tipo_documento_id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count fincas for tipo de documento %d: %w", id, err)
		}
		if count > 0 {
			return &InUseError{Entity: "tipo de documento", ID: id, Dependents: count}
		}

		if err := tx.Delete(&models.TipoDocumentoFinca{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete tipo de documento %d: %w", id, err)
		}

		deleted = tipo
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
