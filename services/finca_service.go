package services

import (
	"errors"
	"flora_cargo_app_go/models"
	"fmt"

	"gorm.io/gorm"
)

// CreateFincaInput holds the fields accepted when creating a farm
type CreateFincaInput struct {
	Nombre                string
	Nit                   *string
	TipoDocumentoID       *uint
	GeneraGuiaCertificada bool
	Contacto              string
	Telefono              string
	Email                 string
	Direccion             string
	Ciudad                string
}

// UpdateFincaInput holds the optional fields of a partial update
type UpdateFincaInput struct {
	Nombre                *string
	Nit                   *string
	TipoDocumentoID       *uint
	GeneraGuiaCertificada *bool
	Contacto              *string
	Telefono              *string
	Email                 *string
	Direccion             *string
	Ciudad                *string
	Activo                *bool
}

// GetFincas returns all farms with their document type preloaded
func GetFincas(db *gorm.DB) ([]models.Finca, error) {
	var fincas []models.Finca
	if err := db.Preload("TipoDocumento").Find(&fincas).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch fincas: %w", err)
	}
	return fincas, nil
}

// GetFincaByID returns a single farm with document type, drivers and products
func GetFincaByID(db *gorm.DB, id uint) (*models.Finca, error) {
	var finca models.Finca
	err := db.
		Preload("TipoDocumento").
		Preload("Choferes").
		Preload("Productos").
		First(&finca, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "finca", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch finca %d: %w", id, err)
	}
	return &finca, nil
}

// CreateFinca inserts a new farm. A referenced document type must exist.
func CreateFinca(db *gorm.DB, input CreateFincaInput) (*models.Finca, error) {
	if input.TipoDocumentoID != nil {
		if _, err := GetTipoDocumentoByID(db, *input.TipoDocumentoID); err != nil {
			return nil, err
		}
	}

	finca := models.Finca{
		Nombre:                input.Nombre,
		Nit:                   input.Nit,
		TipoDocumentoID:       input.TipoDocumentoID,
		GeneraGuiaCertificada: input.GeneraGuiaCertificada,
		Contacto:              input.Contacto,
		Telefono:              input.Telefono,
		Email:                 input.Email,
		Direccion:             input.Direccion,
		Ciudad:                input.Ciudad,
		Activo:                true,
	}

	if err := db.Create(&finca).Error; err != nil {
		return nil, fmt.Errorf("failed to create finca: %w", err)
	}

	return &finca, nil
}

// UpdateFinca applies a partial patch to an existing farm
func UpdateFinca(db *gorm.DB, id uint, input UpdateFincaInput) (*models.Finca, error) {
	var updated *models.Finca

	err := db.Transaction(func(tx *gorm.DB) error {
		finca, err := GetFincaByID(tx, id)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if input.Nombre != nil {
			updates["nombre"] = *input.Nombre
		}
		if input.Nit != nil {
			updates["nit"] = *input.Nit
		}
		if input.TipoDocumentoID != nil {
			if _, err := GetTipoDocumentoByID(tx, *input.TipoDocumentoID); err != nil {
				return err
			}
			updates["tipo_documento_id"] = *input.TipoDocumentoID
		}
		if input.GeneraGuiaCertificada != nil {
			updates["genera_guia_certificada"] = *input.GeneraGuiaCertificada
		}
		if input.Contacto != nil {
			updates["contacto"] = *input.Contacto
		}
		if input.Telefono != nil {
			updates["telefono"] = *input.Telefono
		}
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if input.Direccion != nil {
			updates["direccion"] = *input.Direccion
		}
		if input.Ciudad != nil {
			updates["ciudad"] = *input.Ciudad
		}
		if input.Activo != nil {
			updates["activo"] = *input.Activo
		}

		if len(updates) > 0 {
			if err := tx.Model(finca).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update finca %d: %w", id, err)
			}
		}

		updated = finca
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteFinca removes a farm unless drivers or products are still assigned
func DeleteFinca(db *gorm.DB, id uint) (*models.Finca, error) {
	var deleted *models.Finca

	err := db.Transaction(func(tx *gorm.DB) error {
		finca, err := GetFincaByID(tx, id)
		if err != nil {
			return err
		}

		var choferes, productos int64
		if err := tx.Model(&models.Chofer{}).Where("finca_id = ?", id).Count(&choferes).Error; err != nil {
			return fmt.Errorf("failed to count choferes for finca %d: %w", id, err)
		}
		if err := tx.Model(&models.Producto{}).Where("finca_id = ?", id).Count(&productos).Error; err != nil {
			return fmt.Errorf("failed to count productos for finca %d: %w", id, err)
		}
		if total := choferes + productos; total > 0 {
			return &InUseError{Entity: "finca", ID: id, Dependents: total}
		}

		if err := tx.Delete(&models.Finca{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete finca %d: %w", id, err)
		}

		deleted = finca
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// AssignChofer assigns a driver to a farm. Both rows must exist.
func AssignChofer(db *gorm.DB, fincaID, choferID uint) (*models.Chofer, error) {
	var assigned *models.Chofer

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetFincaByID(tx, fincaID); err != nil {
			return err
		}

		var chofer models.Chofer
		if err := tx.First(&chofer, choferID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "chofer", ID: choferID}
			}
			return fmt.Errorf("failed to fetch chofer %d: %w", choferID, err)
		}

		if err := tx.Model(&chofer).Update("finca_id", fincaID).Error; err != nil {
			return fmt.Errorf("failed to assign chofer %d to finca %d: %w", choferID, fincaID, err)
		}

		assigned = &chofer
		return nil
	})
	if err != nil {
		return nil, err
	}

	return assigned, nil
}

// AssignProducto assigns a product to a farm. Both rows must exist.
func AssignProducto(db *gorm.DB, fincaID, productoID uint) (*models.Producto, error) {
	var assigned *models.Producto

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetFincaByID(tx, fincaID); err != nil {
			return err
		}

		var producto models.Producto
		if err := tx.First(&producto, productoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "producto", ID: productoID}
			}
			return fmt.Errorf("failed to fetch producto %d: %w", productoID, err)
		}

		if err := tx.Model(&producto).Update("finca_id", fincaID).Error; err != nil {
			return fmt.Errorf("failed to assign producto %d to finca %d: %w", productoID, fincaID, err)
		}

		assigned = &producto
		return nil
	})
	if err != nil {
		return nil, err
	}

	return assigned, nil
}
