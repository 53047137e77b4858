package models

import "time"

// TipoDocumentoFinca represents a document type a farm must (or may) provide.
// Nombre is the natural key used by the idempotent seed.
type TipoDocumentoFinca struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nombre      string `gorm:"size:100;uniqueIndex;not null" json:"nombre"`
	Descripcion string `gorm:"size:250" json:"descripcion"`
	Requerido   bool   `gorm:"not null;default:false" json:"requerido"`
}

// TableName specifies the table name
func (TipoDocumentoFinca) TableName() string {
	return "tipos_documento_finca"
}
