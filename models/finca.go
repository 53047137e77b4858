package models

import "time"

// Finca represents a flower farm / producer
type Finca struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nombre string  `gorm:"size:150;not null" json:"nombre"`
	Nit    *string `gorm:"size:30" json:"nit"`

	TipoDocumentoID *uint               `gorm:"index" json:"tipo_documento_id"`
	TipoDocumento   *TipoDocumentoFinca `gorm:"foreignKey:TipoDocumentoID" json:"tipo_documento,omitempty"`

	// When set, outbound shipments from this farm get a certified guide
	GeneraGuiaCertificada bool `gorm:"not null;default:false" json:"genera_guia_certificada"`

	Contacto  string `gorm:"size:150" json:"contacto"`
	Telefono  string `gorm:"size:30" json:"telefono"`
	Email     string `gorm:"size:150" json:"email"`
	Direccion string `gorm:"size:250" json:"direccion"`
	Ciudad    string `gorm:"size:100" json:"ciudad"`

	Activo bool `gorm:"not null;default:true" json:"activo"`

	// Relationships
	Choferes  []Chofer   `gorm:"foreignKey:FincaID" json:"choferes,omitempty"`
	Productos []Producto `gorm:"foreignKey:FincaID" json:"productos,omitempty"`
}

// TableName specifies the table name
func (Finca) TableName() string {
	return "fincas"
}
