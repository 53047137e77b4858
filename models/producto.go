package models

import "time"

// Producto represents a flower product grown by a farm
type Producto struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nombre string `gorm:"size:150;not null" json:"nombre"`

	FincaID *uint  `gorm:"index" json:"finca_id"`
	Finca   *Finca `gorm:"foreignKey:FincaID" json:"finca,omitempty"`
}

// TableName specifies the table name
func (Producto) TableName() string {
	return "productos"
}
