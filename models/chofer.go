package models

import "time"

// Chofer represents a driver that can be assigned to a farm
type Chofer struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nombre string `gorm:"size:150;not null" json:"nombre"`
	Cedula string `gorm:"size:30;uniqueIndex" json:"cedula"`

	FincaID *uint  `gorm:"index" json:"finca_id"`
	Finca   *Finca `gorm:"foreignKey:FincaID" json:"finca,omitempty"`
}

// TableName specifies the table name
func (Chofer) TableName() string {
	return "choferes"
}
