package models

import "time"

// AcuerdoArancelario represents a tariff agreement covering one or more countries
type AcuerdoArancelario struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nombre string `gorm:"size:150;uniqueIndex;not null" json:"nombre"`

	// Relationships
	Paises []Pais `gorm:"foreignKey:AcuerdoArancelarioID" json:"paises"`
}

// TableName specifies the table name
func (AcuerdoArancelario) TableName() string {
	return "acuerdos_arancelarios"
}
