package models

import "time"

// Pais represents a destination country; it may belong to at most one tariff agreement
type Pais struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nombre string `gorm:"size:100;not null" json:"nombre"`
	Codigo string `gorm:"size:3;uniqueIndex;not null" json:"codigo"` // ISO 3166-1 alpha-3 (COL, NLD, USA...)

	AcuerdoArancelarioID *uint               `gorm:"index" json:"acuerdo_arancelario_id"`
	AcuerdoArancelario   *AcuerdoArancelario `gorm:"foreignKey:AcuerdoArancelarioID" json:"acuerdo_arancelario,omitempty"`
}

// TableName specifies the table name
func (Pais) TableName() string {
	return "paises"
}
