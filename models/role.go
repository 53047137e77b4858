package models

import "time"

// Role names seeded at bootstrap
const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"
	RoleFarm   = "FARM"
)

// Role represents an authorization role. Nombre is the natural key.
type Role struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nombre      string `gorm:"size:50;uniqueIndex;not null" json:"nombre"`
	Descripcion string `gorm:"size:250" json:"descripcion"`
}

// TableName specifies the table name
func (Role) TableName() string {
	return "roles"
}
