package models

import "time"

// User represents an account on the platform. Users are never deleted;
// they are deactivated via the Activo flag.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string `gorm:"size:100;not null" json:"username"`
	Email    string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Activo   bool   `gorm:"not null;default:true" json:"activo"`

	// Relationships
	Roles []UserRole `gorm:"foreignKey:UserID" json:"roles,omitempty"`
}

// HasApprovedRole reports whether the user carries an approved role with the given name
func (u *User) HasApprovedRole(nombre string) bool {
	for _, ur := range u.Roles {
		if ur.Estado == UserRoleApproved && ur.Role != nil && ur.Role.Nombre == nombre {
			return true
		}
	}
	return false
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
