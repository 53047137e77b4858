package models

import "time"

// UserRole approval states
const (
	UserRolePending  = "PENDING"
	UserRoleApproved = "APPROVED"
	UserRoleRejected = "REJECTED"
)

// UserRole links a User to a Role and carries the approval workflow state
type UserRole struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"not null;index:idx_user_roles_user_role,unique" json:"user_id"`
	RoleID uint `gorm:"not null;index:idx_user_roles_user_role,unique" json:"role_id"`

	Estado   string `gorm:"size:20;not null;default:PENDING" json:"estado"` // PENDING, APPROVED, REJECTED
	Metadata string `gorm:"size:500" json:"metadata"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

// TableName specifies the table name
func (UserRole) TableName() string {
	return "user_roles"
}
