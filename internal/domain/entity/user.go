package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role names. A user with no elevated privileges has an empty role.
const (
	RoleNone  = ""
	RoleAdmin = "admin"
)

// User is an identity record. Users authenticate by presenting a token
// issued against the email on file; there is no credential storage.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"type:varchar(255)" json:"name,omitempty"`
	Role      string    `gorm:"type:varchar(50);not null;default:'';index" json:"role,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
