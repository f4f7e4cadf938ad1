package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a clinic staff record, managed by admins only.
type Doctor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Specialty string    `gorm:"type:varchar(255);not null;index" json:"specialty"`
	ImageURL  string    `gorm:"type:text" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
