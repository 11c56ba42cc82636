package entities

import (
	"time"

	"gorm.io/gorm"
)

// User is an account holder. PartnerID is a one-directional link to another
// user; nothing requires the other side to point back.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Cellphone    string         `gorm:"not null" json:"cellphone"`
	PasswordHash string         `gorm:"not null" json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	PartnerID    *uint          `json:"partnerId,omitempty"`
	Projects     []Project      `gorm:"many2many:project_members" json:"-"`
}
