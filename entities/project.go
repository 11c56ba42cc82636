package entities

import (
	"time"

	"gorm.io/gorm"
)

type Project struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Users       []User         `gorm:"many2many:project_members" json:"users,omitempty"`
}

// ProjectMember is the join row between projects and users. The unique
// index on UserID means the database rejects a second membership for the
// same user, regardless of how many requests race on the pre-check.
type ProjectMember struct {
	ProjectID uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"primaryKey;uniqueIndex:idx_project_members_user"`
	CreatedAt time.Time
}
