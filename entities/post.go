package entities

import (
	"time"

	"gorm.io/gorm"
)

// Post is a directed message like Note but with an editable lifecycle: the
// schema reserves update and soft-delete columns even though no route
// mutates a post yet.
type Post struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Content     string         `gorm:"not null" json:"content"`
	UserID      uint           `gorm:"index;not null" json:"userId"` // sender
	RecipientID uint           `gorm:"index;not null" json:"recipientId"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipient   *User          `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
