package entities

import "time"

// Note is a private message from one user to another. Notes are immutable
// once created; there is no update or delete operation.
type Note struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"not null" json:"content"`
	UserID      uint      `gorm:"index;not null" json:"userId"` // sender
	RecipientID uint      `gorm:"index;not null" json:"recipientId"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipient   *User     `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
