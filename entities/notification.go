package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification holds a message-received event for a user until it is
// delivered over their websocket connection.
type Notification struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    uint           `json:"user_id" gorm:"index"`
	Kind      string         `json:"kind" gorm:"type:varchar(32)"` // note, post
	Payload   string         `json:"payload" gorm:"type:text"`     // JSON string
	Status    string         `json:"status" gorm:"type:varchar(32)"` // pending, sent
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Status == "" {
		n.Status = "pending"
	}
	return nil
}
