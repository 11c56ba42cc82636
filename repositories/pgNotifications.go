package repositories

import (
	"duo-server/db"
	"duo-server/entities"
)

type notificationPgRepository struct {
	db db.Database
}

func NewNotificationPgRepository(database db.Database) NotificationRepository {
	return &notificationPgRepository{db: database}
}

func (r *notificationPgRepository) Enqueue(n *entities.Notification) error {
	return r.db.GetDB().Create(n).Error
}

func (r *notificationPgRepository) GetPendingByUserID(userID uint, limit int) ([]entities.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	var notifications []entities.Notification
	err := r.db.GetDB().
		Where("user_id = ? AND status = ?", userID, "pending").
		Order("created_at ASC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationPgRepository) MarkSent(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.GetDB().Model(&entities.Notification{}).Where("id IN ?", ids).Update("status", "sent").Error
}
