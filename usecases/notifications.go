package usecases

import (
	"encoding/json"
	"errors"

	"duo-server/entities"
	"duo-server/repositories"
)

type NotificationUseCase struct {
	repo repositories.NotificationRepository
}

func NewNotificationUseCase(r repositories.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: r}
}

// Enqueue stores a pending notification for a user. The payload is stored
// as a JSON string so delivery can forward it verbatim.
func (uc *NotificationUseCase) Enqueue(userID uint, kind string, payload interface{}) (*entities.Notification, error) {
	if userID == 0 || kind == "" {
		return nil, errors.New("user id and kind are required")
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	n := &entities.Notification{
		UserID:  userID,
		Kind:    kind,
		Payload: string(b),
		Status:  "pending",
	}
	if err := uc.repo.Enqueue(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Pending returns undelivered notifications for a user, oldest first.
func (uc *NotificationUseCase) Pending(userID uint, limit int) ([]entities.Notification, error) {
	if userID == 0 {
		return nil, errors.New("user id is required")
	}
	return uc.repo.GetPendingByUserID(userID, limit)
}

func (uc *NotificationUseCase) MarkSent(ids []string) error {
	return uc.repo.MarkSent(ids)
}
