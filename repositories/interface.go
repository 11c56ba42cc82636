package repositories

import "duo-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id uint) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	SetPartner(userID, partnerID uint) error
}

type NoteRepository interface {
	Create(note *entities.Note) error
	GetByID(id uint) (*entities.Note, error)
	GetByRecipientID(recipientID uint) ([]entities.Note, error)
}

type PostRepository interface {
	Create(post *entities.Post) error
	GetByID(id uint) (*entities.Post, error)
	GetByRecipientID(recipientID uint) ([]entities.Post, error)
}

type ProjectRepository interface {
	CreateWithMember(project *entities.Project, member *entities.User) error
	GetByMemberID(userID uint) (*entities.Project, error)
}

type NotificationRepository interface {
	Enqueue(n *entities.Notification) error
	GetPendingByUserID(userID uint, limit int) ([]entities.Notification, error)
	MarkSent(ids []string) error
}
