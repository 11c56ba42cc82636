package repositories

import (
	"duo-server/db"
	"duo-server/entities"
)

type postPgRepository struct {
	db db.Database
}

func NewPostPgRepository(database db.Database) PostRepository {
	return &postPgRepository{db: database}
}

func (r *postPgRepository) Create(post *entities.Post) error {
	return r.db.GetDB().Create(post).Error
}

func (r *postPgRepository) GetByID(id uint) (*entities.Post, error) {
	var post entities.Post
	err := r.db.GetDB().Preload("User").Preload("Recipient").Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postPgRepository) GetByRecipientID(recipientID uint) ([]entities.Post, error) {
	var posts []entities.Post
	err := r.db.GetDB().Preload("User").Preload("Recipient").
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}
