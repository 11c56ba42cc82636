package repositories

import (
	"duo-server/db"
	"duo-server/entities"
)

type notePgRepository struct {
	db db.Database
}

func NewNotePgRepository(database db.Database) NoteRepository {
	return &notePgRepository{db: database}
}

func (r *notePgRepository) Create(note *entities.Note) error {
	return r.db.GetDB().Create(note).Error
}

func (r *notePgRepository) GetByID(id uint) (*entities.Note, error) {
	var note entities.Note
	err := r.db.GetDB().Preload("User").Preload("Recipient").Where("id = ?", id).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *notePgRepository) GetByRecipientID(recipientID uint) ([]entities.Note, error) {
	var notes []entities.Note
	err := r.db.GetDB().Preload("User").Preload("Recipient").
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}
