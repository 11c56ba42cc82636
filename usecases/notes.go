package usecases

import (
	"errors"

	"duo-server/entities"
	"duo-server/repositories"

	"gorm.io/gorm"
)

type NoteUseCase struct {
	NoteRepo repositories.NoteRepository
	UserRepo repositories.UserRepository
}

func NewNoteUseCase(noteRepo repositories.NoteRepository, userRepo repositories.UserRepository) *NoteUseCase {
	return &NoteUseCase{
		NoteRepo: noteRepo,
		UserRepo: userRepo,
	}
}

// CreateNote sends a note from senderID to recipientID. The recipient must
// exist and must not be the sender. The returned note is re-fetched with
// sender and recipient attached.
func (uc *NoteUseCase) CreateNote(senderID uint, title, content string, recipientID uint) (*entities.Note, error) {
	if title == "" || content == "" || recipientID == 0 {
		return nil, errors.New("title, content, and recipientId are required")
	}

	if _, err := uc.UserRepo.GetByID(recipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}

	if recipientID == senderID {
		return nil, ErrSelfSend
	}

	note := &entities.Note{
		Title:       title,
		Content:     content,
		UserID:      senderID,
		RecipientID: recipientID,
	}
	if err := uc.NoteRepo.Create(note); err != nil {
		return nil, err
	}

	return uc.NoteRepo.GetByID(note.ID)
}

// ListInbox returns the notes addressed to recipientID, newest first. An
// empty inbox is reported as ErrNoMessages, not as an empty slice; callers
// surface it as a 404.
func (uc *NoteUseCase) ListInbox(recipientID uint) ([]entities.Note, error) {
	notes, err := uc.NoteRepo.GetByRecipientID(recipientID)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, ErrNoMessages
	}
	return notes, nil
}
