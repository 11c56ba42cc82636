package usecases

import (
	"errors"

	"duo-server/entities"
	"duo-server/repositories"

	"gorm.io/gorm"
)

// PostUseCase mirrors NoteUseCase. Posts stay a separate entity because
// their schema reserves an edit/delete lifecycle notes do not have.
type PostUseCase struct {
	PostRepo repositories.PostRepository
	UserRepo repositories.UserRepository
}

func NewPostUseCase(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostUseCase {
	return &PostUseCase{
		PostRepo: postRepo,
		UserRepo: userRepo,
	}
}

func (uc *PostUseCase) CreatePost(senderID uint, title, content string, recipientID uint) (*entities.Post, error) {
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

	post := &entities.Post{
		Title:       title,
		Content:     content,
		UserID:      senderID,
		RecipientID: recipientID,
	}
	if err := uc.PostRepo.Create(post); err != nil {
		return nil, err
	}

	return uc.PostRepo.GetByID(post.ID)
}

func (uc *PostUseCase) ListInbox(recipientID uint) ([]entities.Post, error) {
	posts, err := uc.PostRepo.GetByRecipientID(recipientID)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNoMessages
	}
	return posts, nil
}
