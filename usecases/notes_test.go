package usecases

import (
	"testing"

	"duo-server/entities"
	"duo-server/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessagingFixture(t *testing.T) (*NoteUseCase, *PostUseCase, *entities.User, *entities.User) {
	t.Helper()
	store := repositories.NewMemoryStore()
	users := NewUserUseCase(store.Users(), testSecret)

	sender, err := users.Register("Ana", "a@x.com", "5511999990000", "secret123")
	require.NoError(t, err)
	recipient, err := users.Register("Bob", "b@x.com", "5511888880000", "secret456")
	require.NoError(t, err)

	return NewNoteUseCase(store.Notes(), store.Users()),
		NewPostUseCase(store.Posts(), store.Users()),
		sender, recipient
}

func TestCreateNote_Success(t *testing.T) {
	notes, _, sender, recipient := newMessagingFixture(t)

	note, err := notes.CreateNote(sender.ID, "Hi", "Hello", recipient.ID)
	require.NoError(t, err)
	assert.Equal(t, sender.ID, note.UserID)
	assert.Equal(t, recipient.ID, note.RecipientID)

	// returned with sender/recipient attached
	require.NotNil(t, note.User)
	require.NotNil(t, note.Recipient)
	assert.Equal(t, "a@x.com", note.User.Email)
	assert.Equal(t, "b@x.com", note.Recipient.Email)
}

func TestCreateNote_MissingFields(t *testing.T) {
	notes, _, sender, recipient := newMessagingFixture(t)

	_, err := notes.CreateNote(sender.ID, "", "Hello", recipient.ID)
	assert.Error(t, err)

	_, err = notes.CreateNote(sender.ID, "Hi", "", recipient.ID)
	assert.Error(t, err)

	_, err = notes.CreateNote(sender.ID, "Hi", "Hello", 0)
	assert.Error(t, err)
}

func TestCreateNote_RecipientNotFound(t *testing.T) {
	notes, _, sender, _ := newMessagingFixture(t)

	_, err := notes.CreateNote(sender.ID, "Hi", "Hello", 999)
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestCreateNote_SelfSend(t *testing.T) {
	notes, _, sender, _ := newMessagingFixture(t)

	_, err := notes.CreateNote(sender.ID, "Hi", "Hello", sender.ID)
	assert.ErrorIs(t, err, ErrSelfSend)
}

func TestNoteInbox_EmptyIsAnError(t *testing.T) {
	notes, _, sender, _ := newMessagingFixture(t)

	_, err := notes.ListInbox(sender.ID)
	assert.ErrorIs(t, err, ErrNoMessages)
}

func TestNoteInbox_ScopedToRecipientNewestFirst(t *testing.T) {
	notes, _, sender, recipient := newMessagingFixture(t)

	first, err := notes.CreateNote(sender.ID, "First", "one", recipient.ID)
	require.NoError(t, err)
	second, err := notes.CreateNote(sender.ID, "Second", "two", recipient.ID)
	require.NoError(t, err)

	inbox, err := notes.ListInbox(recipient.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	assert.Equal(t, second.ID, inbox[0].ID)
	assert.Equal(t, first.ID, inbox[1].ID)

	// the sender's own inbox is untouched
	_, err = notes.ListInbox(sender.ID)
	assert.ErrorIs(t, err, ErrNoMessages)
}

func TestCreatePost_SelfSend(t *testing.T) {
	_, posts, sender, _ := newMessagingFixture(t)

	_, err := posts.CreatePost(sender.ID, "Hi", "Hello", sender.ID)
	assert.ErrorIs(t, err, ErrSelfSend)
}

func TestCreatePost_SuccessAndInbox(t *testing.T) {
	_, posts, sender, recipient := newMessagingFixture(t)

	post, err := posts.CreatePost(sender.ID, "Plans", "Dinner friday?", recipient.ID)
	require.NoError(t, err)
	assert.Equal(t, sender.ID, post.UserID)

	inbox, err := posts.ListInbox(recipient.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Plans", inbox[0].Title)
}

func TestPostInbox_EmptyIsAnError(t *testing.T) {
	_, posts, sender, _ := newMessagingFixture(t)

	_, err := posts.ListInbox(sender.ID)
	assert.ErrorIs(t, err, ErrNoMessages)
}
