package repositories

import (
	"sort"
	"sync"
	"time"

	"duo-server/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemoryStore is an in-memory implementation of the repository interfaces,
// used by tests. It enforces the same constraints the database schema does:
// unique emails and a unique project membership per user, reporting
// violations as gorm.ErrDuplicatedKey just like the postgres repositories
// with TranslateError enabled.
type MemoryStore struct {
	mu sync.Mutex

	users      map[uint]entities.User
	emailIndex map[string]uint
	nextUserID uint

	notes      map[uint]entities.Note
	nextNoteID uint

	posts      map[uint]entities.Post
	nextPostID uint

	projects      map[uint]entities.Project
	memberProject map[uint]uint // userID -> projectID
	nextProjectID uint

	notifications map[string]entities.Notification
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[uint]entities.User),
		emailIndex:    make(map[string]uint),
		notes:         make(map[uint]entities.Note),
		posts:         make(map[uint]entities.Post),
		projects:      make(map[uint]entities.Project),
		memberProject: make(map[uint]uint),
		notifications: make(map[string]entities.Notification),
	}
}

func (s *MemoryStore) Users() UserRepository                 { return (*memoryUserRepo)(s) }
func (s *MemoryStore) Notes() NoteRepository                 { return (*memoryNoteRepo)(s) }
func (s *MemoryStore) Posts() PostRepository                 { return (*memoryPostRepo)(s) }
func (s *MemoryStore) Projects() ProjectRepository           { return (*memoryProjectRepo)(s) }
func (s *MemoryStore) Notifications() NotificationRepository { return (*memoryNotificationRepo)(s) }

// ---- users ----

type memoryUserRepo MemoryStore

func (r *memoryUserRepo) Create(user *entities.User) error {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emailIndex[user.Email]; taken {
		return gorm.ErrDuplicatedKey
	}

	s.nextUserID++
	user.ID = s.nextUserID
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users[user.ID] = *user
	s.emailIndex[user.Email] = user.ID
	return nil
}

func (r *memoryUserRepo) GetByID(id uint) (*entities.User, error) {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *memoryUserRepo) GetByEmail(email string) (*entities.User, error) {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emailIndex[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	user := s.users[id]
	return &user, nil
}

func (r *memoryUserRepo) SetPartner(userID, partnerID uint) error {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.PartnerID = &partnerID
	user.UpdatedAt = time.Now()
	s.users[userID] = user
	return nil
}

// ---- notes ----

type memoryNoteRepo MemoryStore

func (r *memoryNoteRepo) Create(note *entities.Note) error {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextNoteID++
	note.ID = s.nextNoteID
	note.CreatedAt = time.Now()
	stored := *note
	stored.User = nil
	stored.Recipient = nil
	s.notes[note.ID] = stored
	return nil
}

func (r *memoryNoteRepo) GetByID(id uint) (*entities.Note, error) {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.attachNoteUsers(&note)
	return &note, nil
}

func (r *memoryNoteRepo) GetByRecipientID(recipientID uint) ([]entities.Note, error) {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var notes []entities.Note
	for _, note := range s.notes {
		if note.RecipientID == recipientID {
			s.attachNoteUsers(&note)
			notes = append(notes, note)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].ID > notes[j].ID
		}
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes, nil
}

func (s *MemoryStore) attachNoteUsers(note *entities.Note) {
	if sender, ok := s.users[note.UserID]; ok {
		note.User = &sender
	}
	if recipient, ok := s.users[note.RecipientID]; ok {
		note.Recipient = &recipient
	}
}

// ---- posts ----

type memoryPostRepo MemoryStore

func (r *memoryPostRepo) Create(post *entities.Post) error {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPostID++
	post.ID = s.nextPostID
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	stored := *post
	stored.User = nil
	stored.Recipient = nil
	s.posts[post.ID] = stored
	return nil
}

func (r *memoryPostRepo) GetByID(id uint) (*entities.Post, error) {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.attachPostUsers(&post)
	return &post, nil
}

func (r *memoryPostRepo) GetByRecipientID(recipientID uint) ([]entities.Post, error) {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []entities.Post
	for _, post := range s.posts {
		if post.RecipientID == recipientID {
			s.attachPostUsers(&post)
			posts = append(posts, post)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (s *MemoryStore) attachPostUsers(post *entities.Post) {
	if sender, ok := s.users[post.UserID]; ok {
		post.User = &sender
	}
	if recipient, ok := s.users[post.RecipientID]; ok {
		post.Recipient = &recipient
	}
}

// ---- projects ----

type memoryProjectRepo MemoryStore

func (r *memoryProjectRepo) CreateWithMember(project *entities.Project, member *entities.User) error {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	// Mirrors the unique index on project_members.user_id: the whole
	// operation fails without side effects when the member already has a
	// project.
	if _, exists := s.memberProject[member.ID]; exists {
		return gorm.ErrDuplicatedKey
	}

	s.nextProjectID++
	project.ID = s.nextProjectID
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	stored := *project
	stored.Users = nil
	s.projects[project.ID] = stored
	s.memberProject[member.ID] = project.ID
	return nil
}

func (r *memoryProjectRepo) GetByMemberID(userID uint) (*entities.Project, error) {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID, ok := s.memberProject[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	project := s.projects[projectID]
	return &project, nil
}

// ---- notifications ----

type memoryNotificationRepo MemoryStore

func (r *memoryNotificationRepo) Enqueue(n *entities.Notification) error {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Status == "" {
		n.Status = "pending"
	}
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	s.notifications[n.ID] = *n
	return nil
}

func (r *memoryNotificationRepo) GetPendingByUserID(userID uint, limit int) ([]entities.Notification, error) {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 50
	}
	var pending []entities.Notification
	for _, n := range s.notifications {
		if n.UserID == userID && n.Status == "pending" {
			pending = append(pending, n)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

func (r *memoryNotificationRepo) MarkSent(ids []string) error {
	s := (*MemoryStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if n, ok := s.notifications[id]; ok {
			n.Status = "sent"
			n.UpdatedAt = time.Now()
			s.notifications[id] = n
		}
	}
	return nil
}
