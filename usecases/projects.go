package usecases

import (
	"errors"
	"strings"

	"duo-server/entities"
	"duo-server/repositories"

	"gorm.io/gorm"
)

type ProjectUseCase struct {
	ProjectRepo repositories.ProjectRepository
	UserRepo    repositories.UserRepository
}

func NewProjectUseCase(projectRepo repositories.ProjectRepository, userRepo repositories.UserRepository) *ProjectUseCase {
	return &ProjectUseCase{
		ProjectRepo: projectRepo,
		UserRepo:    userRepo,
	}
}

// CreateProject creates a project with creatorID as its only member. A user
// may belong to at most one project: the membership pre-check produces the
// friendly error, and the unique index behind CreateWithMember enforces the
// rule when two requests race past the pre-check.
func (uc *ProjectUseCase) CreateProject(name, description string, creatorID uint) (*entities.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if _, err := uc.ProjectRepo.GetByMemberID(creatorID); err == nil {
		return nil, ErrAlreadyInProject
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Defensive: the creator comes from a verified token, but the account
	// could have been removed after the token was issued.
	creator, err := uc.UserRepo.GetByID(creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	project := &entities.Project{
		Name:        name,
		Description: description,
	}
	if err := uc.ProjectRepo.CreateWithMember(project, creator); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyInProject
		}
		return nil, err
	}

	return project, nil
}
