package repositories

import (
	"duo-server/db"
	"duo-server/entities"

	"gorm.io/gorm"
)

type projectPgRepository struct {
	db db.Database
}

func NewProjectPgRepository(database db.Database) ProjectRepository {
	return &projectPgRepository{db: database}
}

// CreateWithMember inserts the project and attaches the member in a single
// transaction. The unique index on project_members.user_id makes the append
// fail with gorm.ErrDuplicatedKey if the user gained a membership since the
// caller's pre-check, rolling the project row back too.
func (r *projectPgRepository) CreateWithMember(project *entities.Project, member *entities.User) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		return tx.Model(project).Association("Users").Append(member)
	})
}

func (r *projectPgRepository) GetByMemberID(userID uint) (*entities.Project, error) {
	var project entities.Project
	err := r.db.GetDB().
		Joins("INNER JOIN project_members pm ON pm.project_id = projects.id").
		Where("pm.user_id = ?", userID).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}
