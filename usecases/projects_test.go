package usecases

import (
	"sync"
	"testing"

	"duo-server/entities"
	"duo-server/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectFixture(t *testing.T) (*ProjectUseCase, *entities.User) {
	t.Helper()
	store := repositories.NewMemoryStore()
	users := NewUserUseCase(store.Users(), testSecret)

	creator, err := users.Register("Ana", "ana@example.com", "5511999990000", "secret123")
	require.NoError(t, err)

	return NewProjectUseCase(store.Projects(), store.Users()), creator
}

func TestCreateProject_Success(t *testing.T) {
	uc, creator := newProjectFixture(t)

	project, err := uc.CreateProject("Budget", "household budget", creator.ID)
	require.NoError(t, err)
	assert.NotZero(t, project.ID)
	assert.Equal(t, "Budget", project.Name)

	linked, err := uc.ProjectRepo.GetByMemberID(creator.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, linked.ID)
}

func TestCreateProject_BlankNameAfterTrim(t *testing.T) {
	uc, creator := newProjectFixture(t)

	_, err := uc.CreateProject("   ", "desc", creator.ID)
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestCreateProject_TrimsName(t *testing.T) {
	uc, creator := newProjectFixture(t)

	project, err := uc.CreateProject("  Budget  ", "desc", creator.ID)
	require.NoError(t, err)
	assert.Equal(t, "Budget", project.Name)
}

func TestCreateProject_SecondProjectRejected(t *testing.T) {
	uc, creator := newProjectFixture(t)

	_, err := uc.CreateProject("Budget", "desc", creator.ID)
	require.NoError(t, err)

	_, err = uc.CreateProject("Budget2", "desc", creator.ID)
	assert.ErrorIs(t, err, ErrAlreadyInProject)
}

func TestCreateProject_UnknownCreator(t *testing.T) {
	uc, _ := newProjectFixture(t)

	_, err := uc.CreateProject("Budget", "desc", 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateProject_ConcurrentAttempts_OneMembershipAtMost(t *testing.T) {
	uc, creator := newProjectFixture(t)

	const attempts = 16
	var wg sync.WaitGroup
	results := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = uc.CreateProject("Race", "desc", creator.ID)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyInProject)
		}
	}
	assert.Equal(t, 1, successes)
}
