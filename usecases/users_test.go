package usecases

import (
	"sync"
	"testing"

	"duo-server/auth"
	"duo-server/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("test-secret")

func newUserUseCase() (*UserUseCase, *repositories.MemoryStore) {
	store := repositories.NewMemoryStore()
	return NewUserUseCase(store.Users(), testSecret), store
}

func TestRegister_Success(t *testing.T) {
	uc, _ := newUserUseCase()

	user, err := uc.Register("Ana", "ana@example.com", "5511999990000", "secret123")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)

	// stored as a bcrypt hash, never the raw password
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestRegister_MissingFields(t *testing.T) {
	uc, _ := newUserUseCase()

	_, err := uc.Register("", "ana@example.com", "5511999990000", "secret123")
	assert.Error(t, err)

	_, err = uc.Register("Ana", "ana@example.com", "", "secret123")
	assert.Error(t, err)
}

func TestRegister_InvalidEmailFormat(t *testing.T) {
	uc, _ := newUserUseCase()

	for _, email := range []string{"not-an-email", "a@b", "a b@x.com", "a@@x.com", "@x.com"} {
		_, err := uc.Register("Ana", email, "5511999990000", "secret123")
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q should be rejected", email)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newUserUseCase()

	_, err := uc.Register("Ana", "ana@example.com", "5511999990000", "secret123")
	require.NoError(t, err)

	_, err = uc.Register("Other Ana", "ana@example.com", "5511888880000", "different")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_ConcurrentDuplicates_OnlyOneSucceeds(t *testing.T) {
	uc, _ := newUserUseCase()

	const attempts = 16
	var wg sync.WaitGroup
	results := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = uc.Register("Ana", "race@example.com", "5511999990000", "secret123")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrEmailTaken)
		}
	}
	assert.Equal(t, 1, successes)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	uc, _ := newUserUseCase()

	_, _, err := uc.Authenticate("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	uc, _ := newUserUseCase()

	_, err := uc.Register("Ana", "ana@example.com", "5511999990000", "secret123")
	require.NoError(t, err)

	_, _, err = uc.Authenticate("ana@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_Success_TokenCarriesIdentity(t *testing.T) {
	uc, _ := newUserUseCase()

	registered, err := uc.Register("Ana", "ana@example.com", "5511999990000", "secret123")
	require.NoError(t, err)

	user, token, err := uc.Authenticate("ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := auth.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestGetProfile_UnknownUser(t *testing.T) {
	uc, _ := newUserUseCase()

	_, err := uc.GetProfile(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetProfile_Idempotent(t *testing.T) {
	uc, _ := newUserUseCase()

	registered, err := uc.Register("Ana", "ana@example.com", "5511999990000", "secret123")
	require.NoError(t, err)

	first, err := uc.GetProfile(registered.ID)
	require.NoError(t, err)
	second, err := uc.GetProfile(registered.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLinkPartner_Success(t *testing.T) {
	uc, store := newUserUseCase()

	ana, err := uc.Register("Ana", "ana@example.com", "5511999990000", "secret123")
	require.NoError(t, err)
	bob, err := uc.Register("Bob", "bob@example.com", "5511888880000", "secret456")
	require.NoError(t, err)

	require.NoError(t, uc.LinkPartner(ana.ID, "bob@example.com"))

	updated, err := store.Users().GetByID(ana.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.PartnerID)
	assert.Equal(t, bob.ID, *updated.PartnerID)

	// the link is one-directional
	other, err := store.Users().GetByID(bob.ID)
	require.NoError(t, err)
	assert.Nil(t, other.PartnerID)
}

func TestLinkPartner_SelfReference(t *testing.T) {
	uc, _ := newUserUseCase()

	ana, err := uc.Register("Ana", "ana@example.com", "5511999990000", "secret123")
	require.NoError(t, err)

	err = uc.LinkPartner(ana.ID, "ana@example.com")
	assert.ErrorIs(t, err, ErrSelfPartner)
}

func TestLinkPartner_UnknownPartner(t *testing.T) {
	uc, _ := newUserUseCase()

	ana, err := uc.Register("Ana", "ana@example.com", "5511999990000", "secret123")
	require.NoError(t, err)

	err = uc.LinkPartner(ana.ID, "ghost@example.com")
	assert.ErrorIs(t, err, ErrPartnerNotFound)
}
