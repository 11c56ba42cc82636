package usecases

import (
	"errors"
	"regexp"

	"duo-server/auth"
	"duo-server/entities"
	"duo-server/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type UserUseCase struct {
	UserRepo  repositories.UserRepository
	jwtSecret []byte
}

func NewUserUseCase(userRepo repositories.UserRepository, jwtSecret []byte) *UserUseCase {
	return &UserUseCase{
		UserRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Register validates the signup data, hashes the password and creates the
// user. The pre-check gives a friendly conflict error; the unique index on
// users.email catches concurrent duplicates the pre-check cannot see.
func (uc *UserUseCase) Register(name, email, cellphone, password string) (*entities.User, error) {
	if name == "" || email == "" || cellphone == "" || password == "" {
		return nil, errors.New("name, email, cellphone and password are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	if _, err := uc.UserRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         name,
		Email:        email,
		Cellphone:    cellphone,
		PasswordHash: string(hash),
	}
	if err := uc.UserRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Authenticate checks the credentials and issues a bearer token. Unknown
// email and wrong password both come back as ErrInvalidCredentials so the
// login endpoint cannot be used to enumerate accounts.
func (uc *UserUseCase) Authenticate(email, password string) (*entities.User, string, error) {
	if email == "" || password == "" {
		return nil, "", errors.New("email and password are required")
	}

	user, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, uc.jwtSecret, auth.TokenValidity)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetProfile returns the user's own data. The id comes from a valid token,
// but the account may have been removed since the token was issued.
func (uc *UserUseCase) GetProfile(userID uint) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// LinkPartner points the calling user's partner reference at the user that
// owns partnerEmail. The link is one-directional; the partner's own record
// is left untouched.
func (uc *UserUseCase) LinkPartner(userID uint, partnerEmail string) error {
	if partnerEmail == "" {
		return errors.New("email is required")
	}

	partner, err := uc.UserRepo.GetByEmail(partnerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPartnerNotFound
		}
		return err
	}

	if partner.ID == userID {
		return ErrSelfPartner
	}

	return uc.UserRepo.SetPartner(userID, partner.ID)
}
