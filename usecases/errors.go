package usecases

import "errors"

// Sentinel errors returned by the use cases. Handlers map these to HTTP
// statuses; anything else is treated as an internal failure.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPartnerNotFound    = errors.New("partner user not found")
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrEmailTaken         = errors.New("email already used")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSelfPartner        = errors.New("cannot add yourself as partner")
	ErrSelfSend           = errors.New("cannot send a message to yourself")
	ErrNoMessages         = errors.New("no messages found")
	ErrNameRequired       = errors.New("name is required")
	ErrAlreadyInProject   = errors.New("user already has a linked project")
)
