package account

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountExists      = errors.New("an account with this email already exists")
	ErrUnknownActivity    = errors.New("unknown activity kind")
	ErrSkillExists        = errors.New("skill already exists")
	ErrAvatarTooLarge     = errors.New("image too large, the limit is 1MB")
)
