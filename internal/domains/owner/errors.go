package owner

import "errors"

// Repository-level errors
var (
	ErrOwnerNotFound      = errors.New("owner not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)
