package cat

import "errors"

// Repository-level errors
var (
	ErrCatNotFound = errors.New("cat not found")

	// ErrOwnerNotExists is returned when owner_id references no existing
	// owner; the store's foreign-key constraint is the authority.
	ErrOwnerNotExists = errors.New("referenced owner does not exist")
)
