package owner

import "context"

// Repository is the data access contract for owners. Uniqueness of email is
// enforced by the store; implementations translate constraint failures into
// the package sentinel errors.
type Repository interface {
	// Create persists a new owner and returns it with the assigned id.
	// Returns ErrEmailAlreadyExists when the email collides.
	Create(ctx context.Context, o *Owner) (*Owner, error)

	// FindByID returns ErrOwnerNotFound when no such owner exists.
	FindByID(ctx context.Context, id int64) (*Owner, error)

	// List returns all owners in insertion (id) order.
	List(ctx context.Context) ([]Owner, error)

	// UpdateEmail replaces the email of an existing owner and returns the
	// updated record. Returns ErrOwnerNotFound or ErrEmailAlreadyExists.
	UpdateEmail(ctx context.Context, id int64, email string) (*Owner, error)

	// Delete removes an owner. Dependent cats are orphaned by the store
	// (owner_id set to NULL). Returns ErrOwnerNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
