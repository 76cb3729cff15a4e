package cat

import "context"

// Repository is the data access contract for cats. Referential integrity of
// owner_id is enforced by the store; implementations translate foreign-key
// failures into ErrOwnerNotExists.
type Repository interface {
	// Create persists a new cat and returns the stored record with its
	// owner joined, reflecting the system-assigned id and store defaults.
	Create(ctx context.Context, c *Cat) (*Cat, error)

	// FindByID returns the cat with its owner joined, or ErrCatNotFound.
	FindByID(ctx context.Context, id int64) (*Cat, error)

	// List returns a window of cats in id order plus the total count.
	List(ctx context.Context, limit, offset int) ([]Cat, int, error)
}
