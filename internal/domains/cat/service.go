package cat

import "context"

// Service is the business logic contract for the cat resource.
type Service interface {
	// List returns the plain collection shape plus the total record count.
	List(ctx context.Context, req ListCatsRequest) ([]CatDTO, int, error)

	// Get returns the nested single-item shape.
	Get(ctx context.Context, id int64) (CatDetailDTO, error)

	// Create validates the payload, applies defaults and persists the cat;
	// the response is built from the persisted record.
	Create(ctx context.Context, req CreateCatRequest) (CatDetailDTO, error)
}
