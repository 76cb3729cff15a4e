package owner

import "context"

// Service is the business logic contract for the owner resource.
type Service interface {
	List(ctx context.Context) ([]OwnerDTO, error)
	Get(ctx context.Context, id int64) (OwnerDTO, error)
	Create(ctx context.Context, req OwnerRequest) (OwnerDTO, error)
	Update(ctx context.Context, id int64, req OwnerRequest) (OwnerDTO, error)
	Delete(ctx context.Context, id int64) error
}
