package service

import (
	"context"

	"pet-registry-backend/internal/domains/owner"
)

type ownerService struct {
	repo owner.Repository
}

// NewOwnerService wires the owner business logic to its repository.
func NewOwnerService(repo owner.Repository) owner.Service {
	return &ownerService{repo: repo}
}

func (s *ownerService) List(ctx context.Context) ([]owner.OwnerDTO, error) {
	owners, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]owner.OwnerDTO, 0, len(owners))
	for i := range owners {
		dtos = append(dtos, owners[i].ToDTO())
	}

	return dtos, nil
}

func (s *ownerService) Get(ctx context.Context, id int64) (owner.OwnerDTO, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return owner.OwnerDTO{}, err
	}
	return o.ToDTO(), nil
}

// Create validates the payload in full before any store call; a failing
// field means no write happens at all.
func (s *ownerService) Create(ctx context.Context, req owner.OwnerRequest) (owner.OwnerDTO, error) {
	if err := req.Validate(); err != nil {
		return owner.OwnerDTO{}, err
	}

	created, err := s.repo.Create(ctx, owner.NewOwner(req.Email))
	if err != nil {
		return owner.OwnerDTO{}, err
	}

	return created.ToDTO(), nil
}

func (s *ownerService) Update(ctx context.Context, id int64, req owner.OwnerRequest) (owner.OwnerDTO, error) {
	if err := req.Validate(); err != nil {
		return owner.OwnerDTO{}, err
	}

	updated, err := s.repo.UpdateEmail(ctx, id, owner.NormalizeEmail(req.Email))
	if err != nil {
		return owner.OwnerDTO{}, err
	}

	return updated.ToDTO(), nil
}

func (s *ownerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
