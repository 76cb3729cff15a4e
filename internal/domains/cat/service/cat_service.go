package service

import (
	"context"

	"pet-registry-backend/internal/domains/cat"
)

type catService struct {
	repo cat.Repository
}

// NewCatService wires the cat business logic to its repository.
func NewCatService(repo cat.Repository) cat.Service {
	return &catService{repo: repo}
}

func (s *catService) List(ctx context.Context, req cat.ListCatsRequest) ([]cat.CatDTO, int, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}

	cats, total, err := s.repo.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]cat.CatDTO, 0, len(cats))
	for i := range cats {
		dtos = append(dtos, cats[i].ToDTO())
	}

	return dtos, total, nil
}

func (s *catService) Get(ctx context.Context, id int64) (cat.CatDetailDTO, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return cat.CatDetailDTO{}, err
	}
	return c.ToDetailDTO(), nil
}

// Create validates the payload in full, applies the documented defaults and
// persists; the returned record is the stored one, so the caller sees the
// system-assigned id.
func (s *catService) Create(ctx context.Context, req cat.CreateCatRequest) (cat.CatDetailDTO, error) {
	if err := req.Validate(); err != nil {
		return cat.CatDetailDTO{}, err
	}

	stored, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return cat.CatDetailDTO{}, err
	}

	return stored.ToDetailDTO(), nil
}
