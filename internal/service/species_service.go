package service

import (
	"context"
	"errors"

	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/mapper"
	"github.com/roguepikachu/petshop/internal/repository"
	"github.com/roguepikachu/petshop/internal/validate"
)

// SpeciesService provides species business logic.
type SpeciesService struct {
	repo      repository.SpeciesRepository
	validator *validate.SpeciesValidator
	clock     Clock
}

// NewSpeciesService creates a SpeciesService.
func NewSpeciesService(repo repository.SpeciesRepository, validator *validate.SpeciesValidator, clock Clock) *SpeciesService {
	return &SpeciesService{repo: repo, validator: validator, clock: clock}
}

// List returns every species.
func (s *SpeciesService) List(ctx context.Context) ([]domain.SpeciesDTO, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeError("species", "list", err)
	}
	res := make([]domain.SpeciesDTO, 0, len(items))
	for _, it := range items {
		res = append(res, mapper.ToSpeciesDTO(it))
	}
	return res, nil
}

// ListPaginated returns one page of species. Out-of-range arguments are clamped.
func (s *SpeciesService) ListPaginated(ctx context.Context, page, size int) (domain.Page[domain.SpeciesDTO], error) {
	p, err := s.repo.FindPage(ctx, domain.NewPageRequest(page, size))
	if err != nil {
		return domain.Page[domain.SpeciesDTO]{}, storeError("species", "page", err)
	}
	return mapper.MapPage(p, mapper.ToSpeciesDTO), nil
}

// GetByID returns the species with id or a NotFound error.
func (s *SpeciesService) GetByID(ctx context.Context, id int) (domain.SpeciesDTO, error) {
	sp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.SpeciesDTO{}, domain.NotFoundf("species %d not found", id)
		}
		return domain.SpeciesDTO{}, storeError("species", "get", err)
	}
	return mapper.ToSpeciesDTO(sp), nil
}

// Create validates and stores a new species.
func (s *SpeciesService) Create(ctx context.Context, req domain.CreateSpeciesRequest) (domain.SpeciesDTO, error) {
	candidate := mapper.SpeciesFromCreate(req, s.clock.Now())
	if err := s.validator.ValidateBeforeCreate(ctx, candidate); err != nil {
		return domain.SpeciesDTO{}, err
	}
	saved, err := s.repo.Save(ctx, candidate)
	if err != nil {
		return domain.SpeciesDTO{}, storeError("species", "create", err)
	}
	return mapper.ToSpeciesDTO(saved), nil
}

// Update patches species id with req. The stored creation time is kept, the
// icon is replaced only when req carries one.
func (s *SpeciesService) Update(ctx context.Context, id int, req domain.UpdateSpeciesRequest) (domain.SpeciesDTO, error) {
	if err := s.validator.ValidatePathBodyConsistency(id, req); err != nil {
		return domain.SpeciesDTO{}, err
	}
	if err := s.validator.ValidateBeforeUpdate(ctx, mapper.SpeciesFromUpdate(req)); err != nil {
		return domain.SpeciesDTO{}, err
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.SpeciesDTO{}, storeError("species", "load", err)
	}
	current.Name = req.Name
	if req.Icon != nil {
		current.Icon = req.Icon
	}
	now := s.clock.Now()
	current.ModifiedAt = &now
	saved, err := s.repo.Save(ctx, current)
	if err != nil {
		return domain.SpeciesDTO{}, storeError("species", "update", err)
	}
	return mapper.ToSpeciesDTO(saved), nil
}

// Delete removes species id along with its breeds.
func (s *SpeciesService) Delete(ctx context.Context, id int) error {
	if err := s.validator.ValidateBeforeDelete(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return storeError("species", "delete", err)
	}
	return nil
}
