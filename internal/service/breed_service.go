package service

import (
	"context"
	"errors"

	"github.com/roguepikachu/petshop/internal/assembler"
	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/mapper"
	"github.com/roguepikachu/petshop/internal/repository"
	"github.com/roguepikachu/petshop/internal/validate"
)

// BreedService provides breed business logic.
type BreedService struct {
	repo      repository.BreedRepository
	validator *validate.BreedValidator
	assembler *assembler.BreedAssembler
	clock     Clock
}

// NewBreedService creates a BreedService.
func NewBreedService(repo repository.BreedRepository, validator *validate.BreedValidator, asm *assembler.BreedAssembler, clock Clock) *BreedService {
	return &BreedService{repo: repo, validator: validator, assembler: asm, clock: clock}
}

// List returns every breed.
func (s *BreedService) List(ctx context.Context) ([]domain.BreedDTO, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeError("breed", "list", err)
	}
	res := make([]domain.BreedDTO, 0, len(items))
	for _, it := range items {
		res = append(res, mapper.ToBreedDTO(it))
	}
	return res, nil
}

// ListPaginated returns one page of breeds. Out-of-range arguments are clamped.
func (s *BreedService) ListPaginated(ctx context.Context, page, size int) (domain.Page[domain.BreedDTO], error) {
	p, err := s.repo.FindPage(ctx, domain.NewPageRequest(page, size))
	if err != nil {
		return domain.Page[domain.BreedDTO]{}, storeError("breed", "page", err)
	}
	return mapper.MapPage(p, mapper.ToBreedDTO), nil
}

// GetByID returns the breed with id or a NotFound error.
func (s *BreedService) GetByID(ctx context.Context, id int) (domain.BreedDTO, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.BreedDTO{}, domain.NotFoundf("breed %d not found", id)
		}
		return domain.BreedDTO{}, storeError("breed", "get", err)
	}
	return mapper.ToBreedDTO(b), nil
}

// Create assembles, validates and stores a new breed.
func (s *BreedService) Create(ctx context.Context, req domain.CreateBreedRequest) (domain.BreedDTO, error) {
	candidate, err := s.assembler.FromCreate(ctx, req)
	if err != nil {
		return domain.BreedDTO{}, err
	}
	if err := s.validator.ValidateBeforeCreate(ctx, candidate); err != nil {
		return domain.BreedDTO{}, err
	}
	saved, err := s.repo.Save(ctx, candidate)
	if err != nil {
		return domain.BreedDTO{}, storeError("breed", "create", err)
	}
	return mapper.ToBreedDTO(saved), nil
}

// Update patches breed id with req, keeping its creation time.
func (s *BreedService) Update(ctx context.Context, id int, req domain.UpdateBreedRequest) (domain.BreedDTO, error) {
	if err := s.validator.ValidatePathBodyConsistency(id, req); err != nil {
		return domain.BreedDTO{}, err
	}
	candidate, err := s.assembler.FromUpdate(ctx, req)
	if err != nil {
		return domain.BreedDTO{}, err
	}
	if err := s.validator.ValidateBeforeUpdate(ctx, candidate); err != nil {
		return domain.BreedDTO{}, err
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.BreedDTO{}, storeError("breed", "load", err)
	}
	current.Name = candidate.Name
	current.SpeciesID = candidate.SpeciesID
	current.Species = candidate.Species
	now := s.clock.Now()
	current.ModifiedAt = &now
	saved, err := s.repo.Save(ctx, current)
	if err != nil {
		return domain.BreedDTO{}, storeError("breed", "update", err)
	}
	return mapper.ToBreedDTO(saved), nil
}

// Delete removes breed id.
func (s *BreedService) Delete(ctx context.Context, id int) error {
	if err := s.validator.ValidateBeforeDelete(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return storeError("breed", "delete", err)
	}
	return nil
}
