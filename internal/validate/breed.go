package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/repository"
)

// BreedValidator checks breed writes against the breed and species stores.
type BreedValidator struct {
	breeds  repository.BreedRepository
	species repository.SpeciesRepository
}

// NewBreedValidator creates a BreedValidator.
func NewBreedValidator(breeds repository.BreedRepository, species repository.SpeciesRepository) *BreedValidator {
	return &BreedValidator{breeds: breeds, species: species}
}

// ValidateBeforeCreate checks name uniqueness and the species reference.
func (v *BreedValidator) ValidateBeforeCreate(ctx context.Context, candidate domain.Breed) error {
	return v.validateCommon(ctx, candidate)
}

// ValidateBeforeUpdate requires the breed to exist, then applies the create rules.
func (v *BreedValidator) ValidateBeforeUpdate(ctx context.Context, candidate domain.Breed) error {
	if err := v.exists(ctx, candidate.ID); err != nil {
		return err
	}
	return v.validateCommon(ctx, candidate)
}

// ValidateBeforeDelete requires the breed to exist.
func (v *BreedValidator) ValidateBeforeDelete(ctx context.Context, id int) error {
	return v.exists(ctx, id)
}

// ValidatePathBodyConsistency checks the path id against the body id.
func (v *BreedValidator) ValidatePathBodyConsistency(pathID int, req domain.UpdateBreedRequest) error {
	return pathBodyConsistent("breed", pathID, req.ID)
}

func (v *BreedValidator) validateCommon(ctx context.Context, candidate domain.Breed) error {
	found, err := v.breeds.FindByName(ctx, candidate.Name)
	switch {
	case err == nil:
		if found.ID != candidate.ID {
			return domain.AlreadyRegisteredf("breed %q is already registered", candidate.Name)
		}
	case !errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("find breed by name: %w", err)
	}

	if !domain.IsValidID(candidate.SpeciesID) {
		return domain.InvalidFieldf("species id must be positive, got %d", candidate.SpeciesID)
	}
	ok, err := v.species.ExistsByID(ctx, candidate.SpeciesID)
	if err != nil {
		return fmt.Errorf("check species %d: %w", candidate.SpeciesID, err)
	}
	if !ok {
		return domain.NotFoundf("species %d not found", candidate.SpeciesID)
	}
	return nil
}

func (v *BreedValidator) exists(ctx context.Context, id int) error {
	ok, err := v.breeds.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check breed %d: %w", id, err)
	}
	if !ok {
		return domain.NotFoundf("breed %d not found", id)
	}
	return nil
}
