// Package validate enforces the business rules checked before species and
// breeds are written or removed. Each check aborts on the first failing rule.
package validate

import (
	"context"
	"fmt"

	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/repository"
)

// SpeciesValidator checks species writes against the store.
type SpeciesValidator struct {
	species repository.SpeciesRepository
}

// NewSpeciesValidator creates a SpeciesValidator.
func NewSpeciesValidator(species repository.SpeciesRepository) *SpeciesValidator {
	return &SpeciesValidator{species: species}
}

// ValidateBeforeCreate rejects a candidate whose name is already taken.
func (v *SpeciesValidator) ValidateBeforeCreate(ctx context.Context, candidate domain.Species) error {
	return v.nameAvailable(ctx, candidate)
}

// ValidateBeforeUpdate requires the species to exist and its new name to be
// free among the other species.
func (v *SpeciesValidator) ValidateBeforeUpdate(ctx context.Context, candidate domain.Species) error {
	if err := v.exists(ctx, candidate.ID); err != nil {
		return err
	}
	return v.nameAvailable(ctx, candidate)
}

// ValidateBeforeDelete requires a positive id naming an existing species.
func (v *SpeciesValidator) ValidateBeforeDelete(ctx context.Context, id int) error {
	if !domain.IsValidID(id) {
		return domain.InvalidFieldf("species id must be positive, got %d", id)
	}
	return v.exists(ctx, id)
}

// ValidatePathBodyConsistency checks the path id against the body id.
func (v *SpeciesValidator) ValidatePathBodyConsistency(pathID int, req domain.UpdateSpeciesRequest) error {
	return pathBodyConsistent("species", pathID, req.ID)
}

func (v *SpeciesValidator) exists(ctx context.Context, id int) error {
	ok, err := v.species.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check species %d: %w", id, err)
	}
	if !ok {
		return domain.NotFoundf("species %d not found", id)
	}
	return nil
}

func (v *SpeciesValidator) nameAvailable(ctx context.Context, candidate domain.Species) error {
	same, err := v.species.FindAllByName(ctx, candidate.Name)
	if err != nil {
		return fmt.Errorf("find species by name: %w", err)
	}
	for _, s := range same {
		if s.ID != candidate.ID {
			return domain.AlreadyRegisteredf("species %q is already registered", candidate.Name)
		}
	}
	return nil
}

func pathBodyConsistent(entity string, pathID, bodyID int) error {
	if pathID != bodyID {
		return domain.FieldMismatchf("%s id in path (%d) does not match id in body (%d)", entity, pathID, bodyID)
	}
	if !domain.IsValidID(bodyID) {
		return domain.InvalidFieldf("%s id must be positive, got %d", entity, bodyID)
	}
	return nil
}
