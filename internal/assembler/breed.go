// Package assembler turns breed requests into breed entities, resolving the
// referenced species.
package assembler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/mapper"
)

// SpeciesLookup resolves a species by id. It returns an error wrapping
// domain.ErrNotFound when the id does not resolve.
type SpeciesLookup interface {
	GetByID(ctx context.Context, id int) (domain.SpeciesDTO, error)
}

// BreedAssembler builds breed candidates from requests.
type BreedAssembler struct {
	species  SpeciesLookup
	now      func() time.Time
	fallback domain.Species
}

// NewBreedAssembler creates an assembler. fallback is used whenever the
// requested species does not resolve.
func NewBreedAssembler(species SpeciesLookup, now func() time.Time, fallback domain.Species) *BreedAssembler {
	return &BreedAssembler{species: species, now: now, fallback: fallback}
}

// FromCreate builds an unsaved breed.
func (a *BreedAssembler) FromCreate(ctx context.Context, req domain.CreateBreedRequest) (domain.Breed, error) {
	return a.build(ctx, 0, req.Name, req.Species.ID)
}

// FromUpdate builds the update candidate for breed req.ID.
func (a *BreedAssembler) FromUpdate(ctx context.Context, req domain.UpdateBreedRequest) (domain.Breed, error) {
	return a.build(ctx, req.ID, req.Name, req.Species.ID)
}

func (a *BreedAssembler) build(ctx context.Context, id int, name string, speciesID int) (domain.Breed, error) {
	sp, err := a.resolveSpecies(ctx, speciesID)
	if err != nil {
		return domain.Breed{}, err
	}
	return domain.Breed{
		ID:        id,
		Name:      name,
		SpeciesID: speciesID,
		Species:   sp,
		CreatedAt: a.now(),
	}, nil
}

func (a *BreedAssembler) resolveSpecies(ctx context.Context, id int) (domain.Species, error) {
	dto, err := a.species.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			f := a.fallback
			if f.Icon != nil {
				icon := *f.Icon
				f.Icon = &icon
			}
			return f, nil
		}
		return domain.Species{}, fmt.Errorf("resolve species %d: %w", id, err)
	}
	return mapper.SpeciesFromDTO(dto), nil
}
