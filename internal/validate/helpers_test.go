package validate

import (
	"context"
	"testing"
	"time"

	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/repository/fake"
	"github.com/stretchr/testify/require"
)

// countingSpecies records calls that must never happen during validation.
type countingSpecies struct {
	*fake.SpeciesRepository
	deletes int
	exists  int
}

func (c *countingSpecies) DeleteByID(ctx context.Context, id int) error {
	c.deletes++
	return c.SpeciesRepository.DeleteByID(ctx, id)
}

func (c *countingSpecies) ExistsByID(ctx context.Context, id int) (bool, error) {
	c.exists++
	return c.SpeciesRepository.ExistsByID(ctx, id)
}

type countingBreeds struct {
	*fake.BreedRepository
	deletes int
	calls   int
}

func (c *countingBreeds) DeleteByID(ctx context.Context, id int) error {
	c.deletes++
	return c.BreedRepository.DeleteByID(ctx, id)
}

func (c *countingBreeds) ExistsByID(ctx context.Context, id int) (bool, error) {
	c.calls++
	return c.BreedRepository.ExistsByID(ctx, id)
}

func (c *countingBreeds) FindByName(ctx context.Context, name string) (domain.Breed, error) {
	c.calls++
	return c.BreedRepository.FindByName(ctx, name)
}

type store struct {
	species *countingSpecies
	breeds  *countingBreeds
	canino  domain.Species
	lab     domain.Breed
}

// newStore seeds one species (Canino) and one breed (Labrador).
func newStore(t *testing.T) store {
	t.Helper()
	ctx := context.Background()
	sp := fake.NewSpeciesRepository()
	canino, err := sp.Save(ctx, domain.Species{Name: "Canino", CreatedAt: time.Now()})
	require.NoError(t, err)
	br := fake.NewBreedRepository(sp)
	lab, err := br.Save(ctx, domain.Breed{Name: "Labrador", SpeciesID: canino.ID, CreatedAt: time.Now()})
	require.NoError(t, err)
	return store{
		species: &countingSpecies{SpeciesRepository: sp},
		breeds:  &countingBreeds{BreedRepository: br},
		canino:  canino,
		lab:     lab,
	}
}
