package repository

import (
	"context"

	"github.com/roguepikachu/petshop/internal/domain"
)

// BreedRepository stores breeds. Returned breeds carry their species.
type BreedRepository interface {
	FindByID(ctx context.Context, id int) (domain.Breed, error)
	FindAll(ctx context.Context) ([]domain.Breed, error)
	FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Breed], error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	// FindByName returns ErrNotFound when no breed has exactly name.
	FindByName(ctx context.Context, name string) (domain.Breed, error)
	// Save inserts b when b.ID is 0 and updates it otherwise. The species
	// reference is taken from b.SpeciesID.
	Save(ctx context.Context, b domain.Breed) (domain.Breed, error)
	DeleteByID(ctx context.Context, id int) error
}
