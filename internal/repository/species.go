// Package repository defines the data access contracts for species and breeds.
package repository

import (
	"context"

	"github.com/roguepikachu/petshop/internal/domain"
)

// SpeciesRepository stores species.
type SpeciesRepository interface {
	FindByID(ctx context.Context, id int) (domain.Species, error)
	FindAll(ctx context.Context) ([]domain.Species, error)
	FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Species], error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	FindAllByName(ctx context.Context, name string) ([]domain.Species, error)
	// Save inserts s when s.ID is 0 and updates it otherwise.
	Save(ctx context.Context, s domain.Species) (domain.Species, error)
	DeleteByID(ctx context.Context, id int) error
}
