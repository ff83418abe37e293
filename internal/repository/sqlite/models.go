// Package sqlite provides gorm-backed implementations of the species and breed
// repositories. It is used with the pure Go SQLite dialector.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/repository"
	"github.com/roguepikachu/petshop/pkg/logger"
	"gorm.io/gorm"
)

type speciesRow struct {
	ID         int    `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"not null;uniqueIndex"`
	Icon       *string
	CreatedAt  time.Time `gorm:"not null"`
	ModifiedAt *time.Time
}

func (speciesRow) TableName() string { return "species" }

type breedRow struct {
	ID         int        `gorm:"primaryKey;autoIncrement"`
	Name       string     `gorm:"not null;uniqueIndex"`
	SpeciesID  int        `gorm:"not null;index"`
	Species    speciesRow `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time  `gorm:"not null"`
	ModifiedAt *time.Time
}

func (breedRow) TableName() string { return "breeds" }

// EnsureSchema migrates the species and breeds tables.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&speciesRow{}, &breedRow{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info(ctx, "sqlite schema ensured")
	return nil
}

func toSpeciesRow(s domain.Species) speciesRow {
	return speciesRow{ID: s.ID, Name: s.Name, Icon: s.Icon, CreatedAt: s.CreatedAt, ModifiedAt: s.ModifiedAt}
}

func (r speciesRow) toDomain() domain.Species {
	return domain.Species{ID: r.ID, Name: r.Name, Icon: r.Icon, CreatedAt: r.CreatedAt, ModifiedAt: r.ModifiedAt}
}

func (r breedRow) toDomain() domain.Breed {
	return domain.Breed{
		ID:         r.ID,
		Name:       r.Name,
		SpeciesID:  r.SpeciesID,
		Species:    r.Species.toDomain(),
		CreatedAt:  r.CreatedAt,
		ModifiedAt: r.ModifiedAt,
	}
}

// translate maps gorm and SQLite failures onto the repository error set.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	msg := err.Error()
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%s: %w: %s", op, repository.ErrDuplicate, msg)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%s: %w: %s", op, repository.ErrForeignKey, msg)
	}
	return fmt.Errorf("%s: %w", op, err)
}
