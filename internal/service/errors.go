package service

import (
	"errors"
	"fmt"

	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/repository"
)

// storeError classifies a repository failure for the caller. Constraint
// violations that slipped past validation surface as their domain kind.
func storeError(entity, op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return domain.AlreadyRegisteredf("%s name is already registered", entity)
	case errors.Is(err, repository.ErrForeignKey):
		return domain.NotFoundf("referenced species not found")
	case errors.Is(err, repository.ErrNotFound):
		return domain.NotFoundf("%s not found", entity)
	}
	return fmt.Errorf("%s %s: %w", op, entity, err)
}
