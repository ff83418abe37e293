package sqlite

import (
	"context"

	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BreedRepository implements repository.BreedRepository on gorm. Reads join
// the species row.
type BreedRepository struct {
	db *gorm.DB
}

// NewBreedRepository creates a gorm-backed breed repository.
func NewBreedRepository(db *gorm.DB) *BreedRepository {
	return &BreedRepository{db: db}
}

func (r *BreedRepository) withSpecies(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Joins("Species")
}

func (r *BreedRepository) FindByID(ctx context.Context, id int) (domain.Breed, error) {
	var row breedRow
	if err := r.withSpecies(ctx).Take(&row, "breeds.id = ?", id).Error; err != nil {
		return domain.Breed{}, translate("query breed", err)
	}
	return row.toDomain(), nil
}

func (r *BreedRepository) FindAll(ctx context.Context) ([]domain.Breed, error) {
	return r.find(r.withSpecies(ctx).Order("breeds.id"))
}

func (r *BreedRepository) FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Breed], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&breedRow{}).Count(&total).Error; err != nil {
		return domain.Page[domain.Breed]{}, translate("count breeds", err)
	}
	items, err := r.find(r.withSpecies(ctx).Order("breeds.id").Offset(req.Offset()).Limit(req.Size))
	if err != nil {
		return domain.Page[domain.Breed]{}, err
	}
	return domain.NewPage(items, req, total), nil
}

func (r *BreedRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&breedRow{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, translate("breed exists", err)
	}
	return n > 0, nil
}

func (r *BreedRepository) FindByName(ctx context.Context, name string) (domain.Breed, error) {
	var row breedRow
	if err := r.withSpecies(ctx).Take(&row, "breeds.name = ?", name).Error; err != nil {
		return domain.Breed{}, translate("query breed by name", err)
	}
	return row.toDomain(), nil
}

func (r *BreedRepository) Save(ctx context.Context, b domain.Breed) (domain.Breed, error) {
	row := breedRow{
		ID:         b.ID,
		Name:       b.Name,
		SpeciesID:  b.SpeciesID,
		CreatedAt:  b.CreatedAt,
		ModifiedAt: b.ModifiedAt,
	}
	if row.ID == 0 {
		if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
			return domain.Breed{}, translate("insert breed", err)
		}
		return r.FindByID(ctx, row.ID)
	}
	res := r.db.WithContext(ctx).Model(&breedRow{}).Where("id = ?", row.ID).Updates(map[string]any{
		"name":        row.Name,
		"species_id":  row.SpeciesID,
		"created_at":  row.CreatedAt,
		"modified_at": row.ModifiedAt,
	})
	if res.Error != nil {
		return domain.Breed{}, translate("update breed", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.Breed{}, repository.ErrNotFound
	}
	return r.FindByID(ctx, row.ID)
}

func (r *BreedRepository) DeleteByID(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&breedRow{}, "id = ?", id)
	if res.Error != nil {
		return translate("delete breed", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BreedRepository) find(q *gorm.DB) ([]domain.Breed, error) {
	var rows []breedRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate("list breeds", err)
	}
	res := make([]domain.Breed, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

var _ repository.BreedRepository = (*BreedRepository)(nil)
