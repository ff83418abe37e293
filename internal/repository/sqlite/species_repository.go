package sqlite

import (
	"context"

	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/repository"
	"gorm.io/gorm"
)

// SpeciesRepository implements repository.SpeciesRepository on gorm.
type SpeciesRepository struct {
	db *gorm.DB
}

// NewSpeciesRepository creates a gorm-backed species repository.
func NewSpeciesRepository(db *gorm.DB) *SpeciesRepository {
	return &SpeciesRepository{db: db}
}

func (r *SpeciesRepository) FindByID(ctx context.Context, id int) (domain.Species, error) {
	var row speciesRow
	if err := r.db.WithContext(ctx).Take(&row, "id = ?", id).Error; err != nil {
		return domain.Species{}, translate("query species", err)
	}
	return row.toDomain(), nil
}

func (r *SpeciesRepository) FindAll(ctx context.Context) ([]domain.Species, error) {
	return r.find(r.db.WithContext(ctx).Order("id"))
}

func (r *SpeciesRepository) FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Species], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&speciesRow{}).Count(&total).Error; err != nil {
		return domain.Page[domain.Species]{}, translate("count species", err)
	}
	items, err := r.find(r.db.WithContext(ctx).Order("id").Offset(req.Offset()).Limit(req.Size))
	if err != nil {
		return domain.Page[domain.Species]{}, err
	}
	return domain.NewPage(items, req, total), nil
}

func (r *SpeciesRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&speciesRow{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, translate("species exists", err)
	}
	return n > 0, nil
}

func (r *SpeciesRepository) FindAllByName(ctx context.Context, name string) ([]domain.Species, error) {
	return r.find(r.db.WithContext(ctx).Where("name = ?", name).Order("id"))
}

func (r *SpeciesRepository) Save(ctx context.Context, s domain.Species) (domain.Species, error) {
	row := toSpeciesRow(s)
	if row.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return domain.Species{}, translate("insert species", err)
		}
		return row.toDomain(), nil
	}
	res := r.db.WithContext(ctx).Model(&speciesRow{}).Where("id = ?", row.ID).Updates(map[string]any{
		"name":        row.Name,
		"icon":        row.Icon,
		"created_at":  row.CreatedAt,
		"modified_at": row.ModifiedAt,
	})
	if res.Error != nil {
		return domain.Species{}, translate("update species", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.Species{}, repository.ErrNotFound
	}
	return r.FindByID(ctx, row.ID)
}

func (r *SpeciesRepository) DeleteByID(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&speciesRow{}, "id = ?", id)
	if res.Error != nil {
		return translate("delete species", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SpeciesRepository) find(q *gorm.DB) ([]domain.Species, error) {
	var rows []speciesRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate("list species", err)
	}
	res := make([]domain.Species, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

var _ repository.SpeciesRepository = (*SpeciesRepository)(nil)
