package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/repository"
)

// BreedRepository implements repository.BreedRepository using Postgres.
type BreedRepository struct {
	pool *pgxpool.Pool
}

// NewBreedRepository creates a new Postgres-backed breed repository.
func NewBreedRepository(pool *pgxpool.Pool) *BreedRepository {
	return &BreedRepository{pool: pool}
}

const breedSelect = `
SELECT b.id, b.name, b.species_id, b.created_at, b.modified_at,
       s.id, s.name, s.icon, s.created_at, s.modified_at
FROM breeds b
JOIN species s ON s.id = b.species_id
`

func scanBreed(row pgx.Row) (domain.Breed, error) {
	var b domain.Breed
	err := row.Scan(
		&b.ID, &b.Name, &b.SpeciesID, &b.CreatedAt, &b.ModifiedAt,
		&b.Species.ID, &b.Species.Name, &b.Species.Icon, &b.Species.CreatedAt, &b.Species.ModifiedAt,
	)
	return b, err
}

func (r *BreedRepository) FindByID(ctx context.Context, id int) (domain.Breed, error) {
	b, err := scanBreed(r.pool.QueryRow(ctx, breedSelect+`WHERE b.id = $1`, id))
	if err != nil {
		return domain.Breed{}, translate("query breed", err)
	}
	return b, nil
}

func (r *BreedRepository) FindAll(ctx context.Context) ([]domain.Breed, error) {
	return r.query(ctx, breedSelect+`ORDER BY b.id`)
}

func (r *BreedRepository) FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Breed], error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM breeds`).Scan(&total); err != nil {
		return domain.Page[domain.Breed]{}, translate("count breeds", err)
	}
	items, err := r.query(ctx, breedSelect+`ORDER BY b.id LIMIT $1 OFFSET $2`, req.Size, req.Offset())
	if err != nil {
		return domain.Page[domain.Breed]{}, err
	}
	return domain.NewPage(items, req, total), nil
}

func (r *BreedRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var ok bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM breeds WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, translate("breed exists", err)
	}
	return ok, nil
}

func (r *BreedRepository) FindByName(ctx context.Context, name string) (domain.Breed, error) {
	b, err := scanBreed(r.pool.QueryRow(ctx, breedSelect+`WHERE b.name = $1`, name))
	if err != nil {
		return domain.Breed{}, translate("query breed by name", err)
	}
	return b, nil
}

func (r *BreedRepository) Save(ctx context.Context, b domain.Breed) (domain.Breed, error) {
	var (
		id  int
		err error
	)
	if b.ID == 0 {
		const q = `
INSERT INTO breeds (name, species_id, created_at, modified_at)
VALUES ($1, $2, $3, $4)
RETURNING id`
		err = r.pool.QueryRow(ctx, q, b.Name, b.SpeciesID, b.CreatedAt, b.ModifiedAt).Scan(&id)
	} else {
		const q = `
UPDATE breeds SET name = $2, species_id = $3, created_at = $4, modified_at = $5
WHERE id = $1
RETURNING id`
		err = r.pool.QueryRow(ctx, q, b.ID, b.Name, b.SpeciesID, b.CreatedAt, b.ModifiedAt).Scan(&id)
	}
	if err != nil {
		return domain.Breed{}, translate("save breed", err)
	}
	return r.FindByID(ctx, id)
}

func (r *BreedRepository) DeleteByID(ctx context.Context, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM breeds WHERE id = $1`, id)
	if err != nil {
		return translate("delete breed", err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BreedRepository) query(ctx context.Context, q string, args ...any) ([]domain.Breed, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, translate("list breeds", err)
	}
	defer rows.Close()
	res := make([]domain.Breed, 0)
	for rows.Next() {
		b, err := scanBreed(rows)
		if err != nil {
			return nil, translate("scan breed", err)
		}
		res = append(res, b)
	}
	if rows.Err() != nil {
		return nil, translate("list breeds", rows.Err())
	}
	return res, nil
}

var _ repository.BreedRepository = (*BreedRepository)(nil)
