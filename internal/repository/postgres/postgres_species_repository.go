package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/repository"
	"github.com/roguepikachu/petshop/pkg/logger"
)

// SpeciesRepository implements repository.SpeciesRepository using Postgres.
type SpeciesRepository struct {
	pool *pgxpool.Pool
}

// NewSpeciesRepository creates a new Postgres-backed species repository.
func NewSpeciesRepository(pool *pgxpool.Pool) *SpeciesRepository {
	return &SpeciesRepository{pool: pool}
}

// EnsureSchema creates the species and breeds tables if they don't exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const schema = `
CREATE TABLE IF NOT EXISTS species (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    icon TEXT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    modified_at TIMESTAMPTZ NULL
);
CREATE TABLE IF NOT EXISTS breeds (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    species_id BIGINT NOT NULL REFERENCES species (id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL,
    modified_at TIMESTAMPTZ NULL
);
CREATE INDEX IF NOT EXISTS idx_breeds_species_id ON breeds (species_id);
`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return err
	}
	logger.Info(ctx, "postgres schema ensured")
	return nil
}

const speciesColumns = `id, name, icon, created_at, modified_at`

func scanSpecies(row pgx.Row) (domain.Species, error) {
	var s domain.Species
	err := row.Scan(&s.ID, &s.Name, &s.Icon, &s.CreatedAt, &s.ModifiedAt)
	return s, err
}

func (r *SpeciesRepository) FindByID(ctx context.Context, id int) (domain.Species, error) {
	s, err := scanSpecies(r.pool.QueryRow(ctx, `SELECT `+speciesColumns+` FROM species WHERE id = $1`, id))
	if err != nil {
		return domain.Species{}, translate("query species", err)
	}
	return s, nil
}

func (r *SpeciesRepository) FindAll(ctx context.Context) ([]domain.Species, error) {
	return r.query(ctx, `SELECT `+speciesColumns+` FROM species ORDER BY id`)
}

func (r *SpeciesRepository) FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Species], error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM species`).Scan(&total); err != nil {
		return domain.Page[domain.Species]{}, translate("count species", err)
	}
	items, err := r.query(ctx, `SELECT `+speciesColumns+` FROM species ORDER BY id LIMIT $1 OFFSET $2`, req.Size, req.Offset())
	if err != nil {
		return domain.Page[domain.Species]{}, err
	}
	return domain.NewPage(items, req, total), nil
}

func (r *SpeciesRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var ok bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM species WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, translate("species exists", err)
	}
	return ok, nil
}

func (r *SpeciesRepository) FindAllByName(ctx context.Context, name string) ([]domain.Species, error) {
	return r.query(ctx, `SELECT `+speciesColumns+` FROM species WHERE name = $1 ORDER BY id`, name)
}

func (r *SpeciesRepository) Save(ctx context.Context, s domain.Species) (domain.Species, error) {
	var (
		saved domain.Species
		err   error
	)
	if s.ID == 0 {
		const q = `
INSERT INTO species (name, icon, created_at, modified_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + speciesColumns
		saved, err = scanSpecies(r.pool.QueryRow(ctx, q, s.Name, s.Icon, s.CreatedAt, s.ModifiedAt))
	} else {
		const q = `
UPDATE species SET name = $2, icon = $3, created_at = $4, modified_at = $5
WHERE id = $1
RETURNING ` + speciesColumns
		saved, err = scanSpecies(r.pool.QueryRow(ctx, q, s.ID, s.Name, s.Icon, s.CreatedAt, s.ModifiedAt))
	}
	if err != nil {
		return domain.Species{}, translate("save species", err)
	}
	return saved, nil
}

func (r *SpeciesRepository) DeleteByID(ctx context.Context, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM species WHERE id = $1`, id)
	if err != nil {
		return translate("delete species", err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SpeciesRepository) query(ctx context.Context, q string, args ...any) ([]domain.Species, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, translate("list species", err)
	}
	defer rows.Close()
	res := make([]domain.Species, 0)
	for rows.Next() {
		s, err := scanSpecies(rows)
		if err != nil {
			return nil, translate("scan species", err)
		}
		res = append(res, s)
	}
	if rows.Err() != nil {
		return nil, translate("list species", rows.Err())
	}
	return res, nil
}

var _ repository.SpeciesRepository = (*SpeciesRepository)(nil)
