//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/repository"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// startPostgres spins up a Postgres container using testcontainers.
func startPostgres(ctx context.Context, t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()
	pg, err := tcpostgres.RunContainer(ctx,
		tcpostgres.WithUsername("petshop"),
		tcpostgres.WithPassword("secret"),
		tcpostgres.WithDatabase("petshop"),
	)
	if err != nil {
		t.Skipf("skipping: cannot start postgres container (is Docker running?): %v", err)
		return nil, func() {}
	}
	host, _ := pg.Host(ctx)
	port, _ := pg.MappedPort(ctx, "5432")
	dsn := fmt.Sprintf("postgres://petshop:secret@%s:%s/petshop?sslmode=disable", host, port.Port())
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.MaxConnLifetime = 0
	cfg.MaxConnIdleTime = 0
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	// Wait until healthy
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	for {
		if err := pool.Ping(ctx); err == nil {
			break
		}
		select {
		case <-ctx.Done():
			t.Fatalf("timeout waiting for db ready: %v", ctx.Err())
		case <-time.After(250 * time.Millisecond):
		}
	}
	cleanup := func() {
		pool.Close()
		_ = pg.Terminate(context.Background())
	}
	return pool, cleanup
}

func TestPostgresSpeciesRepository_CRUDAndPage(t *testing.T) {
	ctx := context.Background()
	pool, cleanup := startPostgres(ctx, t)
	defer cleanup()
	if err := EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	repo := NewSpeciesRepository(pool)

	now := time.Now().UTC().Truncate(time.Second)
	icon := "felino.png"
	felino, err := repo.Save(ctx, domain.Species{Name: "Felino", Icon: &icon, CreatedAt: now})
	if err != nil {
		t.Fatalf("insert felino: %v", err)
	}
	if felino.ID == 0 {
		t.Fatalf("id not assigned")
	}
	if _, err := repo.Save(ctx, domain.Species{Name: "Canino", CreatedAt: now}); err != nil {
		t.Fatalf("insert canino: %v", err)
	}
	if _, err := repo.Save(ctx, domain.Species{Name: "Felino", CreatedAt: now}); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("want duplicate, got %v", err)
	}

	got, err := repo.FindByID(ctx, felino.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Name != "Felino" || got.Icon == nil || *got.Icon != icon || got.ModifiedAt != nil {
		t.Fatalf("find mismatch: %+v", got)
	}

	modified := now.Add(time.Minute)
	got.Name = "Gato"
	got.ModifiedAt = &modified
	updated, err := repo.Save(ctx, got)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != felino.ID || updated.Name != "Gato" || updated.ModifiedAt == nil || !updated.CreatedAt.Equal(now) {
		t.Fatalf("update mismatch: %+v", updated)
	}

	page, err := repo.FindPage(ctx, domain.NewPageRequest(0, 1))
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if page.TotalElements != 2 || page.TotalPages != 2 || len(page.Items) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if byName, _ := repo.FindAllByName(ctx, "Gato"); len(byName) != 1 {
		t.Fatalf("want one species named Gato, got %d", len(byName))
	}

	if err := repo.DeleteByID(ctx, felino.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, felino.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
	if err := repo.DeleteByID(ctx, felino.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("want not found on second delete, got %v", err)
	}

	const beyondInt4 = 9999999999
	if _, err := repo.FindByID(ctx, beyondInt4); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("want not found for id beyond int4, got %v", err)
	}
	if ok, err := repo.ExistsByID(ctx, beyondInt4); err != nil || ok {
		t.Fatalf("want absent for id beyond int4, got %v %v", ok, err)
	}
	huge, err := repo.FindPage(ctx, domain.NewPageRequest(4611686018427387904, 2))
	if err != nil || len(huge.Items) != 0 {
		t.Fatalf("want empty huge page, got %+v %v", huge, err)
	}
}

func TestPostgresBreedRepository_JoinAndCascade(t *testing.T) {
	ctx := context.Background()
	pool, cleanup := startPostgres(ctx, t)
	defer cleanup()
	if err := EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	species := NewSpeciesRepository(pool)
	breeds := NewBreedRepository(pool)

	now := time.Now().UTC().Truncate(time.Second)
	canino, err := species.Save(ctx, domain.Species{Name: "Canino", CreatedAt: now})
	if err != nil {
		t.Fatalf("insert species: %v", err)
	}
	lab, err := breeds.Save(ctx, domain.Breed{Name: "Labrador", SpeciesID: canino.ID, CreatedAt: now})
	if err != nil {
		t.Fatalf("insert breed: %v", err)
	}
	if lab.Species.Name != "Canino" {
		t.Fatalf("species not joined: %+v", lab)
	}
	if _, err := breeds.Save(ctx, domain.Breed{Name: "Poodle", SpeciesID: canino.ID + 100, CreatedAt: now}); !errors.Is(err, repository.ErrForeignKey) {
		t.Fatalf("want foreign key error, got %v", err)
	}
	byName, err := breeds.FindByName(ctx, "Labrador")
	if err != nil || byName.ID != lab.ID {
		t.Fatalf("find by name: %v %+v", err, byName)
	}
	page, err := breeds.FindPage(ctx, domain.NewPageRequest(0, 10))
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if page.TotalElements != 1 || page.TotalPages != 1 || len(page.Items) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}

	if err := species.DeleteByID(ctx, canino.ID); err != nil {
		t.Fatalf("delete species: %v", err)
	}
	if ok, _ := breeds.ExistsByID(ctx, lab.ID); ok {
		t.Fatalf("breed should be removed with its species")
	}
}
