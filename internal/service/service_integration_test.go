//go:build integration

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roguepikachu/petshop/internal/assembler"
	"github.com/roguepikachu/petshop/internal/domain"
	cachedRepo "github.com/roguepikachu/petshop/internal/repository/cached"
	postgresRepo "github.com/roguepikachu/petshop/internal/repository/postgres"
	"github.com/roguepikachu/petshop/internal/validate"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// connectPostgres uses DATABASE_URL in CI and a throwaway container otherwise.
func connectPostgres(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	var dsn string
	if os.Getenv("CI") == "true" {
		dsn = os.Getenv("DATABASE_URL")
		if dsn == "" {
			t.Skip("DATABASE_URL not set in CI environment")
		}
	} else {
		pg, err := tcpostgres.RunContainer(ctx,
			tcpostgres.WithUsername("petshop"),
			tcpostgres.WithPassword("secret"),
			tcpostgres.WithDatabase("petshop"),
		)
		if err != nil {
			t.Skipf("skipping: cannot start postgres container: %v", err)
		}
		t.Cleanup(func() { _ = pg.Terminate(context.Background()) })
		host, _ := pg.Host(ctx)
		port, _ := pg.MappedPort(ctx, "5432")
		dsn = fmt.Sprintf("postgres://petshop:secret@%s:%s/petshop?sslmode=disable", host, port.Port())
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}
	t.Cleanup(pool.Close)

	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			break
		}
		time.Sleep(100 * time.Millisecond)
		if i == 29 {
			t.Fatalf("Database not ready after 3 seconds")
		}
	}
	if err := postgresRepo.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("Failed to ensure schema: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE species, breeds RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("Failed to reset tables: %v", err)
	}
	return pool
}

func newPostgresServices(t *testing.T, pool *pgxpool.Pool, rdb *redis.Client) (*SpeciesService, *BreedService) {
	t.Helper()
	species := postgresRepo.NewSpeciesRepository(pool)
	breeds := postgresRepo.NewBreedRepository(pool)
	clock := RealClock{}

	speciesSvc := NewSpeciesService(cachedRepo.NewSpeciesRepository(species, rdb, 5*time.Minute), validate.NewSpeciesValidator(species), clock)
	asm := assembler.NewBreedAssembler(speciesSvc, clock.Now, domain.UnknownSpecies())
	breedSvc := NewBreedService(breeds, validate.NewBreedValidator(breeds, species), asm, clock)
	return speciesSvc, breedSvc
}

func TestService_IntegrationPostgresWithCache(t *testing.T) {
	ctx := context.Background()
	pool := connectPostgres(ctx, t)

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	species, breeds := newPostgresServices(t, pool, rdb)

	felino, err := species.Create(ctx, domain.CreateSpeciesRequest{Name: "Felino"})
	if err != nil {
		t.Fatalf("Create species failed: %v", err)
	}
	first, err := species.GetByID(ctx, felino.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	second, err := species.GetByID(ctx, felino.ID)
	if err != nil {
		t.Fatalf("cached GetByID failed: %v", err)
	}
	if first.Name != second.Name || !first.CreatedAt.Equal(second.CreatedAt) {
		t.Errorf("cache hit differs from miss: %+v vs %+v", first, second)
	}

	lab, err := breeds.Create(ctx, domain.CreateBreedRequest{Name: "Labrador", Species: domain.SpeciesRef{ID: felino.ID}})
	if err != nil {
		t.Fatalf("Create breed failed: %v", err)
	}
	if lab.Species.Name != "Felino" {
		t.Errorf("breed species not resolved: %+v", lab.Species)
	}

	page, err := breeds.ListPaginated(ctx, 0, 10)
	if err != nil {
		t.Fatalf("ListPaginated failed: %v", err)
	}
	if page.TotalElements != 1 || page.TotalPages != 1 || page.PageNumber != 0 || len(page.Items) != 1 {
		t.Errorf("unexpected page: %+v", page)
	}

	if err := species.Delete(ctx, -1); !errors.Is(err, domain.ErrInvalidField) {
		t.Errorf("expected invalid field, got %v", err)
	}
	if err := species.Delete(ctx, felino.ID); err != nil {
		t.Fatalf("Delete species failed: %v", err)
	}
	if _, err := breeds.GetByID(ctx, lab.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected breed to cascade, got %v", err)
	}
}

func TestService_IntegrationConcurrentDuplicateCreate(t *testing.T) {
	ctx := context.Background()
	pool := connectPostgres(ctx, t)

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	species, _ := newPostgresServices(t, pool, rdb)

	const numWorkers = 10
	var wg sync.WaitGroup
	errs := make(chan error, numWorkers)
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := species.Create(ctx, domain.CreateSpeciesRequest{Name: "Ave"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrAlreadyRegistered):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if ok != 1 {
		t.Fatalf("expected exactly one successful create, got %d", ok)
	}
}
