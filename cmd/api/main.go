// Package main is the entry point for the petshop API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/roguepikachu/petshop/internal/assembler"
	"github.com/roguepikachu/petshop/internal/config"
	"github.com/roguepikachu/petshop/internal/data"
	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/http/handler"
	"github.com/roguepikachu/petshop/internal/http/middleware"
	"github.com/roguepikachu/petshop/internal/http/router"
	"github.com/roguepikachu/petshop/internal/repository"
	"github.com/roguepikachu/petshop/internal/repository/cached"
	"github.com/roguepikachu/petshop/internal/repository/fake"
	"github.com/roguepikachu/petshop/internal/repository/postgres"
	"github.com/roguepikachu/petshop/internal/repository/sqlite"
	"github.com/roguepikachu/petshop/internal/service"
	"github.com/roguepikachu/petshop/internal/validate"
	"github.com/roguepikachu/petshop/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// storage is the selected backend plus what readiness should ping.
type storage struct {
	species repository.SpeciesRepository
	breeds  repository.BreedRepository
	health  handler.Dependency
	close   func()
}

func openStorage(ctx context.Context, c config.Config) (storage, error) {
	switch c.StorageDriver {
	case config.DriverPostgres:
		pool, err := data.NewPostgresPool(ctx, c)
		if err != nil {
			return storage{}, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return storage{}, err
		}
		return storage{
			species: postgres.NewSpeciesRepository(pool),
			breeds:  postgres.NewBreedRepository(pool),
			health:  handler.PostgresDependency(pool),
			close:   pool.Close,
		}, nil
	case config.DriverSQLite:
		db, err := data.NewSQLite(ctx, c.SQLiteDSN)
		if err != nil {
			return storage{}, fmt.Errorf("open sqlite: %w", err)
		}
		if err := sqlite.EnsureSchema(ctx, db); err != nil {
			return storage{}, err
		}
		return storage{
			species: sqlite.NewSpeciesRepository(db),
			breeds:  sqlite.NewBreedRepository(db),
			health:  handler.SQLiteDependency(db),
			close: func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			},
		}, nil
	case config.DriverMemory:
		sp := fake.NewSpeciesRepository()
		return storage{species: sp, breeds: fake.NewBreedRepository(sp), close: func() {}}, nil
	}
	return storage{}, fmt.Errorf("unknown storage driver %q", c.StorageDriver)
}

func newRouter(store storage, rdb *redis.Client, ttl time.Duration) *gin.Engine {
	speciesRepo := store.species
	if rdb != nil {
		speciesRepo = cached.NewSpeciesRepository(speciesRepo, rdb, ttl)
	}

	clock := service.RealClock{}
	speciesSvc := service.NewSpeciesService(speciesRepo, validate.NewSpeciesValidator(speciesRepo), clock)
	asm := assembler.NewBreedAssembler(speciesSvc, clock.Now, domain.UnknownSpecies())
	breedSvc := service.NewBreedService(store.breeds, validate.NewBreedValidator(store.breeds, speciesRepo), asm, clock)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	health := handler.NewHealthHandler(store.health, handler.RedisDependency(rdb))

	return router.NewRouter(
		handler.NewSpeciesHandler(speciesSvc),
		handler.NewBreedHandler(breedSvc),
		health,
		middleware.NewMetrics(reg),
		reg,
	)
}

func main() {
	logger.InitLogging()
	config.InitConf()
	gin.SetMode(config.Conf.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, config.Conf)
	stop()
	if err != nil {
		logger.Fatal(context.Background(), "%v", err)
	}
}

// run serves until ctx is cancelled or the listener fails.
func run(ctx context.Context, conf config.Config) error {
	store, err := openStorage(ctx, conf)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.close()
	logger.Info(ctx, "storage driver %s ready", conf.StorageDriver)

	rdb := data.NewRedisClient(conf)
	if rdb != nil {
		defer rdb.Close()
		logger.Info(ctx, "species cache enabled at %s with ttl %s", conf.RedisAddr, conf.CacheTTL())
	}

	port := conf.Port
	if port == "" {
		logger.Info(ctx, "no port configured, falling back to default: 8080")
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           newRouter(store, rdb, conf.CacheTTL()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info(context.Background(), "shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
