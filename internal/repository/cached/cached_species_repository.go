// Package cached provides a caching wrapper over a primary species repository using Redis.
package cached

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/repository"
	"github.com/roguepikachu/petshop/pkg/logger"
)

const listPrefix = "species_lists:"

func keySpecies(id int) string { return "species:" + strconv.Itoa(id) }
func keyAll() string          { return listPrefix + "all" }
func keyPage(req domain.PageRequest) string {
	return fmt.Sprintf("%sp%d:s%d", listPrefix, req.Page, req.Size)
}

// SpeciesRepository is a cache-aside repository combining Redis with a primary store.
// Existence and name lookups always go to the primary so validation sees current data.
type SpeciesRepository struct {
	primary repository.SpeciesRepository
	redis   *redis.Client
	ttl     time.Duration
}

// NewSpeciesRepository creates a new cached repository.
func NewSpeciesRepository(primary repository.SpeciesRepository, redis *redis.Client, ttl time.Duration) *SpeciesRepository {
	return &SpeciesRepository{primary: primary, redis: redis, ttl: ttl}
}

// FindByID attempts Redis then falls back to primary.
func (r *SpeciesRepository) FindByID(ctx context.Context, id int) (domain.Species, error) {
	var s domain.Species
	if r.get(ctx, keySpecies(id), &s) {
		return s, nil
	}
	s, err := r.primary.FindByID(ctx, id)
	if err != nil {
		return domain.Species{}, err
	}
	r.set(ctx, keySpecies(s.ID), s)
	return s, nil
}

func (r *SpeciesRepository) FindAll(ctx context.Context) ([]domain.Species, error) {
	var items []domain.Species
	if r.get(ctx, keyAll(), &items) {
		return items, nil
	}
	items, err := r.primary.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	r.set(ctx, keyAll(), items)
	return items, nil
}

// FindPage caches the page results keyed by page and size.
func (r *SpeciesRepository) FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Species], error) {
	var p domain.Page[domain.Species]
	if r.get(ctx, keyPage(req), &p) {
		return p, nil
	}
	p, err := r.primary.FindPage(ctx, req)
	if err != nil {
		return domain.Page[domain.Species]{}, err
	}
	r.set(ctx, keyPage(req), p)
	return p, nil
}

func (r *SpeciesRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	return r.primary.ExistsByID(ctx, id)
}

func (r *SpeciesRepository) FindAllByName(ctx context.Context, name string) ([]domain.Species, error) {
	return r.primary.FindAllByName(ctx, name)
}

// Save writes through to primary and refreshes the cache.
func (r *SpeciesRepository) Save(ctx context.Context, s domain.Species) (domain.Species, error) {
	saved, err := r.primary.Save(ctx, s)
	if err != nil {
		return domain.Species{}, err
	}
	r.set(ctx, keySpecies(saved.ID), saved)
	r.invalidateListKeys(ctx)
	return saved, nil
}

func (r *SpeciesRepository) DeleteByID(ctx context.Context, id int) error {
	if err := r.primary.DeleteByID(ctx, id); err != nil {
		return err
	}
	_ = r.redis.Del(ctx, keySpecies(id)).Err()
	r.invalidateListKeys(ctx)
	return nil
}

func (r *SpeciesRepository) get(ctx context.Context, key string, dst any) bool {
	val, err := r.redis.Get(ctx, key).Result()
	if err != nil || val == "" {
		return false
	}
	return json.Unmarshal([]byte(val), dst) == nil
}

func (r *SpeciesRepository) set(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.redis.Set(ctx, key, data, r.ttl).Err(); err != nil {
		logger.WithField(ctx, "key", key).Warnf("cache set failed: %v", err)
	}
}

// invalidateListKeys drops every cached list and page, best effort.
func (r *SpeciesRepository) invalidateListKeys(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := r.redis.Scan(ctx, cursor, listPrefix+"*", 100).Result()
		if err != nil {
			logger.Warn(ctx, "cache invalidation failed: %v", err)
			return
		}
		if len(keys) > 0 {
			_ = r.redis.Del(ctx, keys...).Err()
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

var _ repository.SpeciesRepository = (*SpeciesRepository)(nil)
