// Package fake provides in-memory implementations of the repository interfaces.
// They back the memory storage driver and most unit tests.
package fake

import (
	"context"
	"sort"
	"sync"

	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/repository"
)

// SpeciesRepository is an in-memory repository.SpeciesRepository.
type SpeciesRepository struct {
	mu     sync.RWMutex
	byID   map[int]domain.Species
	nextID int
}

// Option configures the fake species repository.
type Option func(*SpeciesRepository)

// WithSpecies seeds the repository. Seeded ids advance the id sequence.
func WithSpecies(items ...domain.Species) Option {
	return func(r *SpeciesRepository) {
		for _, s := range items {
			r.byID[s.ID] = s
			if s.ID >= r.nextID {
				r.nextID = s.ID + 1
			}
		}
	}
}

// NewSpeciesRepository creates an empty in-memory species store.
func NewSpeciesRepository(opts ...Option) *SpeciesRepository {
	r := &SpeciesRepository{byID: make(map[int]domain.Species), nextID: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *SpeciesRepository) FindByID(_ context.Context, id int) (domain.Species, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.byID[id]; ok {
		return s, nil
	}
	return domain.Species{}, repository.ErrNotFound
}

func (r *SpeciesRepository) FindAll(_ context.Context) ([]domain.Species, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(), nil
}

func (r *SpeciesRepository) FindPage(_ context.Context, req domain.PageRequest) (domain.Page[domain.Species], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := r.sorted()
	return domain.NewPage(slice(all, req), req, int64(len(all))), nil
}

func (r *SpeciesRepository) ExistsByID(_ context.Context, id int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok, nil
}

func (r *SpeciesRepository) FindAllByName(_ context.Context, name string) ([]domain.Species, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]domain.Species, 0, 1)
	for _, s := range r.sorted() {
		if s.Name == name {
			res = append(res, s)
		}
	}
	return res, nil
}

func (r *SpeciesRepository) Save(_ context.Context, s domain.Species) (domain.Species, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, other := range r.byID {
		if other.Name == s.Name && id != s.ID {
			return domain.Species{}, repository.ErrDuplicate
		}
	}
	if s.ID == 0 {
		s.ID = r.nextID
		r.nextID++
	} else if _, ok := r.byID[s.ID]; !ok {
		return domain.Species{}, repository.ErrNotFound
	}
	r.byID[s.ID] = s
	return s, nil
}

func (r *SpeciesRepository) DeleteByID(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// sorted returns every species ordered by id. Callers hold the lock.
func (r *SpeciesRepository) sorted() []domain.Species {
	items := make([]domain.Species, 0, len(r.byID))
	for _, s := range r.byID {
		items = append(items, s)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func slice[T any](items []T, req domain.PageRequest) []T {
	start := req.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := len(items)
	if req.Size < end-start {
		end = start + req.Size
	}
	return items[start:end]
}

var _ repository.SpeciesRepository = (*SpeciesRepository)(nil)
