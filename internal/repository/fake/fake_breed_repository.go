package fake

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/roguepikachu/petshop/internal/domain"
	"github.com/roguepikachu/petshop/internal/repository"
)

// BreedRepository is an in-memory repository.BreedRepository. Breeds are read
// through the species store so their species stays current, and breeds whose
// species was removed are treated as deleted along with it.
type BreedRepository struct {
	mu      sync.RWMutex
	species *SpeciesRepository
	byID    map[int]domain.Breed
	nextID  int
}

// NewBreedRepository creates an empty breed store referencing species.
func NewBreedRepository(species *SpeciesRepository) *BreedRepository {
	return &BreedRepository{species: species, byID: make(map[int]domain.Breed), nextID: 1}
}

func (r *BreedRepository) FindByID(ctx context.Context, id int) (domain.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byID[id]
	if !ok {
		return domain.Breed{}, repository.ErrNotFound
	}
	b, ok = r.resolve(ctx, b)
	if !ok {
		return domain.Breed{}, repository.ErrNotFound
	}
	return b, nil
}

func (r *BreedRepository) FindAll(ctx context.Context) ([]domain.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.live(ctx), nil
}

func (r *BreedRepository) FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Breed], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := r.live(ctx)
	return domain.NewPage(slice(all, req), req, int64(len(all))), nil
}

func (r *BreedRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	_, err := r.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *BreedRepository) FindByName(ctx context.Context, name string) (domain.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.live(ctx) {
		if b.Name == name {
			return b, nil
		}
	}
	return domain.Breed{}, repository.ErrNotFound
}

func (r *BreedRepository) Save(ctx context.Context, b domain.Breed) (domain.Breed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sp, err := r.species.FindByID(ctx, b.SpeciesID)
	if err != nil {
		return domain.Breed{}, repository.ErrForeignKey
	}
	for _, other := range r.live(ctx) {
		if other.Name == b.Name && other.ID != b.ID {
			return domain.Breed{}, repository.ErrDuplicate
		}
	}
	if b.ID == 0 {
		b.ID = r.nextID
		r.nextID++
	} else if _, ok := r.byID[b.ID]; !ok {
		return domain.Breed{}, repository.ErrNotFound
	}
	b.Species = sp
	r.byID[b.ID] = b
	return b, nil
}

func (r *BreedRepository) DeleteByID(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	if _, live := r.resolve(ctx, b); !live {
		return repository.ErrNotFound
	}
	return nil
}

// resolve refreshes b.Species and reports whether that species still exists.
func (r *BreedRepository) resolve(ctx context.Context, b domain.Breed) (domain.Breed, bool) {
	sp, err := r.species.FindByID(ctx, b.SpeciesID)
	if err != nil {
		return domain.Breed{}, false
	}
	b.Species = sp
	return b, true
}

// live returns the breeds whose species still exists, ordered by id.
func (r *BreedRepository) live(ctx context.Context) []domain.Breed {
	items := make([]domain.Breed, 0, len(r.byID))
	for _, b := range r.byID {
		if resolved, ok := r.resolve(ctx, b); ok {
			items = append(items, resolved)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

var _ repository.BreedRepository = (*BreedRepository)(nil)
