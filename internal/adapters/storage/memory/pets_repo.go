package memory

import (
	"context"
	"sort"
	"sync"

	"pet-namer/internal/domain/pets"
)

type petRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[int64]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *petRepo) UpdateName(ctx context.Context, id int64, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.byID[id]
	if !exists {
		return pets.ErrNotFound
	}
	p.Name = name
	r.byID[id] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	// Orden por id asc, igual que el repo de postgres
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}
