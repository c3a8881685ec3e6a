package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/vending-machine/internal/models"
)

type InMemoryMovementRepository struct {
	mu        sync.RWMutex
	movements []models.Movement
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
	}
}

// Log appends a movement to the journal.
func (r *InMemoryMovementRepository) Log(_ context.Context, m models.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, m)
	return nil
}

// List returns the movements matching mf in the order they were logged.
func (r *InMemoryMovementRepository) List(_ context.Context, mf MovementFilter) ([]models.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Movement{}
	for _, m := range r.movements {
		if mf.matches(m) {
			filtered = append(filtered, m)
		}
	}
	return mf.tail(filtered), nil
}
