package repo

import (
	"context"

	"github.com/rogerio-castellano/vending-machine/internal/models"
)

// MovementRepository is the append-only journal of deposits, refunds and sales.
type MovementRepository interface {
	Log(ctx context.Context, m models.Movement) error
	List(ctx context.Context, mf MovementFilter) ([]models.Movement, error)
}
