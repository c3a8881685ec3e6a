package repo

import (
	"time"

	"github.com/rogerio-castellano/vending-machine/internal/models"
)

// MovementFilter narrows a journal listing. Zero values match everything.
// Limit keeps only the most recent entries. Backends that cap a listing by
// default skip the cap when Unbounded is set and Limit is nil.
type MovementFilter struct {
	Kind      models.MovementKind
	ProductID int
	Since     *time.Time
	Until     *time.Time
	Limit     *int
	Unbounded bool
}

func (mf MovementFilter) matches(m models.Movement) bool {
	if mf.Kind != "" && m.Kind != mf.Kind {
		return false
	}
	if mf.ProductID != 0 && m.ProductID != mf.ProductID {
		return false
	}
	if mf.Since != nil && m.CreatedAt.Before(*mf.Since) {
		return false
	}
	if mf.Until != nil && m.CreatedAt.After(*mf.Until) {
		return false
	}
	return true
}

// tail applies the limit to a chronologically ordered slice.
func (mf MovementFilter) tail(movements []models.Movement) []models.Movement {
	if mf.Limit == nil || *mf.Limit < 0 || *mf.Limit >= len(movements) {
		return movements
	}
	return movements[len(movements)-*mf.Limit:]
}
