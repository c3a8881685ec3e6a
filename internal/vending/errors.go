package vending

import (
	"errors"
	"fmt"

	"github.com/rogerio-castellano/vending-machine/internal/models"
	"github.com/rogerio-castellano/vending-machine/internal/repo"
)

var (
	// ErrProductNotFound is returned when the requested id is not in the catalog.
	ErrProductNotFound = repo.ErrProductNotFound
	// ErrOutOfStock is returned when the requested product has no units left.
	ErrOutOfStock = repo.ErrOutOfStock
	// ErrInsufficientCredit matches any *InsufficientCreditError.
	ErrInsufficientCredit = errors.New("insufficient credit")
	// ErrParse is returned by ParseCommand for input that is not an integer.
	ErrParse = errors.New("command is not an integer")
)

// InsufficientCreditError reports how much credit is missing for a purchase.
type InsufficientCreditError struct {
	Missing models.Money
}

func (e *InsufficientCreditError) Error() string {
	return fmt.Sprintf("insufficient credit: missing %s", e.Missing)
}

// Is lets errors.Is(err, ErrInsufficientCredit) match.
func (e *InsufficientCreditError) Is(target error) bool {
	return target == ErrInsufficientCredit
}
