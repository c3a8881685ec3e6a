package repo

import (
	"errors"
	"iter"

	"github.com/rogerio-castellano/vending-machine/internal/models"
)

// Catalog defines the product lookup and stock operations the machine relies on.
type Catalog interface {
	FindByID(id int) (models.Product, bool)
	List() iter.Seq[models.Product]
	DecrementStock(id int) error
}

var (
	// ErrProductNotFound is returned when no product has the requested id.
	ErrProductNotFound = errors.New("product not found")
	// ErrOutOfStock is returned when a product has no units left.
	ErrOutOfStock = errors.New("product out of stock")
	// ErrDuplicateProductID is returned when two seed products share an id.
	ErrDuplicateProductID = errors.New("duplicate product id")
	// ErrInvalidProduct is returned for a product with a non-positive price or negative stock.
	ErrInvalidProduct = errors.New("invalid product")
)
