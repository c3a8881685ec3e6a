package repo

import (
	"fmt"
	"iter"
	"slices"

	"github.com/rogerio-castellano/vending-machine/internal/models"
)

// InMemoryCatalog is an in-memory implementation of Catalog.
// It keeps products in insertion order and is not safe for concurrent use;
// callers serialise access.
type InMemoryCatalog struct {
	products []models.Product
	index    map[int]int
}

// NewInMemoryCatalog creates a catalog from the given products, validating ids,
// prices and stock counts.
func NewInMemoryCatalog(products ...models.Product) (*InMemoryCatalog, error) {
	c := &InMemoryCatalog{
		products: make([]models.Product, 0, len(products)),
		index:    make(map[int]int, len(products)),
	}
	for _, p := range products {
		if _, exists := c.index[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProductID, p.ID)
		}
		if !p.Price.IsPositive() {
			return nil, fmt.Errorf("%w: product %d price must be greater than zero", ErrInvalidProduct, p.ID)
		}
		if p.Stock < 0 {
			return nil, fmt.Errorf("%w: product %d stock cannot be negative", ErrInvalidProduct, p.ID)
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// FindByID retrieves a product by its id.
func (c *InMemoryCatalog) FindByID(id int) (models.Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// List yields every product in insertion order. The sequence can be ranged
// over any number of times.
func (c *InMemoryCatalog) List() iter.Seq[models.Product] {
	return func(yield func(models.Product) bool) {
		for _, p := range c.products {
			if !yield(p) {
				return
			}
		}
	}
}

// Snapshot returns a copy of all products.
func (c *InMemoryCatalog) Snapshot() []models.Product {
	return slices.Clone(c.products)
}

// DecrementStock removes one unit of the product.
func (c *InMemoryCatalog) DecrementStock(id int) error {
	_, err := c.adjustStock(id, -1)
	return err
}

func (c *InMemoryCatalog) adjustStock(id int, delta int) (models.Product, error) {
	i, ok := c.index[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	if c.products[i].Stock+delta < 0 {
		return models.Product{}, ErrOutOfStock
	}
	c.products[i].Stock += delta
	return c.products[i], nil
}
