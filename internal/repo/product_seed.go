package repo

import "github.com/rogerio-castellano/vending-machine/internal/models"

// DefaultProducts returns the factory loadout of the machine.
func DefaultProducts() []models.Product {
	return []models.Product{
		{ID: 10, Name: "Coca-Cola Zero", Price: models.MustParseMoney("1.20"), Stock: 5, Category: models.Drink},
		{ID: 11, Name: "Ice Tea Peach", Price: models.MustParseMoney("1.40"), Stock: 4, Category: models.Drink},
		{ID: 12, Name: "Mineral Water", Price: models.MustParseMoney("0.80"), Stock: 8, Category: models.Drink},
		{ID: 20, Name: "Kinder Bueno", Price: models.MustParseMoney("1.10"), Stock: 6, Category: models.Snack},
		{ID: 21, Name: "M&Ms Peanut", Price: models.MustParseMoney("1.30"), Stock: 3, Category: models.Snack},
		{ID: 22, Name: "Plain Chips", Price: models.MustParseMoney("1.00"), Stock: 2, Category: models.Snack},
		{ID: 30, Name: "USB-C Cable", Price: models.MustParseMoney("5.50"), Stock: 2, Category: models.Tech},
		{ID: 31, Name: "Earphones", Price: models.MustParseMoney("8.00"), Stock: 1, Category: models.Tech},
	}
}

// NewDefaultCatalog builds an in-memory catalog holding DefaultProducts.
func NewDefaultCatalog() *InMemoryCatalog {
	c, err := NewInMemoryCatalog(DefaultProducts()...)
	if err != nil {
		panic(err)
	}
	return c
}
