package repo

import (
	"context"

	"github.com/rogerio-castellano/vending-machine/internal/models"
)

// InMemoryMetricsRepository derives dashboard metrics from a catalog
// snapshot and the sales journal.
type InMemoryMetricsRepository struct {
	products     ProductLister
	movementRepo MovementRepository
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	m := Metrics{Revenue: models.Zero}

	products := i.products.Products()
	m.TotalProducts = len(products)
	for _, p := range products {
		if !p.InStock() {
			m.SoldOutCount++
		}
	}

	sales, err := i.movementRepo.List(ctx, MovementFilter{Kind: models.MovementSale, Unbounded: true})
	if err != nil {
		return m, err
	}

	perProduct := make(map[int]int)
	for _, s := range sales {
		m.TotalSales++
		m.Revenue = m.Revenue.Add(s.Amount)
		perProduct[s.ProductID]++
	}

	// Ties go to the product listed first in the catalog.
	for _, p := range products {
		if count := perProduct[p.ID]; count > m.MostSoldProduct.SalesCount {
			m.MostSoldProduct.Name = p.Name
			m.MostSoldProduct.SalesCount = count
		}
	}

	return m, nil
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	products ProductLister,
	movementRepo MovementRepository,
) {
	i.products = products
	i.movementRepo = movementRepo
}
