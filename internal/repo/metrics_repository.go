package repo

import (
	"context"

	"github.com/rogerio-castellano/vending-machine/internal/models"
)

type MostSoldProduct struct {
	Name       string `json:"name"`
	SalesCount int    `json:"sales_count"`
}

type Metrics struct {
	TotalProducts   int             `json:"total_products"`
	SoldOutCount    int             `json:"sold_out_count"`
	TotalSales      int             `json:"total_sales"`
	Revenue         models.Money    `json:"revenue"`
	MostSoldProduct MostSoldProduct `json:"most_sold_product"`
}

type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context) (Metrics, error)
}

// ProductLister provides a consistent snapshot of the catalog.
type ProductLister interface {
	Products() []models.Product
}
