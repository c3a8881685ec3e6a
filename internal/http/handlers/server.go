package handlers

import (
	"context"

	"github.com/rogerio-castellano/vending-machine/internal/models"
	repo "github.com/rogerio-castellano/vending-machine/internal/repo"
)

// Machine is the read side of the vending machine exposed over HTTP.
type Machine interface {
	Products() []models.Product
	Product(id int) (models.Product, bool)
	Credit() models.Money
	Currency() string
	Movements(ctx context.Context, mf repo.MovementFilter) ([]models.Movement, error)
}

var (
	machine     Machine
	metricsRepo repo.MetricsRepository
)

func SetMachine(m Machine) {
	machine = m
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}
