package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/vending-machine/internal/http/handlers"
	rl "github.com/rogerio-castellano/vending-machine/internal/http/rate_limiter"
)

// NewRouter builds the read-only telemetry API. Call handlers.SetMachine and
// handlers.SetMetricsRepo first.
func NewRouter(limiter *rl.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware(limiter))

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/credit", handlers.GetCreditHandler)
	r.Get("/movements", handlers.GetMovementsHandler)
	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)
	return r
}
