package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/vending-machine/internal/logx"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics for the operator
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metricsRepo.GetDashboardMetrics(r.Context())
	if err != nil {
		logx.Error().Err(err).Msg("failed to compute dashboard metrics")
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, m)
}
