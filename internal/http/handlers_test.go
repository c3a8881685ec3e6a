package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	api "github.com/rogerio-castellano/vending-machine/internal/http"
	"github.com/rogerio-castellano/vending-machine/internal/http/handlers"
	rl "github.com/rogerio-castellano/vending-machine/internal/http/rate_limiter"
	"github.com/rogerio-castellano/vending-machine/internal/repo"
	"github.com/rogerio-castellano/vending-machine/internal/vending"
)

func setupMachine(t *testing.T, commands ...int) *vending.Machine {
	t.Helper()
	journal := repo.NewInMemoryMovementRepository()
	m, err := vending.NewMachine(nil, vending.MachineConfig{Journal: journal})
	require.NoError(t, err)
	for _, cmd := range commands {
		_, _ = m.Handle(context.Background(), cmd)
	}

	metrics := repo.NewInMemoryMetricsRepository()
	metrics.SetRepositories(m, journal)
	handlers.SetMachine(m)
	handlers.SetMetricsRepo(metrics)
	return m
}

func newRouter() http.Handler {
	return api.NewRouter(rl.NewLimiter(rate.Inf, 1))
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProductsHandler(t *testing.T) {
	setupMachine(t, 5, 5, 5, 5, 31)

	w := get(t, newRouter(), "/products")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp []handlers.ProductResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp, 8)
	assert.Equal(t, 10, resp[0].Id)
	assert.Equal(t, "drink", resp[0].Category)
	assert.Equal(t, "1.20", resp[0].Price.String())
	assert.Equal(t, 31, resp[7].Id)
	assert.Equal(t, 0, resp[7].Stock)
	assert.True(t, resp[7].SoldOut)
}

func TestGetProductsHandler_SoldOutAlwaysPresent(t *testing.T) {
	setupMachine(t)

	w := get(t, newRouter(), "/products")
	require.Equal(t, http.StatusOK, w.Code)

	var raw []map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&raw))
	require.NotEmpty(t, raw)
	for _, p := range raw {
		assert.Contains(t, p, "sold_out")
	}
	assert.Equal(t, false, raw[0]["sold_out"])
}

func TestGetProductByIDHandler(t *testing.T) {
	setupMachine(t)
	r := newRouter()

	tests := []struct {
		name       string
		target     string
		expectCode int
	}{
		{"existing product", "/products/21", http.StatusOK},
		{"unknown product", "/products/999", http.StatusNotFound},
		{"refund command is not a product", "/products/99", http.StatusNotFound},
		{"non numeric id", "/products/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, r, tt.target)
			assert.Equal(t, tt.expectCode, w.Code)
		})
	}

	w := get(t, r, "/products/21")
	var resp handlers.ProductResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "M&Ms Peanut", resp.Name)
	assert.Equal(t, 3, resp.Stock)
}

func TestGetCreditHandler(t *testing.T) {
	setupMachine(t, 4, 4, 4, 21)

	w := get(t, newRouter(), "/credit")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"credit":"1.70","currency":"EUR"}`, w.Body.String())
}

func TestGetMovementsHandler(t *testing.T) {
	setupMachine(t, 4, 4, 4, 21, 99)
	r := newRouter()

	w := get(t, r, "/movements")
	require.Equal(t, http.StatusOK, w.Code)
	var all handlers.MovementsSearchResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&all))
	assert.Equal(t, 5, all.Meta.TotalCount)

	w = get(t, r, "/movements?kind=sale")
	var sales handlers.MovementsSearchResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sales))
	require.Len(t, sales.Data, 1)
	assert.Equal(t, 21, sales.Data[0].ProductID)
	assert.Equal(t, "1.30", sales.Data[0].Amount.String())

	w = get(t, r, "/movements?limit=1")
	var last handlers.MovementsSearchResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&last))
	require.Len(t, last.Data, 1)
	assert.Equal(t, "refund", last.Data[0].Kind)
	assert.Equal(t, "1.70", last.Data[0].Amount.String())
}

func TestGetMovementsHandler_TimestampOffsets(t *testing.T) {
	setupMachine(t, 4, 99)
	r := newRouter()

	// An unescaped + in the query decodes to a space.
	for _, target := range []string{
		"/movements?since=2020-01-01T10:00:00+02:00",
		"/movements?since=2020-01-01T10:00:00.123456+02:00",
		"/movements?since=2020-01-01T10:00:00.5%2B02:00",
		"/movements?since=2020-01-01T10:00:00Z",
	} {
		t.Run(target, func(t *testing.T) {
			w := get(t, r, target)
			require.Equal(t, http.StatusOK, w.Code)

			var result handlers.MovementsSearchResult
			require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
			assert.Equal(t, 2, result.Meta.TotalCount)
		})
	}
}

func TestGetMovementsHandler_InvalidInput(t *testing.T) {
	setupMachine(t)
	r := newRouter()

	for _, target := range []string{
		"/movements?kind=theft",
		"/movements?product_id=x",
		"/movements?limit=-1",
		"/movements?since=yesterday",
	} {
		t.Run(target, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, get(t, r, target).Code)
		})
	}
}

func TestGetDashboardMetricsHandler(t *testing.T) {
	setupMachine(t, 5, 5, 21, 21, 12)

	w := get(t, newRouter(), "/metrics/dashboard")
	require.Equal(t, http.StatusOK, w.Code)

	var m repo.Metrics
	require.NoError(t, json.NewDecoder(w.Body).Decode(&m))
	assert.Equal(t, 8, m.TotalProducts)
	assert.Equal(t, 3, m.TotalSales)
	assert.Equal(t, "3.40", m.Revenue.String())
	assert.Equal(t, "M&Ms Peanut", m.MostSoldProduct.Name)
}

func TestRateLimitMiddleware(t *testing.T) {
	setupMachine(t)
	r := api.NewRouter(rl.NewLimiter(rate.Limit(0.001), 2))

	assert.Equal(t, http.StatusOK, get(t, r, "/credit").Code)
	assert.Equal(t, http.StatusOK, get(t, r, "/credit").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(t, r, "/credit").Code)
}
