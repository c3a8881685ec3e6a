package repo

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/vending-machine/internal/db"
	"github.com/rogerio-castellano/vending-machine/internal/models"
)

func TestPostgresMovementRepository_BuildQuery(t *testing.T) {
	r := &PostgresMovementRepository{}
	limit := 5
	mf := MovementFilter{Kind: models.MovementSale, ProductID: 21, Limit: &limit}

	where, args := r.buildWhereClause(mf)
	assert.Equal(t, "WHERE 1=1 AND kind = $1 AND product_id = $2", where)
	assert.Equal(t, []any{"sale", 21}, args)

	query, queryArgs := r.buildMainQuery(where, args, mf)
	assert.Equal(t, "SELECT id, kind, product_id, amount, credit_after, created_at FROM movements WHERE 1=1 AND kind = $1 AND product_id = $2 ORDER BY created_at DESC LIMIT $3", query)
	assert.Equal(t, []any{"sale", 21, 5}, queryArgs)
	assert.Len(t, args, 2, "base args must not be modified")
}

func TestPostgresMovementRepository_DefaultLimit(t *testing.T) {
	r := &PostgresMovementRepository{}
	huge := 10_000

	_, args := r.buildMainQuery("WHERE 1=1", nil, MovementFilter{})
	assert.Equal(t, []any{defaultLimit}, args)

	_, args = r.buildMainQuery("WHERE 1=1", nil, MovementFilter{Limit: &huge})
	assert.Equal(t, []any{defaultLimit}, args)
}

func TestPostgresMovementRepository_Unbounded(t *testing.T) {
	r := &PostgresMovementRepository{}
	two := 2

	query, args := r.buildMainQuery("WHERE 1=1 AND kind = $1", []any{"sale"}, MovementFilter{Unbounded: true})
	assert.NotContains(t, query, "LIMIT")
	assert.Equal(t, []any{"sale"}, args)

	query, args = r.buildMainQuery("WHERE 1=1", nil, MovementFilter{Unbounded: true, Limit: &two})
	assert.Contains(t, query, "LIMIT $1")
	assert.Equal(t, []any{2}, args)
}

func TestPostgresMovementRepository_MetricsCountEverySale(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	database, err := db.Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	r := NewPostgresMovementRepository(database)
	require.NoError(t, r.EnsureSchema(ctx))
	_, err = database.ExecContext(ctx, "TRUNCATE movements")
	require.NoError(t, err)

	for range defaultLimit + 50 {
		require.NoError(t, r.Log(ctx, models.NewMovement(models.MovementSale, 12, models.MustParseMoney("0.80"), models.Zero)))
	}

	metrics := NewInMemoryMetricsRepository()
	metrics.SetRepositories(productSlice(DefaultProducts()), r)

	m, err := metrics.GetDashboardMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaultLimit+50, m.TotalSales)
	assert.Equal(t, "120.00", m.Revenue.String())
	assert.Equal(t, defaultLimit+50, m.MostSoldProduct.SalesCount)
}

type productSlice []models.Product

func (s productSlice) Products() []models.Product { return s }

func TestPostgresMovementRepository_Integration(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	database, err := db.Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	r := NewPostgresMovementRepository(database)
	require.NoError(t, r.EnsureSchema(ctx))
	_, err = database.ExecContext(ctx, "TRUNCATE movements")
	require.NoError(t, err)

	sale := models.NewMovement(models.MovementSale, 21, models.MustParseMoney("1.30"), models.MustParseMoney("1.70"))
	require.NoError(t, r.Log(ctx, models.NewMovement(models.MovementDeposit, 0, models.MustParseMoney("1.00"), models.MustParseMoney("1.00"))))
	require.NoError(t, r.Log(ctx, sale))

	got, err := r.List(ctx, MovementFilter{Kind: models.MovementSale})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, sale.ID, got[0].ID)
	assert.Equal(t, "1.30", got[0].Amount.String())
	assert.Equal(t, "1.70", got[0].CreditAfter.String())

	all, err := r.List(ctx, MovementFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, models.MovementDeposit, all[0].Kind)
}
