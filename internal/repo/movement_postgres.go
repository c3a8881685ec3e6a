package repo

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/vending-machine/internal/models"
)

const movementsSchema = `
CREATE TABLE IF NOT EXISTS movements (
	id           UUID PRIMARY KEY,
	kind         TEXT NOT NULL,
	product_id   INTEGER NOT NULL DEFAULT 0,
	amount       NUMERIC(12, 2) NOT NULL,
	credit_after NUMERIC(12, 2) NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL
)`

const defaultLimit = 100

type PostgresMovementRepository struct {
	db *sql.DB
}

func NewPostgresMovementRepository(db *sql.DB) *PostgresMovementRepository {
	return &PostgresMovementRepository{db: db}
}

// EnsureSchema creates the movements table when it does not exist yet.
func (r *PostgresMovementRepository) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, movementsSchema); err != nil {
		return fmt.Errorf("failed to create movements table: %w", err)
	}
	return nil
}

// Log inserts a new movement
func (r *PostgresMovementRepository) Log(ctx context.Context, m models.Movement) error {
	query := `INSERT INTO movements (id, kind, product_id, amount, credit_after, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, m.ID, string(m.Kind), m.ProductID, m.Amount.Decimal(), m.CreditAfter.Decimal(), m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert movement: %w", err)
	}
	return nil
}

// List returns matching movements, oldest first.
func (r *PostgresMovementRepository) List(ctx context.Context, mf MovementFilter) ([]models.Movement, error) {
	whereClause, args := r.buildWhereClause(mf)
	query, queryArgs := r.buildMainQuery(whereClause, args, mf)

	movements, err := r.executeQuery(ctx, query, queryArgs)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	// The query reads newest first so LIMIT keeps the most recent rows.
	slices.Reverse(movements)
	return movements, nil
}

// buildWhereClause constructs the WHERE clause and returns arguments
func (r *PostgresMovementRepository) buildWhereClause(mf MovementFilter) (string, []any) {
	whereClause := "WHERE 1=1"
	args := []any{}
	argIndex := 1

	if mf.Kind != "" {
		whereClause += fmt.Sprintf(" AND kind = $%d", argIndex)
		args = append(args, string(mf.Kind))
		argIndex++
	}

	if mf.ProductID != 0 {
		whereClause += fmt.Sprintf(" AND product_id = $%d", argIndex)
		args = append(args, mf.ProductID)
		argIndex++
	}

	if mf.Since != nil {
		whereClause += fmt.Sprintf(" AND created_at >= $%d", argIndex)
		args = append(args, *mf.Since)
		argIndex++
	}

	if mf.Until != nil {
		whereClause += fmt.Sprintf(" AND created_at <= $%d", argIndex)
		args = append(args, *mf.Until)
	}

	return whereClause, args
}

// buildMainQuery constructs the SELECT query with its limit
func (r *PostgresMovementRepository) buildMainQuery(whereClause string, baseArgs []any, mf MovementFilter) (string, []any) {
	query := fmt.Sprintf("SELECT id, kind, product_id, amount, credit_after, created_at FROM movements %s ORDER BY created_at DESC", whereClause)
	args := slices.Clone(baseArgs)

	limit := defaultLimit
	switch {
	case mf.Limit != nil && *mf.Limit >= 0:
		limit = min(*mf.Limit, defaultLimit)
	case mf.Unbounded:
		return query, args
	}
	query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
	args = append(args, limit)

	return query, args
}

// executeQuery executes the main query and scans results
func (r *PostgresMovementRepository) executeQuery(ctx context.Context, query string, args []any) ([]models.Movement, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		var (
			m                   models.Movement
			kind                string
			amount, creditAfter decimal.Decimal
		)
		if err := rows.Scan(&m.ID, &kind, &m.ProductID, &amount, &creditAfter, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Kind = models.MovementKind(kind)
		m.Amount = models.MoneyFromDecimal(amount)
		m.CreditAfter = models.MoneyFromDecimal(creditAfter)
		movements = append(movements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}
