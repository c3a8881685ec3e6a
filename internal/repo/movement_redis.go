package repo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/vending-machine/internal/models"
)

// RedisMovementRepository journals movements into a Redis stream.
type RedisMovementRepository struct {
	rdb    *redis.Client
	stream string
}

func NewRedisMovementRepository(rdb *redis.Client, stream string) *RedisMovementRepository {
	return &RedisMovementRepository{rdb: rdb, stream: stream}
}

// Log appends the movement to the stream with XADD.
func (r *RedisMovementRepository) Log(ctx context.Context, m models.Movement) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := r.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]any{
			"id":           m.ID.String(),
			"kind":         string(m.Kind),
			"product_id":   m.ProductID,
			"amount":       m.Amount.String(),
			"credit_after": m.CreditAfter.String(),
			"created_at":   m.CreatedAt.Format(time.RFC3339Nano),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append movement: %w", err)
	}
	return nil
}

// List reads the whole stream and filters it client side.
func (r *RedisMovementRepository) List(ctx context.Context, mf MovementFilter) ([]models.Movement, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	msgs, err := r.rdb.XRange(ctx, r.stream, "-", "+").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read movements: %w", err)
	}

	filtered := []models.Movement{}
	for _, msg := range msgs {
		m, err := decodeMovement(msg.Values)
		if err != nil {
			return nil, fmt.Errorf("malformed movement %s: %w", msg.ID, err)
		}
		if mf.matches(m) {
			filtered = append(filtered, m)
		}
	}
	return mf.tail(filtered), nil
}

func decodeMovement(values map[string]any) (models.Movement, error) {
	field := func(key string) string {
		s, _ := values[key].(string)
		return s
	}

	var (
		m   models.Movement
		err error
	)
	if m.ID, err = uuid.Parse(field("id")); err != nil {
		return m, err
	}
	m.Kind = models.MovementKind(field("kind"))
	if m.ProductID, err = strconv.Atoi(field("product_id")); err != nil {
		return m, err
	}
	if m.Amount, err = models.ParseMoney(field("amount")); err != nil {
		return m, err
	}
	if m.CreditAfter, err = models.ParseMoney(field("credit_after")); err != nil {
		return m, err
	}
	if m.CreatedAt, err = time.Parse(time.RFC3339Nano, field("created_at")); err != nil {
		return m, err
	}
	return m, nil
}
