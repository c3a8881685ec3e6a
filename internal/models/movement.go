package models

import (
	"time"

	"github.com/google/uuid"
)

// MovementKind classifies a journal entry.
type MovementKind string

const (
	MovementDeposit MovementKind = "deposit"
	MovementRefund  MovementKind = "refund"
	MovementSale    MovementKind = "sale"
)

// Movement is an append-only record of a credit or stock change.
// ProductID is zero for deposits and refunds.
type Movement struct {
	ID          uuid.UUID    `json:"id"`
	Kind        MovementKind `json:"kind"`
	ProductID   int          `json:"product_id,omitempty"`
	Amount      Money        `json:"amount"`
	CreditAfter Money        `json:"credit_after"`
	CreatedAt   time.Time    `json:"created_at"`
}

// NewMovement stamps a movement with a fresh id and the current UTC time.
func NewMovement(kind MovementKind, productID int, amount, creditAfter Money) Movement {
	return Movement{
		ID:          uuid.New(),
		Kind:        kind,
		ProductID:   productID,
		Amount:      amount,
		CreditAfter: creditAfter,
		CreatedAt:   time.Now().UTC(),
	}
}
