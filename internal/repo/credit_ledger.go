package repo

import (
	"errors"

	"github.com/rogerio-castellano/vending-machine/internal/models"
)

var (
	// ErrInvalidDenomination is returned when a deposit is not an accepted coin.
	ErrInvalidDenomination = errors.New("invalid denomination")
	// ErrInsufficientFunds is returned when a debit exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

var denominations = map[int]models.Money{
	1: models.MustParseMoney("0.10"),
	2: models.MustParseMoney("0.20"),
	3: models.MustParseMoney("0.50"),
	4: models.MustParseMoney("1.00"),
	5: models.MustParseMoney("2.00"),
}

// Denomination maps a coin slot number (1..5) to its value.
func Denomination(slot int) (models.Money, bool) {
	v, ok := denominations[slot]
	return v, ok
}

// IsAcceptedDenomination reports whether amount is one of the accepted coins.
func IsAcceptedDenomination(amount models.Money) bool {
	for _, v := range denominations {
		if v.Equal(amount) {
			return true
		}
	}
	return false
}

// CreditLedger holds the credit inserted by the current customer.
// It is not safe for concurrent use.
type CreditLedger struct {
	balance models.Money
}

func NewCreditLedger() *CreditLedger {
	return &CreditLedger{balance: models.Zero}
}

// Balance returns the credit awaiting spend.
func (l *CreditLedger) Balance() models.Money {
	return l.balance
}

// Deposit adds an accepted coin to the balance.
func (l *CreditLedger) Deposit(amount models.Money) error {
	if !IsAcceptedDenomination(amount) {
		return ErrInvalidDenomination
	}
	l.balance = l.balance.Add(amount)
	return nil
}

// Debit spends amount from the balance.
func (l *CreditLedger) Debit(amount models.Money) error {
	if amount.IsNegative() || l.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	l.balance = l.balance.Sub(amount)
	return nil
}

// Reverse gives back an amount taken by Debit when the rest of the
// transaction could not complete.
func (l *CreditLedger) Reverse(amount models.Money) {
	l.balance = l.balance.Add(amount)
}

// Refund empties the balance and returns what it held. Refunding an empty
// ledger returns zero.
func (l *CreditLedger) Refund() models.Money {
	refunded := l.balance
	l.balance = models.Zero
	return refunded
}
