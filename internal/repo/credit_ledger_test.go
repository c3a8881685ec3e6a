package repo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/vending-machine/internal/models"
	"github.com/rogerio-castellano/vending-machine/internal/repo"
)

func TestDenomination(t *testing.T) {
	want := map[int]string{1: "0.10", 2: "0.20", 3: "0.50", 4: "1.00", 5: "2.00"}
	for slot, value := range want {
		v, ok := repo.Denomination(slot)
		require.True(t, ok)
		assert.Equal(t, value, v.String())
	}

	for _, slot := range []int{0, 6, 99, -1} {
		_, ok := repo.Denomination(slot)
		assert.False(t, ok, "slot %d", slot)
	}
}

func TestCreditLedger_Deposit(t *testing.T) {
	l := repo.NewCreditLedger()

	for slot := 1; slot <= 5; slot++ {
		coin, _ := repo.Denomination(slot)
		before := l.Balance()
		require.NoError(t, l.Deposit(coin))
		assert.Equal(t, before.Add(coin).String(), l.Balance().String())
	}
	assert.Equal(t, "3.80", l.Balance().String())
}

func TestCreditLedger_DepositRejectsUnknownCoins(t *testing.T) {
	l := repo.NewCreditLedger()

	for _, amount := range []string{"0.05", "5.00", "0", "-1.00", "0.101"} {
		err := l.Deposit(models.MustParseMoney(amount))
		assert.ErrorIs(t, err, repo.ErrInvalidDenomination, amount)
	}
	assert.True(t, l.Balance().IsZero())
}

func TestCreditLedger_Debit(t *testing.T) {
	l := repo.NewCreditLedger()
	require.NoError(t, l.Deposit(models.MustParseMoney("2.00")))

	require.NoError(t, l.Debit(models.MustParseMoney("1.30")))
	assert.Equal(t, "0.70", l.Balance().String())

	assert.ErrorIs(t, l.Debit(models.MustParseMoney("0.80")), repo.ErrInsufficientFunds)
	assert.Equal(t, "0.70", l.Balance().String())

	require.NoError(t, l.Debit(models.MustParseMoney("0.70")))
	assert.True(t, l.Balance().IsZero())
}

func TestCreditLedger_Reverse(t *testing.T) {
	l := repo.NewCreditLedger()
	require.NoError(t, l.Deposit(models.MustParseMoney("1.00")))
	price := models.MustParseMoney("0.80")

	require.NoError(t, l.Debit(price))
	l.Reverse(price)
	assert.Equal(t, "1.00", l.Balance().String())
}

func TestCreditLedger_RefundIsIdempotent(t *testing.T) {
	l := repo.NewCreditLedger()
	require.NoError(t, l.Deposit(models.MustParseMoney("0.50")))
	require.NoError(t, l.Deposit(models.MustParseMoney("0.20")))

	assert.Equal(t, "0.70", l.Refund().String())
	assert.True(t, l.Balance().IsZero())

	assert.True(t, l.Refund().IsZero())
	assert.True(t, l.Balance().IsZero())
}
