package vending

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/vending-machine/internal/logx"
	"github.com/rogerio-castellano/vending-machine/internal/models"
	"github.com/rogerio-castellano/vending-machine/internal/repo"
)

const (
	// CmdQuit ends the session.
	CmdQuit = 0
	// CmdRefund returns the whole credit.
	CmdRefund = 99
)

// OutcomeKind tells the caller which branch a command took.
type OutcomeKind int

const (
	OutcomeQuit OutcomeKind = iota
	OutcomeDeposit
	OutcomeRefund
	OutcomePurchase
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeQuit:
		return "quit"
	case OutcomeDeposit:
		return "deposit"
	case OutcomeRefund:
		return "refund"
	case OutcomePurchase:
		return "purchase"
	}
	return "unknown"
}

// Outcome is the result of one command. Credit is the balance after the
// command; Refunded is only set for refunds and Sale only for successful
// purchases.
type Outcome struct {
	Kind     OutcomeKind
	Credit   models.Money
	Refunded models.Money
	Sale     *Sale
}

// ParseCommand reads one integer command from a line of input.
func ParseCommand(line string) (int, error) {
	cmd, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, line)
	}
	return cmd, nil
}

// CommandInterpreter routes integer commands to the ledger and the purchase
// controller. It holds no state of its own.
type CommandInterpreter struct {
	ledger    *repo.CreditLedger
	purchases *PurchaseController
	driver    Driver
	currency  string
	options
}

func NewCommandInterpreter(ledger *repo.CreditLedger, purchases *PurchaseController, driver Driver, currency string, opts ...Option) *CommandInterpreter {
	return &CommandInterpreter{
		ledger:    ledger,
		purchases: purchases,
		driver:    driver,
		currency:  currency,
		options:   applyOptions(opts),
	}
}

// Handle executes a single command. A purchase that is turned down returns
// ErrProductNotFound, ErrOutOfStock or an *InsufficientCreditError after the
// reason has been shown on the display; state is unchanged in that case.
func (ci *CommandInterpreter) Handle(ctx context.Context, cmd int) (Outcome, error) {
	switch {
	case cmd == CmdQuit:
		return Outcome{Kind: OutcomeQuit, Credit: ci.balance()}, nil
	case cmd >= 1 && cmd <= 5:
		return ci.deposit(ctx, cmd)
	case cmd == CmdRefund:
		return ci.refund(ctx), nil
	default:
		return ci.purchase(ctx, cmd)
	}
}

func (ci *CommandInterpreter) deposit(ctx context.Context, slot int) (Outcome, error) {
	coin, _ := repo.Denomination(slot)
	ci.driver.AcknowledgeCoin(ctx)

	ci.locker.Lock()
	err := ci.ledger.Deposit(coin)
	credit := ci.ledger.Balance()
	ci.locker.Unlock()
	if err != nil {
		return Outcome{}, fmt.Errorf("deposit %s: %w", coin, err)
	}

	logx.Debug().Str("coin", coin.String()).Str("credit", credit.String()).Msg("coin accepted")
	journal(ctx, ci.movements, models.NewMovement(models.MovementDeposit, 0, coin, credit))
	return Outcome{Kind: OutcomeDeposit, Credit: credit}, nil
}

func (ci *CommandInterpreter) refund(ctx context.Context) Outcome {
	ci.locker.Lock()
	refunded := ci.ledger.Refund()
	ci.locker.Unlock()

	if refunded.IsPositive() {
		ci.driver.Display(ctx, "REFUNDING...", ci.amount(refunded))
		logx.Info().Str("amount", refunded.String()).Msg("credit refunded")
		journal(ctx, ci.movements, models.NewMovement(models.MovementRefund, 0, refunded, models.Zero))
	}
	return Outcome{Kind: OutcomeRefund, Credit: models.Zero, Refunded: refunded}
}

func (ci *CommandInterpreter) purchase(ctx context.Context, id int) (Outcome, error) {
	sale, err := ci.purchases.Purchase(ctx, id)
	if err != nil {
		ci.reject(ctx, err)
		return Outcome{Kind: OutcomePurchase, Credit: ci.balance()}, err
	}
	return Outcome{Kind: OutcomePurchase, Credit: sale.CreditAfter, Sale: &sale}, nil
}

func (ci *CommandInterpreter) reject(ctx context.Context, err error) {
	var insufficient *InsufficientCreditError
	switch {
	case errors.Is(err, ErrProductNotFound):
		ci.driver.Display(ctx, "ERROR", "Unknown ID!")
	case errors.Is(err, ErrOutOfStock):
		ci.driver.Display(ctx, "OUT OF STOCK", "Choose another one")
	case errors.As(err, &insufficient):
		ci.driver.Display(ctx, "INSUFFICIENT CREDIT", "Missing: "+ci.amount(insufficient.Missing))
	default:
		logx.Error().Err(err).Msg("purchase failed")
		ci.driver.Display(ctx, "ERROR", "Please try again")
	}
}

func (ci *CommandInterpreter) balance() models.Money {
	ci.locker.Lock()
	defer ci.locker.Unlock()
	return ci.ledger.Balance()
}

func (ci *CommandInterpreter) amount(m models.Money) string {
	return m.String() + " " + ci.currency
}
