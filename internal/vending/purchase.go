package vending

import (
	"context"
	"fmt"
	"sync"

	"github.com/rogerio-castellano/vending-machine/internal/logx"
	"github.com/rogerio-castellano/vending-machine/internal/models"
	"github.com/rogerio-castellano/vending-machine/internal/repo"
)

// Sale describes a completed purchase.
type Sale struct {
	ProductID   int          `json:"product_id"`
	ProductName string       `json:"product_name"`
	Price       models.Money `json:"price"`
	CreditAfter models.Money `json:"credit_after"`
}

// Option configures a PurchaseController or a CommandInterpreter.
type Option func(*options)

type options struct {
	locker    sync.Locker
	movements repo.MovementRepository
}

// WithLocker makes every stock or credit mutation run while holding l.
func WithLocker(l sync.Locker) Option {
	return func(o *options) {
		o.locker = l
	}
}

// WithJournal records deposits, refunds and sales in r.
func WithJournal(r repo.MovementRepository) Option {
	return func(o *options) {
		o.movements = r
	}
}

func applyOptions(opts []Option) options {
	o := options{locker: &sync.Mutex{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// PurchaseController validates and executes purchases against a catalog and
// a credit ledger.
type PurchaseController struct {
	catalog repo.Catalog
	ledger  *repo.CreditLedger
	driver  Driver
	options
}

func NewPurchaseController(catalog repo.Catalog, ledger *repo.CreditLedger, driver Driver, opts ...Option) *PurchaseController {
	return &PurchaseController{
		catalog: catalog,
		ledger:  ledger,
		driver:  driver,
		options: applyOptions(opts),
	}
}

// Purchase buys one unit of product id. Checks run in a fixed order:
// existence, then stock, then credit. Nothing is mutated unless all three pass.
// The product is dispensed after the lock is released.
func (c *PurchaseController) Purchase(ctx context.Context, id int) (Sale, error) {
	c.locker.Lock()
	sale, err := c.commit(id)
	c.locker.Unlock()
	if err != nil {
		return Sale{}, err
	}

	c.driver.Display(ctx, "DISPENSING...", sale.ProductName)
	c.driver.Dispense(ctx, sale.ProductName)

	logx.Info().Int("product_id", sale.ProductID).Str("price", sale.Price.String()).Msg("product sold")
	journal(ctx, c.movements, models.NewMovement(models.MovementSale, sale.ProductID, sale.Price, sale.CreditAfter))
	return sale, nil
}

// commit performs the validation and the paired stock/credit mutation.
func (c *PurchaseController) commit(id int) (Sale, error) {
	product, ok := c.catalog.FindByID(id)
	if !ok {
		return Sale{}, ErrProductNotFound
	}
	if !product.InStock() {
		return Sale{}, ErrOutOfStock
	}
	credit := c.ledger.Balance()
	if credit.LessThan(product.Price) {
		return Sale{}, &InsufficientCreditError{Missing: product.Price.Sub(credit)}
	}

	if err := c.ledger.Debit(product.Price); err != nil {
		return Sale{}, fmt.Errorf("debit %s: %w", product.Price, err)
	}
	if err := c.catalog.DecrementStock(id); err != nil {
		c.ledger.Reverse(product.Price)
		return Sale{}, fmt.Errorf("decrement stock of %d: %w", id, err)
	}

	return Sale{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		CreditAfter: c.ledger.Balance(),
	}, nil
}

// journal records a movement. Failures are logged and never undo the
// operation that produced the movement.
func journal(ctx context.Context, movements repo.MovementRepository, m models.Movement) {
	if movements == nil {
		return
	}
	if err := movements.Log(ctx, m); err != nil {
		logx.Error().Err(err).
			Str("kind", string(m.Kind)).
			Int("product_id", m.ProductID).
			Str("amount", m.Amount.String()).
			Msg("failed to journal movement")
	}
}
