package vending

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/vending-machine/internal/models"
	"github.com/rogerio-castellano/vending-machine/internal/repo"
)

// DefaultCurrency is shown next to amounts when none is configured.
const DefaultCurrency = "EUR"

// MachineConfig holds what a machine is built from. Zero values select the
// factory catalog, EUR and an in-memory journal.
type MachineConfig struct {
	Products []models.Product
	Currency string
	Journal  repo.MovementRepository
}

// Machine ties the catalog, the credit ledger and the device driver together.
// Commands mutate state under a write lock; the read accessors take a read
// lock, so telemetry can observe the machine while a customer uses it.
type Machine struct {
	mu        sync.RWMutex
	catalog   *repo.InMemoryCatalog
	ledger    *repo.CreditLedger
	movements repo.MovementRepository
	currency  string
	commands  *CommandInterpreter
}

// NewMachine builds a machine around driver. A nil driver selects NopDriver.
func NewMachine(driver Driver, cfg MachineConfig) (*Machine, error) {
	products := cfg.Products
	if products == nil {
		products = repo.DefaultProducts()
	}
	catalog, err := repo.NewInMemoryCatalog(products...)
	if err != nil {
		return nil, err
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	if cfg.Journal == nil {
		cfg.Journal = repo.NewInMemoryMovementRepository()
	}
	if driver == nil {
		driver = NopDriver{}
	}

	m := &Machine{
		catalog:   catalog,
		ledger:    repo.NewCreditLedger(),
		movements: cfg.Journal,
		currency:  cfg.Currency,
	}
	opts := []Option{WithLocker(&m.mu), WithJournal(cfg.Journal)}
	purchases := NewPurchaseController(m.catalog, m.ledger, driver, opts...)
	m.commands = NewCommandInterpreter(m.ledger, purchases, driver, cfg.Currency, opts...)
	return m, nil
}

// Handle runs one integer command.
func (m *Machine) Handle(ctx context.Context, cmd int) (Outcome, error) {
	return m.commands.Handle(ctx, cmd)
}

// Execute parses a line of operator input and runs it. Input that is not an
// integer returns ErrParse and leaves the machine untouched.
func (m *Machine) Execute(ctx context.Context, line string) (Outcome, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return Outcome{}, err
	}
	return m.Handle(ctx, cmd)
}

// Credit returns the current balance.
func (m *Machine) Credit() models.Money {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ledger.Balance()
}

// Products returns a snapshot of the catalog in display order.
func (m *Machine) Products() []models.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog.Snapshot()
}

// Product looks up a single product.
func (m *Machine) Product(id int) (models.Product, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog.FindByID(id)
}

// Movements lists the journal.
func (m *Machine) Movements(ctx context.Context, mf repo.MovementFilter) ([]models.Movement, error) {
	return m.movements.List(ctx, mf)
}

func (m *Machine) Currency() string {
	return m.currency
}
