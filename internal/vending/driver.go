package vending

import "context"

// Driver is the device layer: LCD, dispensing motor and coin acceptor.
// Calls block until the effect is complete and never fail from the core's
// point of view.
type Driver interface {
	Display(ctx context.Context, line1, line2 string)
	Dispense(ctx context.Context, productName string)
	AcknowledgeCoin(ctx context.Context)
}

// NopDriver discards every effect.
type NopDriver struct{}

func (NopDriver) Display(context.Context, string, string) {}
func (NopDriver) Dispense(context.Context, string)        {}
func (NopDriver) AcknowledgeCoin(context.Context)         {}
