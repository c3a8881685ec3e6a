package vending_test

import (
	"context"
	"sync"
)

type lcdMessage struct {
	line1, line2 string
}

// recordingDriver captures effects instead of simulating hardware.
type recordingDriver struct {
	mu        sync.Mutex
	messages  []lcdMessage
	dispensed []string
	coins     int
}

func (d *recordingDriver) Display(_ context.Context, line1, line2 string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, lcdMessage{line1, line2})
}

func (d *recordingDriver) Dispense(_ context.Context, productName string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dispensed = append(d.dispensed, productName)
}

func (d *recordingDriver) AcknowledgeCoin(context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.coins++
}

func (d *recordingDriver) lastMessage() lcdMessage {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.messages) == 0 {
		return lcdMessage{}
	}
	return d.messages[len(d.messages)-1]
}
