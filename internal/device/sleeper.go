package device

import (
	"context"
	"time"
)

// Sleeper paces the simulated hardware.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration)
}

// RealSleeper waits for d or until ctx is done.
type RealSleeper struct{}

func (RealSleeper) Sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// NoSleep returns immediately.
type NoSleep struct{}

func (NoSleep) Sleep(context.Context, time.Duration) {}

// Pacing holds the delays of every simulated effect.
type Pacing struct {
	CoinDelay     time.Duration
	MotorStep     time.Duration
	MessageDelay  time.Duration
	DeliveryDelay time.Duration
}

// DefaultPacing mirrors the speed of the physical machine.
var DefaultPacing = Pacing{
	CoinDelay:     300 * time.Millisecond,
	MotorStep:     100 * time.Millisecond,
	MessageDelay:  1500 * time.Millisecond,
	DeliveryDelay: 1500 * time.Millisecond,
}
