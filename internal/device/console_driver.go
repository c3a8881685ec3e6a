package device

import (
	"context"
	"fmt"
	"io"
	"strings"
)

const (
	lcdWidth   = 37
	motorSteps = 20
)

// ConsoleDriver simulates the LCD, the dispensing motor and the coin
// acceptor on a terminal.
type ConsoleDriver struct {
	out     io.Writer
	sleeper Sleeper
	pacing  Pacing
}

func NewConsoleDriver(out io.Writer, sleeper Sleeper, pacing Pacing) *ConsoleDriver {
	if sleeper == nil {
		sleeper = RealSleeper{}
	}
	return &ConsoleDriver{out: out, sleeper: sleeper, pacing: pacing}
}

// Show draws the two-line LCD frame. An empty second line is omitted.
func (d *ConsoleDriver) Show(line1, line2 string) {
	border := strings.Repeat("─", lcdWidth+2)
	fmt.Fprintf(d.out, "\n%s  [LCD] ┌%s┐%s\n", Blue, border, Reset)
	d.lcdLine(line1)
	if line2 != "" {
		d.lcdLine(line2)
	}
	fmt.Fprintf(d.out, "%s  [LCD] └%s┘%s\n\n", Blue, border, Reset)
}

func (d *ConsoleDriver) lcdLine(text string) {
	fmt.Fprintf(d.out, "%s  [LCD] │ %s%-*s%s │%s\n", Blue, Yellow, lcdWidth, truncate(text, lcdWidth), Blue, Reset)
}

// Display shows a message and leaves it on screen for the message delay.
func (d *ConsoleDriver) Display(ctx context.Context, line1, line2 string) {
	d.Show(line1, line2)
	d.sleeper.Sleep(ctx, d.pacing.MessageDelay)
}

// Dispense runs the motor animation until the product drops.
func (d *ConsoleDriver) Dispense(ctx context.Context, productName string) {
	fmt.Fprintf(d.out, "%s  [MOTOR] Delivering: %s%s\n  ", Magenta, productName, Reset)
	for range motorSteps {
		fmt.Fprint(d.out, "▓")
		d.sleeper.Sleep(ctx, d.pacing.MotorStep)
	}
	fmt.Fprintln(d.out, " OK!")
	fmt.Fprintf(d.out, "%s  >>> CLONG! The product dropped into the tray. <<<%s\n", Green, Reset)
	d.sleeper.Sleep(ctx, d.pacing.DeliveryDelay)
}

// AcknowledgeCoin plays the coin click.
func (d *ConsoleDriver) AcknowledgeCoin(ctx context.Context) {
	fmt.Fprintf(d.out, "%s  (Clink! Coin accepted...)%s\n", Gray, Reset)
	d.sleeper.Sleep(ctx, d.pacing.CoinDelay)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
