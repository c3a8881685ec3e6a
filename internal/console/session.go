package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rogerio-castellano/vending-machine/internal/logx"
	"github.com/rogerio-castellano/vending-machine/internal/models"
	"github.com/rogerio-castellano/vending-machine/internal/vending"
)

// maxReadFailures bounds consecutive read errors before the session gives up.
const maxReadFailures = 10

// Machine is the part of vending.Machine the session drives.
type Machine interface {
	Execute(ctx context.Context, line string) (vending.Outcome, error)
	Products() []models.Product
	Credit() models.Money
	Currency() string
}

// Screen shows the idle LCD prompt without pausing.
type Screen interface {
	Show(line1, line2 string)
}

// Session is the interactive operator loop.
type Session struct {
	machine Machine
	screen  Screen
	in      *bufio.Reader
	out     io.Writer
}

func NewSession(machine Machine, screen Screen, in io.Reader, out io.Writer) *Session {
	return &Session{
		machine: machine,
		screen:  screen,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run renders the machine and processes one command per line until the quit
// command, the end of input, or ctx is cancelled. Quit and end of input
// return nil. End of input stops the session instead of idling on an
// exhausted reader, so piped scripts terminate with exit status 0.
func (s *Session) Run(ctx context.Context) error {
	failures := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.render()

		line, err := s.in.ReadString('\n')
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			failures++
			logx.Warn().Err(err).Int("failures", failures).Msg("failed to read command")
			if failures >= maxReadFailures {
				return fmt.Errorf("reading commands: %w", err)
			}
			continue
		}
		failures = 0

		if line != "" {
			if s.execute(ctx, line) {
				return nil
			}
		}
		if eof {
			logx.Info().Msg("end of input, closing session")
			return nil
		}
	}
}

// execute runs one line and reports whether the operator asked to quit.
func (s *Session) execute(ctx context.Context, line string) bool {
	outcome, err := s.machine.Execute(ctx, line)
	switch {
	case errors.Is(err, vending.ErrParse):
		return false
	case errors.Is(err, vending.ErrProductNotFound),
		errors.Is(err, vending.ErrOutOfStock),
		errors.Is(err, vending.ErrInsufficientCredit):
		logx.Debug().Err(err).Msg("purchase rejected")
		return false
	case err != nil:
		logx.Error().Err(err).Msg("command failed")
		return false
	}
	return outcome.Kind == vending.OutcomeQuit
}

func (s *Session) render() {
	currency := s.machine.Currency()
	fmt.Fprint(s.out, clearScreen)
	drawHeader(s.out)
	drawInventory(s.out, s.machine.Products(), currency)
	drawControls(s.out)
	s.screen.Show("Please choose a product", fmt.Sprintf("CREDIT : %s %s", s.machine.Credit(), currency))
	drawPrompt(s.out)
}
