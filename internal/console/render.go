package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rogerio-castellano/vending-machine/internal/device"
	"github.com/rogerio-castellano/vending-machine/internal/models"
)

const clearScreen = "\x1b[2J\x1b[1;1H"

func drawHeader(w io.Writer) {
	fmt.Fprint(w, device.Green)
	fmt.Fprintln(w, "╔═══════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║             VENDING MACHINE 3000              ║")
	fmt.Fprintln(w, "╚═══════════════════════════════════════════════╝")
	fmt.Fprint(w, device.Reset)
}

func drawInventory(w io.Writer, products []models.Product, currency string) {
	fmt.Fprintln(w, "  ID  | TYPE      | NAME            | PRICE     | STOCK")
	fmt.Fprintln(w, "  ----+-----------+-----------------+-----------+--------")
	for _, p := range products {
		stockColor, stockText := device.Green, strconv.Itoa(p.Stock)
		if !p.InStock() {
			stockColor, stockText = device.Red, "SOLD OUT"
		}
		fmt.Fprintf(w, "  %s%3d%s | %s | %-15s | %s%s %s%s | %s%s%s\n",
			device.Cyan, p.ID, device.Reset,
			p.Category.Icon(),
			p.Name,
			device.Yellow, p.Price, currency, device.Reset,
			stockColor, stockText, device.Reset,
		)
	}
	fmt.Fprintln(w)
}

func drawControls(w io.Writer) {
	fmt.Fprintln(w, "  [COINS]  : 1 = 0.10, 2 = 0.20, 3 = 0.50, 4 = 1.00, 5 = 2.00")
	fmt.Fprintln(w, "  [BUY]    : type the product ID")
	fmt.Fprintln(w, "  [SYSTEM] : 99 to refund / 0 to quit")
}

func drawPrompt(w io.Writer) {
	fmt.Fprintf(w, "%s  Your choice > %s", device.Gray, device.Reset)
}
