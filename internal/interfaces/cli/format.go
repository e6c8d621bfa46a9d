package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

// money precio con separadores del locale (1.234,50).
func (a *App) money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return a.printer.Sprintf("$%.2f", f)
}

func (a *App) count(n int) string {
	return a.printer.Sprintf("%d", n)
}

func row(w io.Writer, cols ...any) {
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}
