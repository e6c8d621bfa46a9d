package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/shopspring/decimal"
)

// decimalFlag flag.Value para precios.
type decimalFlag struct {
	value decimal.Decimal
}

func (d *decimalFlag) String() string { return d.value.String() }

func (d *decimalFlag) Set(s string) error {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	d.value = v
	return nil
}

// parse parsea args; argumentos posicionales sobrantes son error de uso.
// Devuelve los nombres de los flags presentes.
func parse(fs *flag.FlagSet, args []string) (map[string]bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, errUsage
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set, nil
}

// optional puntero a v si name estuvo presente.
func optional[T any](set map[string]bool, name string, v T) *T {
	if !set[name] {
		return nil
	}
	return &v
}
