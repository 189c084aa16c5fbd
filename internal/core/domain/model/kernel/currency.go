package kernel

import (
	"errors"
	"strings"

	"tailor/internal/pkg/errs"
	"tailor/internal/pkg/guard"
)

var ErrCurrencyIsNotConstructed = errors.New("Currency must be created via NewCurrency constructor")

// Currency is the ISO code of an order's amounts together with the symbol
// shown to customers in notifications.
type Currency struct {
	code   string
	symbol string

	guard guard.ConstructorGuard
}

// NewCurrency builds a currency. The symbol falls back to the code.
func NewCurrency(code, symbol string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return Currency{}, errs.NewValueIsInvalidErrorWithCause(
			"currency code", errors.New("ISO 4217 codes have three letters"),
		)
	}

	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		symbol = code
	}

	return Currency{code: code, symbol: symbol, guard: guard.NewConstructorGuard()}, nil
}

func (c Currency) Code() string {
	return c.code
}

func (c Currency) Symbol() string {
	return c.symbol
}

func (c Currency) Validate() error {
	return c.guard.Validate(ErrCurrencyIsNotConstructed)
}
