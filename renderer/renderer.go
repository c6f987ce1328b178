// Package renderer turns the core's plain report values into markdown
// strings for the CLI. It is a presentation collaborator: nothing here
// mutates state or resolves rates.
package renderer

import (
	"github.com/shopspring/decimal"

	"github.com/fkey7/budget"
)

// money formats a base-currency amount for display.
func money(v decimal.Decimal, currency string) string {
	return budget.M(v, currency).String()
}

// signed formats a delta with an explicit sign.
func signed(v decimal.Decimal, currency string) string {
	s := money(v, currency)
	if !v.IsNegative() {
		return "+" + s
	}
	return s
}
