// Package money renders proposal amounts the way the showroom displays
// them: Brazilian real, dot-grouped thousands, comma decimals.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formats v as e.g. "R$ 25.000,50". The string is computed
// once at submission time and stored verbatim.
func FormatBRL(v float64) string {
	return printer.Sprintf("R$ %v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
