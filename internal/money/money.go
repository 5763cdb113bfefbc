// Package money formats whole-rupee amounts for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultSymbol is the currency symbol used when none is configured.
const DefaultSymbol = "₹"

var printer = message.NewPrinter(language.English)

// Format renders amount with digit grouping, e.g. 4124 -> "₹4,124".
func Format(symbol string, amount int64) string {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	if amount < 0 {
		return "-" + symbol + printer.Sprintf("%d", -amount)
	}
	return symbol + printer.Sprintf("%d", amount)
}
