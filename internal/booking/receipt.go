package booking

import (
	"fmt"
	"io"
	"strings"

	"github.com/jask/tacostay/internal/money"
)

// Line is one row of a price breakdown.
type Line struct {
	Label  string
	Amount int64
}

// BaseLabel describes the base line, e.g. "Classic Stay × 3 nights".
func (b Breakdown) BaseLabel() string {
	if !b.Option.PerNight {
		return b.Option.Name + " × 1 slot"
	}
	return fmt.Sprintf("%s × %d nights", b.Option.Name, b.Nights)
}

// Lines returns the breakdown rows above the total. The add-on row is omitted
// when not selected.
func (b Breakdown) Lines() []Line {
	lines := []Line{
		{Label: b.BaseLabel(), Amount: b.Base},
		{Label: "Platform fee", Amount: b.PlatformFee},
	}
	if b.AddOn > 0 {
		lines = append(lines, Line{Label: "Active Care Package", Amount: b.AddOn})
	}
	return lines
}

const receiptWidth = 36

// WriteReceipt renders b as a plain-text receipt.
func WriteReceipt(w io.Writer, b Breakdown, symbol string) error {
	rule := strings.Repeat("-", receiptWidth)
	rows := make([]string, 0, 8)
	rows = append(rows, "Price Breakdown")
	for _, l := range b.Lines() {
		rows = append(rows, row(l.Label, money.Format(symbol, l.Amount)))
	}
	rows = append(rows, rule, row("Total", money.Format(symbol, b.Total)))
	if b.IncludesInsurance() {
		rows = append(rows, "Includes "+money.Format(symbol, 25000)+" medical insurance")
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}

func row(label, amount string) string {
	return fmt.Sprintf("%-26s%10s", label, amount)
}
