package money

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()
	cases := []struct {
		symbol string
		amount int64
		want   string
	}{
		{"₹", 99, "₹99"},
		{"₹", 1200, "₹1,200"},
		{"₹", 4124, "₹4,124"},
		{"", 25000, "₹25,000"},
		{"$", 1234567, "$1,234,567"},
		{"₹", -500, "-₹500"},
		{"₹", 0, "₹0"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Format(c.symbol, c.amount))
	}
}
