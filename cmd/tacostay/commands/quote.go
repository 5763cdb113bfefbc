package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/tacostay/internal/booking"
)

var (
	quoteTier  string
	quoteAddOn bool
)

func quoteCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the price breakdown for a booking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tier, ok := booking.ParseTier(quoteTier)
			if !ok {
				return fmt.Errorf("unknown tier %q (want daycare, classic or elite)", quoteTier)
			}
			b := booking.Quote(booking.Selection{Tier: tier, AddOn: quoteAddOn})
			return booking.WriteReceipt(cmd.OutOrStdout(), b, st.cfg.UI.CurrencySymbol)
		},
	}
	cmd.Flags().StringVar(&quoteTier, "tier", string(booking.TierClassic), "daycare, classic or elite")
	cmd.Flags().BoolVar(&quoteAddOn, "addon", false, "include the Active Care Package")
	return cmd
}
