package commands

import (
	"github.com/spf13/cobra"

	"github.com/travel-platform/itinerary-engine/internal/usecase"
)

// QuoteCmd computes a dynamic price quote.
func QuoteCmd() *cobra.Command {
	var req usecase.QuoteRequest

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute a dynamic price quote",
		Example: `  travelctl quote --base 1200 --currency USD --date 2026-12-19 --group 4
  travelctl quote --base 350.50 --currency EUR --date 2026-10-03 --group 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.TravelDate == "" {
				return cmd.Help()
			}

			pricer := usecase.NewPricingEngine(nil)
			breakdown, err := pricer.Quote(req)
			if err != nil {
				return err
			}

			return printJSON(breakdown)
		},
	}

	cmd.Flags().Float64Var(&req.BasePrice, "base", 0, "Base price before multipliers (required)")
	cmd.Flags().StringVar(&req.Currency, "currency", "USD", "ISO 4217 currency code")
	cmd.Flags().StringVar(&req.TravelDate, "date", "", "Travel date YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&req.GroupSize, "group", 1, "Number of travelers")

	return cmd
}
