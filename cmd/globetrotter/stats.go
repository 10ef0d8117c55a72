package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/globetrotter-studio/globetrotter/internal/views"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Aggregate analytics across all trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			trips := a.repo.List()
			sum := views.Summarize(trips)

			fmt.Fprintf(a.out, "trips: %d\n", len(trips))
			fmt.Fprintf(a.out, "total budget: %.0f\n", sum.TotalBudget)
			fmt.Fprintf(a.out, "avg activities per trip: %d\n", sum.AvgActivities)

			top := views.TopCities(trips, 5)
			if len(top) == 0 {
				fmt.Fprintln(a.out, "no destination data available")
				return nil
			}
			fmt.Fprintln(a.out, "top destinations:")
			for _, c := range top {
				fmt.Fprintf(a.out, "  %s: %d\n", c.City, c.Count)
			}
			return nil
		},
	}
}
