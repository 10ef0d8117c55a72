package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/globetrotter-studio/globetrotter/internal/views"
)

func newCalendarCmd(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Show the month calendar with active trips per day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			year, month := now.Year(), now.Month()
			if len(args) == 1 {
				parsed, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("invalid month %q: %w", args[0], err)
				}
				year, month = parsed.Year(), parsed.Month()
			}

			trips := views.FilterTrips(a.repo.List(), query)
			fmt.Fprintf(a.out, "%s %d\n", month, year)
			for _, cell := range views.MonthGrid(year, month) {
				if cell.Day == 0 {
					continue
				}
				active := views.TripsOn(trips, cell.Date)
				if len(active) == 0 {
					continue
				}
				fmt.Fprintf(a.out, "%s:\n", cell.Date)
				for _, t := range active {
					marker := ""
					if views.IsStart(t, cell.Date) {
						marker = " [start]"
					}
					if views.IsEnd(t, cell.Date) {
						marker = " [end]"
					}
					fmt.Fprintf(a.out, "  (%s) %s%s\n", views.ChipColor(t.ID), t.Name, marker)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive name filter")
	return cmd
}
