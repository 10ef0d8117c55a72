package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/globetrotter-studio/globetrotter/internal/domain"
	"github.com/globetrotter-studio/globetrotter/internal/views"
)

func newTripsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "Manage your trips",
	}
	cmd.AddCommand(
		newTripsListCmd(a),
		newTripsShowCmd(a),
		newTripsCreateCmd(a),
		newTripsDeleteCmd(a),
		newTripsPublishCmd(a),
	)
	return cmd
}

func newTripsPublishCmd(a *app) *cobra.Command {
	var private bool

	cmd := &cobra.Command{
		Use:   "publish <trip-id>",
		Short: "Publish a trip to the community feed (or make it private again)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.repo.Get(args[0])
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					fmt.Fprintf(a.out, "trip %s not found\n", args[0])
					return nil
				}
				return err
			}
			t.IsPublic = !private
			a.repo.Update(t)
			if t.IsPublic {
				fmt.Fprintf(a.out, "published %s\n", t.ID)
			} else {
				fmt.Fprintf(a.out, "made %s private\n", t.ID)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&private, "private", false, "withdraw the trip from the feed instead")
	return cmd
}

func newTripsListCmd(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trips, optionally filtered by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			trips := views.FilterTrips(a.repo.List(), query)
			if len(trips) == 0 {
				fmt.Fprintln(a.out, "no trips")
				return nil
			}
			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDATES\tSTOPS\tBUDGET\tSTATUS")
			for _, t := range trips {
				fmt.Fprintf(w, "%s\t%s\t%s..%s\t%d\t%.0f\t%s\n",
					t.ID, t.Name, t.StartDate, t.EndDate, len(t.Stops), t.TotalBudget, t.Status)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive name filter")
	return cmd
}

func newTripsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <trip-id>",
		Short: "Show a trip's itinerary and cost breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.repo.Get(args[0])
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					fmt.Fprintf(a.out, "trip %s not found\n", args[0])
					return nil
				}
				return err
			}
			printTrip(a, t)
			return nil
		},
	}
}

func printTrip(a *app, t domain.Trip) {
	fmt.Fprintf(a.out, "%s (%s)\n%s\n%s .. %s, budget %.0f\n",
		t.Name, t.Status, t.Description, t.StartDate, t.EndDate, t.TotalBudget)
	for i, s := range t.Stops {
		fmt.Fprintf(a.out, "  %d. %s, %s (%s .. %s) budget %.0f\n",
			i+1, s.City, s.Country, s.StartDate, s.EndDate, s.Budget)
		for _, act := range s.Activities {
			fmt.Fprintf(a.out, "     - %s [%s] cost %.0f\n", act.Name, act.Type, act.Cost)
		}
	}
	if breakdown := views.CostByType(t); len(breakdown) > 0 {
		fmt.Fprintln(a.out, "cost by activity type:")
		for _, tc := range breakdown {
			fmt.Fprintf(a.out, "  %s: %.0f\n", tc.Type, tc.Cost)
		}
	}
}

func newTripsCreateCmd(a *app) *cobra.Command {
	var (
		name, desc, start, end string
		budget                 float64
		public                 bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.repo.User()
			if user == nil {
				return fmt.Errorf("not logged in; run `globetrotter login` first")
			}
			for _, d := range []string{start, end} {
				if _, err := views.ParseDate(d); err != nil {
					return err
				}
			}
			t := domain.Trip{
				ID:          domain.NewID(),
				UserID:      user.ID,
				Name:        name,
				Description: desc,
				StartDate:   start,
				EndDate:     end,
				TotalBudget: budget,
				Status:      domain.StatusPlanning,
				IsPublic:    public,
			}
			a.repo.Add(t)
			fmt.Fprintf(a.out, "created trip %s\n", t.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "trip name")
	cmd.Flags().StringVar(&desc, "description", "", "trip description")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "total budget")
	cmd.Flags().BoolVar(&public, "public", false, "publish to the community feed")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	return cmd
}

func newTripsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trip-id>",
		Short: "Delete a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.repo.Delete(args[0])
			fmt.Fprintf(a.out, "deleted %s\n", args[0])
			return nil
		},
	}
}
