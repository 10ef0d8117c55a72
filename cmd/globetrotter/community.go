package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/globetrotter-studio/globetrotter/internal/domain"
	"github.com/globetrotter-studio/globetrotter/internal/service"
)

func newCommunityCmd(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "community",
		Short: "Browse the community trip feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			feed := a.community.Feed(query)
			if len(feed) == 0 {
				fmt.Fprintln(a.out, "no community trips match")
				return nil
			}
			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tAUTHOR\tSTOPS\tBUDGET")
			for _, t := range feed {
				author := "user shared"
				if t.UserID == service.SystemUserID {
					author = "system"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0f\n",
					t.ID, t.Name, author, len(t.Stops), t.TotalBudget)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "match name, description, or stop city")
	return cmd
}

func newCloneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clone <trip-id>",
		Short: "Clone a community trip into your workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.repo.User()
			if user == nil {
				return fmt.Errorf("not logged in; run `globetrotter login` first")
			}
			source, err := a.community.Get(args[0])
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					fmt.Fprintf(a.out, "trip %s not found\n", args[0])
					return nil
				}
				return err
			}
			fmt.Fprintf(a.out, "cloning %q...\n", source.Name)
			clone, err := a.cloner.Clone(cmd.Context(), source, *user)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "cloned into %s (%s)\n", clone.ID, clone.Name)
			return nil
		},
	}
}
