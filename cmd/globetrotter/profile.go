package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProfileCmd(a *app) *cobra.Command {
	var name, email, language, currency string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the current user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := a.repo.User()
			if u == nil {
				return fmt.Errorf("not logged in; run `globetrotter login` first")
			}

			edited := *u
			if name != "" {
				edited.Name = name
			}
			if email != "" {
				edited.Email = email
			}
			if language != "" {
				edited.Preferences.Language = language
			}
			if currency != "" {
				edited.Preferences.Currency = currency
			}
			if edited != *u {
				a.auth.UpdateProfile(edited)
				u = &edited
			}

			fmt.Fprintf(a.out, "%s <%s>\nlanguage: %s\ncurrency: %s\n",
				u.Name, u.Email, u.Preferences.Language, u.Preferences.Currency)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "update display name")
	cmd.Flags().StringVar(&email, "email", "", "update email address")
	cmd.Flags().StringVar(&language, "language", "", "update preferred language")
	cmd.Flags().StringVar(&currency, "currency", "", "update preferred currency")
	return cmd
}
