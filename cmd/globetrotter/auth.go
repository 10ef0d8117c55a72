package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in (mocked; no credentials are verified)",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := a.auth.Login(name, email)
			fmt.Fprintf(a.out, "logged in as %s <%s> (id %s)\n", u.Name, u.Email, u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to Explorer)")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.auth.Logout()
			fmt.Fprintln(a.out, "logged out")
			return nil
		},
	}
}
