package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/globetrotter-studio/globetrotter/internal/repo"
	"github.com/globetrotter-studio/globetrotter/internal/service"
)

// app bundles the wired core so every command shares one repository and
// one set of services.
type app struct {
	repo      repo.Trips
	auth      *service.Auth
	community *service.Community
	cloner    *service.Cloner
	out       io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "globetrotter",
		Short:        "Plan trips, browse the community feed, and view analytics",
		SilenceUsage: true,
	}

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newProfileCmd(a),
		newTripsCmd(a),
		newCommunityCmd(a),
		newCloneCmd(a),
		newStatsCmd(a),
		newCalendarCmd(a),
	)
	return root
}
