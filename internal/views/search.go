package views

import (
	"strings"

	"github.com/globetrotter-studio/globetrotter/internal/domain"
)

// MatchTrip reports whether the trip name contains the query,
// case-insensitively. An empty query matches everything. This is the
// filter used by the My Trips and Calendar views.
func MatchTrip(trip domain.Trip, query string) bool {
	if query == "" {
		return true
	}
	return containsFold(trip.Name, query)
}

// MatchCommunity is the broader community-feed filter: the query may match
// the trip name, its description, or any stop's city.
func MatchCommunity(trip domain.Trip, query string) bool {
	if query == "" {
		return true
	}
	if containsFold(trip.Name, query) || containsFold(trip.Description, query) {
		return true
	}
	for _, s := range trip.Stops {
		if containsFold(s.City, query) {
			return true
		}
	}
	return false
}

// FilterTrips keeps trips matching the query by name, in order.
func FilterTrips(trips []domain.Trip, query string) []domain.Trip {
	var out []domain.Trip
	for _, t := range trips {
		if MatchTrip(t, query) {
			out = append(out, t)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
