// Package service contains the business logic for the GlobeTrotter core.
// Services orchestrate repository calls and derived views; no persistence
// or snapshot encoding lives here. Services depend on the repo.Trips
// interface, not the concrete implementation.
package service

import (
	"fmt"

	"github.com/globetrotter-studio/globetrotter/internal/domain"
	"github.com/globetrotter-studio/globetrotter/internal/repo"
	"github.com/globetrotter-studio/globetrotter/internal/views"
)

// SystemUserID owns the built-in showcase itineraries in the community
// feed. Trips with this owner are labelled as system-provided rather than
// user-shared.
const SystemUserID = "system-intel"

// Community serves the shared trip feed: the user's published trips
// followed by the built-in showcase itineraries.
type Community struct {
	repo repo.Trips
}

// NewCommunity constructs a Community over the given repository.
func NewCommunity(r repo.Trips) *Community {
	return &Community{repo: r}
}

// Feed returns the community feed, optionally filtered by a
// case-insensitive query against trip name, description, or stop city.
// Order is stable: public repository trips first (repository order), then
// the showcase trips.
func (c *Community) Feed(query string) []domain.Trip {
	var out []domain.Trip
	for _, t := range c.repo.List() {
		if t.IsPublic && views.MatchCommunity(t, query) {
			out = append(out, t)
		}
	}
	for _, t := range Showcase() {
		if views.MatchCommunity(t, query) {
			out = append(out, t)
		}
	}
	return out
}

// Get looks a trip up by identity across the whole feed, the user's own
// trips included, for the shared itinerary view. Returns
// domain.ErrNotFound when the identity matches nothing.
func (c *Community) Get(id string) (domain.Trip, error) {
	if t, err := c.repo.Get(id); err == nil {
		return t, nil
	}
	for _, t := range Showcase() {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("service.Community.Get %q: %w", id, domain.ErrNotFound)
}

// Showcase returns the built-in system itineraries. A fresh deep copy is
// returned on every call so callers can never mutate the originals.
func Showcase() []domain.Trip {
	trips := []domain.Trip{
		{
			ID:          "mock-1",
			UserID:      SystemUserID,
			Name:        "Neo-Tokyo Circuit",
			Description: "A futuristic dive into the neon-lit districts and tech hubs of Japan.",
			StartDate:   "2024-10-12",
			EndDate:     "2024-10-22",
			TotalBudget: 4200,
			Status:      domain.StatusCompleted,
			IsPublic:    true,
			Stops: []domain.TripStop{
				{
					ID: "ms1", City: "Tokyo", Country: "Japan",
					Description: "Metropolitan hub and tech center.",
					StartDate:   "2024-10-12", EndDate: "2024-10-15",
					Activities: []domain.Activity{}, Budget: 1500,
				},
				{
					ID: "ms2", City: "Osaka", Country: "Japan",
					Description: "The culinary capital of the country.",
					StartDate:   "2024-10-16", EndDate: "2024-10-20",
					Activities: []domain.Activity{}, Budget: 1200,
				},
			},
		},
		{
			ID:          "mock-2",
			UserID:      SystemUserID,
			Name:        "European Art Corridor",
			Description: "Connecting the most influential galleries and architecture of the EU.",
			StartDate:   "2025-05-15",
			EndDate:     "2025-06-05",
			TotalBudget: 8500,
			Status:      domain.StatusPlanning,
			IsPublic:    true,
			Stops: []domain.TripStop{
				{
					ID: "ms3", City: "Paris", Country: "France",
					Description: "Artistic immersion in the city center.",
					StartDate:   "2025-05-15", EndDate: "2025-05-20",
					Activities: []domain.Activity{}, Budget: 2500,
				},
				{
					ID: "ms4", City: "Berlin", Country: "Germany",
					Description: "Modern and historical architecture tour.",
					StartDate:   "2025-05-21", EndDate: "2025-05-25",
					Activities: []domain.Activity{}, Budget: 1800,
				},
			},
		},
	}

	out := make([]domain.Trip, len(trips))
	for i, t := range trips {
		out[i] = t.Copy()
	}
	return out
}
