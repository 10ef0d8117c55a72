// Package domain contains the core data types for the GlobeTrotter trip
// planner. This package has no dependencies beyond identity generation and
// is imported by every other internal package (storage, repo, views,
// service).
package domain

// TripStatus tracks where a trip is in its lifecycle.
type TripStatus string

const (
	StatusPlanning  TripStatus = "planning"
	StatusUpcoming  TripStatus = "upcoming"
	StatusCompleted TripStatus = "completed"
)

// Trip is the root aggregate of the domain model: a user's travel plan
// composed of an ordered sequence of city stops.
//
// StartDate and EndDate are naive calendar dates in "YYYY-MM-DD" form with
// no time-zone component; the views package parses and compares them
// without ever converting through UTC. The Stops ordering is the itinerary
// sequence and must be preserved by every operation.
//
// JSON field names match the persisted snapshot layout, so a snapshot
// written by one session round-trips unchanged into the next.
type Trip struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	CoverImage  string     `json:"coverImage,omitempty"`
	Stops       []TripStop `json:"stops"`
	TotalBudget float64    `json:"totalBudget"`
	Status      TripStatus `json:"status"`
	IsPublic    bool       `json:"isPublic"`
}

// Copy returns a structurally independent deep copy of the trip.
// Mutating the copy, or any of its stops or activities, never changes the
// original.
func (t Trip) Copy() Trip {
	out := t
	if t.Stops != nil {
		out.Stops = make([]TripStop, len(t.Stops))
		for i, s := range t.Stops {
			out.Stops[i] = s.Copy()
		}
	}
	return out
}
