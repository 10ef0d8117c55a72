package domain

// Position is an optional 2-D layout hint for diagram placement.
// It carries no semantic meaning; the itinerary order lives in Trip.Stops.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TripStop is a single-city leg of a Trip with its own date range, budget,
// and ordered activities.
//
// Stop dates are expected to fall within the parent trip's range, but this
// is advisory and not enforced anywhere.
type TripStop struct {
	ID          string     `json:"id"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	Description string     `json:"description"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Activities  []Activity `json:"activities"`
	Budget      float64    `json:"budget"`
	Image       string     `json:"image,omitempty"`
	Position    *Position  `json:"position,omitempty"`
}

// Copy returns a deep copy of the stop, including its activities and
// layout position.
func (s TripStop) Copy() TripStop {
	out := s
	if s.Activities != nil {
		out.Activities = make([]Activity, len(s.Activities))
		copy(out.Activities, s.Activities)
	}
	if s.Position != nil {
		p := *s.Position
		out.Position = &p
	}
	return out
}
