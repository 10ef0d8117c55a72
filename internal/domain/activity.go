package domain

// ActivityType is the enumerated category of an activity.
type ActivityType string

const (
	Sightseeing   ActivityType = "Sightseeing"
	Food          ActivityType = "Food & Dining"
	Adventure     ActivityType = "Adventure"
	Culture       ActivityType = "Culture"
	Relaxation    ActivityType = "Relaxation"
	Transport     ActivityType = "Transport"
	Accommodation ActivityType = "Accommodation"
)

// ActivityTypes lists every category in display order.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		Sightseeing, Food, Adventure, Culture,
		Relaxation, Transport, Accommodation,
	}
}

// Activity is a plannable item within a stop: categorized, costed, and
// optionally pinned to a time of day.
type Activity struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Cost        float64      `json:"cost"`
	Duration    string       `json:"duration"`
	Time        string       `json:"time,omitempty"`
}
