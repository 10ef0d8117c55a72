package views

import (
	"fmt"
	"time"

	"github.com/globetrotter-studio/globetrotter/internal/domain"
)

// DateLayout is the wire form of every trip and stop date.
const DateLayout = "2006-01-02"

// Date is a naive calendar date. All comparisons are pure component
// comparisons; a date string is never parsed as UTC and converted to a
// local zone, because that can shift the date across a day boundary and
// make a trip appear absent on its start or end day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("views.ParseDate %q: %w", s, err)
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return o.Before(d) }

// String renders the date back in wire form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ActiveOn reports whether the trip is active on the query date: the date
// falls within [StartDate, EndDate] inclusive. A trip whose dates do not
// parse is never active.
func ActiveOn(trip domain.Trip, on Date) bool {
	start, err := ParseDate(trip.StartDate)
	if err != nil {
		return false
	}
	end, err := ParseDate(trip.EndDate)
	if err != nil {
		return false
	}
	return !on.Before(start) && !on.After(end)
}

// TripsOn filters the sequence down to trips active on the query date,
// preserving repository order.
func TripsOn(trips []domain.Trip, on Date) []domain.Trip {
	var out []domain.Trip
	for _, t := range trips {
		if ActiveOn(t, on) {
			out = append(out, t)
		}
	}
	return out
}

// IsStart reports whether the query date is the trip's first day.
func IsStart(trip domain.Trip, on Date) bool {
	start, err := ParseDate(trip.StartDate)
	return err == nil && start == on
}

// IsEnd reports whether the query date is the trip's last day.
func IsEnd(trip domain.Trip, on Date) bool {
	end, err := ParseDate(trip.EndDate)
	return err == nil && end == on
}

// Cell is one slot of the month grid. Leading cells before the first day
// of the month have Day == 0 so a Sunday-first grid stays aligned.
type Cell struct {
	Day  int
	Date Date
}

// MonthGrid lays out the given month as a Sunday-first sequence of cells:
// one blank cell per weekday preceding the 1st, then one cell per day.
func MonthGrid(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the next month is the last day of this one.
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	cells := make([]Cell, 0, int(first.Weekday())+days)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d, Date: Date{Year: year, Month: month, Day: d}})
	}
	return cells
}

// ChipPalette is the fixed set of calendar chip colors.
var ChipPalette = []string{"blue", "emerald", "indigo", "rose", "amber"}

// ChipColor deterministically assigns a palette color to a trip identity
// so chips stay visually stable across renders. The hash is the classic
// djb-style string hash with 32-bit wraparound; it is not cryptographic
// and only needs stability.
func ChipColor(id string) string {
	var hash int32
	for _, c := range id {
		hash = int32(c) + (hash << 5) - hash
	}
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return ChipPalette[h%int64(len(ChipPalette))]
}
