// Package views computes derived projections of the trip sequence:
// aggregates, calendar membership, and search predicates. Every function
// is pure and holds no state of its own; the results are re-derivable at
// any time from the current trips.
package views

import (
	"math"
	"sort"

	"github.com/globetrotter-studio/globetrotter/internal/domain"
)

// CityCount is one entry of the per-city visit ranking.
type CityCount struct {
	City  string
	Count int
}

// CityFrequency counts stops per city name across all trips, ranked by
// descending count. Ties retain the order in which cities were first
// encountered while scanning trips in repository order (stable sort).
func CityFrequency(trips []domain.Trip) []CityCount {
	index := make(map[string]int)
	var out []CityCount
	for _, t := range trips {
		for _, s := range t.Stops {
			i, ok := index[s.City]
			if !ok {
				index[s.City] = len(out)
				out = append(out, CityCount{City: s.City})
				i = index[s.City]
			}
			out[i].Count++
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// TopCities returns the first n entries of CityFrequency, or all of them
// when fewer exist.
func TopCities(trips []domain.Trip, n int) []CityCount {
	ranked := CityFrequency(trips)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// BudgetSummary is the aggregate card data of the analytics view.
type BudgetSummary struct {
	// TotalBudget is the sum of Trip.TotalBudget across all trips.
	TotalBudget float64
	// TotalActivities counts activities across every stop of every trip.
	TotalActivities int
	// AvgActivities is TotalActivities per trip, rounded to the nearest
	// integer. Zero trips yields zero, not a division error.
	AvgActivities int
}

// Summarize computes the budget aggregate over the trip sequence.
func Summarize(trips []domain.Trip) BudgetSummary {
	var sum BudgetSummary
	for _, t := range trips {
		sum.TotalBudget += t.TotalBudget
		for _, s := range t.Stops {
			sum.TotalActivities += len(s.Activities)
		}
	}
	if len(trips) > 0 {
		sum.AvgActivities = int(math.Round(float64(sum.TotalActivities) / float64(len(trips))))
	}
	return sum
}

// TypeCost is the cost total for one activity category.
type TypeCost struct {
	Type domain.ActivityType
	Cost float64
}

// CostByType sums activity cost grouped by category across all stops of a
// single trip. Categories appear in first-encounter order, with a defined
// zero start for each new key.
func CostByType(trip domain.Trip) []TypeCost {
	index := make(map[domain.ActivityType]int)
	var out []TypeCost
	for _, s := range trip.Stops {
		for _, a := range s.Activities {
			i, ok := index[a.Type]
			if !ok {
				index[a.Type] = len(out)
				out = append(out, TypeCost{Type: a.Type})
				i = index[a.Type]
			}
			out[i].Cost += a.Cost
		}
	}
	return out
}
