package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter-studio/globetrotter/internal/domain"
	"github.com/globetrotter-studio/globetrotter/internal/views"
)

// tripWithCities builds a minimal trip whose stops visit the given cities
// in order.
func tripWithCities(cities ...string) domain.Trip {
	t := domain.Trip{ID: "t"}
	for _, c := range cities {
		t.Stops = append(t.Stops, domain.TripStop{City: c})
	}
	return t
}

func TestCityFrequency_RanksByCount(t *testing.T) {
	trips := []domain.Trip{tripWithCities("Tokyo", "Osaka", "Tokyo")}

	ranked := views.CityFrequency(trips)

	require.Len(t, ranked, 2)
	assert.Equal(t, views.CityCount{City: "Tokyo", Count: 2}, ranked[0])
	assert.Equal(t, views.CityCount{City: "Osaka", Count: 1}, ranked[1])
}

// TestCityFrequency_TiesKeepFirstEncounterOrder pins the stable-sort
// tie-break: equal counts stay in the order cities first appeared while
// scanning trips in repository order.
func TestCityFrequency_TiesKeepFirstEncounterOrder(t *testing.T) {
	trips := []domain.Trip{
		tripWithCities("Lisbon", "Porto"),
		tripWithCities("Madrid", "Lisbon"),
	}

	ranked := views.CityFrequency(trips)

	require.Len(t, ranked, 3)
	assert.Equal(t, "Lisbon", ranked[0].City) // count 2
	assert.Equal(t, "Porto", ranked[1].City)  // tie at 1, seen before Madrid
	assert.Equal(t, "Madrid", ranked[2].City)
}

func TestTopCities_TruncatesToN(t *testing.T) {
	trips := []domain.Trip{tripWithCities("A", "B", "C", "D", "E", "F")}

	assert.Len(t, views.TopCities(trips, 5), 5)
	assert.Len(t, views.TopCities(trips, 10), 6)
}

func TestSummarize_BudgetSum(t *testing.T) {
	trips := []domain.Trip{
		{TotalBudget: 1500},
		{TotalBudget: 4200},
		{TotalBudget: 0},
	}

	sum := views.Summarize(trips)

	assert.Equal(t, 5700.0, sum.TotalBudget)
}

// TestSummarize_ZeroTrips pins the zero-trips edge case: the average is
// zero, not a division error.
func TestSummarize_ZeroTrips(t *testing.T) {
	sum := views.Summarize(nil)

	assert.Equal(t, 0.0, sum.TotalBudget)
	assert.Equal(t, 0, sum.AvgActivities)
}

func TestSummarize_AvgActivitiesRounds(t *testing.T) {
	act := domain.Activity{ID: "a"}
	trips := []domain.Trip{
		{Stops: []domain.TripStop{{Activities: []domain.Activity{act, act, act}}}},
		{Stops: []domain.TripStop{{}}},
	}

	// 3 activities over 2 trips: 1.5 rounds to 2.
	assert.Equal(t, 2, views.Summarize(trips).AvgActivities)
}

func TestCostByType_GroupsAcrossStops(t *testing.T) {
	trip := domain.Trip{
		Stops: []domain.TripStop{
			{Activities: []domain.Activity{
				{Type: domain.Food, Cost: 40},
				{Type: domain.Culture, Cost: 25},
			}},
			{Activities: []domain.Activity{
				{Type: domain.Food, Cost: 60},
			}},
		},
	}

	breakdown := views.CostByType(trip)

	require.Len(t, breakdown, 2)
	// First-encounter order: Food before Culture.
	assert.Equal(t, views.TypeCost{Type: domain.Food, Cost: 100}, breakdown[0])
	assert.Equal(t, views.TypeCost{Type: domain.Culture, Cost: 25}, breakdown[1])
}

func TestCostByType_EmptyTrip(t *testing.T) {
	assert.Empty(t, views.CostByType(domain.Trip{}))
}
