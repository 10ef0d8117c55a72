package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/globetrotter-studio/globetrotter/internal/domain"
	"github.com/globetrotter-studio/globetrotter/internal/views"
)

func searchFixture() domain.Trip {
	return domain.Trip{
		Name:        "Neo-Tokyo Circuit",
		Description: "Neon districts and tech hubs.",
		Stops: []domain.TripStop{
			{City: "Tokyo"},
			{City: "Osaka"},
		},
	}
}

func TestMatchTrip_NameCaseInsensitive(t *testing.T) {
	trip := searchFixture()

	assert.True(t, views.MatchTrip(trip, "tokyo"))
	assert.True(t, views.MatchTrip(trip, "NEO-"))
	assert.False(t, views.MatchTrip(trip, "osaka")) // city does not count here
}

func TestMatchTrip_EmptyQueryMatchesAll(t *testing.T) {
	assert.True(t, views.MatchTrip(domain.Trip{}, ""))
}

func TestMatchCommunity_SearchesDescriptionAndCities(t *testing.T) {
	trip := searchFixture()

	assert.True(t, views.MatchCommunity(trip, "neon"))  // description
	assert.True(t, views.MatchCommunity(trip, "osaka")) // stop city
	assert.False(t, views.MatchCommunity(trip, "berlin"))
}

func TestFilterTrips(t *testing.T) {
	trips := []domain.Trip{
		{ID: "a", Name: "Japan in Autumn"},
		{ID: "b", Name: "Alps Hiking"},
		{ID: "c", Name: "japan food tour"},
	}

	got := views.FilterTrips(trips, "japan")

	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}
