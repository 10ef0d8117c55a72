// Package testutil provides shared fixtures for tests. Fixtures are built
// fresh on every call so one test can never observe another's mutations.
package testutil

import "github.com/globetrotter-studio/globetrotter/internal/domain"

// User returns a logged-in user with default preferences.
func User() domain.User {
	return domain.User{
		ID:          "user-1",
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		Preferences: domain.Preferences{Language: "en", Currency: "USD"},
	}
}

// Trip returns a fully populated trip with two stops and activities,
// owned by the fixture user. The id is caller-chosen so tests can build
// distinguishable sequences.
func Trip(id string) domain.Trip {
	return domain.Trip{
		ID:          id,
		UserID:      "user-1",
		Name:        "Japan in Autumn",
		Description: "Two weeks of temples, food, and rail.",
		StartDate:   "2024-10-12",
		EndDate:     "2024-10-25",
		TotalBudget: 4200,
		Status:      domain.StatusPlanning,
		Stops: []domain.TripStop{
			{
				ID:          id + "-s1",
				City:        "Tokyo",
				Country:     "Japan",
				Description: "First leg.",
				StartDate:   "2024-10-12",
				EndDate:     "2024-10-18",
				Budget:      2200,
				Activities: []domain.Activity{
					{
						ID: id + "-a1", Name: "Senso-ji", Type: domain.Sightseeing,
						Cost: 0, Duration: "2h",
					},
					{
						ID: id + "-a2", Name: "Sushi course", Type: domain.Food,
						Cost: 120, Duration: "1.5h", Time: "19:00",
					},
				},
			},
			{
				ID:          id + "-s2",
				City:        "Kyoto",
				Country:     "Japan",
				Description: "Second leg.",
				StartDate:   "2024-10-19",
				EndDate:     "2024-10-25",
				Budget:      2000,
				Activities: []domain.Activity{
					{
						ID: id + "-a3", Name: "Fushimi Inari", Type: domain.Sightseeing,
						Cost: 0, Duration: "3h",
					},
				},
			},
		},
	}
}
