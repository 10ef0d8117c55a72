package service

import (
	"log/slog"
	"strings"

	"github.com/globetrotter-studio/globetrotter/internal/domain"
	"github.com/globetrotter-studio/globetrotter/internal/repo"
)

// Auth is the mocked authentication flow. No credentials are verified:
// login simply fabricates a User record with default preferences and
// stores it, and logout removes the stored record.
type Auth struct {
	repo repo.Trips
	log  *slog.Logger
}

// NewAuth constructs the auth stub over the given repository.
func NewAuth(r repo.Trips, log *slog.Logger) *Auth {
	return &Auth{repo: r, log: log}
}

// Login creates the current user. A blank name falls back to "Explorer";
// preferences default to English and USD.
func (a *Auth) Login(name, email string) domain.User {
	if strings.TrimSpace(name) == "" {
		name = "Explorer"
	}
	u := domain.User{
		ID:          domain.NewID(),
		Name:        name,
		Email:       email,
		Preferences: domain.Preferences{Language: "en", Currency: "USD"},
	}
	a.repo.SetUser(&u)
	a.log.Info("user logged in", "user", u.ID)
	return u
}

// Logout clears the current user. The persisted record is removed, not
// overwritten with a null marker.
func (a *Auth) Logout() {
	a.repo.SetUser(nil)
	a.log.Info("user logged out")
}

// UpdateProfile replaces the current user record with the edited copy.
func (a *Auth) UpdateProfile(u domain.User) {
	a.repo.SetUser(&u)
}
