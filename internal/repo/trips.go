// Package repo holds the in-process trip repository. The in-memory list is
// the source of truth for the running session; after every mutation the
// full list is re-serialized and written through the storage adapter, so
// the persisted snapshot is a crash/reload recovery mechanism only. No
// business logic lives here — only list bookkeeping and snapshot encoding.
package repo

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/globetrotter-studio/globetrotter/internal/domain"
	"github.com/globetrotter-studio/globetrotter/internal/storage"
)

// Fixed snapshot keys in the persistent store. The trips key holds a JSON
// array of Trip records; the user key holds a single JSON User record and
// is absent (not null) when logged out.
const (
	TripsKey = "gt_trips"
	UserKey  = "gt_user"
)

// Trips is the repository contract the service layer depends on.
// Keeping it an interface allows services to be unit-tested with a
// function-field mock instead of a real store.
type Trips interface {
	// List returns a copy of every trip in repository order.
	List() []domain.Trip

	// Get returns the trip with the given identity.
	// Returns domain.ErrNotFound when no such trip exists; this is the one
	// lookup condition callers must be able to observe.
	Get(id string) (domain.Trip, error)

	// Add appends the trip to the sequence. The repository performs no
	// uniqueness check; callers supply a unique identity (see domain.NewID).
	Add(trip domain.Trip)

	// Update replaces the record whose identity matches. A missing
	// identity is a silent no-op, not an error.
	Update(trip domain.Trip)

	// Delete removes every record with the matching identity (normally at
	// most one). Deleting an absent identity is a no-op.
	Delete(id string)

	// User returns a copy of the current user, or nil when logged out.
	User() *domain.User

	// SetUser replaces the current user. Passing nil logs out and removes
	// the persisted record rather than writing a null marker.
	SetUser(u *domain.User)
}

// Repo is the storage-backed Trips implementation.
type Repo struct {
	mu    sync.RWMutex
	store storage.Store
	log   *slog.Logger
	trips []domain.Trip
	user  *domain.User
}

// New constructs a repository over the given store and loads the persisted
// snapshot. Malformed or absent content degrades to an empty sequence and
// an absent user; construction never fails.
func New(store storage.Store, log *slog.Logger) *Repo {
	r := &Repo{store: store, log: log}

	if raw, ok := store.Get(TripsKey); ok {
		if err := json.Unmarshal([]byte(raw), &r.trips); err != nil {
			log.Warn("malformed trips snapshot, starting empty", "error", err)
			r.trips = nil
		}
	}
	if raw, ok := store.Get(UserKey); ok {
		var u domain.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			log.Warn("malformed user snapshot, starting logged out", "error", err)
		} else {
			r.user = &u
		}
	}
	return r
}

// compile-time check: Repo must satisfy Trips.
var _ Trips = (*Repo)(nil)

// List returns deep copies so callers can never alias repository state.
func (r *Repo) List() []domain.Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Trip, len(r.trips))
	for i, t := range r.trips {
		out[i] = t.Copy()
	}
	return out
}

func (r *Repo) Get(id string) (domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.trips {
		if t.ID == id {
			return t.Copy(), nil
		}
	}
	return domain.Trip{}, fmt.Errorf("repo.Repo.Get %q: %w", id, domain.ErrNotFound)
}

func (r *Repo) Add(trip domain.Trip) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trips = append(r.trips, trip.Copy())
	r.persistTrips()
}

func (r *Repo) Update(trip domain.Trip) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.trips {
		if t.ID == trip.ID {
			r.trips[i] = trip.Copy()
		}
	}
	r.persistTrips()
}

func (r *Repo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.trips[:0]
	for _, t := range r.trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.trips = kept
	r.persistTrips()
}

func (r *Repo) User() *domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.user == nil {
		return nil
	}
	u := *r.user
	return &u
}

func (r *Repo) SetUser(u *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u == nil {
		r.user = nil
		r.store.Remove(UserKey)
		return
	}
	cp := *u
	r.user = &cp
	b, err := json.Marshal(cp)
	if err != nil {
		r.log.Warn("encode user snapshot failed", "error", err)
		return
	}
	r.store.Set(UserKey, string(b))
}

// persistTrips writes the full sequence unconditionally. Every mutation
// costs one total serialization; there is no incremental diff.
// Callers hold the write lock.
func (r *Repo) persistTrips() {
	b, err := json.Marshal(r.trips)
	if err != nil {
		r.log.Warn("encode trips snapshot failed", "error", err)
		return
	}
	r.store.Set(TripsKey, string(b))
}
