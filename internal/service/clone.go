package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/globetrotter-studio/globetrotter/internal/domain"
	"github.com/globetrotter-studio/globetrotter/internal/repo"
)

// ImportSuffix marks a cloned trip's name so the copy is distinguishable
// from the original in the user's workspace.
const ImportSuffix = " (Imported)"

// DefaultCloneDelay is the cosmetic in-progress delay before a clone
// commits. It signals progress to the user and has no correctness role.
const DefaultCloneDelay = 800 * time.Millisecond

// Cloner copies community trips into a user's private workspace.
//
// Each clone request is a small state machine: idle, then pending for the
// duration of the delay, then committed (the repository mutation) or
// cancelled (context done). While a source identity is pending, further
// clones of that same source are rejected with domain.ErrClonePending so
// the trigger stays effectively disabled until the request resolves.
type Cloner struct {
	repo  repo.Trips
	log   *slog.Logger
	delay time.Duration

	mu      sync.Mutex
	pending map[string]struct{}
}

// NewCloner constructs a Cloner with the given in-progress delay.
// A zero delay commits immediately, which tests rely on.
func NewCloner(r repo.Trips, log *slog.Logger, delay time.Duration) *Cloner {
	return &Cloner{
		repo:    r,
		log:     log,
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

// Pending reports whether a clone of the given source identity is in
// flight.
func (c *Cloner) Pending(sourceID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[sourceID]
	return ok
}

// Clone produces a structurally independent copy of source owned by user
// and appends it to the repository.
//
// The copy gets a fresh trip identity and a fresh identity for every stop;
// activity identities are carried over from the source unchanged, matching
// the observed reference behavior. Ownership moves to the acting user,
// visibility resets to private, status resets to planning, and the name
// gains the import suffix.
//
// Cancelling ctx during the delay aborts the clone with no repository
// mutation.
func (c *Cloner) Clone(ctx context.Context, source domain.Trip, user domain.User) (domain.Trip, error) {
	c.mu.Lock()
	if _, ok := c.pending[source.ID]; ok {
		c.mu.Unlock()
		return domain.Trip{}, fmt.Errorf("service.Cloner.Clone %q: %w", source.ID, domain.ErrClonePending)
	}
	c.pending[source.ID] = struct{}{}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, source.ID)
		c.mu.Unlock()
	}()

	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			c.log.Debug("clone cancelled", "source", source.ID)
			return domain.Trip{}, fmt.Errorf("service.Cloner.Clone %q: %w", source.ID, ctx.Err())
		case <-timer.C:
		}
	}

	clone := source.Copy()
	clone.ID = domain.NewID()
	clone.UserID = user.ID
	clone.IsPublic = false
	clone.Status = domain.StatusPlanning
	clone.Name = source.Name + ImportSuffix
	for i := range clone.Stops {
		clone.Stops[i].ID = domain.NewID()
	}

	c.repo.Add(clone)
	c.log.Info("trip cloned", "source", source.ID, "clone", clone.ID, "user", user.ID)
	return clone, nil
}
