package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter-studio/globetrotter/internal/domain"
	"github.com/globetrotter-studio/globetrotter/internal/repo"
	"github.com/globetrotter-studio/globetrotter/internal/service"
	"github.com/globetrotter-studio/globetrotter/internal/storage"
	"github.com/globetrotter-studio/globetrotter/testutil"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockTrips is a hand-written test double for repo.Trips.
// Each method is a function field — set only the ones your test needs.
type mockTrips struct {
	list    func() []domain.Trip
	get     func(id string) (domain.Trip, error)
	add     func(trip domain.Trip)
	update  func(trip domain.Trip)
	delete  func(id string)
	user    func() *domain.User
	setUser func(u *domain.User)
}

func (m *mockTrips) List() []domain.Trip {
	return m.list()
}
func (m *mockTrips) Get(id string) (domain.Trip, error) {
	return m.get(id)
}
func (m *mockTrips) Add(trip domain.Trip) {
	m.add(trip)
}
func (m *mockTrips) Update(trip domain.Trip) {
	m.update(trip)
}
func (m *mockTrips) Delete(id string) {
	m.delete(id)
}
func (m *mockTrips) User() *domain.User {
	return m.user()
}
func (m *mockTrips) SetUser(u *domain.User) {
	m.setUser(u)
}

// compile-time check: mockTrips must satisfy repo.Trips.
var _ repo.Trips = (*mockTrips)(nil)

func newRepo(t *testing.T) *repo.Repo {
	t.Helper()
	return repo.New(storage.NewMemory(), discard())
}

// ---- clone semantics -------------------------------------------------------

func TestCloner_Clone_FieldOverrides(t *testing.T) {
	r := newRepo(t)
	cloner := service.NewCloner(r, discard(), 0)

	source := testutil.Trip("src")
	source.UserID = service.SystemUserID
	source.IsPublic = true
	source.Status = domain.StatusCompleted

	clone, err := cloner.Clone(context.Background(), source, testutil.User())

	require.NoError(t, err)
	assert.Equal(t, testutil.User().ID, clone.UserID)
	assert.False(t, clone.IsPublic)
	assert.Equal(t, domain.StatusPlanning, clone.Status)
	assert.Equal(t, source.Name+" (Imported)", clone.Name)
}

func TestCloner_Clone_FreshTripAndStopIDs(t *testing.T) {
	r := newRepo(t)
	cloner := service.NewCloner(r, discard(), 0)
	source := testutil.Trip("src")

	clone, err := cloner.Clone(context.Background(), source, testutil.User())

	require.NoError(t, err)
	assert.NotEqual(t, source.ID, clone.ID)
	require.Len(t, clone.Stops, len(source.Stops))
	for i := range source.Stops {
		assert.NotEqual(t, source.Stops[i].ID, clone.Stops[i].ID)
	}
}

// TestCloner_Clone_ActivityIDsCarriedOver pins the observed reference
// behavior: stop identities are regenerated but nested activity identities
// are copied from the source unchanged.
func TestCloner_Clone_ActivityIDsCarriedOver(t *testing.T) {
	r := newRepo(t)
	cloner := service.NewCloner(r, discard(), 0)
	source := testutil.Trip("src")

	clone, err := cloner.Clone(context.Background(), source, testutil.User())

	require.NoError(t, err)
	for i, s := range source.Stops {
		require.Len(t, clone.Stops[i].Activities, len(s.Activities))
		for j, a := range s.Activities {
			assert.Equal(t, a.ID, clone.Stops[i].Activities[j].ID)
		}
	}
}

// TestCloner_Clone_Independence verifies the clone aliases no mutable
// state with the source: mutating the stored clone never changes the
// source record.
func TestCloner_Clone_Independence(t *testing.T) {
	r := newRepo(t)
	cloner := service.NewCloner(r, discard(), 0)
	source := testutil.Trip("src")
	want := testutil.Trip("src")

	clone, err := cloner.Clone(context.Background(), source, testutil.User())
	require.NoError(t, err)

	clone.Stops[0].City = "Atlantis"
	clone.Stops[0].Activities[0].Cost = 9999
	clone.Name = "Mutated"

	assert.Equal(t, want, source)
}

func TestCloner_Clone_AppendsToRepository(t *testing.T) {
	r := newRepo(t)
	cloner := service.NewCloner(r, discard(), 0)

	clone, err := cloner.Clone(context.Background(), testutil.Trip("src"), testutil.User())

	require.NoError(t, err)
	stored, err := r.Get(clone.ID)
	require.NoError(t, err)
	assert.Equal(t, clone, stored)
}

// ---- pending gate ----------------------------------------------------------

// TestCloner_Clone_PendingGate verifies a second clone of the same source
// is rejected while the first is in its delay window.
func TestCloner_Clone_PendingGate(t *testing.T) {
	r := newRepo(t)
	cloner := service.NewCloner(r, discard(), 100*time.Millisecond)
	source := testutil.Trip("src")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := cloner.Clone(context.Background(), source, testutil.User())
		assert.NoError(t, err)
	}()

	// Wait for the first clone to enter pending, then try again.
	require.Eventually(t, func() bool { return cloner.Pending(source.ID) },
		time.Second, time.Millisecond)

	_, err := cloner.Clone(context.Background(), source, testutil.User())
	assert.ErrorIs(t, err, domain.ErrClonePending)

	wg.Wait()
	assert.False(t, cloner.Pending(source.ID))
	assert.Len(t, r.List(), 1)
}

// TestCloner_Clone_CancelledDuringDelay verifies a cancelled context
// aborts the clone with no repository mutation and releases the gate.
func TestCloner_Clone_CancelledDuringDelay(t *testing.T) {
	added := false
	m := &mockTrips{add: func(domain.Trip) { added = true }}
	cloner := service.NewCloner(m, discard(), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := cloner.Clone(ctx, testutil.Trip("src"), testutil.User())

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, added)
	assert.False(t, cloner.Pending("src"))
}

// TestCloner_Clone_DistinctSourcesDoNotBlock verifies the gate is
// per-source-identity, not global.
func TestCloner_Clone_DistinctSourcesDoNotBlock(t *testing.T) {
	r := newRepo(t)
	cloner := service.NewCloner(r, discard(), 0)

	_, err := cloner.Clone(context.Background(), testutil.Trip("a"), testutil.User())
	require.NoError(t, err)
	_, err = cloner.Clone(context.Background(), testutil.Trip("b"), testutil.User())
	require.NoError(t, err)

	assert.Len(t, r.List(), 2)
}
