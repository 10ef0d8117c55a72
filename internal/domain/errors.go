package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// trip does not exist. It is the one condition callers must be able to
// observe; mutations on a missing identity are silent no-ops instead.
var ErrNotFound = errors.New("not found")

// ErrClonePending is returned when a clone of the same source trip is
// already in flight. The trigger stays disabled for that source until the
// pending clone commits or is cancelled.
var ErrClonePending = errors.New("clone already pending")
