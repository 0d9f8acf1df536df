package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned by Latest when no session has been opened yet.
// It is an expected condition, not a failure.
var ErrNoSession = errors.New("no active session")

type Repository interface {
	// Latest returns the most recently created session, ordered by
	// created_at descending. Returns ErrNoSession when the table is empty.
	Latest(ctx context.Context) (*Session, error)
}
