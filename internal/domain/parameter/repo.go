package parameter

import (
	"context"
	"errors"
)

// ErrNotFound is returned by GetBySession when no record exists for the
// session.
var ErrNotFound = errors.New("parameter record not found")

// Store persists per-session parameter records. UpsertVitals and
// UpsertTemperature are field-disjoint by contract: neither touches the
// columns the other writes, so the two channels can land in either order
// without clobbering each other. Both are idempotent under retry.
type Store interface {
	UpsertVitals(ctx context.Context, sessionID string, u VitalsUpdate) error
	UpsertTemperature(ctx context.Context, sessionID string, celsius float64) error
	GetBySession(ctx context.Context, sessionID string) (*Record, error)
	List(ctx context.Context, limit, offset int) ([]*Record, int, error)
}
