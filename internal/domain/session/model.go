package session

import (
	"time"

	"github.com/google/uuid"
)

// Session maps to the sessions table. Sessions are opened by the mobile
// client when a patient encounter starts; this service only ever reads the
// most recently opened one.
type Session struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SessionID string    `db:"session_id" json:"session_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
