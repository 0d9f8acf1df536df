package session

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Latest(ctx context.Context) (*Session, error) {
	var s Session
	err := r.pool.QueryRow(ctx, `
		SELECT id, session_id, created_at
		FROM sessions
		ORDER BY created_at DESC
		LIMIT 1`).Scan(&s.ID, &s.SessionID, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
