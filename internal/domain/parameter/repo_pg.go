package parameter

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) Store {
	return &repoPG{pool: pool}
}

const recordCols = `id, session_id, systolic, diastolic, bp_recorded_at,
	heart_rate, oxygen_level, temperature,
	glucose_level, ecg_status, gender, height, weight, age,
	created_at, updated_at`

func (r *repoPG) UpsertVitals(ctx context.Context, sessionID string, u VitalsUpdate) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO parameters (id, session_id, systolic, diastolic, bp_recorded_at,
			heart_rate, oxygen_level, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), $5, $6, NOW())
		ON CONFLICT (session_id) DO UPDATE SET
			systolic = EXCLUDED.systolic,
			diastolic = EXCLUDED.diastolic,
			bp_recorded_at = NOW(),
			heart_rate = EXCLUDED.heart_rate,
			oxygen_level = EXCLUDED.oxygen_level,
			updated_at = NOW()`,
		uuid.New(), sessionID, u.Systolic, u.Diastolic, u.HeartRate, u.OxygenLevel,
	)
	return err
}

func (r *repoPG) UpsertTemperature(ctx context.Context, sessionID string, celsius float64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO parameters (id, session_id, temperature, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (session_id) DO UPDATE SET
			temperature = EXCLUDED.temperature,
			updated_at = NOW()`,
		uuid.New(), sessionID, celsius,
	)
	return err
}

func (r *repoPG) GetBySession(ctx context.Context, sessionID string) (*Record, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx,
		`SELECT `+recordCols+` FROM parameters WHERE session_id = $1`, sessionID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Record, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM parameters`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+recordCols+` FROM parameters ORDER BY updated_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var recs []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return recs, total, nil
}

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.SessionID, &rec.Systolic, &rec.Diastolic, &rec.BPRecordedAt,
		&rec.HeartRate, &rec.OxygenLevel, &rec.Temperature,
		&rec.GlucoseLevel, &rec.ECGStatus, &rec.Gender, &rec.Height, &rec.Weight, &rec.Age,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
