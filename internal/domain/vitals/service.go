package vitals

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/vitalsync/vitalsync/internal/domain/parameter"
	"github.com/vitalsync/vitalsync/internal/domain/session"
)

// Outcome classifies what a submission did. The HTTP layer acknowledges
// every submission regardless; outcomes exist so failures are visible in
// logs rather than silently identical to saves.
type Outcome int

const (
	// OutcomeCached means the cache was updated and no persistence applies.
	OutcomeCached Outcome = iota
	// OutcomeSaved means a combined record was upserted.
	OutcomeSaved
	// OutcomeNotFinal means an intermediate blood-pressure sample.
	OutcomeNotFinal
	// OutcomeParseMiss means required numbers could not be extracted.
	OutcomeParseMiss
	// OutcomeNoSession means no clinical session is open yet.
	OutcomeNoSession
	// OutcomeStoreError means the session lookup or upsert failed.
	OutcomeStoreError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCached:
		return "cached"
	case OutcomeSaved:
		return "saved"
	case OutcomeNotFinal:
		return "not_final"
	case OutcomeParseMiss:
		return "parse_miss"
	case OutcomeNoSession:
		return "no_session"
	case OutcomeStoreError:
		return "store_error"
	default:
		return "unknown"
	}
}

// Service correlates the three reading channels. Blood-pressure finals and
// extracted temperatures are written through to the parameter store against
// the most recently opened session.
type Service struct {
	cache          *Cache
	sessions       session.Repository
	params         parameter.Store
	log            zerolog.Logger
	persistTimeout time.Duration
}

func NewService(cache *Cache, sessions session.Repository, params parameter.Store, log zerolog.Logger, persistTimeout time.Duration) *Service {
	return &Service{
		cache:          cache,
		sessions:       sessions,
		params:         params,
		log:            log,
		persistTimeout: persistTimeout,
	}
}

// RecordBloodPressure caches the payload and, on a final reading with an
// extractable systolic/diastolic pair, persists the combined vitals.
// Systolic and diastolic come from this payload; heart rate falls back to
// the shared cached rate when the payload lacks one; oxygen comes from the
// SpO2 channel's cached value.
func (s *Service) RecordBloodPressure(ctx context.Context, text string) Outcome {
	reading, snap := s.cache.RecordBloodPressure(text)

	if !reading.IsFinal {
		s.log.Debug().Str("channel", "bp").Msg("intermediate reading cached")
		return OutcomeNotFinal
	}
	if reading.Systolic == nil || reading.Diastolic == nil {
		s.log.Warn().Str("channel", "bp").Str("payload", text).
			Msg("final reading without extractable pressure pair, skipping persistence")
		return OutcomeParseMiss
	}

	heartRate := reading.HeartRate
	if heartRate == nil {
		heartRate = snap.HeartRate
	}

	ctx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()

	sess, err := s.sessions.Latest(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			s.log.Warn().Str("channel", "bp").Msg("no active session, reading not persisted")
			return OutcomeNoSession
		}
		s.log.Error().Err(err).Str("channel", "bp").Msg("session lookup failed")
		return OutcomeStoreError
	}

	update := parameter.VitalsUpdate{
		Systolic:    *reading.Systolic,
		Diastolic:   *reading.Diastolic,
		HeartRate:   heartRate,
		OxygenLevel: snap.SpO2,
	}
	if err := s.params.UpsertVitals(ctx, sess.SessionID, update); err != nil {
		s.log.Error().Err(err).Str("channel", "bp").Str("session_id", sess.SessionID).
			Msg("vitals upsert failed")
		return OutcomeStoreError
	}

	s.log.Info().
		Str("session_id", sess.SessionID).
		Int("systolic", update.Systolic).
		Int("diastolic", update.Diastolic).
		Msg("combined vitals saved")
	return OutcomeSaved
}

// RecordSpO2 updates the cache only; SpO2 readings persist indirectly via
// the next blood-pressure finalization.
func (s *Service) RecordSpO2(ctx context.Context, text string) Outcome {
	r := s.cache.RecordSpO2(text)
	if r.SpO2 == nil && r.HeartRate == nil {
		s.log.Debug().Str("channel", "spo2").Str("payload", text).Msg("no values extracted")
		return OutcomeParseMiss
	}
	return OutcomeCached
}

// RecordTemperature caches an extracted value and writes it through to the
// parameter store so a temperature taken before the session's first BP
// final still lands on the record.
func (s *Service) RecordTemperature(ctx context.Context, text string) Outcome {
	v := s.cache.RecordTemperature(text)
	if v == nil {
		s.log.Debug().Str("channel", "temp").Str("payload", text).Msg("no temperature extracted")
		return OutcomeParseMiss
	}

	ctx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()

	sess, err := s.sessions.Latest(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			s.log.Warn().Str("channel", "temp").Msg("no active session, temperature not persisted")
			return OutcomeNoSession
		}
		s.log.Error().Err(err).Str("channel", "temp").Msg("session lookup failed")
		return OutcomeStoreError
	}

	if err := s.params.UpsertTemperature(ctx, sess.SessionID, *v); err != nil {
		s.log.Error().Err(err).Str("channel", "temp").Str("session_id", sess.SessionID).
			Msg("temperature upsert failed")
		return OutcomeStoreError
	}
	return OutcomeSaved
}

// Latest returns the combined read projection.
func (s *Service) Latest() Combined {
	return s.cache.Snapshot()
}

// Reset clears the cache between patients.
func (s *Service) Reset() {
	s.cache.Reset()
	s.log.Info().Msg("reading cache cleared")
}
