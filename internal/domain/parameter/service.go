package parameter

import (
	"context"
	"fmt"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) UpsertVitals(ctx context.Context, sessionID string, u VitalsUpdate) error {
	if sessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	return s.store.UpsertVitals(ctx, sessionID, u)
}

func (s *Service) UpsertTemperature(ctx context.Context, sessionID string, celsius float64) error {
	if sessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	return s.store.UpsertTemperature(ctx, sessionID, celsius)
}

func (s *Service) GetBySession(ctx context.Context, sessionID string) (*Record, error) {
	return s.store.GetBySession(ctx, sessionID)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Record, int, error) {
	return s.store.List(ctx, limit, offset)
}
