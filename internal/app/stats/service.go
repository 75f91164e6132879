package stats

import (
	"context"

	"github.com/google/uuid"

	"showgram/internal/models"
)

// Store defines the aggregate queries.
type Store interface {
	SummaryStats(ctx context.Context, userID uuid.UUID) (*models.SummaryStats, error)
	ProfileStats(ctx context.Context, userID uuid.UUID) (*models.ProfileStats, error)
}

// Service exposes read-only activity aggregates.
type Service interface {
	Summary(ctx context.Context, userID uuid.UUID) (*models.SummaryStats, error)
	Profile(ctx context.Context, userID uuid.UUID) (*models.ProfileStats, error)
}

type service struct {
	store Store
}

// New constructs a stats Service.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Summary(ctx context.Context, userID uuid.UUID) (*models.SummaryStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SummaryStats(ctx, userID)
}

func (s *service) Profile(ctx context.Context, userID uuid.UUID) (*models.ProfileStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ProfileStats(ctx, userID)
}
