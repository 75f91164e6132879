package timeline

import (
	"context"

	"github.com/google/uuid"

	"showgram/internal/models"
)

// Store defines the feed query.
type Store interface {
	ListTimeline(ctx context.Context, userID uuid.UUID, page models.PageParams) ([]models.CheckinDetail, int, error)
}

// Service assembles the authenticated user's feed.
type Service interface {
	List(ctx context.Context, userID uuid.UUID, page models.PageParams) ([]models.CheckinDetail, int, error)
}

type service struct {
	store Store
}

// New constructs a timeline Service.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context, userID uuid.UUID, page models.PageParams) ([]models.CheckinDetail, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return s.store.ListTimeline(ctx, userID, page.Normalize())
}
