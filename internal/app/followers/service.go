package followers

import (
	"context"

	"github.com/google/uuid"

	"showgram/internal/app"
	"showgram/internal/models"
)

// Store defines persistence operations for the follow graph.
type Store interface {
	CreateFollow(ctx context.Context, followerID, followedID uuid.UUID) (*models.Follower, error)
	DeleteFollow(ctx context.Context, followerID, followedID uuid.UUID) error
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error)
}

// Service coordinates follow-graph operations.
type Service interface {
	Follow(ctx context.Context, followerID, followedID uuid.UUID) (*models.Follower, error)
	Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error
	Followers(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error)
	Following(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error)
}

type service struct {
	store Store
}

// New constructs a followers Service.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Follow(ctx context.Context, followerID, followedID uuid.UUID) (*models.Follower, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if followerID == followedID {
		return nil, app.ErrSelfFollow
	}
	return s.store.CreateFollow(ctx, followerID, followedID)
}

func (s *service) Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteFollow(ctx, followerID, followedID)
}

func (s *service) Followers(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListFollowers(ctx, userID)
}

func (s *service) Following(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListFollowing(ctx, userID)
}
