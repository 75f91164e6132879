// Package ratings covers the checkin owner's rating and review. A rating is
// an upsert; a review is create-once, an asymmetry inherited from the product
// rules rather than an oversight.
package ratings

import (
	"context"
	"math"

	"github.com/google/uuid"

	"showgram/internal/app"
	"showgram/internal/models"
)

// Store defines persistence operations for ratings and reviews.
type Store interface {
	CheckinOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	UpsertRating(ctx context.Context, checkinID uuid.UUID, rating float64) (*models.CheckinRating, error)
	GetRatingByCheckin(ctx context.Context, checkinID uuid.UUID) (*models.CheckinRating, error)
	DeleteRating(ctx context.Context, checkinID uuid.UUID) error
	CreateReview(ctx context.Context, checkinID uuid.UUID, review string) (*models.CheckinReview, error)
	GetReviewByCheckin(ctx context.Context, checkinID uuid.UUID) (*models.CheckinReview, error)
	UpdateReview(ctx context.Context, checkinID uuid.UUID, review string) (*models.CheckinReview, error)
	DeleteReview(ctx context.Context, checkinID uuid.UUID) error
}

// Service coordinates rating and review workflows.
type Service interface {
	Rate(ctx context.Context, userID, checkinID uuid.UUID, rating float64) (*models.CheckinRating, error)
	Rating(ctx context.Context, checkinID uuid.UUID) (*models.CheckinRating, error)
	DeleteRating(ctx context.Context, userID, checkinID uuid.UUID) error
	Review(ctx context.Context, userID, checkinID uuid.UUID, review string) (*models.CheckinReview, error)
	GetReview(ctx context.Context, checkinID uuid.UUID) (*models.CheckinReview, error)
	UpdateReview(ctx context.Context, userID, checkinID uuid.UUID, review string) (*models.CheckinReview, error)
	DeleteReview(ctx context.Context, userID, checkinID uuid.UUID) error
}

type service struct {
	store Store
}

// New constructs a ratings Service.
func New(store Store) Service {
	return &service{store: store}
}

// ValidRating reports whether the value sits on the half-star grid.
func ValidRating(rating float64) bool {
	if rating < 0.5 || rating > 5.0 {
		return false
	}
	doubled := rating * 2
	return math.Abs(doubled-math.Round(doubled)) < 1e-9
}

func (s *service) Rate(ctx context.Context, userID, checkinID uuid.UUID, rating float64) (*models.CheckinRating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !ValidRating(rating) {
		return nil, app.ErrInvalidRating
	}
	if err := s.requireOwner(ctx, userID, checkinID); err != nil {
		return nil, err
	}
	return s.store.UpsertRating(ctx, checkinID, rating)
}

func (s *service) Rating(ctx context.Context, checkinID uuid.UUID) (*models.CheckinRating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetRatingByCheckin(ctx, checkinID)
}

func (s *service) DeleteRating(ctx context.Context, userID, checkinID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.requireOwner(ctx, userID, checkinID); err != nil {
		return err
	}
	return s.store.DeleteRating(ctx, checkinID)
}

func (s *service) Review(ctx context.Context, userID, checkinID uuid.UUID, review string) (*models.CheckinReview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, userID, checkinID); err != nil {
		return nil, err
	}
	return s.store.CreateReview(ctx, checkinID, review)
}

func (s *service) GetReview(ctx context.Context, checkinID uuid.UUID) (*models.CheckinReview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetReviewByCheckin(ctx, checkinID)
}

func (s *service) UpdateReview(ctx context.Context, userID, checkinID uuid.UUID, review string) (*models.CheckinReview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, userID, checkinID); err != nil {
		return nil, err
	}
	return s.store.UpdateReview(ctx, checkinID, review)
}

func (s *service) DeleteReview(ctx context.Context, userID, checkinID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.requireOwner(ctx, userID, checkinID); err != nil {
		return err
	}
	return s.store.DeleteReview(ctx, checkinID)
}

func (s *service) requireOwner(ctx context.Context, userID, checkinID uuid.UUID) error {
	owner, err := s.store.CheckinOwner(ctx, checkinID)
	if err != nil {
		return err
	}
	if owner != userID {
		return app.ErrForbidden
	}
	return nil
}
