// Package reactions covers likes and comments on checkins. Unlike the other
// checkin sub-resources these belong to their author, not the checkin owner.
package reactions

import (
	"context"

	"github.com/google/uuid"

	"showgram/internal/app"
	"showgram/internal/models"
)

// Store defines persistence operations for likes and comments.
type Store interface {
	CreateLike(ctx context.Context, checkinID, userID uuid.UUID) (*models.CheckinLike, error)
	GetLike(ctx context.Context, id uuid.UUID) (*models.CheckinLike, error)
	DeleteLike(ctx context.Context, id uuid.UUID) error
	ListLikesByCheckin(ctx context.Context, checkinID uuid.UUID) ([]models.CheckinLike, error)
	CreateComment(ctx context.Context, checkinID, userID uuid.UUID, comment string) (*models.CheckinComment, error)
	GetComment(ctx context.Context, id uuid.UUID) (*models.CheckinComment, error)
	UpdateComment(ctx context.Context, id uuid.UUID, comment string) (*models.CheckinComment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
	ListCommentsByCheckin(ctx context.Context, checkinID uuid.UUID) ([]models.CheckinComment, error)
}

// Service coordinates like and comment workflows.
type Service interface {
	Like(ctx context.Context, userID, checkinID uuid.UUID) (*models.CheckinLike, error)
	Unlike(ctx context.Context, userID, likeID uuid.UUID) error
	Likes(ctx context.Context, checkinID uuid.UUID) ([]models.CheckinLike, error)
	Comment(ctx context.Context, userID, checkinID uuid.UUID, comment string) (*models.CheckinComment, error)
	UpdateComment(ctx context.Context, userID, commentID uuid.UUID, comment string) (*models.CheckinComment, error)
	DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error
	Comments(ctx context.Context, checkinID uuid.UUID) ([]models.CheckinComment, error)
}

type service struct {
	store Store
}

// New constructs a reactions Service.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Like(ctx context.Context, userID, checkinID uuid.UUID) (*models.CheckinLike, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateLike(ctx, checkinID, userID)
}

// Unlike removes a like; only its creator may do so.
func (s *service) Unlike(ctx context.Context, userID, likeID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	like, err := s.store.GetLike(ctx, likeID)
	if err != nil {
		return err
	}
	if like.UserID != userID {
		return app.ErrForbidden
	}
	return s.store.DeleteLike(ctx, likeID)
}

func (s *service) Likes(ctx context.Context, checkinID uuid.UUID) ([]models.CheckinLike, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListLikesByCheckin(ctx, checkinID)
}

// Comment lets any authenticated user comment on any checkin.
func (s *service) Comment(ctx context.Context, userID, checkinID uuid.UUID, comment string) (*models.CheckinComment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateComment(ctx, checkinID, userID, comment)
}

// UpdateComment is restricted to the comment's author, not the checkin owner.
func (s *service) UpdateComment(ctx context.Context, userID, commentID uuid.UUID, comment string) (*models.CheckinComment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	existing, err := s.store.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, app.ErrForbidden
	}
	return s.store.UpdateComment(ctx, commentID, comment)
}

func (s *service) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	existing, err := s.store.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return app.ErrForbidden
	}
	return s.store.DeleteComment(ctx, commentID)
}

func (s *service) Comments(ctx context.Context, checkinID uuid.UUID) ([]models.CheckinComment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListCommentsByCheckin(ctx, checkinID)
}
