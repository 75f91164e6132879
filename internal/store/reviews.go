package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"showgram/internal/models"
)

// CreateReview adds the checkin's single review. Unlike ratings there is no
// upsert: a second create is a conflict.
func (s *Store) CreateReview(ctx context.Context, checkinID uuid.UUID, review string) (*models.CheckinReview, error) {
	var r models.CheckinReview
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO checkin_reviews (checkin_id, review)
		VALUES ($1, $2)
		RETURNING id, checkin_id, review, created_at, updated_at
	`, checkinID, review).Scan(&r.ID, &r.CheckinID, &r.Review, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrReviewExists
		}
		if isForeignKeyViolation(err) {
			return nil, ErrCheckinNotFound
		}
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return &r, nil
}

// GetReviewByCheckin returns a checkin's review.
func (s *Store) GetReviewByCheckin(ctx context.Context, checkinID uuid.UUID) (*models.CheckinReview, error) {
	var r models.CheckinReview
	err := s.db.QueryRowContext(ctx, `
		SELECT id, checkin_id, review, created_at, updated_at
		FROM checkin_reviews
		WHERE checkin_id = $1
	`, checkinID).Scan(&r.ID, &r.CheckinID, &r.Review, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &r, nil
}

// UpdateReview rewrites a checkin's review text.
func (s *Store) UpdateReview(ctx context.Context, checkinID uuid.UUID, review string) (*models.CheckinReview, error) {
	var r models.CheckinReview
	err := s.db.QueryRowContext(ctx, `
		UPDATE checkin_reviews
		SET review = $1, updated_at = NOW()
		WHERE checkin_id = $2
		RETURNING id, checkin_id, review, created_at, updated_at
	`, review, checkinID).Scan(&r.ID, &r.CheckinID, &r.Review, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	return &r, nil
}

// DeleteReview removes a checkin's review.
func (s *Store) DeleteReview(ctx context.Context, checkinID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM checkin_reviews WHERE checkin_id = $1
	`, checkinID)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrReviewNotFound
	}
	return nil
}
