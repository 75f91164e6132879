package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"showgram/internal/models"
)

// UpsertRating writes the checkin's rating, overwriting any previous value.
// One rating per checkin is guaranteed by the unique index the conflict
// clause targets.
func (s *Store) UpsertRating(ctx context.Context, checkinID uuid.UUID, rating float64) (*models.CheckinRating, error) {
	var r models.CheckinRating
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO checkin_ratings (checkin_id, rating)
		VALUES ($1, $2)
		ON CONFLICT (checkin_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = NOW()
		RETURNING id, checkin_id, rating, created_at, updated_at
	`, checkinID, rating).Scan(&r.ID, &r.CheckinID, &r.Rating, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrCheckinNotFound
		}
		return nil, fmt.Errorf("upsert rating: %w", err)
	}
	return &r, nil
}

// GetRatingByCheckin returns a checkin's rating.
func (s *Store) GetRatingByCheckin(ctx context.Context, checkinID uuid.UUID) (*models.CheckinRating, error) {
	var r models.CheckinRating
	err := s.db.QueryRowContext(ctx, `
		SELECT id, checkin_id, rating, created_at, updated_at
		FROM checkin_ratings
		WHERE checkin_id = $1
	`, checkinID).Scan(&r.ID, &r.CheckinID, &r.Rating, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRatingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return &r, nil
}

// DeleteRating removes a checkin's rating.
func (s *Store) DeleteRating(ctx context.Context, checkinID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM checkin_ratings WHERE checkin_id = $1
	`, checkinID)
	if err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrRatingNotFound
	}
	return nil
}
