package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"showgram/internal/models"
)

// CreateLike records a like; the unique index on (checkin_id, user_id)
// rejects double-liking atomically.
func (s *Store) CreateLike(ctx context.Context, checkinID, userID uuid.UUID) (*models.CheckinLike, error) {
	var l models.CheckinLike
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO checkin_likes (checkin_id, user_id)
		VALUES ($1, $2)
		RETURNING id, checkin_id, user_id, created_at
	`, checkinID, userID).Scan(&l.ID, &l.CheckinID, &l.UserID, &l.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyLiked
		}
		if isForeignKeyViolation(err) {
			return nil, ErrCheckinNotFound
		}
		return nil, fmt.Errorf("insert like: %w", err)
	}
	return &l, nil
}

// GetLike retrieves a like row.
func (s *Store) GetLike(ctx context.Context, id uuid.UUID) (*models.CheckinLike, error) {
	var l models.CheckinLike
	err := s.db.QueryRowContext(ctx, `
		SELECT id, checkin_id, user_id, created_at
		FROM checkin_likes
		WHERE id = $1
	`, id).Scan(&l.ID, &l.CheckinID, &l.UserID, &l.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLikeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get like: %w", err)
	}
	return &l, nil
}

// DeleteLike removes a like row.
func (s *Store) DeleteLike(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM checkin_likes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrLikeNotFound
	}
	return nil
}

// ListLikesByCheckin returns a checkin's likes with the liking users.
func (s *Store) ListLikesByCheckin(ctx context.Context, checkinID uuid.UUID) ([]models.CheckinLike, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT cl.id, cl.checkin_id, cl.user_id, cl.created_at,
		       u.id, u.name, u.username, u.photo_url
		FROM checkin_likes cl
		INNER JOIN users u ON cl.user_id = u.id
		WHERE cl.checkin_id = $1
		ORDER BY cl.created_at DESC
	`, checkinID)
	if err != nil {
		return nil, fmt.Errorf("query likes: %w", err)
	}
	defer rows.Close()

	var likes []models.CheckinLike
	for rows.Next() {
		var (
			l models.CheckinLike
			u models.UserSummary
		)
		if err := rows.Scan(&l.ID, &l.CheckinID, &l.UserID, &l.CreatedAt,
			&u.ID, &u.Name, &u.Username, &u.PhotoURL); err != nil {
			return nil, fmt.Errorf("scan like: %w", err)
		}
		l.User = &u
		likes = append(likes, l)
	}
	return likes, rows.Err()
}

// CreateComment adds a comment on a checkin.
func (s *Store) CreateComment(ctx context.Context, checkinID, userID uuid.UUID, comment string) (*models.CheckinComment, error) {
	var c models.CheckinComment
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO checkin_comments (checkin_id, user_id, comment)
		VALUES ($1, $2, $3)
		RETURNING id, checkin_id, user_id, comment, created_at, updated_at
	`, checkinID, userID, comment).Scan(
		&c.ID, &c.CheckinID, &c.UserID, &c.Comment, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrCheckinNotFound
		}
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return &c, nil
}

// GetComment retrieves a comment row.
func (s *Store) GetComment(ctx context.Context, id uuid.UUID) (*models.CheckinComment, error) {
	var c models.CheckinComment
	err := s.db.QueryRowContext(ctx, `
		SELECT id, checkin_id, user_id, comment, created_at, updated_at
		FROM checkin_comments
		WHERE id = $1
	`, id).Scan(&c.ID, &c.CheckinID, &c.UserID, &c.Comment, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}

// UpdateComment rewrites a comment's text.
func (s *Store) UpdateComment(ctx context.Context, id uuid.UUID, comment string) (*models.CheckinComment, error) {
	var c models.CheckinComment
	err := s.db.QueryRowContext(ctx, `
		UPDATE checkin_comments
		SET comment = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, checkin_id, user_id, comment, created_at, updated_at
	`, comment, id).Scan(&c.ID, &c.CheckinID, &c.UserID, &c.Comment, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return &c, nil
}

// DeleteComment removes a comment row.
func (s *Store) DeleteComment(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM checkin_comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// ListCommentsByCheckin returns a checkin's comments with their authors,
// oldest first.
func (s *Store) ListCommentsByCheckin(ctx context.Context, checkinID uuid.UUID) ([]models.CheckinComment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT cc.id, cc.checkin_id, cc.user_id, cc.comment, cc.created_at, cc.updated_at,
		       u.id, u.name, u.username, u.photo_url
		FROM checkin_comments cc
		INNER JOIN users u ON cc.user_id = u.id
		WHERE cc.checkin_id = $1
		ORDER BY cc.created_at ASC
	`, checkinID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var comments []models.CheckinComment
	for rows.Next() {
		var (
			c models.CheckinComment
			u models.UserSummary
		)
		if err := rows.Scan(&c.ID, &c.CheckinID, &c.UserID, &c.Comment, &c.CreatedAt, &c.UpdatedAt,
			&u.ID, &u.Name, &u.Username, &u.PhotoURL); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		c.User = &u
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
