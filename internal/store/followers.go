package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"showgram/internal/models"
)

// CreateFollow inserts a follow edge. Duplicate edges are rejected by the
// unique index on (follower_id, followed_id).
func (s *Store) CreateFollow(ctx context.Context, followerID, followedID uuid.UUID) (*models.Follower, error) {
	var f models.Follower
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO followers (follower_id, followed_id)
		VALUES ($1, $2)
		RETURNING id, follower_id, followed_id, created_at
	`, followerID, followedID).Scan(&f.ID, &f.FollowerID, &f.FollowedID, &f.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyFollowing
		}
		if isForeignKeyViolation(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("insert follow: %w", err)
	}
	return &f, nil
}

// DeleteFollow removes the caller's edge to the followed user.
func (s *Store) DeleteFollow(ctx context.Context, followerID, followedID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM followers
		WHERE follower_id = $1 AND followed_id = $2
	`, followerID, followedID)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrFollowNotFound
	}
	return nil
}

// ListFollowing returns the users the given user follows.
func (s *Store) ListFollowing(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error) {
	return s.listFollowEdge(ctx, `
		SELECT u.id, u.name, u.username, u.photo_url
		FROM followers f
		INNER JOIN users u ON f.followed_id = u.id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC
	`, userID)
}

// ListFollowers returns the users following the given user.
func (s *Store) ListFollowers(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error) {
	return s.listFollowEdge(ctx, `
		SELECT u.id, u.name, u.username, u.photo_url
		FROM followers f
		INNER JOIN users u ON f.follower_id = u.id
		WHERE f.followed_id = $1
		ORDER BY f.created_at DESC
	`, userID)
}

// FollowingIDs returns the ids of everyone the user follows.
func (s *Store) FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT followed_id
		FROM followers
		WHERE follower_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select following ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan following id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) listFollowEdge(ctx context.Context, query string, userID uuid.UUID) ([]models.UserSummary, error) {
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select follow edges: %w", err)
	}
	defer rows.Close()

	var users []models.UserSummary
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.PhotoURL); err != nil {
			return nil, fmt.Errorf("scan follow edge: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
