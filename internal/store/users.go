package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"showgram/internal/models"
)

// GetUser retrieves a user by id, with their country when one is set.
func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var (
		u            models.User
		countryID    *uuid.UUID
		countryName  sql.NullString
		continent    sql.NullString
		subregion    sql.NullString
		countryEmoji sql.NullString
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT
			u.id, u.name, u.username, u.email, u.role, u.is_active,
			u.bio, u.city, u.country_id, u.photo_url, u.created_at, u.updated_at,
			c.name, c.continent, c.subregion, c.emoji
		FROM users u
		LEFT JOIN countries c ON u.country_id = c.id
		WHERE u.id = $1
	`, id).Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Role, &u.IsActive,
		&u.Bio, &u.City, &countryID, &u.PhotoURL, &u.CreatedAt, &u.UpdatedAt,
		&countryName, &continent, &subregion, &countryEmoji,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u.CountryID = countryID
	if countryID != nil {
		u.Country = &models.Country{
			ID:        *countryID,
			Name:      countryName.String,
			Continent: continent.String,
			Subregion: subregion.String,
			Emoji:     countryEmoji.String,
		}
	}
	return &u, nil
}

// GetUserByUsername retrieves a user by their unique username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, username, email, role, is_active,
		       bio, city, country_id, photo_url, created_at, updated_at
		FROM users
		WHERE username = $1
	`, username).Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Role, &u.IsActive,
		&u.Bio, &u.City, &u.CountryID, &u.PhotoURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

// UpdateProfile applies the caller's profile changes. When a country name is
// given the country row is created on first use inside the same transaction,
// so concurrent updates cannot race duplicate rows into existence.
func (s *Store) UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (*models.User, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var countryID *uuid.UUID
	if update.CountryName != "" {
		id, err := firstOrCreateCountry(ctx, tx, update.CountryName)
		if err != nil {
			return nil, err
		}
		countryID = &id
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE users
		SET name = $1, bio = $2, city = $3,
		    country_id = COALESCE($4, country_id),
		    photo_url = CASE WHEN $5 <> '' THEN $5 ELSE photo_url END,
		    updated_at = NOW()
		WHERE id = $6
	`, update.Name, update.Bio, update.City, countryID, update.PhotoURL, userID)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return s.GetUser(ctx, userID)
}

// firstOrCreateCountry resolves a country by name, creating a placeholder row
// when it does not exist yet. The no-op DO UPDATE makes RETURNING yield the
// existing id on conflict.
func firstOrCreateCountry(ctx context.Context, tx *sql.Tx, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRowContext(ctx, `
		INSERT INTO countries (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("first or create country: %w", err)
	}
	return id, nil
}
