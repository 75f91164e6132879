package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"showgram/internal/models"
)

var genreSortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

// ListGenres returns a page of genres plus the unfiltered total.
func (s *Store) ListGenres(ctx context.Context, filter models.CatalogFilter) ([]models.Genre, int, error) {
	query := `
		SELECT id, name, created_at, updated_at, COUNT(*) OVER() AS total
		FROM genres
		WHERE 1=1
	`
	args := []any{}
	argIndex := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	query += orderClause(genreSortColumns, filter.SortBy, filter.SortDirection, "name ASC")
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	page := models.PageParams{Page: filter.Page, PerPage: filter.PerPage}.Normalize()
	args = append(args, page.PerPage, page.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query genres: %w", err)
	}
	defer rows.Close()

	var (
		genres []models.Genre
		total  int
	)
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	return genres, total, rows.Err()
}

// GetGenre retrieves a genre by id.
func (s *Store) GetGenre(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	var g models.Genre
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM genres
		WHERE id = $1
	`, id).Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGenreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get genre: %w", err)
	}
	return &g, nil
}

// CreateGenre adds a genre.
func (s *Store) CreateGenre(ctx context.Context, name string) (*models.Genre, error) {
	var g models.Genre
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO genres (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`, name).Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert genre: %w", err)
	}
	return &g, nil
}

// UpdateGenre renames a genre.
func (s *Store) UpdateGenre(ctx context.Context, id uuid.UUID, name string) (*models.Genre, error) {
	var g models.Genre
	err := s.db.QueryRowContext(ctx, `
		UPDATE genres
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, created_at, updated_at
	`, name, id).Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGenreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update genre: %w", err)
	}
	return &g, nil
}

// DeleteGenre removes a genre.
func (s *Store) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrGenreNotFound
	}
	return nil
}
