package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"showgram/internal/models"
)

type execer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// sourceIDByName resolves a provenance string (manual|api) to its row id.
func sourceIDByName(ctx context.Context, q execer, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.QueryRowContext(ctx, `SELECT id FROM sources WHERE name = $1`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, ErrUnknownSource
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("lookup source: %w", err)
	}
	return id, nil
}

// statusIDByName resolves a moderation string to its row id.
func statusIDByName(ctx context.Context, q execer, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.QueryRowContext(ctx, `SELECT id FROM statuses WHERE name = $1`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, ErrUnknownStatus
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("lookup status: %w", err)
	}
	return id, nil
}

// orderClause builds an ORDER BY from a whitelist so user input never reaches
// the SQL text directly. The fallback is a complete ordering expression and is
// used as-is when sort_by is absent or not whitelisted.
func orderClause(allowed map[string]string, sortBy, direction, fallback string) string {
	col, ok := allowed[sortBy]
	if !ok {
		return " ORDER BY " + fallback
	}
	dir := "DESC"
	if strings.EqualFold(direction, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

// EnsureLookupRows seeds the source and status lookup tables.
func (s *Store) EnsureLookupRows(ctx context.Context) error {
	for _, name := range []string{models.SourceManual, models.SourceAPI} {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO sources (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING
		`, name); err != nil {
			return fmt.Errorf("seed source %q: %w", name, err)
		}
	}
	for _, name := range []string{models.StatusPendingApproval, models.StatusVerified, models.StatusRejected} {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO statuses (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING
		`, name); err != nil {
			return fmt.Errorf("seed status %q: %w", name, err)
		}
	}
	return nil
}

// ListCountries returns all countries ordered by name.
func (s *Store) ListCountries(ctx context.Context) ([]models.Country, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, continent, subregion, emoji, created_at, updated_at
		FROM countries
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select countries: %w", err)
	}
	defer rows.Close()

	var countries []models.Country
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Continent, &c.Subregion, &c.Emoji, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}
