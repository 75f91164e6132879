package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"showgram/internal/models"
)

var locationSortColumns = map[string]string{
	"name":       "l.name",
	"city":       "l.city",
	"created_at": "l.created_at",
}

const locationColumns = `
	l.id, l.name, l.city, l.country_id, src.name, st.name, l.created_at, l.updated_at`

const locationJoins = `
	FROM locations l
	INNER JOIN sources src ON l.source_id = src.id
	INNER JOIN statuses st ON l.status_id = st.id`

// ListLocations returns a filtered page of locations.
func (s *Store) ListLocations(ctx context.Context, filter models.CatalogFilter) ([]models.Location, int, error) {
	query := "SELECT" + locationColumns + ", COUNT(*) OVER() AS total" + locationJoins + " WHERE 1=1"
	args := []any{}
	argIndex := 1

	if filter.Status != "" {
		query += fmt.Sprintf(" AND st.name = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (l.name ILIKE $%d OR l.city ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	query += orderClause(locationSortColumns, filter.SortBy, filter.SortDirection, "l.name ASC")
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	page := models.PageParams{Page: filter.Page, PerPage: filter.PerPage}.Normalize()
	args = append(args, page.PerPage, page.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query locations: %w", err)
	}
	defer rows.Close()

	var (
		locations []models.Location
		total     int
	)
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.City, &l.CountryID, &l.Source, &l.Status,
			&l.CreatedAt, &l.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, total, rows.Err()
}

// GetLocation retrieves a location by id.
func (s *Store) GetLocation(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	var l models.Location
	err := s.db.QueryRowContext(ctx, "SELECT"+locationColumns+locationJoins+" WHERE l.id = $1", id).Scan(
		&l.ID, &l.Name, &l.City, &l.CountryID, &l.Source, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// CreateLocation inserts a location, vivifying the named country in the same
// transaction.
func (s *Store) CreateLocation(ctx context.Context, input models.LocationInput) (*models.Location, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	sourceID, err := sourceIDByName(ctx, tx, input.Source)
	if err != nil {
		return nil, err
	}
	statusID, err := statusIDByName(ctx, tx, input.Status)
	if err != nil {
		return nil, err
	}

	var countryID *uuid.UUID
	if input.CountryName != "" {
		id, err := firstOrCreateCountry(ctx, tx, input.CountryName)
		if err != nil {
			return nil, err
		}
		countryID = &id
	}

	var locationID uuid.UUID
	err = tx.QueryRowContext(ctx, `
		INSERT INTO locations (name, city, country_id, source_id, status_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, input.Name, input.City, countryID, sourceID, statusID).Scan(&locationID)
	if err != nil {
		return nil, fmt.Errorf("insert location: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return s.GetLocation(ctx, locationID)
}

// UpdateLocation rewrites a location's fields.
func (s *Store) UpdateLocation(ctx context.Context, id uuid.UUID, input models.LocationInput) (*models.Location, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	sourceID, err := sourceIDByName(ctx, tx, input.Source)
	if err != nil {
		return nil, err
	}
	statusID, err := statusIDByName(ctx, tx, input.Status)
	if err != nil {
		return nil, err
	}

	var countryID *uuid.UUID
	if input.CountryName != "" {
		cid, err := firstOrCreateCountry(ctx, tx, input.CountryName)
		if err != nil {
			return nil, err
		}
		countryID = &cid
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE locations
		SET name = $1, city = $2, country_id = COALESCE($3, country_id),
		    source_id = $4, status_id = $5, updated_at = NOW()
		WHERE id = $6
	`, input.Name, input.City, countryID, sourceID, statusID, id)
	if err != nil {
		return nil, fmt.Errorf("update location: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrLocationNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return s.GetLocation(ctx, id)
}

// DeleteLocation removes a location.
func (s *Store) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrLocationNotFound
	}
	return nil
}
