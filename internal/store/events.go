package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"showgram/internal/models"
)

var eventSortColumns = map[string]string{
	"name":       "e.name",
	"start_date": "e.start_date",
	"created_at": "e.created_at",
}

const eventColumns = `
	e.id, e.name, e.start_date, e.end_date, e.type, e.description, e.image_url,
	src.name, st.name, e.created_at, e.updated_at`

const eventJoins = `
	FROM events e
	INNER JOIN sources src ON e.source_id = src.id
	INNER JOIN statuses st ON e.status_id = st.id`

func scanEvent(row interface{ Scan(...any) error }, e *models.Event, extra ...any) error {
	dest := []any{
		&e.ID, &e.Name, &e.StartDate, &e.EndDate, &e.Type, &e.Description, &e.ImageURL,
		&e.Source, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

// ListEvents returns a filtered page of events.
func (s *Store) ListEvents(ctx context.Context, filter models.CatalogFilter) ([]models.Event, int, error) {
	query := "SELECT" + eventColumns + ", COUNT(*) OVER() AS total" + eventJoins + " WHERE 1=1"
	args := []any{}
	argIndex := 1

	if filter.Status != "" {
		query += fmt.Sprintf(" AND st.name = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND e.name ILIKE $%d", argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	query += orderClause(eventSortColumns, filter.SortBy, filter.SortDirection, "e.start_date DESC NULLS LAST")
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	page := models.PageParams{Page: filter.Page, PerPage: filter.PerPage}.Normalize()
	args = append(args, page.PerPage, page.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var (
		events []models.Event
		total  int
	)
	for rows.Next() {
		var e models.Event
		if err := scanEvent(rows, &e, &total); err != nil {
			return nil, 0, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

// GetEvent retrieves an event by id.
func (s *Store) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var e models.Event
	row := s.db.QueryRowContext(ctx, "SELECT"+eventColumns+eventJoins+" WHERE e.id = $1", id)
	err := scanEvent(row, &e)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// CreateEvent inserts an event.
func (s *Store) CreateEvent(ctx context.Context, input models.EventInput) (*models.Event, error) {
	sourceID, err := sourceIDByName(ctx, s.db, input.Source)
	if err != nil {
		return nil, err
	}
	statusID, err := statusIDByName(ctx, s.db, input.Status)
	if err != nil {
		return nil, err
	}

	var eventID uuid.UUID
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO events (name, start_date, end_date, type, description, image_url, source_id, status_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, input.Name, input.StartDate, input.EndDate, input.Type, input.Description,
		input.ImageURL, sourceID, statusID).Scan(&eventID)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	return s.GetEvent(ctx, eventID)
}

// UpdateEvent rewrites an event's fields.
func (s *Store) UpdateEvent(ctx context.Context, id uuid.UUID, input models.EventInput) (*models.Event, error) {
	sourceID, err := sourceIDByName(ctx, s.db, input.Source)
	if err != nil {
		return nil, err
	}
	statusID, err := statusIDByName(ctx, s.db, input.Status)
	if err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE events
		SET name = $1, start_date = $2, end_date = $3, type = $4,
		    description = $5, image_url = $6, source_id = $7, status_id = $8,
		    updated_at = NOW()
		WHERE id = $9
	`, input.Name, input.StartDate, input.EndDate, input.Type, input.Description,
		input.ImageURL, sourceID, statusID, id)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrEventNotFound
	}

	return s.GetEvent(ctx, id)
}

// DeleteEvent removes an event and, via FK cascade, its concerts.
func (s *Store) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrEventNotFound
	}
	return nil
}
