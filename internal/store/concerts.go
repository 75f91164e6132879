package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"showgram/internal/models"
)

var concertSortColumns = map[string]string{
	"date":       "c.date",
	"created_at": "c.created_at",
}

const concertColumns = `
	c.id, c.event_id, c.location_id, c.date, src.name, st.name, c.created_at, c.updated_at,
	e.id, e.name, e.start_date, e.end_date, e.type, e.description, e.image_url,
	esrc.name, est.name, e.created_at, e.updated_at,
	l.id, l.name, l.city, l.country_id, lsrc.name, lst.name, l.created_at, l.updated_at`

const concertJoins = `
	FROM concerts c
	INNER JOIN sources src ON c.source_id = src.id
	INNER JOIN statuses st ON c.status_id = st.id
	INNER JOIN events e ON c.event_id = e.id
	INNER JOIN sources esrc ON e.source_id = esrc.id
	INNER JOIN statuses est ON e.status_id = est.id
	INNER JOIN locations l ON c.location_id = l.id
	INNER JOIN sources lsrc ON l.source_id = lsrc.id
	INNER JOIN statuses lst ON l.status_id = lst.id`

func scanConcert(row interface{ Scan(...any) error }, c *models.Concert, extra ...any) error {
	c.Event = &models.Event{}
	c.Location = &models.Location{}
	dest := []any{
		&c.ID, &c.EventID, &c.LocationID, &c.Date, &c.Source, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		&c.Event.ID, &c.Event.Name, &c.Event.StartDate, &c.Event.EndDate, &c.Event.Type,
		&c.Event.Description, &c.Event.ImageURL, &c.Event.Source, &c.Event.Status,
		&c.Event.CreatedAt, &c.Event.UpdatedAt,
		&c.Location.ID, &c.Location.Name, &c.Location.City, &c.Location.CountryID,
		&c.Location.Source, &c.Location.Status, &c.Location.CreatedAt, &c.Location.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

// ListConcerts returns a filtered page of concerts with event and location.
func (s *Store) ListConcerts(ctx context.Context, filter models.CatalogFilter) ([]models.Concert, int, error) {
	query := "SELECT" + concertColumns + ", COUNT(*) OVER() AS total" + concertJoins + " WHERE 1=1"
	args := []any{}
	argIndex := 1

	if filter.Status != "" {
		query += fmt.Sprintf(" AND st.name = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (e.name ILIKE $%d OR l.name ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	query += orderClause(concertSortColumns, filter.SortBy, filter.SortDirection, "c.date DESC")
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	page := models.PageParams{Page: filter.Page, PerPage: filter.PerPage}.Normalize()
	args = append(args, page.PerPage, page.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query concerts: %w", err)
	}
	defer rows.Close()

	var (
		concerts []models.Concert
		total    int
	)
	for rows.Next() {
		var c models.Concert
		if err := scanConcert(rows, &c, &total); err != nil {
			return nil, 0, fmt.Errorf("scan concert: %w", err)
		}
		concerts = append(concerts, c)
	}
	return concerts, total, rows.Err()
}

// GetConcert retrieves a concert with event, location and lineup.
func (s *Store) GetConcert(ctx context.Context, id uuid.UUID) (*models.Concert, error) {
	var c models.Concert
	row := s.db.QueryRowContext(ctx, "SELECT"+concertColumns+concertJoins+" WHERE c.id = $1", id)
	err := scanConcert(row, &c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConcertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get concert: %w", err)
	}

	artists, err := s.ListConcertArtists(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Artists = artists
	return &c, nil
}

// ListConcertArtists returns a concert's lineup.
func (s *Store) ListConcertArtists(ctx context.Context, concertID uuid.UUID) ([]models.Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT`+artistColumns+`
		FROM artist_concert ac
		INNER JOIN artists a ON ac.artist_id = a.id
		INNER JOIN sources src ON a.source_id = src.id
		INNER JOIN statuses st ON a.status_id = st.id
		WHERE ac.concert_id = $1
		ORDER BY a.name ASC
	`, concertID)
	if err != nil {
		return nil, fmt.Errorf("query concert artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		var a models.Artist
		if err := scanArtist(rows, &a); err != nil {
			return nil, fmt.Errorf("scan concert artist: %w", err)
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

// ConcertHasArtist reports whether the artist is on the concert's lineup.
func (s *Store) ConcertHasArtist(ctx context.Context, concertID, artistID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM artist_concert
			WHERE concert_id = $1 AND artist_id = $2
		)
	`, concertID, artistID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check concert artist: %w", err)
	}
	return exists, nil
}

// CreateConcert inserts a concert and its lineup in one transaction.
func (s *Store) CreateConcert(ctx context.Context, input models.ConcertInput) (*models.Concert, error) {
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

	var concertID uuid.UUID
	err = tx.QueryRowContext(ctx, `
		INSERT INTO concerts (event_id, location_id, date, source_id, status_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, input.EventID, input.LocationID, input.Date, sourceID, statusID).Scan(&concertID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("insert concert: %w", err)
	}

	if err := replaceConcertArtists(ctx, tx, concertID, input.ArtistIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return s.GetConcert(ctx, concertID)
}

// UpdateConcert rewrites a concert's fields and lineup.
func (s *Store) UpdateConcert(ctx context.Context, id uuid.UUID, input models.ConcertInput) (*models.Concert, error) {
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

	result, err := tx.ExecContext(ctx, `
		UPDATE concerts
		SET event_id = $1, location_id = $2, date = $3,
		    source_id = $4, status_id = $5, updated_at = NOW()
		WHERE id = $6
	`, input.EventID, input.LocationID, input.Date, sourceID, statusID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("update concert: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrConcertNotFound
	}

	if err := replaceConcertArtists(ctx, tx, id, input.ArtistIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return s.GetConcert(ctx, id)
}

// DeleteConcert removes a concert and, via FK cascade, its checkins.
func (s *Store) DeleteConcert(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM concerts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete concert: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrConcertNotFound
	}
	return nil
}

func replaceConcertArtists(ctx context.Context, tx *sql.Tx, concertID uuid.UUID, artistIDs []uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM artist_concert WHERE concert_id = $1
	`, concertID); err != nil {
		return fmt.Errorf("detach lineup: %w", err)
	}
	for _, artistID := range artistIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO artist_concert (artist_id, concert_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, artistID, concertID); err != nil {
			if isForeignKeyViolation(err) {
				return ErrArtistNotFound
			}
			return fmt.Errorf("attach lineup: %w", err)
		}
	}
	return nil
}
