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

var artistSortColumns = map[string]string{
	"name":        "a.name",
	"formed_year": "a.formed_year",
	"created_at":  "a.created_at",
}

const artistColumns = `
	a.id, a.name, a.description, a.country_id, a.formed_year, a.image_url,
	src.name, st.name, a.created_at, a.updated_at`

const artistJoins = `
	FROM artists a
	INNER JOIN sources src ON a.source_id = src.id
	INNER JOIN statuses st ON a.status_id = st.id`

func scanArtist(rows interface{ Scan(...any) error }, a *models.Artist, extra ...any) error {
	dest := []any{
		&a.ID, &a.Name, &a.Description, &a.CountryID, &a.FormedYear, &a.ImageURL,
		&a.Source, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	}
	return rows.Scan(append(dest, extra...)...)
}

// ListArtists returns a filtered page of artists with their genres.
func (s *Store) ListArtists(ctx context.Context, filter models.CatalogFilter) ([]models.Artist, int, error) {
	query := "SELECT" + artistColumns + ", COUNT(*) OVER() AS total" + artistJoins + " WHERE 1=1"
	args := []any{}
	argIndex := 1

	if filter.Status != "" {
		query += fmt.Sprintf(" AND st.name = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND a.name ILIKE $%d", argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	query += orderClause(artistSortColumns, filter.SortBy, filter.SortDirection, "a.name ASC")
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	page := models.PageParams{Page: filter.Page, PerPage: filter.PerPage}.Normalize()
	args = append(args, page.PerPage, page.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query artists: %w", err)
	}
	defer rows.Close()

	var (
		artists []models.Artist
		total   int
	)
	for rows.Next() {
		var a models.Artist
		if err := scanArtist(rows, &a, &total); err != nil {
			return nil, 0, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := s.attachArtistGenres(ctx, artists); err != nil {
		return nil, 0, err
	}
	return artists, total, nil
}

// GetArtist retrieves an artist with genres.
func (s *Store) GetArtist(ctx context.Context, id uuid.UUID) (*models.Artist, error) {
	var a models.Artist
	row := s.db.QueryRowContext(ctx, "SELECT"+artistColumns+artistJoins+" WHERE a.id = $1", id)
	err := scanArtist(row, &a)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}

	artists := []models.Artist{a}
	if err := s.attachArtistGenres(ctx, artists); err != nil {
		return nil, err
	}
	return &artists[0], nil
}

// CreateArtist inserts an artist, vivifying the named country and linking
// genres inside one transaction.
func (s *Store) CreateArtist(ctx context.Context, input models.ArtistInput) (*models.Artist, error) {
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

	var artistID uuid.UUID
	err = tx.QueryRowContext(ctx, `
		INSERT INTO artists (name, description, country_id, formed_year, image_url, source_id, status_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, input.Name, input.Description, countryID, input.FormedYear, input.ImageURL, sourceID, statusID).Scan(&artistID)
	if err != nil {
		return nil, fmt.Errorf("insert artist: %w", err)
	}

	if err := replaceArtistGenres(ctx, tx, artistID, input.GenreIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return s.GetArtist(ctx, artistID)
}

// UpdateArtist rewrites an artist's fields and genre links.
func (s *Store) UpdateArtist(ctx context.Context, id uuid.UUID, input models.ArtistInput) (*models.Artist, error) {
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
		UPDATE artists
		SET name = $1, description = $2, country_id = COALESCE($3, country_id),
		    formed_year = $4, image_url = $5, source_id = $6, status_id = $7,
		    updated_at = NOW()
		WHERE id = $8
	`, input.Name, input.Description, countryID, input.FormedYear, input.ImageURL, sourceID, statusID, id)
	if err != nil {
		return nil, fmt.Errorf("update artist: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrArtistNotFound
	}

	if err := replaceArtistGenres(ctx, tx, id, input.GenreIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return s.GetArtist(ctx, id)
}

// DeleteArtist removes an artist.
func (s *Store) DeleteArtist(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrArtistNotFound
	}
	return nil
}

func replaceArtistGenres(ctx context.Context, tx *sql.Tx, artistID uuid.UUID, genreIDs []uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM artist_genres WHERE artist_id = $1
	`, artistID); err != nil {
		return fmt.Errorf("detach genres: %w", err)
	}
	for _, genreID := range genreIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO artist_genres (artist_id, genre_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, artistID, genreID); err != nil {
			if isForeignKeyViolation(err) {
				return ErrGenreNotFound
			}
			return fmt.Errorf("attach genre: %w", err)
		}
	}
	return nil
}

// attachArtistGenres batch-loads the genres for the given artists. A timeline
// page can carry the same artist under several checkins, so the index keeps
// every occurrence and genres are attached to all of them.
func (s *Store) attachArtistGenres(ctx context.Context, artists []models.Artist) error {
	if len(artists) == 0 {
		return nil
	}

	placeholders := make([]string, len(artists))
	args := make([]any, len(artists))
	index := make(map[uuid.UUID][]*models.Artist, len(artists))
	for i := range artists {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = artists[i].ID
		index[artists[i].ID] = append(index[artists[i].ID], &artists[i])
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT ag.artist_id, g.id, g.name, g.created_at, g.updated_at
		FROM artist_genres ag
		INNER JOIN genres g ON ag.genre_id = g.id
		WHERE ag.artist_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY g.name ASC
	`, args...)
	if err != nil {
		return fmt.Errorf("query artist genres: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			artistID uuid.UUID
			g        models.Genre
		)
		if err := rows.Scan(&artistID, &g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return fmt.Errorf("scan artist genre: %w", err)
		}
		for _, a := range index[artistID] {
			a.Genres = append(a.Genres, g)
		}
	}
	return rows.Err()
}
