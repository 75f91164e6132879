package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"showgram/internal/models"
)

// CreateCheckin records that the user attended the concert. The unique index
// on (user_id, concert_id) makes the one-checkin-per-concert rule atomic even
// under concurrent requests.
func (s *Store) CreateCheckin(ctx context.Context, userID, concertID uuid.UUID) (*models.Checkin, error) {
	var c models.Checkin
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO checkins (concert_id, user_id)
		VALUES ($1, $2)
		RETURNING id, concert_id, user_id, created_at, updated_at
	`, concertID, userID).Scan(&c.ID, &c.ConcertID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCheckinExists
		}
		if isForeignKeyViolation(err) {
			return nil, ErrConcertNotFound
		}
		return nil, fmt.Errorf("insert checkin: %w", err)
	}

	concert, err := s.GetConcert(ctx, concertID)
	if err != nil {
		return nil, err
	}
	c.Concert = concert
	return &c, nil
}

// GetCheckin retrieves a checkin with its concert and event.
func (s *Store) GetCheckin(ctx context.Context, id uuid.UUID) (*models.Checkin, error) {
	var c models.Checkin
	err := s.db.QueryRowContext(ctx, `
		SELECT id, concert_id, user_id, created_at, updated_at
		FROM checkins
		WHERE id = $1
	`, id).Scan(&c.ID, &c.ConcertID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCheckinNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get checkin: %w", err)
	}

	concert, err := s.GetConcert(ctx, c.ConcertID)
	if err != nil {
		return nil, err
	}
	c.Concert = concert
	return &c, nil
}

// ListCheckinsByUser returns a page of the user's checkins, newest first.
func (s *Store) ListCheckinsByUser(ctx context.Context, userID uuid.UUID, page models.PageParams) ([]models.CheckinDetail, int, error) {
	return s.listCheckinPage(ctx, []uuid.UUID{userID}, page)
}

// DeleteCheckin removes a checkin; FK cascades take the children with it.
func (s *Store) DeleteCheckin(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM checkins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete checkin: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrCheckinNotFound
	}
	return nil
}

// AttachArtistCheckin links an artist the user saw to their checkin. The
// caller has already verified ownership; the lineup-membership rule is
// enforced here against the concert's own artist list.
func (s *Store) AttachArtistCheckin(ctx context.Context, checkinID, artistID uuid.UUID) (*models.ArtistCheckin, error) {
	checkin, err := s.getCheckinRow(ctx, checkinID)
	if err != nil {
		return nil, err
	}

	onLineup, err := s.ConcertHasArtist(ctx, checkin.ConcertID, artistID)
	if err != nil {
		return nil, err
	}
	if !onLineup {
		return nil, ErrArtistNotAtConcert
	}

	var ac models.ArtistCheckin
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO artist_checkins (checkin_id, artist_id)
		VALUES ($1, $2)
		RETURNING id, checkin_id, artist_id, created_at
	`, checkinID, artistID).Scan(&ac.ID, &ac.CheckinID, &ac.ArtistID, &ac.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrArtistCheckinExists
		}
		if isForeignKeyViolation(err) {
			return nil, ErrArtistNotFound
		}
		return nil, fmt.Errorf("insert artist checkin: %w", err)
	}
	return &ac, nil
}

// DetachArtistCheckin removes an artist link from a checkin.
func (s *Store) DetachArtistCheckin(ctx context.Context, checkinID, artistID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM artist_checkins
		WHERE checkin_id = $1 AND artist_id = $2
	`, checkinID, artistID)
	if err != nil {
		return fmt.Errorf("delete artist checkin: %w", err)
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

// ListCheckinArtists returns the artists confirmed on a checkin.
func (s *Store) ListCheckinArtists(ctx context.Context, checkinID uuid.UUID) ([]models.Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT`+artistColumns+`
		FROM artist_checkins ac
		INNER JOIN artists a ON ac.artist_id = a.id
		INNER JOIN sources src ON a.source_id = src.id
		INNER JOIN statuses st ON a.status_id = st.id
		WHERE ac.checkin_id = $1
		ORDER BY a.name ASC
	`, checkinID)
	if err != nil {
		return nil, fmt.Errorf("query checkin artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		var a models.Artist
		if err := scanArtist(rows, &a); err != nil {
			return nil, fmt.Errorf("scan checkin artist: %w", err)
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

// AddCheckinPhoto attaches an uploaded photo URL to a checkin.
func (s *Store) AddCheckinPhoto(ctx context.Context, checkinID uuid.UUID, photoURL string) (*models.CheckinPhoto, error) {
	var p models.CheckinPhoto
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO checkin_photos (checkin_id, photo_url)
		VALUES ($1, $2)
		RETURNING id, checkin_id, photo_url, created_at
	`, checkinID, photoURL).Scan(&p.ID, &p.CheckinID, &p.PhotoURL, &p.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrCheckinNotFound
		}
		return nil, fmt.Errorf("insert checkin photo: %w", err)
	}
	return &p, nil
}

// GetCheckinPhoto retrieves a photo row.
func (s *Store) GetCheckinPhoto(ctx context.Context, id uuid.UUID) (*models.CheckinPhoto, error) {
	var p models.CheckinPhoto
	err := s.db.QueryRowContext(ctx, `
		SELECT id, checkin_id, photo_url, created_at
		FROM checkin_photos
		WHERE id = $1
	`, id).Scan(&p.ID, &p.CheckinID, &p.PhotoURL, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCheckinNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get checkin photo: %w", err)
	}
	return &p, nil
}

// DeleteCheckinPhoto removes a photo row.
func (s *Store) DeleteCheckinPhoto(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM checkin_photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete checkin photo: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrCheckinNotFound
	}
	return nil
}

// getCheckinRow fetches the bare checkin row without hydrating the concert.
func (s *Store) getCheckinRow(ctx context.Context, id uuid.UUID) (*models.Checkin, error) {
	var c models.Checkin
	err := s.db.QueryRowContext(ctx, `
		SELECT id, concert_id, user_id, created_at, updated_at
		FROM checkins
		WHERE id = $1
	`, id).Scan(&c.ID, &c.ConcertID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCheckinNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get checkin: %w", err)
	}
	return &c, nil
}

// CheckinOwner returns the owning user id of a checkin.
func (s *Store) CheckinOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	c, err := s.getCheckinRow(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	return c.UserID, nil
}
