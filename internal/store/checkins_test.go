package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func TestCreateCheckinDuplicate(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO checkins (concert_id, user_id)")).
		WillReturnError(uniqueViolation())

	_, err := s.CreateCheckin(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrCheckinExists) {
		t.Fatalf("expected ErrCheckinExists, got %v", err)
	}
}

func TestCreateCheckinUnknownConcert(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO checkins (concert_id, user_id)")).
		WillReturnError(foreignKeyViolation())

	_, err := s.CreateCheckin(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrConcertNotFound) {
		t.Fatalf("expected ErrConcertNotFound, got %v", err)
	}
}

func TestDeleteCheckinMissing(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM checkins WHERE id = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeleteCheckin(context.Background(), uuid.New()); !errors.Is(err, ErrCheckinNotFound) {
		t.Fatalf("expected ErrCheckinNotFound, got %v", err)
	}
}

func TestAttachArtistCheckinOffLineup(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	checkinID := uuid.New()
	concertID := uuid.New()
	artistID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, concert_id, user_id, created_at, updated_at")).
		WithArgs(checkinID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "concert_id", "user_id", "created_at", "updated_at"}).
			AddRow(checkinID.String(), concertID.String(), uuid.New().String(), now(), now()))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(concertID, artistID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := s.AttachArtistCheckin(context.Background(), checkinID, artistID)
	if !errors.Is(err, ErrArtistNotAtConcert) {
		t.Fatalf("expected ErrArtistNotAtConcert, got %v", err)
	}
}

func TestAttachArtistCheckinDuplicate(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	checkinID := uuid.New()
	concertID := uuid.New()
	artistID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, concert_id, user_id, created_at, updated_at")).
		WithArgs(checkinID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "concert_id", "user_id", "created_at", "updated_at"}).
			AddRow(checkinID.String(), concertID.String(), uuid.New().String(), now(), now()))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(concertID, artistID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO artist_checkins (checkin_id, artist_id)")).
		WillReturnError(uniqueViolation())

	_, err := s.AttachArtistCheckin(context.Background(), checkinID, artistID)
	if !errors.Is(err, ErrArtistCheckinExists) {
		t.Fatalf("expected ErrArtistCheckinExists, got %v", err)
	}
}
