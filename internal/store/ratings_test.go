package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func TestUpsertRatingOverwrites(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	checkinID := uuid.New()
	ratingID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (checkin_id)")).
		WithArgs(checkinID, 4.5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "checkin_id", "rating", "created_at", "updated_at"}).
			AddRow(ratingID.String(), checkinID.String(), 4.5, now(), now()))

	rating, err := s.UpsertRating(context.Background(), checkinID, 4.5)
	if err != nil {
		t.Fatalf("UpsertRating: %v", err)
	}
	if rating.Rating != 4.5 {
		t.Fatalf("expected rating 4.5, got %v", rating.Rating)
	}
}

func TestUpsertRatingUnknownCheckin(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO checkin_ratings (checkin_id, rating)")).
		WillReturnError(foreignKeyViolation())

	_, err := s.UpsertRating(context.Background(), uuid.New(), 3)
	if !errors.Is(err, ErrCheckinNotFound) {
		t.Fatalf("expected ErrCheckinNotFound, got %v", err)
	}
}

func TestDeleteRatingMissing(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM checkin_ratings WHERE checkin_id = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeleteRating(context.Background(), uuid.New()); !errors.Is(err, ErrRatingNotFound) {
		t.Fatalf("expected ErrRatingNotFound, got %v", err)
	}
}

func TestCreateReviewDuplicate(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO checkin_reviews (checkin_id, review)")).
		WillReturnError(uniqueViolation())

	_, err := s.CreateReview(context.Background(), uuid.New(), "what a night")
	if !errors.Is(err, ErrReviewExists) {
		t.Fatalf("expected ErrReviewExists, got %v", err)
	}
}

func TestUpdateReviewMissing(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE checkin_reviews")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "checkin_id", "review", "created_at", "updated_at"}))

	_, err := s.UpdateReview(context.Background(), uuid.New(), "edited")
	if !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
