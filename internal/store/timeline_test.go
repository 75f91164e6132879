package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"showgram/internal/models"
)

func TestListTimelineScopesToSelfAndFollowing(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	userID := uuid.New()
	followedID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT followed_id")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"followed_id"}).AddRow(followedID.String()))

	// The page query must target exactly the followed user plus the caller;
	// anyone else's checkins never enter the feed.
	mock.ExpectQuery(regexp.QuoteMeta("WHERE ci.user_id IN ($1, $2)")).
		WithArgs(followedID, userID, 15, 0).
		WillReturnRows(sqlmock.NewRows([]string{"total"}))

	checkins, total, err := s.ListTimeline(context.Background(), userID, models.PageParams{})
	if err != nil {
		t.Fatalf("ListTimeline: %v", err)
	}
	if total != 0 || len(checkins) != 0 {
		t.Fatalf("expected empty feed, got %d items (total %d)", len(checkins), total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListTimelineIncludesSelfWithoutFollowing(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT followed_id")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"followed_id"}))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE ci.user_id IN ($1)")).
		WithArgs(userID, 15, 0).
		WillReturnRows(sqlmock.NewRows([]string{"total"}))

	if _, _, err := s.ListTimeline(context.Background(), userID, models.PageParams{}); err != nil {
		t.Fatalf("ListTimeline: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
