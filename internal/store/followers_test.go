package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func TestCreateFollowSuccess(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	followerID := uuid.New()
	followedID := uuid.New()
	edgeID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO followers (follower_id, followed_id)")).
		WithArgs(followerID, followedID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "follower_id", "followed_id", "created_at"}).
			AddRow(edgeID.String(), followerID.String(), followedID.String(), now()))

	edge, err := s.CreateFollow(context.Background(), followerID, followedID)
	if err != nil {
		t.Fatalf("CreateFollow: %v", err)
	}
	if edge.ID != edgeID || edge.FollowerID != followerID || edge.FollowedID != followedID {
		t.Fatalf("unexpected edge: %+v", edge)
	}
}

func TestCreateFollowDuplicate(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO followers (follower_id, followed_id)")).
		WillReturnError(uniqueViolation())

	_, err := s.CreateFollow(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrAlreadyFollowing) {
		t.Fatalf("expected ErrAlreadyFollowing, got %v", err)
	}
}

func TestCreateFollowUnknownUser(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO followers (follower_id, followed_id)")).
		WillReturnError(foreignKeyViolation())

	_, err := s.CreateFollow(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteFollowMissing(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM followers")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.DeleteFollow(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrFollowNotFound) {
		t.Fatalf("expected ErrFollowNotFound, got %v", err)
	}
}

func TestListFollowing(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("INNER JOIN users u ON f.followed_id = u.id")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "username", "photo_url"}).
			AddRow(uuid.New().String(), "Alice", "alice", "").
			AddRow(uuid.New().String(), "Bob", "bob", "/storage/bob.jpg"))

	following, err := s.ListFollowing(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListFollowing: %v", err)
	}
	if len(following) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(following))
	}
	if following[1].PhotoURL != "/storage/bob.jpg" {
		t.Fatalf("unexpected photo url: %q", following[1].PhotoURL)
	}
}
