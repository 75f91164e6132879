package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	return New(db), mock, func() { db.Close() }
}

func TestCreateUserRequiresFields(t *testing.T) {
	s, _, cleanup := newMockStore(t)
	defer cleanup()

	if _, err := s.CreateUser(context.Background(), "Name", "", "a@b.c", "secret"); err == nil {
		t.Fatal("expected error for blank username")
	}
	if _, err := s.CreateUser(context.Background(), "Name", "user", "a@b.c", ""); err == nil {
		t.Fatal("expected error for blank password")
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name, username, email, password_hash)")).
		WillReturnError(uniqueViolation())

	_, err := s.CreateUser(context.Background(), "Name", "taken", "a@b.c", "secret")
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, password_hash, is_active")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password_hash", "is_active"}).
			AddRow(uuid.New().String(), hash, true))

	_, err = s.Authenticate(context.Background(), "alice", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, password_hash, is_active")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password_hash", "is_active"}))

	_, err := s.Authenticate(context.Background(), "ghost", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateInactiveAccount(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, password_hash, is_active")).
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password_hash", "is_active"}).
			AddRow(uuid.New().String(), hash, false))

	_, err = s.Authenticate(context.Background(), "bob", "secret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserIDByTokenMiss(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := s.UserIDByToken(context.Background(), "nope")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRevokeTokenMiss(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM api_tokens")).
		WithArgs("stale").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.RevokeToken(context.Background(), "stale"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
