package store

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

func foreignKeyViolation() error {
	return &pgconn.PgError{Code: "23503"}
}

func TestViolationHelpers(t *testing.T) {
	if !isUniqueViolation(uniqueViolation()) {
		t.Fatal("expected unique violation to be detected")
	}
	if !isForeignKeyViolation(foreignKeyViolation()) {
		t.Fatal("expected foreign key violation to be detected")
	}
	if isUniqueViolation(foreignKeyViolation()) {
		t.Fatal("foreign key violation misread as unique violation")
	}
}
