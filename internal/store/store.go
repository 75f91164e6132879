package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUserExists signals the username or email is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials indicates a login failure.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthorized indicates an invalid or missing token.
	ErrUnauthorized = errors.New("unauthorized")

	ErrUserNotFound     = errors.New("user not found")
	ErrCountryNotFound  = errors.New("country not found")
	ErrGenreNotFound    = errors.New("genre not found")
	ErrArtistNotFound   = errors.New("artist not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrConcertNotFound  = errors.New("concert not found")
	ErrCheckinNotFound  = errors.New("checkin not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrLikeNotFound     = errors.New("like not found")
	ErrRatingNotFound   = errors.New("rating not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrFollowNotFound   = errors.New("follow edge not found")
	ErrSettingNotFound  = errors.New("setting not found")

	// ErrUnknownSource and ErrUnknownStatus signal a lookup-string miss.
	ErrUnknownSource = errors.New("unknown source")
	ErrUnknownStatus = errors.New("unknown status")

	// Conflict errors, all backed by unique indexes.
	ErrCheckinExists       = errors.New("checkin already exists for this concert")
	ErrAlreadyLiked        = errors.New("checkin already liked")
	ErrAlreadyFollowing    = errors.New("already following this user")
	ErrReviewExists        = errors.New("checkin already has a review")
	ErrArtistCheckinExists = errors.New("artist already attached to this checkin")

	// ErrArtistNotAtConcert rejects attaching an artist outside the
	// concert's own lineup.
	ErrArtistNotAtConcert = errors.New("artist is not on the concert lineup")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
