package models

import (
	"time"

	"github.com/google/uuid"
)

// Checkin records that a user attended a specific concert.
type Checkin struct {
	ID        uuid.UUID `json:"id"`
	ConcertID uuid.UUID `json:"concert_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Populated via JOIN queries
	Concert *Concert `json:"concert,omitempty"`
}

// CheckinPhoto is an image attached to a checkin.
type CheckinPhoto struct {
	ID        uuid.UUID `json:"id"`
	CheckinID uuid.UUID `json:"checkin_id"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
}

// CheckinLike marks that a user liked a checkin; one per (checkin, user).
type CheckinLike struct {
	ID        uuid.UUID `json:"id"`
	CheckinID uuid.UUID `json:"checkin_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	User *UserSummary `json:"user,omitempty"`
}

// CheckinComment is a comment left on a checkin by any user.
type CheckinComment struct {
	ID        uuid.UUID `json:"id"`
	CheckinID uuid.UUID `json:"checkin_id"`
	UserID    uuid.UUID `json:"user_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *UserSummary `json:"user,omitempty"`
}

// CheckinRating is the checkin owner's rating; one per checkin, upserted.
type CheckinRating struct {
	ID        uuid.UUID `json:"id"`
	CheckinID uuid.UUID `json:"checkin_id"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckinReview is the checkin owner's free-text review; one per checkin.
type CheckinReview struct {
	ID        uuid.UUID `json:"id"`
	CheckinID uuid.UUID `json:"checkin_id"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ArtistCheckin links a checkin to an artist the user confirms having seen.
type ArtistCheckin struct {
	ID        uuid.UUID `json:"id"`
	CheckinID uuid.UUID `json:"checkin_id"`
	ArtistID  uuid.UUID `json:"artist_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CheckinDetail is a fully hydrated checkin as served on the timeline.
type CheckinDetail struct {
	Checkin
	User     *UserSummary     `json:"user,omitempty"`
	Artists  []Artist         `json:"artists,omitempty"`
	Photos   []CheckinPhoto   `json:"photos,omitempty"`
	Likes    []CheckinLike    `json:"likes,omitempty"`
	Comments []CheckinComment `json:"comments,omitempty"`
	Rating   *CheckinRating   `json:"rating,omitempty"`
	Review   *CheckinReview   `json:"review,omitempty"`
}
