package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account on the network.
type User struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	Bio       string     `json:"bio,omitempty"`
	City      string     `json:"city,omitempty"`
	CountryID *uuid.UUID `json:"country_id,omitempty"`
	PhotoURL  string     `json:"photo_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Populated via JOIN when the profile is loaded with its country
	Country *Country `json:"country,omitempty"`
}

// UserSummary is the compact shape embedded in feed items and follower lists.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	PhotoURL string    `json:"photo_url,omitempty"`
}

// ProfileUpdate carries the fields a user may change on their own profile.
type ProfileUpdate struct {
	Name        string
	Bio         string
	City        string
	CountryName string
	PhotoURL    string
}

// ProfileStats aggregates the numbers shown on a profile page.
type ProfileStats struct {
	Followers     int      `json:"followers"`
	Following     int      `json:"following"`
	Checkins      int      `json:"checkins"`
	AverageRating *float64 `json:"average_rating,omitempty"`
}

// SummaryStats aggregates a user's overall activity.
type SummaryStats struct {
	Checkins         int `json:"checkins"`
	Concerts         int `json:"concerts"`
	ArtistsSeen      int `json:"artists_seen"`
	LocationsVisited int `json:"locations_visited"`
}
