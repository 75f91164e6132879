package models

import (
	"time"

	"github.com/google/uuid"
)

// Source provenance values for catalog rows.
const (
	SourceManual = "manual"
	SourceAPI    = "api"
)

// Status moderation values for catalog rows.
const (
	StatusPendingApproval = "pending_approval"
	StatusVerified        = "verified"
	StatusRejected        = "rejected"
)

// EventType enumerates the kinds of events a concert can belong to.
var EventTypes = []string{"concert", "festival", "tour", "clubnight", "other"}

// Country is reference data attached to users, artists and locations.
type Country struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Continent string    `json:"continent"`
	Subregion string    `json:"subregion"`
	Emoji     string    `json:"emoji,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Genre is a music genre tag attached to artists.
type Genre struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Artist is a performing act in the catalog.
type Artist struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CountryID   *uuid.UUID `json:"country_id,omitempty"`
	FormedYear  *int       `json:"formed_year,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Source      string     `json:"source"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Populated via JOIN queries
	Genres []Genre `json:"genres,omitempty"`
}

// Location is a venue where concerts take place.
type Location struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	City      string     `json:"city,omitempty"`
	CountryID *uuid.UUID `json:"country_id,omitempty"`
	Source    string     `json:"source"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Country *Country `json:"country,omitempty"`
}

// Event is a named happening (tour, festival, one-off show) that concerts
// are dated occurrences of.
type Event struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Type        string     `json:"type"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Source      string     `json:"source"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Concert is one dated occurrence of an Event at a Location.
type Concert struct {
	ID         uuid.UUID `json:"id"`
	EventID    uuid.UUID `json:"event_id"`
	LocationID uuid.UUID `json:"location_id"`
	Date       time.Time `json:"date"`
	Source     string    `json:"source"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Populated via JOIN queries
	Event    *Event    `json:"event,omitempty"`
	Location *Location `json:"location,omitempty"`
	Artists  []Artist  `json:"artists,omitempty"`
}

// ArtistInput carries the writable artist fields; Source and Status are the
// human-readable lookup strings, CountryName vivifies the country on first use.
type ArtistInput struct {
	Name        string
	Description string
	CountryName string
	FormedYear  *int
	ImageURL    string
	Source      string
	Status      string
	GenreIDs    []uuid.UUID
}

// LocationInput carries the writable location fields.
type LocationInput struct {
	Name        string
	City        string
	CountryName string
	Source      string
	Status      string
}

// EventInput carries the writable event fields.
type EventInput struct {
	Name        string
	StartDate   *time.Time
	EndDate     *time.Time
	Type        string
	Description string
	ImageURL    string
	Source      string
	Status      string
}

// ConcertInput carries the writable concert fields.
type ConcertInput struct {
	EventID    uuid.UUID
	LocationID uuid.UUID
	Date       time.Time
	Source     string
	Status     string
	ArtistIDs  []uuid.UUID
}

// CatalogFilter holds the shared list-query parameters for catalog entities.
type CatalogFilter struct {
	Status        string
	Search        string
	SortBy        string
	SortDirection string
	Page          int
	PerPage       int
}
