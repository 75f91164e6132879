// Package catalog covers the curated reference data: artists, events,
// locations, concerts, genres and countries. The five CRUD entities share the
// filter/sort/paginate surface and the source/status lookup handling.
package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"showgram/internal/models"
)

// ErrInvalidEventType rejects event types outside the known enum.
var ErrInvalidEventType = errors.New("invalid event type")

// Store defines persistence operations for the catalog.
type Store interface {
	ListArtists(ctx context.Context, filter models.CatalogFilter) ([]models.Artist, int, error)
	GetArtist(ctx context.Context, id uuid.UUID) (*models.Artist, error)
	CreateArtist(ctx context.Context, input models.ArtistInput) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id uuid.UUID, input models.ArtistInput) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id uuid.UUID) error

	ListLocations(ctx context.Context, filter models.CatalogFilter) ([]models.Location, int, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*models.Location, error)
	CreateLocation(ctx context.Context, input models.LocationInput) (*models.Location, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, input models.LocationInput) (*models.Location, error)
	DeleteLocation(ctx context.Context, id uuid.UUID) error

	ListEvents(ctx context.Context, filter models.CatalogFilter) ([]models.Event, int, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error)
	CreateEvent(ctx context.Context, input models.EventInput) (*models.Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, input models.EventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	ListConcerts(ctx context.Context, filter models.CatalogFilter) ([]models.Concert, int, error)
	GetConcert(ctx context.Context, id uuid.UUID) (*models.Concert, error)
	CreateConcert(ctx context.Context, input models.ConcertInput) (*models.Concert, error)
	UpdateConcert(ctx context.Context, id uuid.UUID, input models.ConcertInput) (*models.Concert, error)
	DeleteConcert(ctx context.Context, id uuid.UUID) error

	ListGenres(ctx context.Context, filter models.CatalogFilter) ([]models.Genre, int, error)
	GetGenre(ctx context.Context, id uuid.UUID) (*models.Genre, error)
	CreateGenre(ctx context.Context, name string) (*models.Genre, error)
	UpdateGenre(ctx context.Context, id uuid.UUID, name string) (*models.Genre, error)
	DeleteGenre(ctx context.Context, id uuid.UUID) error

	ListCountries(ctx context.Context) ([]models.Country, error)
}

// Service exposes the catalog operations to the HTTP layer.
type Service interface {
	Store
}

type service struct {
	Store
}

// New constructs a catalog Service.
func New(store Store) Service {
	return &service{Store: store}
}

// CreateEvent validates the event type before delegating.
func (s *service) CreateEvent(ctx context.Context, input models.EventInput) (*models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validEventType(input.Type) {
		return nil, ErrInvalidEventType
	}
	return s.Store.CreateEvent(ctx, input)
}

// UpdateEvent validates the event type before delegating.
func (s *service) UpdateEvent(ctx context.Context, id uuid.UUID, input models.EventInput) (*models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validEventType(input.Type) {
		return nil, ErrInvalidEventType
	}
	return s.Store.UpdateEvent(ctx, id, input)
}

func validEventType(t string) bool {
	for _, known := range models.EventTypes {
		if t == known {
			return true
		}
	}
	return false
}
