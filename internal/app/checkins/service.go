package checkins

import (
	"context"

	"github.com/google/uuid"

	"showgram/internal/app"
	"showgram/internal/models"
)

// Store defines persistence operations for checkins and their attachments.
type Store interface {
	CreateCheckin(ctx context.Context, userID, concertID uuid.UUID) (*models.Checkin, error)
	GetCheckin(ctx context.Context, id uuid.UUID) (*models.Checkin, error)
	ListCheckinsByUser(ctx context.Context, userID uuid.UUID, page models.PageParams) ([]models.CheckinDetail, int, error)
	DeleteCheckin(ctx context.Context, id uuid.UUID) error
	CheckinOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	AttachArtistCheckin(ctx context.Context, checkinID, artistID uuid.UUID) (*models.ArtistCheckin, error)
	DetachArtistCheckin(ctx context.Context, checkinID, artistID uuid.UUID) error
	ListCheckinArtists(ctx context.Context, checkinID uuid.UUID) ([]models.Artist, error)
	AddCheckinPhoto(ctx context.Context, checkinID uuid.UUID, photoURL string) (*models.CheckinPhoto, error)
	GetCheckinPhoto(ctx context.Context, id uuid.UUID) (*models.CheckinPhoto, error)
	DeleteCheckinPhoto(ctx context.Context, id uuid.UUID) error
}

// Service coordinates checkin workflows. Mutations on a checkin's
// sub-resources are restricted to the checkin owner.
type Service interface {
	Create(ctx context.Context, userID, concertID uuid.UUID) (*models.Checkin, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Checkin, error)
	ListOwn(ctx context.Context, userID uuid.UUID, page models.PageParams) ([]models.CheckinDetail, int, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	AttachArtist(ctx context.Context, userID, checkinID, artistID uuid.UUID) (*models.ArtistCheckin, error)
	DetachArtist(ctx context.Context, userID, checkinID, artistID uuid.UUID) error
	ListArtists(ctx context.Context, checkinID uuid.UUID) ([]models.Artist, error)
	AddPhoto(ctx context.Context, userID, checkinID uuid.UUID, photoURL string) (*models.CheckinPhoto, error)
	DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error
}

type service struct {
	store Store
}

// New constructs a checkins Service.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, userID, concertID uuid.UUID) (*models.Checkin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateCheckin(ctx, userID, concertID)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Checkin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetCheckin(ctx, id)
}

func (s *service) ListOwn(ctx context.Context, userID uuid.UUID, page models.PageParams) ([]models.CheckinDetail, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return s.store.ListCheckinsByUser(ctx, userID, page)
}

func (s *service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.requireOwner(ctx, userID, id); err != nil {
		return err
	}
	return s.store.DeleteCheckin(ctx, id)
}

func (s *service) AttachArtist(ctx context.Context, userID, checkinID, artistID uuid.UUID) (*models.ArtistCheckin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, userID, checkinID); err != nil {
		return nil, err
	}
	return s.store.AttachArtistCheckin(ctx, checkinID, artistID)
}

func (s *service) DetachArtist(ctx context.Context, userID, checkinID, artistID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.requireOwner(ctx, userID, checkinID); err != nil {
		return err
	}
	return s.store.DetachArtistCheckin(ctx, checkinID, artistID)
}

func (s *service) ListArtists(ctx context.Context, checkinID uuid.UUID) ([]models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListCheckinArtists(ctx, checkinID)
}

func (s *service) AddPhoto(ctx context.Context, userID, checkinID uuid.UUID, photoURL string) (*models.CheckinPhoto, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, userID, checkinID); err != nil {
		return nil, err
	}
	return s.store.AddCheckinPhoto(ctx, checkinID, photoURL)
}

func (s *service) DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	photo, err := s.store.GetCheckinPhoto(ctx, photoID)
	if err != nil {
		return err
	}
	if err := s.requireOwner(ctx, userID, photo.CheckinID); err != nil {
		return err
	}
	return s.store.DeleteCheckinPhoto(ctx, photoID)
}

func (s *service) requireOwner(ctx context.Context, userID, checkinID uuid.UUID) error {
	owner, err := s.store.CheckinOwner(ctx, checkinID)
	if err != nil {
		return err
	}
	if owner != userID {
		return app.ErrForbidden
	}
	return nil
}
