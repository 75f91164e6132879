package checkins

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"showgram/internal/app"
	"showgram/internal/models"
)

type fakeStore struct {
	owner      uuid.UUID
	deleted    int
	attached   int
	photoOwner uuid.UUID
}

func (f *fakeStore) CreateCheckin(ctx context.Context, userID, concertID uuid.UUID) (*models.Checkin, error) {
	return &models.Checkin{ID: uuid.New(), UserID: userID, ConcertID: concertID}, nil
}

func (f *fakeStore) GetCheckin(ctx context.Context, id uuid.UUID) (*models.Checkin, error) {
	return &models.Checkin{ID: id, UserID: f.owner}, nil
}

func (f *fakeStore) ListCheckinsByUser(ctx context.Context, userID uuid.UUID, page models.PageParams) ([]models.CheckinDetail, int, error) {
	return nil, 0, nil
}

func (f *fakeStore) DeleteCheckin(ctx context.Context, id uuid.UUID) error {
	f.deleted++
	return nil
}

func (f *fakeStore) CheckinOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	return f.owner, nil
}

func (f *fakeStore) AttachArtistCheckin(ctx context.Context, checkinID, artistID uuid.UUID) (*models.ArtistCheckin, error) {
	f.attached++
	return &models.ArtistCheckin{ID: uuid.New(), CheckinID: checkinID, ArtistID: artistID}, nil
}

func (f *fakeStore) DetachArtistCheckin(ctx context.Context, checkinID, artistID uuid.UUID) error {
	return nil
}

func (f *fakeStore) ListCheckinArtists(ctx context.Context, checkinID uuid.UUID) ([]models.Artist, error) {
	return nil, nil
}

func (f *fakeStore) AddCheckinPhoto(ctx context.Context, checkinID uuid.UUID, photoURL string) (*models.CheckinPhoto, error) {
	return &models.CheckinPhoto{ID: uuid.New(), CheckinID: checkinID, PhotoURL: photoURL}, nil
}

func (f *fakeStore) GetCheckinPhoto(ctx context.Context, id uuid.UUID) (*models.CheckinPhoto, error) {
	return &models.CheckinPhoto{ID: id, CheckinID: f.photoOwner}, nil
}

func (f *fakeStore) DeleteCheckinPhoto(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestDeleteRequiresOwnership(t *testing.T) {
	store := &fakeStore{owner: uuid.New()}
	svc := New(store)

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, app.ErrForbidden)
	require.Zero(t, store.deleted)
}

func TestDeleteByOwner(t *testing.T) {
	owner := uuid.New()
	store := &fakeStore{owner: owner}
	svc := New(store)

	require.NoError(t, svc.Delete(context.Background(), owner, uuid.New()))
	require.Equal(t, 1, store.deleted)
}

func TestAttachArtistRequiresOwnership(t *testing.T) {
	store := &fakeStore{owner: uuid.New()}
	svc := New(store)

	_, err := svc.AttachArtist(context.Background(), uuid.New(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, app.ErrForbidden)
	require.Zero(t, store.attached)
}

func TestAddPhotoRequiresOwnership(t *testing.T) {
	store := &fakeStore{owner: uuid.New()}
	svc := New(store)

	_, err := svc.AddPhoto(context.Background(), uuid.New(), uuid.New(), "/storage/x.jpg")
	require.ErrorIs(t, err, app.ErrForbidden)
}

func TestDeletePhotoChecksOwnerOfParentCheckin(t *testing.T) {
	owner := uuid.New()
	checkinID := uuid.New()
	store := &fakeStore{owner: owner, photoOwner: checkinID}
	svc := New(store)

	require.NoError(t, svc.DeletePhoto(context.Background(), owner, uuid.New()))

	store.owner = uuid.New()
	err := svc.DeletePhoto(context.Background(), owner, uuid.New())
	require.ErrorIs(t, err, app.ErrForbidden)
}
