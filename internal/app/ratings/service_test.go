package ratings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"showgram/internal/app"
	"showgram/internal/models"
)

type fakeStore struct {
	owner    uuid.UUID
	upserted float64
	reviewed string
}

func (f *fakeStore) CheckinOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	return f.owner, nil
}

func (f *fakeStore) UpsertRating(ctx context.Context, checkinID uuid.UUID, rating float64) (*models.CheckinRating, error) {
	f.upserted = rating
	return &models.CheckinRating{ID: uuid.New(), CheckinID: checkinID, Rating: rating}, nil
}

func (f *fakeStore) GetRatingByCheckin(ctx context.Context, checkinID uuid.UUID) (*models.CheckinRating, error) {
	return &models.CheckinRating{CheckinID: checkinID, Rating: f.upserted}, nil
}

func (f *fakeStore) DeleteRating(ctx context.Context, checkinID uuid.UUID) error {
	f.upserted = 0
	return nil
}

func (f *fakeStore) CreateReview(ctx context.Context, checkinID uuid.UUID, review string) (*models.CheckinReview, error) {
	f.reviewed = review
	return &models.CheckinReview{ID: uuid.New(), CheckinID: checkinID, Review: review}, nil
}

func (f *fakeStore) GetReviewByCheckin(ctx context.Context, checkinID uuid.UUID) (*models.CheckinReview, error) {
	return &models.CheckinReview{CheckinID: checkinID, Review: f.reviewed}, nil
}

func (f *fakeStore) UpdateReview(ctx context.Context, checkinID uuid.UUID, review string) (*models.CheckinReview, error) {
	f.reviewed = review
	return &models.CheckinReview{CheckinID: checkinID, Review: review}, nil
}

func (f *fakeStore) DeleteReview(ctx context.Context, checkinID uuid.UUID) error {
	f.reviewed = ""
	return nil
}

func TestValidRating(t *testing.T) {
	tests := []struct {
		rating float64
		want   bool
	}{
		{0.5, true},
		{1, true},
		{2.5, true},
		{5, true},
		{0, false},
		{0.4, false},
		{2.7, false},
		{5.5, false},
		{-1, false},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, ValidRating(tc.rating), "rating %v", tc.rating)
	}
}

func TestRateRejectsOffGridValue(t *testing.T) {
	owner := uuid.New()
	svc := New(&fakeStore{owner: owner})

	_, err := svc.Rate(context.Background(), owner, uuid.New(), 3.3)
	require.ErrorIs(t, err, app.ErrInvalidRating)
}

func TestRateRequiresOwnership(t *testing.T) {
	svc := New(&fakeStore{owner: uuid.New()})

	_, err := svc.Rate(context.Background(), uuid.New(), uuid.New(), 4)
	require.ErrorIs(t, err, app.ErrForbidden)
}

func TestRateUpserts(t *testing.T) {
	owner := uuid.New()
	store := &fakeStore{owner: owner}
	svc := New(store)

	rating, err := svc.Rate(context.Background(), owner, uuid.New(), 4.5)
	require.NoError(t, err)
	require.Equal(t, 4.5, rating.Rating)
	require.Equal(t, 4.5, store.upserted)
}

func TestReviewRequiresOwnership(t *testing.T) {
	svc := New(&fakeStore{owner: uuid.New()})

	_, err := svc.Review(context.Background(), uuid.New(), uuid.New(), "great show")
	require.ErrorIs(t, err, app.ErrForbidden)
}

func TestUpdateReviewRequiresOwnership(t *testing.T) {
	svc := New(&fakeStore{owner: uuid.New()})

	_, err := svc.UpdateReview(context.Background(), uuid.New(), uuid.New(), "edited")
	require.ErrorIs(t, err, app.ErrForbidden)
}
