package reactions

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"showgram/internal/app"
	"showgram/internal/models"
)

type fakeStore struct {
	likeOwner      uuid.UUID
	commentOwner   uuid.UUID
	likesDeleted   int
	commentsEdited int
}

func (f *fakeStore) CreateLike(ctx context.Context, checkinID, userID uuid.UUID) (*models.CheckinLike, error) {
	return &models.CheckinLike{ID: uuid.New(), CheckinID: checkinID, UserID: userID}, nil
}

func (f *fakeStore) GetLike(ctx context.Context, id uuid.UUID) (*models.CheckinLike, error) {
	return &models.CheckinLike{ID: id, UserID: f.likeOwner}, nil
}

func (f *fakeStore) DeleteLike(ctx context.Context, id uuid.UUID) error {
	f.likesDeleted++
	return nil
}

func (f *fakeStore) ListLikesByCheckin(ctx context.Context, checkinID uuid.UUID) ([]models.CheckinLike, error) {
	return nil, nil
}

func (f *fakeStore) CreateComment(ctx context.Context, checkinID, userID uuid.UUID, comment string) (*models.CheckinComment, error) {
	return &models.CheckinComment{ID: uuid.New(), CheckinID: checkinID, UserID: userID, Comment: comment}, nil
}

func (f *fakeStore) GetComment(ctx context.Context, id uuid.UUID) (*models.CheckinComment, error) {
	return &models.CheckinComment{ID: id, UserID: f.commentOwner}, nil
}

func (f *fakeStore) UpdateComment(ctx context.Context, id uuid.UUID, comment string) (*models.CheckinComment, error) {
	f.commentsEdited++
	return &models.CheckinComment{ID: id, Comment: comment}, nil
}

func (f *fakeStore) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (f *fakeStore) ListCommentsByCheckin(ctx context.Context, checkinID uuid.UUID) ([]models.CheckinComment, error) {
	return nil, nil
}

func TestUnlikeOnlyByAuthor(t *testing.T) {
	store := &fakeStore{likeOwner: uuid.New()}
	svc := New(store)

	err := svc.Unlike(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, app.ErrForbidden)
	require.Zero(t, store.likesDeleted)
}

func TestUnlikeByAuthor(t *testing.T) {
	author := uuid.New()
	store := &fakeStore{likeOwner: author}
	svc := New(store)

	require.NoError(t, svc.Unlike(context.Background(), author, uuid.New()))
	require.Equal(t, 1, store.likesDeleted)
}

func TestCommentOpenToAnyUser(t *testing.T) {
	svc := New(&fakeStore{})
	commenter := uuid.New()

	comment, err := svc.Comment(context.Background(), commenter, uuid.New(), "saw them front row")
	require.NoError(t, err)
	require.Equal(t, commenter, comment.UserID)
	require.Equal(t, "saw them front row", comment.Comment)
}

func TestUpdateCommentOnlyByAuthor(t *testing.T) {
	store := &fakeStore{commentOwner: uuid.New()}
	svc := New(store)

	_, err := svc.UpdateComment(context.Background(), uuid.New(), uuid.New(), "edited")
	require.ErrorIs(t, err, app.ErrForbidden)
	require.Zero(t, store.commentsEdited)
}

func TestDeleteCommentOnlyByAuthor(t *testing.T) {
	store := &fakeStore{commentOwner: uuid.New()}
	svc := New(store)

	err := svc.DeleteComment(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, app.ErrForbidden)
}
