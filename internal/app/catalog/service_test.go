package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"showgram/internal/models"
)

// fakeStore embeds the Store interface so only the methods under test need
// real implementations.
type fakeStore struct {
	Store
	createdEvents int
	updatedEvents int
}

func (f *fakeStore) CreateEvent(ctx context.Context, input models.EventInput) (*models.Event, error) {
	f.createdEvents++
	return &models.Event{ID: uuid.New(), Name: input.Name, Type: input.Type}, nil
}

func (f *fakeStore) UpdateEvent(ctx context.Context, id uuid.UUID, input models.EventInput) (*models.Event, error) {
	f.updatedEvents++
	return &models.Event{ID: id, Name: input.Name, Type: input.Type}, nil
}

func TestCreateEventRejectsUnknownType(t *testing.T) {
	store := &fakeStore{}
	svc := New(store)

	_, err := svc.CreateEvent(context.Background(), models.EventInput{Name: "Roadburn", Type: "rave"})
	require.ErrorIs(t, err, ErrInvalidEventType)
	require.Zero(t, store.createdEvents)
}

func TestCreateEventAcceptsKnownTypes(t *testing.T) {
	store := &fakeStore{}
	svc := New(store)

	for _, eventType := range models.EventTypes {
		_, err := svc.CreateEvent(context.Background(), models.EventInput{Name: "Show", Type: eventType})
		require.NoError(t, err, "type %q", eventType)
	}
	require.Equal(t, len(models.EventTypes), store.createdEvents)
}

func TestUpdateEventRejectsUnknownType(t *testing.T) {
	store := &fakeStore{}
	svc := New(store)

	_, err := svc.UpdateEvent(context.Background(), uuid.New(), models.EventInput{Name: "Show", Type: ""})
	require.ErrorIs(t, err, ErrInvalidEventType)
	require.Zero(t, store.updatedEvents)
}
