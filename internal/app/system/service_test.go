package system

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"showgram/internal/store"
)

type fakeStore struct {
	settings map[string]string
}

func (f *fakeStore) GetSetting(ctx context.Context, key string) (string, error) {
	v, ok := f.settings[key]
	if !ok {
		return "", store.ErrSettingNotFound
	}
	return v, nil
}

func (f *fakeStore) SetSetting(ctx context.Context, key, value string) error {
	if f.settings == nil {
		f.settings = map[string]string{}
	}
	f.settings[key] = value
	return nil
}

func TestVerifySystemTokenRoundTrip(t *testing.T) {
	svc := New(&fakeStore{})

	require.NoError(t, svc.SetSystemToken(context.Background(), "shared-secret"))
	require.NoError(t, svc.VerifySystemToken(context.Background(), "shared-secret"))
	require.ErrorIs(t, svc.VerifySystemToken(context.Background(), "wrong"), store.ErrUnauthorized)
}

func TestVerifySystemTokenUnset(t *testing.T) {
	svc := New(&fakeStore{})

	err := svc.VerifySystemToken(context.Background(), "anything")
	require.ErrorIs(t, err, store.ErrUnauthorized)
}

func TestSetSystemTokenStoresHashNotPlaintext(t *testing.T) {
	fs := &fakeStore{}
	svc := New(fs)

	require.NoError(t, svc.SetSystemToken(context.Background(), "shared-secret"))
	require.NotEqual(t, "shared-secret", fs.settings[store.SystemTokenKey])
}
