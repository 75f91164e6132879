// Package system manages the shared secret used by trusted server-to-server
// callers. The token itself is never stored, only its bcrypt hash under a
// well-known settings key.
package system

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"showgram/internal/store"
)

// Store defines the settings persistence used by the service.
type Store interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Service verifies and rotates the system token.
type Service interface {
	VerifySystemToken(ctx context.Context, token string) error
	SetSystemToken(ctx context.Context, token string) error
}

type service struct {
	store Store
}

// New constructs a system Service.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) VerifySystemToken(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	hash, err := s.store.GetSetting(ctx, store.SystemTokenKey)
	if errors.Is(err, store.ErrSettingNotFound) {
		return store.ErrUnauthorized
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) != nil {
		return store.ErrUnauthorized
	}
	return nil
}

func (s *service) SetSystemToken(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.store.SetSetting(ctx, store.SystemTokenKey, string(hash))
}
