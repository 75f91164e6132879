package users

import (
	"context"

	"github.com/google/uuid"

	"showgram/internal/models"
)

// Store defines persistence operations for accounts and tokens.
type Store interface {
	CreateUser(ctx context.Context, name, username, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	RevokeToken(ctx context.Context, token string) error
	UserIDByToken(ctx context.Context, token string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (*models.User, error)
}

// Service coordinates account workflows.
type Service interface {
	Register(ctx context.Context, name, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (*models.User, error)
}

type service struct {
	store Store
}

// New constructs a users Service.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Register(ctx context.Context, name, username, email, password string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateUser(ctx, name, username, email, password)
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.store.Authenticate(ctx, username, password)
}

func (s *service) Logout(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.RevokeToken(ctx, token)
}

func (s *service) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	return s.store.UserIDByToken(ctx, token)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetUser(ctx, id)
}

func (s *service) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetUserByUsername(ctx, username)
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.UpdateProfile(ctx, userID, update)
}
