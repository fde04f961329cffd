package service

import (
	"context"
	"net/http"

	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
	"github.com/paramatmakhadka/ecommerce-frontend/pkg/backend"
)

// UserService proxies session management to the backend. The session protocol
// itself (cookies, expiry) is entirely the backend's; we just relay.
type UserService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, []*http.Cookie, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, []*http.Cookie, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.User, error)
}

type userService struct {
	backend backend.Client
}

func NewUserService(client backend.Client) UserService {
	return &userService{backend: client}
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, []*http.Cookie, error) {

	user, cookies, err := s.backend.Login(ctx, req)
	if err != nil {
		return nil, nil, mapBackendError(err)
	}

	return user, cookies, nil
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, []*http.Cookie, error) {

	user, cookies, err := s.backend.Register(ctx, req)
	if err != nil {
		return nil, nil, mapBackendError(err)
	}

	return user, cookies, nil
}

func (s *userService) Logout(ctx context.Context) error {

	if err := s.backend.Logout(ctx); err != nil {
		return mapBackendError(err)
	}

	return nil
}

func (s *userService) Profile(ctx context.Context) (*models.User, error) {

	user, err := s.backend.Profile(ctx)
	if err != nil {
		return nil, mapBackendError(err)
	}

	return user, nil
}
