package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserNotFound = errors.New("user not found")
)

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// AuthService covers the auth namespace of the API. Login is a lookup by
// email; there are no passwords and no server-side session.
type AuthService interface {
	Login(ctx context.Context, email string) (*domain.User, error)
	Signup(ctx context.Context, name, email string, role domain.Role) (*domain.User, error)
	Logout(ctx context.Context) error
	// Me always reports "no session" (nil user, nil error).
	Me(ctx context.Context) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	userRepo repository.UserRepository
	latency  Latency
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, latency Latency) AuthService {
	return &authService{
		userRepo: userRepo,
		latency:  latency,
	}
}

// Login resolves the user registered under email.
func (s *authService) Login(ctx context.Context, email string) (*domain.User, error) {
	if err := simulateLatency(ctx, s.latency.Login); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	return user, nil
}

// Signup creates a user with a fresh ID, a generated avatar and an empty
// following set. Duplicate emails are not rejected.
func (s *authService) Signup(ctx context.Context, name, email string, role domain.Role) (*domain.User, error) {
	if err := simulateLatency(ctx, s.latency.Signup); err != nil {
		return nil, err
	}

	id, err := newUniqueID(ctx, func(ctx context.Context, id string) error {
		_, err := s.userRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      role,
		Avatar:    avatarBaseURL + url.QueryEscape(name),
		Following: []string{},
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	return created, nil
}

// Logout only waits; the session lives entirely on the client.
func (s *authService) Logout(ctx context.Context) error {
	return simulateLatency(ctx, s.latency.Logout)
}

func (s *authService) Me(ctx context.Context) (*domain.User, error) {
	return nil, nil
}
