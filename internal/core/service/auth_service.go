package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/itemvault/inventory-api/internal/core/domain"
	"github.com/itemvault/inventory-api/internal/core/ports"
)

// AuthService implements signup, login and profile lookup.
type AuthService struct {
	repo   ports.AuthRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Signup creates a user with the lowest-privilege role and returns a session
// token. The only side effect is the user insert; a duplicate email surfaces
// the store's constraint violation as domain.ErrEmailExists.
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return token, created, nil
}

// Login verifies credentials and issues a fresh token over the user's current
// identity. Unknown email and password mismatch are logged with their real
// reason but collapse to the same external error, so callers cannot probe
// account existence.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Only an absent account collapses into the credential error; a store
		// failure must keep its own identity so it reaches the 500 path.
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Debug().Str("reason", "user_not_found").Msg("login rejected")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Debug().Str("reason", "password_mismatch").Str("user_id", user.ID).Msg("login rejected")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Profile returns the stored user for a verified identity.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.FindByID(ctx, userID)
}
