package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/civictrack/admin/internal/auth"
	"github.com/civictrack/admin/internal/models"
	"github.com/civictrack/admin/internal/repositories"
	"github.com/civictrack/admin/internal/session"
	"go.uber.org/zap"
)

// AuthUserRepository is the interface that wraps methods for User table data access
type AuthUserRepository interface {
	// Method GetByUsernameAndRole retrieves a user by username restricted to the given role.
	//
	// If no such user exists, repositories.ErrUserNotFound will be returned together with "nil" value.
	GetByUsernameAndRole(ctx context.Context, username string, role models.Role) (*models.User, error)
	// Method GetByID retrieves a user by ID.
	//
	// If no such user exists, repositories.ErrUserNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// authService implements AuthService
type authService struct {
	userRepo AuthUserRepository
	sessions session.Store
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo AuthUserRepository, sessions session.Store, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
	}
}

// Login verifies admin credentials and opens a session.
// Unknown usernames, non-admin users and wrong passwords all yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, username, password string) (*models.AdminIdentity, string, error) {
	user, err := s.userRepo.GetByUsernameAndRole(ctx, username, models.RoleAdmin)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to find admin: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("admin logged in", zap.Int("userID", user.ID))

	return &models.AdminIdentity{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, token, nil
}

// Logout destroys the session bound to the token. An empty token is a no-op.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// ResolveUser returns the user bound to the session token, or nil when the
// session is absent, expired or points to a deleted user.
func (s *authService) ResolveUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	userID, ok, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return user, nil
}
