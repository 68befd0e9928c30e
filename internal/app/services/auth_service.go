package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/nullpointers/attendance-backend/internal/app/models"
	"github.com/nullpointers/attendance-backend/internal/app/models/dto"
	"github.com/nullpointers/attendance-backend/internal/app/repositories"
	"github.com/nullpointers/attendance-backend/internal/pkg/apperrors"
	"github.com/nullpointers/attendance-backend/internal/pkg/auth"
	"github.com/nullpointers/attendance-backend/internal/pkg/metrics"
)

// AuthService handles authentication operations
type AuthService struct {
	credentials repositories.ICredentialStore
	jwtService  *auth.JWTService
	denyList    *auth.TokenDenyList
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	credentials repositories.ICredentialStore,
	jwtService *auth.JWTService,
	denyList *auth.TokenDenyList,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		credentials: credentials,
		jwtService:  jwtService,
		denyList:    denyList,
		logger:      logger,
	}
}

// Login verifies credentials and issues a token. Unknown usernames and
// wrong passwords both report ErrInvalidCredentials so callers cannot
// probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.credentials.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			metrics.LoginAttempts.WithLabelValues("failure").Inc()
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		s.logger.Warn().Str("username", req.Username).Msg("Login failed")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("Login succeeded")

	return &dto.LoginResponse{
		Token:       token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Username:    user.Username,
		Role:        string(user.Role),
		RedirectURL: RedirectURLForRole(user.Role),
	}, nil
}

// Logout revokes the presented token until it would have expired.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := s.denyList.Revoke(ctx, tokenID, expiresAt); err != nil {
		s.logger.Error().Err(err).Msg("Failed to revoke token")
		return apperrors.ErrStorageUnavailable
	}
	metrics.TokensRevoked.Inc()
	return nil
}

// RedirectURLForRole maps a role to its frontend landing page.
func RedirectURLForRole(role models.RoleType) string {
	switch role {
	case models.RoleAdmin:
		return "/admin/dashboard"
	case models.RoleFaculty:
		return "/faculty/dashboard"
	case models.RoleStudent:
		return "/student/dashboard"
	default:
		return "/"
	}
}
