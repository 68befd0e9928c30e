package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nullpointers/attendance-backend/internal/app/models"
	"github.com/nullpointers/attendance-backend/internal/app/models/dto"
	"github.com/nullpointers/attendance-backend/internal/pkg/apperrors"
	"github.com/nullpointers/attendance-backend/internal/pkg/auth"
)

const identityKey = "identity"

// Identity is the verified caller attached to the request context.
type Identity struct {
	Username  string
	Role      models.RoleType
	TokenID   string
	ExpiresAt time.Time
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	denyList   *auth.TokenDenyList
	logger     zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, denyList *auth.TokenDenyList, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		denyList:   denyList,
		logger:     logger,
	}
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortWithAuthError(c, err)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			abortWithAuthError(c, err)
			return
		}

		// A deny-list outage does not block the request; the token's own
		// expiry still bounds it.
		revoked, err := m.denyList.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			m.logger.Warn().Err(err).Msg("Deny-list check failed, continuing")
		}
		if revoked {
			abortWithAuthError(c, apperrors.ErrTokenRevoked)
			return
		}

		c.Set(identityKey, &Identity{
			Username:  claims.Username,
			Role:      models.RoleType(claims.Role),
			TokenID:   claims.ID,
			ExpiresAt: claims.ExpiresAt.Time,
		})

		c.Next()
	}
}

// RoleRequired restricts a route group to one role.
func (m *AuthMiddleware) RoleRequired(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok || identity.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.APIResponse{
				Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
			})
			return
		}
		c.Next()
	}
}

// IdentityFromContext returns the verified caller set by JWTAuth.
func IdentityFromContext(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*Identity)
	return identity, ok
}

func abortWithAuthError(c *gin.Context, err error) {
	code := dto.ErrorCodeInvalidToken
	message := "Authentication failed"

	switch err {
	case apperrors.ErrTokenExpired:
		code = dto.ErrorCodeExpiredToken
		message = "Token expired"
	case apperrors.ErrTokenNotFound:
		code = dto.ErrorCodeTokenNotFound
		message = "Authentication required"
	case apperrors.ErrTokenRevoked:
		code = dto.ErrorCodeTokenRevoked
		message = "Token revoked"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{
		Error: dto.NewErrorDetail(code, message),
	})
}
