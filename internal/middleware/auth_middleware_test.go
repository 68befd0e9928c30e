package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullpointers/attendance-backend/internal/app/models"
	"github.com/nullpointers/attendance-backend/internal/pkg/auth"
)

func newTestRouter(t *testing.T, denyClient *redis.Client) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "attendance.test",
	})
	m := NewAuthMiddleware(jwtService, auth.NewTokenDenyList(denyClient), zerolog.Nop())

	router := gin.New()
	authenticated := router.Group("", m.JWTAuth())
	authenticated.GET("/whoami", func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"username": identity.Username, "role": string(identity.Role)})
	})

	admin := authenticated.Group("/admin", m.RoleRequired(models.RoleAdmin))
	admin.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, jwtService
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := doRequest(router, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_004")
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := doRequest(router, "/whoami", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	router, jwtService := newTestRouter(t, nil)

	token, _, err := jwtService.GenerateToken(&models.User{Username: "s001", Role: models.RoleStudent})
	require.NoError(t, err)

	w := doRequest(router, "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "s001")
	assert.Contains(t, w.Body.String(), "STUDENT")
}

func TestRoleRequired(t *testing.T) {
	router, jwtService := newTestRouter(t, nil)

	adminToken, _, err := jwtService.GenerateToken(&models.User{Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)
	studentToken, _, err := jwtService.GenerateToken(&models.User{Username: "s001", Role: models.RoleStudent})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(router, "/admin/ping", "Bearer "+adminToken).Code)

	w := doRequest(router, "/admin/ping", "Bearer "+studentToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_006")
}

func TestJWTAuthRevokedToken(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	router, jwtService := newTestRouter(t, client)

	token, _, err := jwtService.GenerateToken(&models.User{Username: "s001", Role: models.RoleStudent})
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)

	denyList := auth.NewTokenDenyList(client)
	require.NoError(t, denyList.Revoke(context.Background(), claims.ID, claims.ExpiresAt.Time))

	w := doRequest(router, "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")
}

func TestJWTAuthDenyListOutageFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	router, jwtService := newTestRouter(t, client)

	token, _, err := jwtService.GenerateToken(&models.User{Username: "s001", Role: models.RoleStudent})
	require.NoError(t, err)

	// The token's own expiry still bounds it when redis is down
	mr.Close()

	w := doRequest(router, "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
