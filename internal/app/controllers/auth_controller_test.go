package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullpointers/attendance-backend/internal/app/models"
	"github.com/nullpointers/attendance-backend/internal/app/models/dto"
	"github.com/nullpointers/attendance-backend/internal/app/services"
	"github.com/nullpointers/attendance-backend/internal/pkg/apperrors"
	"github.com/nullpointers/attendance-backend/internal/pkg/auth"
)

type stubCredentialStore struct {
	user *models.User
}

func (s *stubCredentialStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if s.user != nil && s.user.Username == username {
		return s.user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func newLoginRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := auth.HashPassword("admin-pass")
	require.NoError(t, err)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "attendance.test",
	})
	authService := services.NewAuthService(
		&stubCredentialStore{user: &models.User{ID: 1, Username: "admin", Password: hash, Role: models.RoleAdmin}},
		jwtService,
		auth.NewTokenDenyList(nil),
		zerolog.Nop(),
	)
	controller := NewAuthController(authService, zerolog.Nop())

	router := gin.New()
	router.POST("/api/login", controller.Login)
	return router
}

func postLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginEndpointSuccess(t *testing.T) {
	router := newLoginRouter(t)

	w := postLogin(router, `{"username":"admin","password":"admin-pass"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, "admin", resp.Data.Username)
	assert.Equal(t, "ADMIN", resp.Data.Role)
	assert.Equal(t, "/admin/dashboard", resp.Data.RedirectURL)
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	router := newLoginRouter(t)

	for _, body := range []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"ghost","password":"admin-pass"}`,
	} {
		w := postLogin(router, body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "AUTH_001")
	}
}

func TestLoginEndpointMissingFields(t *testing.T) {
	router := newLoginRouter(t)

	w := postLogin(router, `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
	assert.Contains(t, w.Body.String(), "password")
}
