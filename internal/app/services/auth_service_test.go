package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullpointers/attendance-backend/internal/app/models"
	"github.com/nullpointers/attendance-backend/internal/app/models/dto"
	"github.com/nullpointers/attendance-backend/internal/pkg/apperrors"
	"github.com/nullpointers/attendance-backend/internal/pkg/auth"
)

type fakeCredentialStore struct {
	users map[string]*models.User
}

func (f *fakeCredentialStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func newTestAuthService(t *testing.T, users ...*models.User) *AuthService {
	t.Helper()
	store := &fakeCredentialStore{users: map[string]*models.User{}}
	for _, u := range users {
		store.users[u.Username] = u
	}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "attendance.test",
	})
	return NewAuthService(store, jwtService, auth.NewTokenDenyList(nil), zerolog.Nop())
}

func testUser(t *testing.T, username, password string, role models.RoleType) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.User{ID: 1, Username: username, Password: hash, Role: role}
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService(t, testUser(t, "admin", "admin-pass", models.RoleAdmin))

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "admin-pass"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, "ADMIN", resp.Role)
	assert.Equal(t, "/admin/dashboard", resp.RedirectURL)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t, testUser(t, "s001", "right-pass", models.RoleStudent))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "s001", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUserIsIndistinguishable(t *testing.T) {
	svc := newTestAuthService(t, testUser(t, "s001", "right-pass", models.RoleStudent))

	// Unknown usernames and wrong passwords must produce the same error
	_, unknownErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "x"})
	_, wrongErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "s001", Password: "x"})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr)
}

func TestRedirectURLForRole(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", RedirectURLForRole(models.RoleAdmin))
	assert.Equal(t, "/faculty/dashboard", RedirectURLForRole(models.RoleFaculty))
	assert.Equal(t, "/student/dashboard", RedirectURLForRole(models.RoleStudent))
	assert.Equal(t, "/", RedirectURLForRole(models.RoleType("OTHER")))
}

func TestLogoutWithRevocationDisabled(t *testing.T) {
	svc := newTestAuthService(t)

	err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour))
	assert.NoError(t, err)
}
