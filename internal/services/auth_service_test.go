package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectconnect/internal/auth"
	"projectconnect/internal/models"
	"projectconnect/internal/services/dto"
	"projectconnect/pkg/apperrors"
)

func newAuthFixture(t *testing.T) AuthService {
	t.Helper()
	users := newFakeUserRepo()

	hash, err := auth.HashPassword("correct-horse-battery")
	require.NoError(t, err)
	require.NoError(t, users.Create(&models.User{Username: "alice", Name: "alice", PasswordHash: hash}))

	return NewAuthService(users)
}

func TestLogin(t *testing.T) {
	svc := newAuthFixture(t)

	resp, err := svc.Login(&dto.LoginRequest{Username: "alice", Password: "correct-horse-battery"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "alice", resp.Username)
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(&dto.LoginRequest{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErrorCode(t, err))
}

func TestLogin_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(&dto.LoginRequest{Username: "ghost", Password: "whatever"})
	require.Error(t, err)
	// Same code as a bad password so usernames cannot be probed.
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErrorCode(t, err))
}
