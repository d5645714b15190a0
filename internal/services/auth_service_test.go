package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"govportal/internal/utils"
	"govportal/pkg/logger"
)

const testJWTSecret = "test-secret"

func newTestAuthService(t *testing.T) (AuthService, *memUserRepo) {
	t.Helper()
	repo := newMemUserRepo()
	svc := NewAuthService(repo, testJWTSecret, 24*time.Hour, bcrypt.MinCost, logger.Discard())
	return svc, repo
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)

	user, err := svc.Register(context.Background(), &RegisterRequest{
		FullName: "Sarvar Aliyev",
		Username: "sarvar",
		Password: "123456",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "123456", user.Password)

	stored, err := repo.GetByUsername(context.Background(), "sarvar")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("123456")))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{FullName: "Birinchi", Username: "admin", Password: "123456"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterRequest{FullName: "Ikkinchi", Username: "admin", Password: "qwerty"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterRequest{FullName: "Sarvar Aliyev", Username: "sarvar", Password: "123456"})
	require.NoError(t, err)

	response, err := svc.Login(ctx, &LoginRequest{Username: "sarvar", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, int64((24 * time.Hour).Seconds()), response.ExpiresIn)
	assert.Equal(t, user.ID, response.User.ID)

	claims, err := utils.ValidateToken(response.Token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "sarvar", claims.Username)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{FullName: "Sarvar Aliyev", Username: "sarvar", Password: "123456"})
	require.NoError(t, err)

	// Wrong password and unknown username map to the same error so a caller
	// cannot probe which usernames exist.
	_, wrongPassword := svc.Login(ctx, &LoginRequest{Username: "sarvar", Password: "654321"})
	_, unknownUser := svc.Login(ctx, &LoginRequest{Username: "ghost", Password: "123456"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{FullName: "Sarvar Aliyev", Username: "sarvar", Password: "123456"})
	require.NoError(t, err)

	response, err := svc.Login(ctx, &LoginRequest{Username: "sarvar", Password: "123456"})
	require.NoError(t, err)

	_, err = utils.ValidateToken(response.Token, "another-secret")
	assert.Error(t, err)
}
