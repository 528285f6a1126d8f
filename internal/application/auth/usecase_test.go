package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoneworks/inventory-api/internal/application/auth"
	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/internal/infrastructure/memstore"
	"github.com/stoneworks/inventory-api/pkg/jwt"
	"github.com/stoneworks/inventory-api/pkg/logger"
)

const secret = "auth-usecase-test-secret"

func newAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return auth.NewAuthUseCase(memstore.New().Users(), auth.JWTConfig{
		Secret: secret, ExpMinutes: 30, Issuer: "stone-inventory-test",
	}, log)
}

func TestRegisterUser_FirstOperatorNeedsNoCaller(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()

	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: " Ravi ", Password: "s3cret-pass"}, "")

	require.NoError(t, err)
	assert.Equal(t, "ravi", u.Username)
	assert.Equal(t, "ravi", u.Name)
	assert.True(t, u.Active)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Username: "meena", Password: "s3cret-pass"}, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Username: "meena", Password: "s3cret-pass"}, "ravi")
	assert.NoError(t, err)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ravi", Password: "s3cret-pass"}, "")
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Username: "RAVI", Password: "other-pass"}, "ravi")

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLogin_IssuesTokenForUsername(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ravi", Name: "Ravi Sharma", Password: "s3cret-pass"}, "")
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "Ravi", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, 1800, out.ExpiresIn)
	assert.Equal(t, "Ravi Sharma", out.User.Name)
	userID, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "ravi", userID)
}

func TestLogin_BadCredentials(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ravi", Password: "s3cret-pass"}, "")
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "ravi", Password: "wrong-pass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
