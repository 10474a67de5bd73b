// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meguri-app/meguri/internal/config"
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/store"
	"github.com/meguri-app/meguri/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, login string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, login)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func newTestAuthService(repo store.UserRepository) AuthService {
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "meguri",
		TokenDuration: time.Hour,
	}
	return NewAuthService(repo, cfg, logger.Nop())
}

func TestAuthService_RegisterUser(t *testing.T) {
	var stored models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.User{Login: "mika", Password: "secret"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, registered.UserID)

	// The repository never sees the plain-text password, only the hash.
	assert.Empty(t, stored.Password)
	assert.Contains(t, stored.PasswordHash, "$argon2id$")

	ok, err := verifyPassword(stored.PasswordHash, "secret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "mika"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := hashPassword("secret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findFn: func(_ context.Context, login string) (models.User, error) {
			require.Equal(t, "mika", login)
			return models.User{UserID: 7, Login: "mika", PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.User{Login: "mika", Password: "secret"})
	require.NoError(t, err)
	assert.EqualValues(t, 7, user.UserID)

	_, err = svc.Login(context.Background(), models.User{Login: "mika", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 7})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.EqualValues(t, 7, userID)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	other := NewAuthService(&mockUserRepository{}, config.App{
		TokenSignKey:  "another-key",
		TokenIssuer:   "meguri",
		TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := other.CreateToken(context.Background(), models.User{UserID: 7})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := verifyPassword("not-a-hash", "secret")
	assert.True(t, errors.Is(err, errMalformedHash))
}
