package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/utils"
	"github.com/meguri-app/meguri/models"
)

// fakeAdapter implements adapter.ServerAdapter for provider tests.
type fakeAdapter struct {
	token      string
	loginToken models.Token
	loginErr   error
}

func (f *fakeAdapter) List(context.Context) ([]models.VisitRecord, error) { return nil, nil }
func (f *fakeAdapter) Upsert(_ context.Context, shrineID int64) (models.VisitRecord, error) {
	return models.VisitRecord{ShrineID: shrineID}, nil
}
func (f *fakeAdapter) Delete(context.Context, int64) error { return nil }
func (f *fakeAdapter) Ping(context.Context) error          { return nil }
func (f *fakeAdapter) SetToken(token string)               { f.token = token }
func (f *fakeAdapter) Token() string                       { return f.token }
func (f *fakeAdapter) Register(_ context.Context, _ models.User) (models.Token, error) {
	return f.loginToken, f.loginErr
}
func (f *fakeAdapter) Login(_ context.Context, _ models.User) (models.Token, error) {
	if f.loginErr != nil {
		return models.Token{}, f.loginErr
	}
	f.token = f.loginToken.SignedString
	return f.loginToken, nil
}

// fakeSessions implements SessionStore in memory.
type fakeSessions struct {
	userID int64
	login  string
	token  string
	saved  bool
}

func (f *fakeSessions) SaveSession(_ context.Context, userID int64, login, token string) error {
	f.userID, f.login, f.token, f.saved = userID, login, token, true
	return nil
}

func (f *fakeSessions) LoadSession(context.Context) (int64, string, string, error) {
	if !f.saved {
		return 0, "", "", ErrNoSession
	}
	return f.userID, f.login, f.token, nil
}

func (f *fakeSessions) ClearSession(context.Context) error {
	f.saved = false
	return nil
}

func signedToken(t *testing.T, userID int64, ttl time.Duration) models.Token {
	t.Helper()
	token, err := utils.GenerateJWTToken("meguri-test", userID, ttl, "k")
	require.NoError(t, err)
	return token
}

func TestServerProvider_Load_NoSession(t *testing.T) {
	p := NewServerProvider(&fakeAdapter{}, &fakeSessions{}, logger.Nop())

	var fired []*models.User
	p.OnAuthChange(func(u *models.User) { fired = append(fired, u) })

	p.Load(context.Background())

	require.Len(t, fired, 1, "initial load must notify exactly once")
	assert.Nil(t, fired[0])
	assert.False(t, p.IsAuthenticated())
}

func TestServerProvider_Load_RestoresFreshSession(t *testing.T) {
	token := signedToken(t, 12, time.Hour)
	sessions := &fakeSessions{}
	require.NoError(t, sessions.SaveSession(context.Background(), 12, "mika", token.SignedString))

	fake := &fakeAdapter{}
	p := NewServerProvider(fake, sessions, logger.Nop())
	p.Load(context.Background())

	assert.True(t, p.IsAuthenticated())
	assert.Equal(t, token.SignedString, fake.Token())

	got, err := p.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, token.SignedString, got)
}

func TestServerProvider_Load_DiscardsExpiredSession(t *testing.T) {
	token := signedToken(t, 12, -time.Minute)
	sessions := &fakeSessions{}
	require.NoError(t, sessions.SaveSession(context.Background(), 12, "mika", token.SignedString))

	p := NewServerProvider(&fakeAdapter{}, sessions, logger.Nop())
	p.Load(context.Background())

	assert.False(t, p.IsAuthenticated())
	assert.False(t, sessions.saved, "expired session row must be removed")
}

func TestServerProvider_SignIn_PersistsAndNotifies(t *testing.T) {
	token := signedToken(t, 33, time.Hour)
	sessions := &fakeSessions{}
	p := NewServerProvider(&fakeAdapter{loginToken: token}, sessions, logger.Nop())
	p.Load(context.Background())

	var transitions []*models.User
	p.OnAuthChange(func(u *models.User) { transitions = append(transitions, u) })

	user, err := p.SignIn(context.Background(), "mika", "pw")
	require.NoError(t, err)
	assert.EqualValues(t, 33, user.UserID)

	assert.True(t, sessions.saved)
	assert.EqualValues(t, 33, sessions.userID)
	assert.True(t, p.IsAuthenticated())

	// One immediate post-load fire (nil) plus the login transition.
	require.Len(t, transitions, 2)
	assert.Nil(t, transitions[0])
	require.NotNil(t, transitions[1])
	assert.EqualValues(t, 33, transitions[1].UserID)
}

func TestServerProvider_SignOut_ClearsEverything(t *testing.T) {
	token := signedToken(t, 33, time.Hour)
	sessions := &fakeSessions{}
	fake := &fakeAdapter{loginToken: token}
	p := NewServerProvider(fake, sessions, logger.Nop())
	p.Load(context.Background())

	_, err := p.SignIn(context.Background(), "mika", "pw")
	require.NoError(t, err)

	require.NoError(t, p.SignOut(context.Background()))

	assert.False(t, p.IsAuthenticated())
	assert.Empty(t, fake.Token())
	assert.False(t, sessions.saved)
}
