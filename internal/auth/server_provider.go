// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/meguri-app/meguri/internal/adapter"
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/utils"
	"github.com/meguri-app/meguri/models"
)

// sessionLeeway is the minimum remaining token lifetime for a cached session
// to be considered usable at startup. Sessions closer to expiry than this are
// discarded rather than presented to the server.
const sessionLeeway = time.Minute

// ServerProvider is the CredentialProvider backed by the meguri server: it
// obtains bearer tokens via the login/register endpoints and caches the
// session in the local store so authentication state survives restarts and
// is answerable offline.
type ServerProvider struct {
	adapter  adapter.ServerAdapter
	sessions SessionStore
	feed     *authFeed
	log      *logger.Logger

	mu      sync.RWMutex
	current *models.User
}

// NewServerProvider wires the provider. Call Load once at startup to restore
// a cached session and release the first OnAuthChange notification.
func NewServerProvider(serverAdapter adapter.ServerAdapter, sessions SessionStore, log *logger.Logger) *ServerProvider {
	return &ServerProvider{
		adapter:  serverAdapter,
		sessions: sessions,
		feed:     newAuthFeed(),
		log:      log,
	}
}

// Load restores the cached session, if any, and fires the initial auth-change
// notification. A missing or expired session results in an anonymous state,
// never an error: the client must start offline-capable.
func (p *ServerProvider) Load(ctx context.Context) {
	userID, login, token, err := p.sessions.LoadSession(ctx)
	switch {
	case errors.Is(err, ErrNoSession):
		// fresh install
	case err != nil:
		p.log.Err(err).Msg("load cached session")
	case !utils.TokenExpiresAfter(token, sessionLeeway):
		p.log.Debug().Int64("user_id", userID).Msg("cached session expired, discarding")
		if clearErr := p.sessions.ClearSession(ctx); clearErr != nil {
			p.log.Err(clearErr).Msg("clear expired session")
		}
	default:
		p.adapter.SetToken(token)
		p.setCurrent(&models.User{UserID: userID, Login: login})
		p.feed.notify(p.currentUser())
		return
	}

	p.setCurrent(nil)
	p.feed.notify(nil)
}

// SignIn authenticates against the server, persists the session, and
// announces the login transition to subscribers.
func (p *ServerProvider) SignIn(ctx context.Context, login, password string) (*models.User, error) {
	token, err := p.adapter.Login(ctx, models.User{Login: login, Password: password})
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return p.establishSession(ctx, login, token)
}

// SignUp registers a new account and signs it in.
func (p *ServerProvider) SignUp(ctx context.Context, login, password, name string) (*models.User, error) {
	token, err := p.adapter.Register(ctx, models.User{Login: login, Password: password, Name: name})
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return p.establishSession(ctx, login, token)
}

func (p *ServerProvider) establishSession(ctx context.Context, login string, token models.Token) (*models.User, error) {
	if err := p.sessions.SaveSession(ctx, token.UserID, login, token.SignedString); err != nil {
		// The session still works for this process; it just will not survive
		// a restart.
		p.log.Err(err).Int64("user_id", token.UserID).Msg("persist session")
	}

	user := &models.User{UserID: token.UserID, Login: login}
	p.setCurrent(user)
	p.feed.notify(user)
	return user, nil
}

// SignOut clears the credential and announces the logout transition. The
// pending-queue cleanup is the visit facade's responsibility and must happen
// before this call (see service.ClientVisitService.Logout).
func (p *ServerProvider) SignOut(ctx context.Context) error {
	p.adapter.SetToken("")
	err := p.sessions.ClearSession(ctx)

	p.setCurrent(nil)
	p.feed.notify(nil)

	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// AccessToken implements CredentialProvider.
func (p *ServerProvider) AccessToken(_ context.Context) (string, error) {
	return p.adapter.Token(), nil
}

// IsAuthenticated implements CredentialProvider. It answers from cached state
// only.
func (p *ServerProvider) IsAuthenticated() bool {
	return p.currentUser() != nil
}

// OnAuthChange implements CredentialProvider.
func (p *ServerProvider) OnAuthChange(fn func(user *models.User)) func() {
	return p.feed.subscribe(fn)
}

// CurrentUser returns the signed-in user, or nil when anonymous.
func (p *ServerProvider) CurrentUser() *models.User {
	return p.currentUser()
}

func (p *ServerProvider) setCurrent(user *models.User) {
	p.mu.Lock()
	p.current = user
	p.mu.Unlock()
}

func (p *ServerProvider) currentUser() *models.User {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

var _ CredentialProvider = (*ServerProvider)(nil)
