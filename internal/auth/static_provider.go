// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"

	"github.com/meguri-app/meguri/models"
)

// StaticProvider is a CredentialProvider with a fixed token, used for
// headless runs and tests. An empty token means permanently anonymous.
type StaticProvider struct {
	token  string
	userID int64
	feed   *authFeed
}

// NewStaticProvider builds the provider and immediately releases the initial
// auth-change notification (there is no asynchronous load to wait for).
func NewStaticProvider(token string, userID int64) *StaticProvider {
	p := &StaticProvider{token: token, userID: userID, feed: newAuthFeed()}
	if token != "" {
		p.feed.notify(&models.User{UserID: userID})
	} else {
		p.feed.notify(nil)
	}
	return p
}

// AccessToken implements CredentialProvider.
func (p *StaticProvider) AccessToken(_ context.Context) (string, error) {
	return p.token, nil
}

// IsAuthenticated implements CredentialProvider.
func (p *StaticProvider) IsAuthenticated() bool {
	return p.token != ""
}

// OnAuthChange implements CredentialProvider. The state never changes, so
// subscribers only ever see the initial notification.
func (p *StaticProvider) OnAuthChange(fn func(user *models.User)) func() {
	return p.feed.subscribe(fn)
}

var _ CredentialProvider = (*StaticProvider)(nil)
