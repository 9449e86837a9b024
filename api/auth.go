package api

import (
	"context"

	"github.com/pantrylabs/pantryclient/session"
	"github.com/pantrylabs/pantryclient/transport"
)

// AuthAPI covers /auth: login, registration, and the identity endpoint.
type AuthAPI struct {
	channel *transport.Client
}

// Login exchanges credentials for a bearer token.
func (a *AuthAPI) Login(ctx context.Context, creds Credentials) (*TokenResponse, error) {
	var out TokenResponse
	if err := a.channel.Post(ctx, "/auth/login", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns its first bearer token.
func (a *AuthAPI) Register(ctx context.Context, creds Credentials) (*TokenResponse, error) {
	var out TokenResponse
	if err := a.channel.Post(ctx, "/auth/register", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me resolves the identity behind the current token. A 401 means the token
// is invalid or expired; the transport's interceptor has already cleared the
// session by the time the error surfaces here.
func (a *AuthAPI) Me(ctx context.Context) (*session.User, error) {
	var out session.User
	if err := a.channel.Get(ctx, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
