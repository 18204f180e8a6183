package gateway

import (
	"context"
	"fmt"
	"net/http"

	"conduitclient/internal/apierr"
	"conduitclient/internal/domain"
)

type userEnvelope struct {
	User domain.User `json:"user"`
}

type registrationEnvelope struct {
	User domain.Registration `json:"user"`
}

type credentialsEnvelope struct {
	User domain.Credentials `json:"user"`
}

type profileEnvelope struct {
	User domain.ProfileUpdate `json:"user"`
}

// Register creates an account. A returned session token is persisted into
// the credential store before the caller observes success.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	var out userEnvelope
	if err := c.do(ctx, apierr.OpRegisterUser, http.MethodPost, "/users", registrationEnvelope{User: reg}, &out, authNone); err != nil {
		return domain.User{}, err
	}
	if err := c.persistToken(apierr.OpRegisterUser, out.User); err != nil {
		return domain.User{}, err
	}
	return out.User, nil
}

// Login exchanges credentials for a session. The token is persisted before
// success is observed.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	var out userEnvelope
	if err := c.do(ctx, apierr.OpLoginUser, http.MethodPost, "/users/login", credentialsEnvelope{User: creds}, &out, authNone); err != nil {
		return domain.User{}, err
	}
	if err := c.persistToken(apierr.OpLoginUser, out.User); err != nil {
		return domain.User{}, err
	}
	return out.User, nil
}

// CurrentUser fetches the profile bound to the held session token.
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var out userEnvelope
	if err := c.do(ctx, apierr.OpFetchUser, http.MethodGet, "/user", nil, &out, authRequired); err != nil {
		return domain.User{}, err
	}
	return out.User, nil
}

// UpdateProfile replaces the editable profile fields and returns the
// server-normalized user.
func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error) {
	var out userEnvelope
	if err := c.do(ctx, apierr.OpEditProfile, http.MethodPut, "/user", profileEnvelope{User: update}, &out, authRequired); err != nil {
		return domain.User{}, err
	}
	return out.User, nil
}

// persistToken stores a returned session credential; persistence failures
// fail the whole operation so state never reflects an unpersisted login.
func (c *Client) persistToken(op apierr.Op, user domain.User) error {
	if user.Token == "" || c.creds == nil {
		return nil
	}
	if err := c.creds.SetToken(user.Token); err != nil {
		return apierr.Transport(op, 0, fmt.Sprintf("persist session token: %v", err))
	}
	return nil
}
