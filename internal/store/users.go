package store

import (
	"context"
	"log/slog"

	"conduitclient/internal/apierr"
	"conduitclient/internal/domain"
	"conduitclient/internal/ports"
)

// UsersController owns profile state and the credential flows, mirroring the
// session store on success.
type UsersController struct {
	store   *Store
	gw      ports.UserGateway
	session ports.CredentialStore
	logger  *slog.Logger
}

// NewUsersController wires the gateway and the session store.
func NewUsersController(store *Store, gw ports.UserGateway, session ports.CredentialStore, logger *slog.Logger) *UsersController {
	return &UsersController{store: store, gw: gw, session: session, logger: logger}
}

// Register creates an account and stores the returned user. The gateway has
// already persisted the session token before success is visible here.
func (c *UsersController) Register(ctx context.Context, reg domain.Registration) {
	c.store.reduce(func(_ *ArticlesState, u *UserState) {
		u.Loading = true
		u.Err = nil
		u.Success = false
	})

	user, err := c.gw.Register(ctx, reg)
	if err != nil {
		failure := apierr.From(err)
		c.store.reduce(func(_ *ArticlesState, u *UserState) {
			u.Loading = false
			u.Success = false
			u.Err = failure
			u.User = nil
		})
		return
	}

	c.store.reduce(func(_ *ArticlesState, u *UserState) {
		u.Loading = false
		u.Success = true
		u.Err = nil
		u.User = &user
	})
}

// Login exchanges credentials for a session and stores the user.
func (c *UsersController) Login(ctx context.Context, creds domain.Credentials) {
	c.store.reduce(func(_ *ArticlesState, u *UserState) {
		u.Loading = true
		u.Err = nil
		u.Success = false
	})

	user, err := c.gw.Login(ctx, creds)
	if err != nil {
		failure := apierr.From(err)
		c.store.reduce(func(_ *ArticlesState, u *UserState) {
			u.Loading = false
			u.Success = false
			u.Err = failure
			u.User = nil
		})
		return
	}

	c.store.reduce(func(_ *ArticlesState, u *UserState) {
		u.Loading = false
		u.Success = true
		u.Err = nil
		u.User = &user
	})
}

// FetchCurrentUser resolves the profile behind the held token. An
// unauthorized failure revokes the optimistic startup authentication:
// the session is cleared along with the persisted credential.
func (c *UsersController) FetchCurrentUser(ctx context.Context) {
	c.store.reduce(func(_ *ArticlesState, u *UserState) {
		u.Loading = true
		u.Err = nil
	})

	user, err := c.gw.CurrentUser(ctx)
	if err != nil {
		failure := apierr.From(err)
		if failure.Unauthorized() {
			c.revokeSession()
		}
		c.store.reduce(func(_ *ArticlesState, u *UserState) {
			u.Loading = false
			u.Err = failure
			u.User = nil
		})
		return
	}

	c.store.reduce(func(_ *ArticlesState, u *UserState) {
		u.Loading = false
		u.Err = nil
		u.User = &user
	})
}

// EditProfile replaces the stored user with the server-normalized response.
func (c *UsersController) EditProfile(ctx context.Context, update domain.ProfileUpdate) {
	c.store.reduce(func(_ *ArticlesState, u *UserState) {
		u.Loading = true
		u.Err = nil
	})

	user, err := c.gw.UpdateProfile(ctx, update)
	if err != nil {
		failure := apierr.From(err)
		c.store.reduce(func(_ *ArticlesState, u *UserState) {
			u.Loading = false
			u.Err = failure
		})
		return
	}

	c.store.reduce(func(_ *ArticlesState, u *UserState) {
		u.Loading = false
		u.Err = nil
		u.Success = true
		u.User = &user
	})
}

// Logout clears the persisted credential and resets user state
// synchronously. No network call is issued.
func (c *UsersController) Logout() {
	c.revokeSession()
	c.store.reduce(func(_ *ArticlesState, u *UserState) {
		*u = UserState{}
	})
}

// ClearSuccess resets the navigation trigger.
func (c *UsersController) ClearSuccess() {
	c.store.reduce(func(_ *ArticlesState, u *UserState) {
		u.Success = false
	})
}

// ClearError dismisses the keyed error slot; the UI calls it on unmount so
// a stale error from an abandoned operation cannot surface later.
func (c *UsersController) ClearError() {
	c.store.reduce(func(_ *ArticlesState, u *UserState) {
		u.Err = nil
	})
}

func (c *UsersController) revokeSession() {
	if c.session == nil {
		return
	}
	if err := c.session.Clear(); err != nil && c.logger != nil {
		c.logger.Warn("clear session", "error", err)
	}
}
