package app

import (
	"context"
	"fmt"
	"log/slog"

	"conduitclient/internal/config"
	"conduitclient/internal/gateway"
	"conduitclient/internal/logging"
	"conduitclient/internal/session"
	"conduitclient/internal/store"
)

// Application wires config to the session store, gateway, state container,
// and controllers.
type Application struct {
	cfg    config.Config
	logger *slog.Logger

	Store    *store.Store
	Session  *session.Store
	Gate     *session.Gate
	Articles *store.ArticlesController
	Users    *store.UsersController
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	sess := session.NewStore(cfg.Session.TokenFile, baseLogger.With("component", "session"))
	client := gateway.NewClient(cfg.API, sess, baseLogger.With("component", "gateway"))
	container := store.New(baseLogger.With("component", "store"))

	return &Application{
		cfg:      cfg,
		logger:   baseLogger,
		Store:    container,
		Session:  sess,
		Gate:     session.NewGate(sess),
		Articles: store.NewArticlesController(container, client, baseLogger.With("component", "articles")),
		Users:    store.NewUsersController(container, client, sess, baseLogger.With("component", "users")),
	}
}

// Run drives one startup sequence: restore the persisted session (the gate
// reports authenticated immediately when a token exists), resolve the
// profile behind it, and load the first list page.
func (a *Application) Run(ctx context.Context) error {
	if err := a.Session.Load(); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	if a.Gate.Authenticated() {
		a.logger.Info("session restored, resolving profile")
		a.Users.FetchCurrentUser(ctx)
		if state := a.Store.User(); state.Err != nil {
			a.logger.Warn("profile fetch failed", "op", string(state.Err.Op), "error", state.Err.Message)
		}
	}

	a.Articles.FetchList(ctx, 1)

	state := a.Store.Articles()
	if state.Err != nil {
		return fmt.Errorf("load articles: %s", state.Err.Message)
	}

	a.logger.Info("startup complete",
		"articles", len(state.Articles),
		"total", state.ArticlesCount,
		"authenticated", a.Gate.Authenticated(),
	)
	return nil
}
