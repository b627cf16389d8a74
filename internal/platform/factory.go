package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/introspection"
	"github.com/aretw0/lifecycle"
	"github.com/gorilla/securecookie"

	storeevents "github.com/aretw0/flatcms/pkg/adapters/lifecycle"
	"github.com/aretw0/flatcms/pkg/auth"
	"github.com/aretw0/flatcms/pkg/core"
	"github.com/aretw0/flatcms/pkg/render"
	"github.com/aretw0/flatcms/pkg/web"
)

// App is the fully wired CMS: store, gate and HTTP handler.
type App struct {
	Root    string // empty when a custom repository was injected
	Service *core.Service
	Gate    *auth.Gate
	Handler http.Handler

	logger *slog.Logger
}

// New builds the CMS rooted at base.
//
//	app, err := flatcms.New(".", flatcms.WithLogger(logger))
func New(base string, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// 1. Storage
	repo, root, err := initRepository(base, o)
	if err != nil {
		return nil, err
	}
	service := core.NewService(repo)

	// 2. Session gate
	checker := o.credentials
	if checker == nil {
		creds, err := auth.DefaultCredentials()
		if err != nil {
			return nil, err
		}
		checker = creds
	}
	store := o.sessionStore
	if store == nil {
		key := o.sessionKey
		if len(key) == 0 {
			key = securecookie.GenerateRandomKey(32)
			if key == nil {
				return nil, fmt.Errorf("failed to generate session key")
			}
			logger.Warn("no session key configured, sessions will not survive a restart")
		}
		store = auth.NewCookieStore(key)
	}
	gate, err := auth.NewGate(auth.Config{
		Store:   store,
		Checker: checker,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	// 3. HTTP
	router, err := web.NewRouter(web.Config{
		Service:  service,
		Gate:     gate,
		Markdown: render.NewMarkdown(render.MarkdownOptions{Unsafe: o.markdown}),
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		Root:    root,
		Service: service,
		Gate:    gate,
		Handler: router,
		logger:  logger,
	}, nil
}

// Watch logs changes made to the store until ctx is done.
// It returns immediately with an error if the repository cannot be watched.
func (a *App) Watch(ctx context.Context) error {
	events, err := a.Service.Watch(ctx)
	if err != nil {
		return err
	}
	src := storeevents.NewSource(events)
	if err := src.Start(ctx); err != nil {
		return err
	}
	for e := range src.Events() {
		a.logger.Info("store changed", "event", e.String())
	}
	return nil
}

// Serve runs the HTTP server on addr until ctx is done, then shuts it down gracefully.
func (a *App) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.logger.Info("listening", "addr", addr, "store", a.Root)
	return a.serve(ctx, srv, srv.ListenAndServe)
}

// serve runs listen in the background and shuts srv down when ctx is done.
// A panic in listen ends serve with that panic as the error.
func (a *App) serve(ctx context.Context, srv *http.Server, listen func() error) error {
	errCh := make(chan error, 1)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		err := listen()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
		return err
	}, lifecycle.WithErrorHandler(func(err error) {
		a.logger.Error("server panic", "error", err)
		select {
		case errCh <- fmt.Errorf("server stopped: %w", err):
		default:
		}
	}))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	select {
	case err := <-errCh:
		return err
	case <-shutdownCtx.Done():
		return shutdownCtx.Err()
	}
}

// AppState aggregates the state of every component.
type AppState struct {
	Root       string `json:"root,omitempty"`
	Service    any    `json:"service"`
	Repository any    `json:"repository,omitempty"`
	Gate       any    `json:"gate"`
}

// State implements introspection.Introspectable.
func (a *App) State() any {
	state := AppState{
		Root:    a.Root,
		Service: a.Service.State(),
		Gate:    a.Gate.State(),
	}
	if intro, ok := a.Service.Repository().(introspection.Introspectable); ok {
		state.Repository = intro.State()
	}
	return state
}

// ComponentType implements introspection.Component.
func (a *App) ComponentType() string {
	return "app"
}

var _ introspection.Introspectable = (*App)(nil)
var _ introspection.Component = (*App)(nil)
