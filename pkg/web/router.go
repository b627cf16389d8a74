// Package web exposes the document service over HTTP.
package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aretw0/flatcms/pkg/auth"
	"github.com/aretw0/flatcms/pkg/core"
	"github.com/aretw0/flatcms/pkg/render"
)

// Config holds the dependencies of the HTTP layer.
type Config struct {
	Service  *core.Service
	Gate     *auth.Gate
	Pages    *render.Pages    // parsed from the embedded templates when nil
	Markdown *render.Markdown // GFM defaults when nil
	Logger   *slog.Logger
}

// NewHandlers validates cfg and fills in defaults.
func NewHandlers(cfg Config) (*Handlers, error) {
	if cfg.Service == nil {
		return nil, fmt.Errorf("document service is required")
	}
	if cfg.Gate == nil {
		return nil, fmt.Errorf("session gate is required")
	}
	if cfg.Pages == nil {
		pages, err := render.NewPages()
		if err != nil {
			return nil, err
		}
		cfg.Pages = pages
	}
	if cfg.Markdown == nil {
		cfg.Markdown = render.NewMarkdown(render.MarkdownOptions{})
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		service:  cfg.Service,
		gate:     cfg.Gate,
		pages:    cfg.Pages,
		markdown: cfg.Markdown,
		logger:   cfg.Logger,
	}, nil
}

// NewRouter builds the route table. Fixed paths are registered before the
// catch-all document routes so they take precedence.
func NewRouter(cfg Config) (*mux.Router, error) {
	h, err := NewHandlers(cfg)
	if err != nil {
		return nil, err
	}
	guard := cfg.Gate.RequireAuthenticatedFunc

	r := mux.NewRouter()
	r.Use(recoverPanics(h.logger), logRequests(h.logger))

	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/users/signin", h.SignInForm).Methods(http.MethodGet)
	r.HandleFunc("/users/signin", h.SignIn).Methods(http.MethodPost)
	r.HandleFunc("/users/signout", h.SignOut).Methods(http.MethodPost)
	r.Handle("/new_document", guard(h.NewDocument)).Methods(http.MethodGet)
	r.Handle("/create", guard(h.Create)).Methods(http.MethodPost)

	r.HandleFunc("/{name}", h.View).Methods(http.MethodGet)
	r.Handle("/{name}", guard(h.Save)).Methods(http.MethodPost)
	r.Handle("/{name}/edit", guard(h.Edit)).Methods(http.MethodGet)
	r.Handle("/{name}/delete", guard(h.Delete)).Methods(http.MethodPost)

	return r, nil
}
