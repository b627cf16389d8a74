// Package auth implements the session gate: a single shared credential check
// and a signed-cookie session that records who is signed in.
package auth

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/aretw0/flatcms/pkg/core"
)

const (
	// DefaultCookieName is the name of the session cookie.
	DefaultCookieName = "flatcms_session"
	// DefaultSignInPath is where unauthenticated requests are redirected.
	DefaultSignInPath = "/users/signin"
	// MsgSignInRequired is queued when a guarded operation is refused.
	MsgSignInRequired = "You must be signed in to do that."

	usernameKey = "username"
)

// Config holds the configuration for a Gate.
type Config struct {
	Store      sessions.Store
	Checker    CredentialChecker
	CookieName string
	SignInPath string
	Logger     *slog.Logger
}

// Gate loads per-request sessions and guards handlers that require a signed-in user.
type Gate struct {
	store      sessions.Store
	checker    CredentialChecker
	cookieName string
	signInPath string
	logger     *slog.Logger
}

// NewGate creates a Gate. Store and Checker are required.
func NewGate(cfg Config) (*Gate, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if cfg.Checker == nil {
		return nil, fmt.Errorf("credential checker is required")
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.SignInPath == "" {
		cfg.SignInPath = DefaultSignInPath
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Gate{
		store:      cfg.Store,
		checker:    cfg.Checker,
		cookieName: cfg.CookieName,
		signInPath: cfg.SignInPath,
		logger:     cfg.Logger,
	}, nil
}

// NewCookieStore returns a signed cookie store scoped to the whole site.
func NewCookieStore(keyPairs ...[]byte) *sessions.CookieStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// CheckCredentials reports whether the pair may sign in.
func (g *Gate) CheckCredentials(username, password string) bool {
	return g.checker.Check(username, password)
}

// Load returns the session for this request. A cookie that fails to decode
// (e.g. after a key change) yields a fresh anonymous session.
func (g *Gate) Load(w http.ResponseWriter, r *http.Request) *Session {
	raw, err := g.store.Get(r, g.cookieName)
	if err != nil {
		g.logger.Debug("discarding unreadable session", "error", err)
	}
	if raw == nil {
		raw = sessions.NewSession(g.store, g.cookieName)
	}
	return &Session{raw: raw, r: r, w: w}
}

// SignIn validates the credentials and, on success, marks the session authenticated.
func (g *Gate) SignIn(s *Session, username, password string) error {
	if !g.CheckCredentials(username, password) {
		g.logger.Info("sign in rejected", "username", username)
		return core.ErrInvalidCredentials
	}
	s.SignIn(username)
	g.logger.Info("signed in", "username", username)
	return nil
}

// Authenticated loads the session and returns core.ErrUnauthenticated when nobody is signed in.
func (g *Gate) Authenticated(w http.ResponseWriter, r *http.Request) (*Session, error) {
	s := g.Load(w, r)
	if !s.IsAuthenticated() {
		return s, core.ErrUnauthenticated
	}
	return s, nil
}

// RequireAuthenticated wraps next so that it only runs for signed-in sessions.
// Anonymous requests get a notice and a redirect to the sign-in page.
func (g *Gate) RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := g.Authenticated(w, r)
		if err == nil {
			next.ServeHTTP(w, r)
			return
		}

		g.logger.Debug("refused request", "method", r.Method, "path", r.URL.Path, "error", err)
		s.AddFlash(MsgSignInRequired)
		if err := s.Save(); err != nil {
			g.logger.Error("failed to save session", "error", err)
		}
		http.Redirect(w, r, g.signInPath, http.StatusFound)
	})
}

// RequireAuthenticatedFunc is RequireAuthenticated for plain handler functions.
func (g *Gate) RequireAuthenticatedFunc(next http.HandlerFunc) http.Handler {
	return g.RequireAuthenticated(next)
}
