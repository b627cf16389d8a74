package platform

import (
	"log/slog"

	"github.com/gorilla/sessions"

	"github.com/aretw0/flatcms/pkg/auth"
	"github.com/aretw0/flatcms/pkg/core"
)

// options holds the internal configuration for the CMS.
type options struct {
	repository   core.Repository
	credentials  auth.CredentialChecker
	sessionStore sessions.Store
	logger       *slog.Logger
	adapter      string

	testMode    *bool // nil means detect with IsDevRun
	dataDir     string
	testDataDir string
	mustExist   bool
	ignore      []string
	sessionKey  []byte
	markdown    bool // render raw HTML inside markdown
}

// Option defines a functional option for configuring the CMS.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "fs",
	}
}

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTestMode selects the test data directory instead of the normal one.
// When not set, test mode is enabled automatically under `go test`.
func WithTestMode(enabled bool) Option {
	return func(o *options) {
		o.testMode = &enabled
	}
}

// WithDataDir overrides the store root used in normal mode.
func WithDataDir(path string) Option {
	return func(o *options) {
		o.dataDir = path
	}
}

// WithTestDataDir overrides the store root used in test mode.
func WithTestDataDir(path string) Option {
	return func(o *options) {
		o.testDataDir = path
	}
}

// WithMustExist makes startup fail when the store root is missing instead of creating it.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithIgnore replaces the patterns of file names hidden from listings.
func WithIgnore(patterns ...string) Option {
	return func(o *options) {
		o.ignore = patterns
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter allows specifying the storage adapter to use by name (e.g. "fs").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithCredentials replaces the built-in admin account check.
func WithCredentials(checker auth.CredentialChecker) Option {
	return func(o *options) {
		o.credentials = checker
	}
}

// WithSessionKey sets the key used to sign session cookies.
// Without it a random key is generated and sessions do not survive a restart.
func WithSessionKey(key []byte) Option {
	return func(o *options) {
		o.sessionKey = key
	}
}

// WithSessionStore replaces the cookie session store entirely.
func WithSessionStore(store sessions.Store) Option {
	return func(o *options) {
		o.sessionStore = store
	}
}

// WithUnsafeMarkdown lets raw HTML inside markdown documents reach the page.
func WithUnsafeMarkdown(enabled bool) Option {
	return func(o *options) {
		o.markdown = enabled
	}
}
