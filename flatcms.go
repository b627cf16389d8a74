package flatcms

import (
	"log/slog"

	"github.com/gorilla/sessions"

	"github.com/aretw0/flatcms/internal/platform"
	"github.com/aretw0/flatcms/pkg/auth"
	"github.com/aretw0/flatcms/pkg/core"
)

// --- Types ---

// App is the fully wired CMS.
type App = platform.App

// Config mirrors the flatcms.yaml configuration file.
type Config = platform.FileConfig

// --- Configuration ---

// Option defines a functional option for configuring the CMS.
type Option = platform.Option

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithTestMode selects the test data directory as store root.
func WithTestMode(enabled bool) Option {
	return platform.WithTestMode(enabled)
}

// WithDataDir overrides the store root used in normal mode.
func WithDataDir(path string) Option {
	return platform.WithDataDir(path)
}

// WithTestDataDir overrides the store root used in test mode.
func WithTestDataDir(path string) Option {
	return platform.WithTestDataDir(path)
}

// WithMustExist makes startup fail when the store root is missing.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithIgnore replaces the patterns of file names hidden from listings.
func WithIgnore(patterns ...string) Option {
	return platform.WithIgnore(patterns...)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter selects the storage adapter by name. Only "fs" is built in.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithCredentials replaces the built-in admin account check.
func WithCredentials(checker auth.CredentialChecker) Option {
	return platform.WithCredentials(checker)
}

// WithSessionKey sets the key used to sign session cookies.
func WithSessionKey(key []byte) Option {
	return platform.WithSessionKey(key)
}

// WithSessionStore replaces the cookie session store.
func WithSessionStore(store sessions.Store) Option {
	return platform.WithSessionStore(store)
}

// WithUnsafeMarkdown lets raw HTML inside markdown documents reach the page.
func WithUnsafeMarkdown(enabled bool) Option {
	return platform.WithUnsafeMarkdown(enabled)
}

// --- Factory ---

// New creates the CMS rooted at base.
func New(base string, opts ...Option) (*App, error) {
	return platform.New(base, opts...)
}

// Init resolves and initializes only the document store.
func Init(base string, opts ...Option) (core.Repository, error) {
	return platform.Init(base, opts...)
}

// --- Configuration files ---

// LoadConfig reads a flatcms.yaml file.
func LoadConfig(path string) (*Config, error) {
	return platform.LoadConfig(path)
}

// FindConfig looks upwards from startDir for flatcms.yaml.
func FindConfig(startDir string) (string, error) {
	return platform.FindConfig(startDir)
}

// --- Safety & Utils ---

// ResolveStoreRoot picks the store root for the given run mode.
func ResolveStoreRoot(base string, testMode bool, dataDir, testDataDir string) string {
	return platform.ResolveStoreRoot(base, testMode, dataDir, testDataDir)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
