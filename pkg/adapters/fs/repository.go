package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/flatcms/pkg/core"
)

// DefaultIgnore lists the base-name patterns hidden from listings and watch events.
var DefaultIgnore = []string{".*", TempFilePrefix + "*"}

// Repository implements core.Repository on a single flat directory.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path         string
	MustExist    bool
	Logger       *slog.Logger
	Ignore       []string    // doublestar patterns matched against base names; nil means DefaultIgnore
	EventBuffer  int         // size of the watch channel buffer; zero means 100
	ErrorHandler func(error) // receives watcher failures that are otherwise only logged
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Ignore == nil {
		config.Ignore = DefaultIgnore
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Initialize prepares the store root.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: store path does not exist: %s", core.ErrStoreUnavailable, r.Path)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", core.ErrStoreUnavailable, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: store path is not a directory: %s", core.ErrStoreUnavailable, r.Path)
		}
		return nil
	}

	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	r.config.Logger.Debug("store initialized", "path", r.Path)
	return nil
}

// List returns the names of regular, non-ignored files in the root, sorted by name.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrStoreUnavailable, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || r.ignored(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Read returns the raw content of a document together with its format.
func (r *Repository) Read(ctx context.Context, name string) (core.Document, error) {
	fullPath, err := r.resolve(name)
	if err != nil {
		return core.Document{}, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Document{}, fmt.Errorf("%w: %s", core.ErrNotFound, name)
		}
		return core.Document{}, fmt.Errorf("failed to stat %s: %w", name, err)
	}
	if info.IsDir() {
		return core.Document{}, fmt.Errorf("%w: %s", core.ErrNotFound, name)
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return core.Document{
		Name:    name,
		Content: content,
		Format:  core.FormatOf(name),
	}, nil
}

// Write replaces the content of a document atomically, creating it if absent.
func (r *Repository) Write(ctx context.Context, name string, content []byte) error {
	fullPath, err := r.resolveListed(name)
	if err != nil {
		return err
	}
	if err := r.checkRoot(); err != nil {
		return err
	}

	if err := writeFileAtomic(fullPath, content, 0644); err != nil {
		return err
	}
	r.config.Logger.Debug("document written", "name", name, "bytes", len(content))
	return nil
}

// Create adds an empty document, failing if the name is taken.
func (r *Repository) Create(ctx context.Context, name string) error {
	fullPath, err := r.resolveListed(name)
	if err != nil {
		return err
	}
	if err := r.checkRoot(); err != nil {
		return err
	}

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", core.ErrAlreadyExists, name)
		}
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	r.config.Logger.Debug("document created", "name", name)
	return nil
}

// Delete removes a document.
func (r *Repository) Delete(ctx context.Context, name string) error {
	fullPath, err := r.resolve(name)
	if err != nil {
		return err
	}

	info, err := os.Stat(fullPath)
	if os.IsNotExist(err) || (err == nil && info.IsDir()) {
		return fmt.Errorf("%w: %s", core.ErrNotFound, name)
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", core.ErrNotFound, name)
		}
		return fmt.Errorf("failed to remove file: %w", err)
	}
	r.config.Logger.Debug("document deleted", "name", name)
	return nil
}

// resolve maps a document name to a path directly inside the root.
func (r *Repository) resolve(name string) (string, error) {
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", core.ErrInvalidName, name)
	}

	fullPath := filepath.Join(r.Path, name)
	rel, err := filepath.Rel(r.Path, fullPath)
	if err != nil || rel != name || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%w: %q resolves outside the store", core.ErrInvalidName, name)
	}
	return fullPath, nil
}

// resolveListed is resolve for new content: names List would hide are rejected.
func (r *Repository) resolveListed(name string) (string, error) {
	fullPath, err := r.resolve(name)
	if err != nil {
		return "", err
	}
	if r.ignored(name) {
		return "", fmt.Errorf("%w: %q is hidden by the ignore patterns", core.ErrInvalidName, name)
	}
	return fullPath, nil
}

func (r *Repository) checkRoot() error {
	info, err := os.Stat(r.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrStoreUnavailable, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: store path is not a directory: %s", core.ErrStoreUnavailable, r.Path)
	}
	return nil
}

// ignored reports whether a base name matches one of the ignore patterns.
func (r *Repository) ignored(name string) bool {
	for _, pattern := range r.config.Ignore {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			r.config.Logger.Warn("invalid ignore pattern", "pattern", pattern, "error", err)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
