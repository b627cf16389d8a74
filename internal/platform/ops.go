package platform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/flatcms/pkg/adapters/fs"
	"github.com/aretw0/flatcms/pkg/core"
)

// Init resolves the store root under base and returns the initialized repository.
func Init(base string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	repo, _, err := initRepository(base, o)
	return repo, err
}

func initRepository(base string, o *options) (core.Repository, string, error) {
	// 1. Check for injected repository
	if o.repository != nil {
		return o.repository, "", nil
	}

	// 2. Initialize based on Adapter
	var repo core.Repository
	var root string
	switch o.adapter {
	case "fs":
		repo, root = initFS(base, o)
	default:
		return nil, "", fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	// 3. Run Initialization
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, "", err
	}
	return repo, root, nil
}

// initFS builds the filesystem adapter for the selected run mode.
func initFS(base string, o *options) (core.Repository, string) {
	testMode := IsDevRun()
	if o.testMode != nil {
		testMode = *o.testMode
	}
	root := ResolveStoreRoot(base, testMode, o.dataDir, o.testDataDir)

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if testMode {
		logger.Warn("running in TEST mode", "store", root)
	} else {
		logger.Debug("using store", "store", root)
	}

	repo := fs.NewRepository(fs.Config{
		Path:      root,
		MustExist: o.mustExist,
		Logger:    logger,
		Ignore:    o.ignore,
		ErrorHandler: func(err error) {
			logger.Warn("store watcher failure", "error", err)
		},
	})
	return repo, root
}
