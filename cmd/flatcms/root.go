package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/flatcms"
)

var (
	verbose    bool
	configPath string
	dataDir    string
	testMode   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flatcms",
	Short: "A minimal flat-file CMS",
	Long: `flatcms serves the text and markdown files of a single directory.
Anyone can read them; a signed-in admin can create, edit and delete them.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to flatcms.yaml (searched upwards from the working directory by default)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the documents")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test", false, "Use the test data directory")
}

// loadConfig returns the configuration file in effect, or an empty one.
// The returned base is the directory store paths are resolved against:
// the config file's directory, or the working directory without one.
func loadConfig() (*flatcms.Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}

	path := configPath
	if path == "" {
		found, err := flatcms.FindConfig(wd)
		if errors.Is(err, os.ErrNotExist) {
			return &flatcms.Config{}, wd, nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}

	cfg, err := flatcms.LoadConfig(path)
	if err != nil {
		return nil, "", err
	}
	slog.Debug("loaded config", "path", path)
	return cfg, filepath.Dir(path), nil
}

// newApp wires the CMS from the config file and the persistent flags.
// Flags override the file.
func newApp(cmd *cobra.Command) (*flatcms.App, *flatcms.Config) {
	cfg, base, err := loadConfig()
	if err != nil {
		fatal("Failed to load config", err)
	}

	opts := append([]flatcms.Option{flatcms.WithLogger(slog.Default())}, cfg.Options()...)
	if dataDir != "" {
		// The flag is relative to the working directory, not the config file.
		abs, err := filepath.Abs(dataDir)
		if err != nil {
			fatal("Failed to resolve data directory", err)
		}
		opts = append(opts, flatcms.WithDataDir(abs))
	}
	if cmd.Flags().Changed("test") {
		opts = append(opts, flatcms.WithTestMode(testMode))
	}

	app, err := flatcms.New(base, opts...)
	if err != nil {
		fatal("Failed to initialize flatcms", err)
	}
	return app, cfg
}
