package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"
)

const defaultAddr = ":5003"

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long:  `Serve the documents over HTTP until interrupted. Ctrl+C shuts the server down gracefully.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, cfg := newApp(cmd)

		addr := serveAddr
		if !cmd.Flags().Changed("addr") && cfg.Addr != "" {
			addr = cfg.Addr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if serveWatch || cfg.Watch {
			lifecycle.Go(ctx, app.Watch, lifecycle.WithErrorHandler(func(err error) {
				slog.Error("watcher failed", "error", err)
			}))
		}

		if err := app.Serve(ctx, addr); err != nil {
			fatal("Server failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", defaultAddr, "Address to listen on")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Log changes made to the data directory outside the web UI")
}
