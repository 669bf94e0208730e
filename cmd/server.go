package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/docnav/docnav/internal/config"
	"github.com/docnav/docnav/internal/nav"
	"github.com/docnav/docnav/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the documentation live from markdown",
	Long: `Starts the docnav server. Pages are rendered from markdown on every request,
alongside a JSON navigation API and a websocket that recomputes navigation
state on each navigation event.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, router, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		port := cfg.Server.Port
		if cmd.Flags().Changed("port") {
			port = serverPort
		}
		return serve(cfg, logger, router, port)
	},
}

// serve runs the live server until SIGINT or SIGTERM.
func serve(cfg *config.Config, logger *zap.Logger, router *nav.Router, port int) error {
	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:     port,
		AllowAll: cfg.Server.AllowAllOrigins,
	}, router, renderer, logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	fmt.Fprintf(os.Stderr, "docnav %s serving %s at http://localhost:%d (Ctrl+C to stop)\n", Version, cfg.DocsDir, port)
	for _, s := range router.Sets() {
		logger.Debug("navigation set",
			zap.String("set", s.Name),
			zap.String("pattern", s.Pattern),
			zap.Int("pages", len(s.Pages())),
		)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serverCmd)
}
