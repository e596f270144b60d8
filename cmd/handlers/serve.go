package handlers

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tubelens/internal/analyze"
	"tubelens/internal/config"
	"tubelens/internal/logger"
	"tubelens/internal/server"
	"tubelens/internal/store"
)

// NewServeCmd creates the serve command for starting the HTTP server.
func NewServeCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP analysis server",
		Long: `Start the tubelens HTTP server.

The server provides:
  • POST /api/analyze for keyword analysis of a video batch
  • POST /api/strategy for channel strategy suggestions
  • GET/POST /api/engagement for the per-channel engagement store
  • Health check and status endpoints

Examples:
  # Start server on the configured port (default 8080)
  tubelens serve

  # Start on a custom port
  tubelens serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port, host)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "HTTP server port (default from config: 8080)")
	cmd.Flags().StringVar(&host, "host", "", "HTTP server host (default from config: 0.0.0.0)")

	return cmd
}

func runServe(ctx context.Context, port int, host string) error {
	log := logger.Get()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.SetLevel(cfg.Logging.Level)

	serverCfg := cfg.Server
	if port != 0 {
		serverCfg.Port = port
	}
	if host != "" {
		serverCfg.Host = host
	}

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open engagement store: %w", err)
	}
	defer st.Close()

	if err := st.Ping(ctx); err != nil {
		return fmt.Errorf("engagement store ping failed: %w", err)
	}
	log.Info().Str("path", st.Path()).Msg("Engagement store ready")

	analyzer := analyze.New(cfg.Analysis.TopKeywords)
	srv := server.New(st, analyzer, serverCfg)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Msgf("Server listening on http://%s:%d", serverCfg.Host, serverCfg.Port)
		serverErrors <- srv.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info().Str("signal", sig.String()).Msg("Server shutdown initiated")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		log.Info().Msg("Server stopped successfully")
	}

	return nil
}

// openStore opens the engagement store at the configured location. An
// explicit database path wins over the data directory default.
func openStore(cfg *config.Config) (*store.Store, error) {
	if cfg.Database.Path != "" {
		return store.Open(cfg.Database.Path)
	}
	return store.New(cfg.App.DataDir)
}
