package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agrimind/landing/pkg/api"
	"github.com/agrimind/landing/pkg/clients/airtable"
	"github.com/agrimind/landing/pkg/config"
	"github.com/agrimind/landing/pkg/content"
	"github.com/agrimind/landing/pkg/services"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func newSignup(cfg *config.Config, logger *zap.Logger) services.Signup {
	if !cfg.Airtable.Enabled() {
		logger.Info("Airtable not configured, waitlist emails are acknowledged but not stored")
		return services.NewNoopSignup(logger)
	}
	client := airtable.NewClient(cfg.Airtable.APIKey, cfg.Airtable.BaseID, cfg.Airtable.Endpoint, logger)
	return services.NewAirtableSignup(client, cfg.Airtable.WaitlistTable, logger)
}

func runServe(cmd *cobra.Command, args []string) error {
	if servePort != "" {
		cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := services.NewSessionStore(cfg.SessionTTL)
	go sessions.Run(ctx, cfg.SessionSweep)

	waitlist := services.NewWaitlistService(sessions, newSignup(cfg, logger), logger)
	handlers := api.NewHandlers(waitlist, content.AgriMind(), cfg.SceneURL, logger)

	gin.SetMode(gin.ReleaseMode)
	router, err := api.NewRouter(handlers, api.RouterOptions{
		SessionTTL:         cfg.SessionTTL,
		CookieSecure:       cfg.CookieSecure,
		CORSOrigins:        cfg.CORSOrigins,
		TrustedProxies:     cfg.TrustedProxies,
		WaitlistRatePerMin: cfg.WaitlistRatePerMin,
		WaitlistBurst:      cfg.WaitlistBurst,
	}, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	return nil
}
