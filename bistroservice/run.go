// Package bistroservice wires configuration, storage, auth and the HTTP
// surface into a runnable server.
package bistroservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bistroboss/server/internal/api"
	"github.com/bistroboss/server/internal/auth"
	"github.com/bistroboss/server/internal/config"
	"github.com/bistroboss/server/internal/health"
	"github.com/bistroboss/server/internal/logger"
	"github.com/bistroboss/server/internal/payments"
	mongostore "github.com/bistroboss/server/internal/store/mongo"
)

// Run starts the bistro HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("bistro-server")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("http_port", cfg.HTTPPort).
		Str("db_name", cfg.MongoDatabase).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Msg("Bistro service starting")

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := newServerContext()
	defer stop()

	// One Mongo client serves every request for the process lifetime;
	// an unreachable store aborts startup.
	client, err := mongostore.Open(ctx, cfg.ResolveMongoURI())
	if err != nil {
		log.Error().Err(err).Msg("Store unreachable")
		return err
	}
	defer func() {
		ctxDisc, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctxDisc)
	}()
	st := mongostore.New(client, cfg.MongoDatabase)

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.JWTTTLHours)
	intents := payments.NewStripeProvider(cfg.StripeSecretKey)

	checker := health.NewChecker("mongo", st, log, 5*time.Second)
	go checker.Start(ctx, 30*time.Second)

	router := api.NewRouter(api.Deps{
		Store:          st,
		Tokens:         tokens,
		Intents:        intents,
		Health:         checker,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
