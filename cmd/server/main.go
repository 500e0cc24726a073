// Command server runs the NHI validation HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"nhicheck/internal/jwtauth"
	"nhicheck/internal/platform/config"
	"nhicheck/internal/platform/httpserver"
	"nhicheck/internal/platform/logger"
	"nhicheck/internal/platform/metrics"
	"nhicheck/internal/platform/middleware"
	httptransport "nhicheck/internal/transport/http"
	"nhicheck/internal/validate"
)

// main wires high-level dependencies and keeps the server lifecycle
// small. Validation logic lives in internal/validate and pkg/nhi.
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger config may itself be broken, so report on stderr.
		os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	m := metrics.New()

	var jwtValidator middleware.JWTValidator
	if cfg.AuthEnabled() {
		jwtValidator = jwtauth.NewService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	}

	handler := httptransport.NewHandler(validate.New(log, m), log)
	router := httptransport.NewRouter(handler, httptransport.RouterOptions{
		Logger:         log,
		Metrics:        m,
		RequestTimeout: cfg.RequestTimeout,
		JWTValidator:   jwtValidator,
	})

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting nhicheck", "addr", cfg.Addr, "auth", cfg.AuthEnabled())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
