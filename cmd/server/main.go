package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"santa/internal/exchange/handler"
	"santa/internal/exchange/metrics"
	"santa/internal/exchange/service"
	"santa/internal/exchange/store"
	"santa/internal/platform/config"
	"santa/internal/platform/httpserver"
	"santa/internal/platform/logger"
	httptransport "santa/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle
// small. Business logic lives in the exchange packages.
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		logger.New("info").Error("invalid configuration", "error", err)
		return err
	}
	log := logger.New(cfg.LogLevel)

	svc, err := service.New(store.NewMemory(),
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
	)
	if err != nil {
		log.Error("service construction failed", "error", err)
		return err
	}

	router := httptransport.NewRouter(handler.New(svc, log))
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("server stopping", "timeout", cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		return err
	}
	log.Info("server stopped")
	return nil
}
