package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nmoreno/blogapi/internal/config"
	"github.com/nmoreno/blogapi/internal/db"
	"github.com/nmoreno/blogapi/internal/logging"
	"github.com/nmoreno/blogapi/internal/server"
	"github.com/nmoreno/blogapi/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(false).Fatalf("load config: %v", err)
	}

	logger := logging.New(cfg.Debug)
	logger.Infof("%s %s starting", cfg.AppName, version.Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer pool.Close()

	if err := db.WaitUntilReady(ctx, pool, cfg.DBWaitInterval, cfg.DBWaitTimeout, logger); err != nil {
		logger.Fatalf("wait for database: %v", err)
	}
	logger.Info("database is ready")

	if err := db.Migrate(pool); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}
	logger.Info("migrations applied")

	gdb, err := db.NewGorm(pool, cfg.Debug)
	if err != nil {
		logger.Fatalf("init orm: %v", err)
	}

	router, err := server.NewRouter(cfg, gdb, pool, logger)
	if err != nil {
		logger.Fatalf("build router: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
