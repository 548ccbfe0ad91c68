package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"GameStore/internal/config"
	"GameStore/internal/db"
	"GameStore/internal/logger"
	"GameStore/internal/repository"
	"GameStore/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

// run wires the service and blocks until ctx is cancelled or the server
// fails. Every resource it opens is released before it returns.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logr := logger.New(cfg.LogLevel, cfg.LogFormat)

	// ======================
	// INFRA
	// ======================
	dbLog := logger.Component(logr, "database")
	pool, err := db.Connect(ctx, cfg.ConnectionString, dbLog)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// ======================
	// REPOSITORIES & SERVICES
	// ======================
	gameRepo := repository.NewGameRepository(pool)
	genreRepo := repository.NewGenreRepository(pool)

	gameSvc := services.NewGameService(gameRepo, logger.Component(logr, "games"))
	genreSvc := services.NewGenreService(genreRepo, logger.Component(logr, "genres"))

	// ======================
	// ROUTES
	// ======================
	e := newServer(logr, gameSvc, genreSvc, pool)
	for _, r := range e.Routes() {
		logr.Debugf("route %s %s", r.Method, r.Path)
	}

	if err := db.Migrate(pool, dbLog); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	// ======================
	// SERVER
	// ======================
	serveErr := make(chan error, 1)
	go func() {
		logr.Infof("starting server on %s", cfg.Addr())
		serveErr <- e.Start(cfg.Addr())
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logr.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
