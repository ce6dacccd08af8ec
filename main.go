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

	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"chronopro-api/internal/app"
	"chronopro-api/internal/chrono"
	"chronopro-api/internal/config"
	"chronopro-api/internal/jobs"
	"chronopro-api/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// run serves until SIGINT/SIGTERM. Deferred cleanup stops the maintenance job
// before the store closes.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := app.OpenStore(cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Printf("Using %s database", cfg.DBDriver)

	if cfg.AdminToken == "" {
		log.Printf("ADMIN_TOKEN not set, admin routes accept any bearer token")
	}

	srv := server.New(server.Options{
		Engine:     chrono.NewEngine(chrono.DefaultTables()),
		Store:      store,
		AdminToken: cfg.AdminToken,
		IPHashSalt: cfg.IPHashSalt,
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(srv.Handler()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	maintenance := jobs.New(store, cfg.RetentionDays)
	if err := maintenance.Start(cfg.JobSchedule); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	defer maintenance.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Printf("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
