package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"chronopro-api/internal/app"
	"chronopro-api/internal/config"
	"chronopro-api/internal/render"
	"chronopro-api/internal/storage"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBDriver = config.DriverSQLite
		cfg.DBPath = dbPath
	}
	return cfg, nil
}

// withStore opens and migrates the configured store for the duration of run.
func withStore(ctx context.Context, run func(storage.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return run(store)
}

func write(cmd *cobra.Command, v any) error {
	f, err := render.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	return render.Write(cmd.OutOrStdout(), f, v)
}
