package app

import (
	"fmt"
	"os"
	"path/filepath"

	"chronopro-api/internal/config"
	"chronopro-api/internal/storage"
	"chronopro-api/internal/storage/postgres"
	"chronopro-api/internal/storage/sqlite"
)

// OpenStore connects to the database selected by cfg.DBDriver.
func OpenStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		s, err := postgres.New(cfg.DSN())
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverSQLite:
		if err := EnsureDBDir(cfg.DBPath); err != nil {
			return nil, err
		}
		s, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DBDriver)
	}
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
