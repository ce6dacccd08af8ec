package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS user_responses (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			chronotype TEXT NOT NULL,
			training_time TEXT NOT NULL,
			frequency TEXT NOT NULL,
			diet TEXT NOT NULL,
			experience TEXT NOT NULL,
			supplements TEXT NOT NULL DEFAULT '[]',
			goal TEXT NOT NULL,
			ip_hash TEXT,
			user_agent TEXT,
			plan_generated TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_user_responses_created_at ON user_responses(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_user_responses_chronotype ON user_responses(chronotype)`,
		`CREATE INDEX IF NOT EXISTS idx_user_responses_diet ON user_responses(diet)`,
	}

	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
