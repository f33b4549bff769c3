package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates PostgreSQL GIN indexes that Ent schemas
// cannot express. Report text search runs over the job input payload;
// artifact search runs over the synthesized summary.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_jobs_input_gin
		ON jobs USING gin(input jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create jobs input GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_result_artifacts_summary_gin
		ON result_artifacts USING gin(to_tsvector('english', COALESCE(summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create artifact summary GIN index: %w", err)
	}

	return nil
}
