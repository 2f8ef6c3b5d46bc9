package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateModules, downCreateModules)
}

func upCreateModules(ctx context.Context, tx *sql.Tx) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS modules (
    id         VARCHAR(36) PRIMARY KEY,
    faculty_id VARCHAR(36) NOT NULL REFERENCES faculties (id) ON DELETE CASCADE,
    name       VARCHAR(255) NOT NULL,
    year       INTEGER NOT NULL,
    created_at %[1]s NOT NULL,
    updated_at %[1]s NOT NULL
)`, timestampType())
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create modules table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS modules_faculty_idx ON modules (faculty_id)`); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS modules_year_idx ON modules (year)`)
	return err
}

func downCreateModules(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS modules`)
	return err
}
