package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSubjects, downCreateSubjects)
}

func upCreateSubjects(ctx context.Context, tx *sql.Tx) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS subjects (
    id          VARCHAR(36) PRIMARY KEY,
    module_id   VARCHAR(36) NOT NULL REFERENCES modules (id) ON DELETE CASCADE,
    name        VARCHAR(255) NOT NULL,
    description TEXT NOT NULL,
    created_at  %[1]s NOT NULL,
    updated_at  %[1]s NOT NULL
)`, timestampType())
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create subjects table: %w", err)
	}
	_, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS subjects_module_idx ON subjects (module_id)`)
	return err
}

func downCreateSubjects(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS subjects`)
	return err
}
