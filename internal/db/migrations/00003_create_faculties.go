package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateFaculties, downCreateFaculties)
}

func upCreateFaculties(ctx context.Context, tx *sql.Tx) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS faculties (
    id          VARCHAR(36) PRIMARY KEY,
    name        VARCHAR(255) NOT NULL UNIQUE,
    description TEXT NOT NULL,
    created_at  %[1]s NOT NULL,
    updated_at  %[1]s NOT NULL
)`, timestampType())
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create faculties table: %w", err)
	}
	return nil
}

func downCreateFaculties(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS faculties`)
	return err
}
