package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateLectures, downCreateLectures)
}

func upCreateLectures(ctx context.Context, tx *sql.Tx) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS lectures (
    id           VARCHAR(36) PRIMARY KEY,
    subject_id   VARCHAR(36) NOT NULL REFERENCES subjects (id) ON DELETE CASCADE,
    title        VARCHAR(255) NOT NULL,
    description  TEXT NOT NULL,
    lecturer     VARCHAR(255) NOT NULL DEFAULT '',
    delivered_at %[1]s NULL,
    created_at   %[1]s NOT NULL,
    updated_at   %[1]s NOT NULL
)`, timestampType())
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create lectures table: %w", err)
	}
	_, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS lectures_subject_idx ON lectures (subject_id)`)
	return err
}

func downCreateLectures(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS lectures`)
	return err
}
