package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateLectureLinks, downCreateLectureLinks)
}

func upCreateLectureLinks(ctx context.Context, tx *sql.Tx) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS lecture_links (
    id         VARCHAR(36) PRIMARY KEY,
    lecture_id VARCHAR(36) NOT NULL REFERENCES lectures (id) ON DELETE CASCADE,
    label      VARCHAR(255) NOT NULL,
    url        TEXT NOT NULL,
    kind       VARCHAR(16) NOT NULL DEFAULT 'other',
    created_at %[1]s NOT NULL,
    updated_at %[1]s NOT NULL
)`, timestampType())
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create lecture_links table: %w", err)
	}
	_, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS lecture_links_lecture_idx ON lecture_links (lecture_id)`)
	return err
}

func downCreateLectureLinks(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS lecture_links`)
	return err
}
