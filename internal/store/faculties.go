package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Faculty struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type FacultyStore struct {
	db *sqlx.DB
}

func NewFacultyStore(db *sqlx.DB) *FacultyStore {
	return &FacultyStore{db: db}
}

func (s *FacultyStore) q(query string) string { return s.db.Rebind(query) }

func (s *FacultyStore) GetByID(ctx context.Context, id string) (*Faculty, error) {
	var f Faculty
	err := s.db.GetContext(ctx, &f, s.q(`SELECT * FROM faculties WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *FacultyStore) ListAll(ctx context.Context) ([]*Faculty, error) {
	var faculties []*Faculty
	err := s.db.SelectContext(ctx, &faculties, `SELECT * FROM faculties ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	return faculties, nil
}

func (s *FacultyStore) Create(ctx context.Context, name, description string) (*Faculty, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO faculties (id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`), id, name, description, now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *FacultyStore) Update(ctx context.Context, id, name, description string) (*Faculty, error) {
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE faculties SET name = ?, description = ?, updated_at = ? WHERE id = ?
	`), name, description, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes a faculty. Modules, subjects, lectures, and links under it
// are removed by the ON DELETE CASCADE chain.
func (s *FacultyStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM faculties WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
