package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Subject struct {
	ID          string    `db:"id"`
	ModuleID    string    `db:"module_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type SubjectStore struct {
	db *sqlx.DB
}

func NewSubjectStore(db *sqlx.DB) *SubjectStore {
	return &SubjectStore{db: db}
}

func (s *SubjectStore) q(query string) string { return s.db.Rebind(query) }

func (s *SubjectStore) GetByID(ctx context.Context, id string) (*Subject, error) {
	var sub Subject
	err := s.db.GetContext(ctx, &sub, s.q(`SELECT * FROM subjects WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubjectStore) ListByModule(ctx context.Context, moduleID string) ([]*Subject, error) {
	var subjects []*Subject
	err := s.db.SelectContext(ctx, &subjects, s.q(`SELECT * FROM subjects WHERE module_id = ? ORDER BY name ASC`), moduleID)
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

func (s *SubjectStore) Create(ctx context.Context, moduleID, name, description string) (*Subject, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO subjects (id, module_id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), id, moduleID, name, description, now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *SubjectStore) Update(ctx context.Context, id, name, description string) (*Subject, error) {
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE subjects SET name = ?, description = ?, updated_at = ? WHERE id = ?
	`), name, description, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *SubjectStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM subjects WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
