package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Lecture struct {
	ID          string       `db:"id"`
	SubjectID   string       `db:"subject_id"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	Lecturer    string       `db:"lecturer"`
	DeliveredAt sql.NullTime `db:"delivered_at"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

type LectureStore struct {
	db *sqlx.DB
}

func NewLectureStore(db *sqlx.DB) *LectureStore {
	return &LectureStore{db: db}
}

func (s *LectureStore) q(query string) string { return s.db.Rebind(query) }

func (s *LectureStore) GetByID(ctx context.Context, id string) (*Lecture, error) {
	var l Lecture
	err := s.db.GetContext(ctx, &l, s.q(`SELECT * FROM lectures WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *LectureStore) ListBySubject(ctx context.Context, subjectID string) ([]*Lecture, error) {
	var lectures []*Lecture
	err := s.db.SelectContext(ctx, &lectures, s.q(`
		SELECT * FROM lectures WHERE subject_id = ? ORDER BY delivered_at ASC, title ASC
	`), subjectID)
	if err != nil {
		return nil, err
	}
	return lectures, nil
}

func (s *LectureStore) Create(ctx context.Context, subjectID, title, description, lecturer string, deliveredAt *time.Time) (*Lecture, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	var delivered sql.NullTime
	if deliveredAt != nil {
		delivered = sql.NullTime{Time: deliveredAt.UTC(), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO lectures (id, subject_id, title, description, lecturer, delivered_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`), id, subjectID, title, description, lecturer, delivered, now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *LectureStore) Update(ctx context.Context, id, title, description, lecturer string, deliveredAt *time.Time) (*Lecture, error) {
	var delivered sql.NullTime
	if deliveredAt != nil {
		delivered = sql.NullTime{Time: deliveredAt.UTC(), Valid: true}
	}

	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE lectures SET title = ?, description = ?, lecturer = ?, delivered_at = ?, updated_at = ? WHERE id = ?
	`), title, description, lecturer, delivered, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *LectureStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM lectures WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
