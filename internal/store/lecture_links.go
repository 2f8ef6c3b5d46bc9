package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrInvalidLinkKind is returned when a lecture link kind is not one of
// video, slides, notes, other.
var ErrInvalidLinkKind = errors.New("kind must be one of: video, slides, notes, other")

type LectureLink struct {
	ID        string    `db:"id"`
	LectureID string    `db:"lecture_id"`
	Label     string    `db:"label"`
	URL       string    `db:"url"`
	Kind      string    `db:"kind"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type LectureLinkStore struct {
	db *sqlx.DB
}

func NewLectureLinkStore(db *sqlx.DB) *LectureLinkStore {
	return &LectureLinkStore{db: db}
}

func (s *LectureLinkStore) q(query string) string { return s.db.Rebind(query) }

// ValidateLinkKind checks that kind is one of the allowed values.
func ValidateLinkKind(kind string) error {
	switch kind {
	case "video", "slides", "notes", "other":
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLinkKind, kind)
	}
}

func (s *LectureLinkStore) GetByID(ctx context.Context, id string) (*LectureLink, error) {
	var l LectureLink
	err := s.db.GetContext(ctx, &l, s.q(`SELECT * FROM lecture_links WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *LectureLinkStore) ListByLecture(ctx context.Context, lectureID string) ([]*LectureLink, error) {
	var links []*LectureLink
	err := s.db.SelectContext(ctx, &links, s.q(`SELECT * FROM lecture_links WHERE lecture_id = ? ORDER BY label ASC`), lectureID)
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (s *LectureLinkStore) Create(ctx context.Context, lectureID, label, url, kind string) (*LectureLink, error) {
	if err := ValidateLinkKind(kind); err != nil {
		return nil, err
	}
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO lecture_links (id, lecture_id, label, url, kind, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), id, lectureID, label, url, kind, now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *LectureLinkStore) Update(ctx context.Context, id, label, url, kind string) (*LectureLink, error) {
	if err := ValidateLinkKind(kind); err != nil {
		return nil, err
	}
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE lecture_links SET label = ?, url = ?, kind = ?, updated_at = ? WHERE id = ?
	`), label, url, kind, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *LectureLinkStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM lecture_links WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
