package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// ChainStore resolves the owning-module year for entities in the
// Faculty → Module → Subject → Lecture → LectureLink containment chain.
// Authorization decisions are made against the resolved year, so any
// missing hop must surface as ErrNotFound, never as an access failure.
type ChainStore struct {
	db *sqlx.DB
}

func NewChainStore(db *sqlx.DB) *ChainStore {
	return &ChainStore{db: db}
}

func (s *ChainStore) q(query string) string { return s.db.Rebind(query) }

// ModuleYear returns the year of the module itself.
func (s *ChainStore) ModuleYear(ctx context.Context, moduleID string) (int, error) {
	var year int
	err := s.db.GetContext(ctx, &year, s.q(`SELECT year FROM modules WHERE id = ?`), moduleID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return year, err
}

// SubjectModuleYear returns the year of the module owning the subject.
func (s *ChainStore) SubjectModuleYear(ctx context.Context, subjectID string) (int, error) {
	var year int
	err := s.db.GetContext(ctx, &year, s.q(`
		SELECT m.year FROM modules m
		INNER JOIN subjects s ON s.module_id = m.id
		WHERE s.id = ?
	`), subjectID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return year, err
}

// LectureModuleYear returns the year of the module owning the lecture's subject.
func (s *ChainStore) LectureModuleYear(ctx context.Context, lectureID string) (int, error) {
	var year int
	err := s.db.GetContext(ctx, &year, s.q(`
		SELECT m.year FROM modules m
		INNER JOIN subjects s ON s.module_id = m.id
		INNER JOIN lectures l ON l.subject_id = s.id
		WHERE l.id = ?
	`), lectureID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return year, err
}

// LinkModuleYear returns the year of the module owning the link's lecture.
func (s *ChainStore) LinkModuleYear(ctx context.Context, linkID string) (int, error) {
	var year int
	err := s.db.GetContext(ctx, &year, s.q(`
		SELECT m.year FROM modules m
		INNER JOIN subjects s ON s.module_id = m.id
		INNER JOIN lectures l ON l.subject_id = s.id
		INNER JOIN lecture_links ll ON ll.lecture_id = l.id
		WHERE ll.id = ?
	`), linkID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return year, err
}
