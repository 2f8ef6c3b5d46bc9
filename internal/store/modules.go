package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Module struct {
	ID        string    `db:"id"`
	FacultyID string    `db:"faculty_id"`
	Name      string    `db:"name"`
	Year      int       `db:"year"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type ModuleStore struct {
	db *sqlx.DB
}

func NewModuleStore(db *sqlx.DB) *ModuleStore {
	return &ModuleStore{db: db}
}

func (s *ModuleStore) q(query string) string { return s.db.Rebind(query) }

func (s *ModuleStore) GetByID(ctx context.Context, id string) (*Module, error) {
	var m Module
	err := s.db.GetContext(ctx, &m, s.q(`SELECT * FROM modules WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ModuleStore) ListAll(ctx context.Context) ([]*Module, error) {
	var modules []*Module
	err := s.db.SelectContext(ctx, &modules, `SELECT * FROM modules ORDER BY year ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	return modules, nil
}

// ListByYear returns modules belonging to the given cohort year. Year
// filtering happens here rather than in handlers so students never see
// rows outside their scope.
func (s *ModuleStore) ListByYear(ctx context.Context, year int) ([]*Module, error) {
	var modules []*Module
	err := s.db.SelectContext(ctx, &modules, s.q(`SELECT * FROM modules WHERE year = ? ORDER BY name ASC`), year)
	if err != nil {
		return nil, err
	}
	return modules, nil
}

func (s *ModuleStore) ListByFaculty(ctx context.Context, facultyID string) ([]*Module, error) {
	var modules []*Module
	err := s.db.SelectContext(ctx, &modules, s.q(`SELECT * FROM modules WHERE faculty_id = ? ORDER BY year ASC, name ASC`), facultyID)
	if err != nil {
		return nil, err
	}
	return modules, nil
}

// ListByFacultyAndYear returns the year-scoped view of a faculty's modules.
func (s *ModuleStore) ListByFacultyAndYear(ctx context.Context, facultyID string, year int) ([]*Module, error) {
	var modules []*Module
	err := s.db.SelectContext(ctx, &modules, s.q(`
		SELECT * FROM modules WHERE faculty_id = ? AND year = ? ORDER BY name ASC
	`), facultyID, year)
	if err != nil {
		return nil, err
	}
	return modules, nil
}

func (s *ModuleStore) Create(ctx context.Context, facultyID, name string, year int) (*Module, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO modules (id, faculty_id, name, year, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), id, facultyID, name, year, now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *ModuleStore) Update(ctx context.Context, id, name string, year int) (*Module, error) {
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE modules SET name = ?, year = ?, updated_at = ? WHERE id = ?
	`), name, year, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *ModuleStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM modules WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
