package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lecturevault/lecturevault/internal/store"
	"github.com/lecturevault/lecturevault/internal/testutil"
)

func TestLectureLinkStore_RejectsUnknownKind(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	faculties := store.NewFacultyStore(db)
	modules := store.NewModuleStore(db)
	subjects := store.NewSubjectStore(db)
	lectures := store.NewLectureStore(db)
	links := store.NewLectureLinkStore(db)

	f, _ := faculties.Create(ctx, "Science", "")
	m, _ := modules.Create(ctx, f.ID, "Acoustics", 1)
	s, _ := subjects.Create(ctx, m.ID, "Resonance", "")
	l, err := lectures.Create(ctx, s.ID, "Standing waves", "", "", nil)
	if err != nil {
		t.Fatalf("seed chain: %v", err)
	}

	// The store rejects unknown kinds even when a caller bypasses the
	// request-level validation.
	if _, err := links.Create(ctx, l.ID, "x", "https://example.com", "hologram"); !errors.Is(err, store.ErrInvalidLinkKind) {
		t.Errorf("Create err = %v, want ErrInvalidLinkKind", err)
	}

	link, err := links.Create(ctx, l.ID, "x", "https://example.com", "video")
	if err != nil {
		t.Fatalf("create link: %v", err)
	}
	if _, err := links.Update(ctx, link.ID, "x", "https://example.com", "hologram"); !errors.Is(err, store.ErrInvalidLinkKind) {
		t.Errorf("Update err = %v, want ErrInvalidLinkKind", err)
	}
}

func TestValidateLinkKind(t *testing.T) {
	for _, kind := range []string{"video", "slides", "notes", "other"} {
		if err := store.ValidateLinkKind(kind); err != nil {
			t.Errorf("ValidateLinkKind(%q) = %v, want nil", kind, err)
		}
	}
	if err := store.ValidateLinkKind(""); !errors.Is(err, store.ErrInvalidLinkKind) {
		t.Errorf("ValidateLinkKind(\"\") = %v, want ErrInvalidLinkKind", err)
	}
}
