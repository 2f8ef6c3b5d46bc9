package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lecturevault/lecturevault/internal/api"
	"github.com/lecturevault/lecturevault/internal/auth"
	"github.com/lecturevault/lecturevault/internal/store"
	"github.com/lecturevault/lecturevault/internal/testutil"
)

// testEnv holds all stores and helpers needed for API integration tests.
type testEnv struct {
	Router       http.Handler
	UserStore    *store.UserStore
	FacultyStore *store.FacultyStore
	ModuleStore  *store.ModuleStore
	SubjectStore *store.SubjectStore
	LectureStore *store.LectureStore
	LinkStore    *store.LectureLinkStore
	TokenStore   *auth.SQLTokenStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full API router with real stores.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	us := store.NewUserStore(db)
	fs := store.NewFacultyStore(db)
	ms := store.NewModuleStore(db)
	ss := store.NewSubjectStore(db)
	ls := store.NewLectureStore(db)
	lls := store.NewLectureLinkStore(db)
	cs := store.NewChainStore(db)
	ts := auth.NewSQLTokenStore(db)

	sm := auth.NewSessionManager(db, "sqlite3", time.Hour, false)
	mw := auth.NewMiddleware(sm, us, ts)

	router := api.NewAPIRouter(api.Deps{
		AuthMiddleware: mw,
		UserStore:      us,
		FacultyStore:   fs,
		ModuleStore:    ms,
		SubjectStore:   ss,
		LectureStore:   ls,
		LinkStore:      lls,
		ChainStore:     cs,
		TokenStore:     ts,
	})

	return &testEnv{
		// The session fallback in Authenticate needs the scs middleware
		// even when every test authenticates with a Bearer token.
		Router:       sm.LoadAndSave(router),
		UserStore:    us,
		FacultyStore: fs,
		ModuleStore:  ms,
		SubjectStore: ss,
		LectureStore: ls,
		LinkStore:    lls,
		TokenStore:   ts,
	}
}

// seedUser creates a user with the given role and year.
func seedUser(t *testing.T, env *testEnv, email, role string, year int) *store.User {
	t.Helper()
	ctx := context.Background()
	u, err := env.UserStore.Upsert(ctx, "test", "sub-"+email, email, "Test User", "")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if role != store.RoleStudent {
		u, err = env.UserStore.UpdateRole(ctx, u.ID, role)
		if err != nil {
			t.Fatalf("update role: %v", err)
		}
	}
	if year != store.YearUnassigned {
		u, err = env.UserStore.UpdateYear(ctx, u.ID, year)
		if err != nil {
			t.Fatalf("update year: %v", err)
		}
	}
	return u
}

// seedToken creates a real API token for a user and returns the plaintext Bearer value.
func seedToken(t *testing.T, env *testEnv, userID string) string {
	t.Helper()
	plaintext, hash, err := auth.GenerateToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := env.TokenStore.Create(context.Background(), userID, "test-token", hash, nil); err != nil {
		t.Fatalf("create token: %v", err)
	}
	return plaintext
}

// facultySeq makes each seeded faculty name unique; faculties.name has a
// UNIQUE constraint, and some tests seed more than one chain per database.
var facultySeq atomic.Int64

// chain holds one seeded faculty -> module -> subject -> lecture -> link path.
type chain struct {
	Faculty *store.Faculty
	Module  *store.Module
	Subject *store.Subject
	Lecture *store.Lecture
	Link    *store.LectureLink
}

// seedChain creates a full containment chain with the module in the given year.
func seedChain(t *testing.T, env *testEnv, year int) *chain {
	t.Helper()
	ctx := context.Background()

	f, err := env.FacultyStore.Create(ctx, fmt.Sprintf("Engineering %d", facultySeq.Add(1)), "")
	if err != nil {
		t.Fatalf("seed faculty: %v", err)
	}
	m, err := env.ModuleStore.Create(ctx, f.ID, "Distributed Systems", year)
	if err != nil {
		t.Fatalf("seed module: %v", err)
	}
	s, err := env.SubjectStore.Create(ctx, m.ID, "Consensus", "")
	if err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	l, err := env.LectureStore.Create(ctx, s.ID, "Raft in practice", "", "Dr. Ongaro", nil)
	if err != nil {
		t.Fatalf("seed lecture: %v", err)
	}
	link, err := env.LinkStore.Create(ctx, l.ID, "Recording", "https://example.com/raft.mp4", "video")
	if err != nil {
		t.Fatalf("seed link: %v", err)
	}

	return &chain{Faculty: f, Module: m, Subject: s, Lecture: l, Link: link}
}

// doRequest performs an authenticated request against the test router and
// returns the recorder.
func doRequest(t *testing.T, env *testEnv, token, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorder's JSON body into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
