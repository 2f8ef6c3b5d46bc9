package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/lecturevault/lecturevault/internal/api"
	"github.com/lecturevault/lecturevault/internal/store"
)

func TestLectures_Get_StudentSameYear(t *testing.T) {
	env := newTestEnv(t)
	student := seedUser(t, env, "alice@example.com", store.RoleStudent, 2)
	token := seedToken(t, env, student.ID)
	c := seedChain(t, env, 2)

	rec := doRequest(t, env, token, "GET", "/lectures/"+c.Lecture.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.LectureResponse
	decodeBody(t, rec, &resp)
	if resp.Title != c.Lecture.Title {
		t.Errorf("title = %q, want %q", resp.Title, c.Lecture.Title)
	}
	if resp.DeliveredAt != nil {
		t.Errorf("delivered_at = %v, want nil", resp.DeliveredAt)
	}
}

func TestLectures_Get_StudentCrossYear(t *testing.T) {
	env := newTestEnv(t)
	student := seedUser(t, env, "alice@example.com", store.RoleStudent, 2)
	token := seedToken(t, env, student.ID)
	c := seedChain(t, env, 5)

	rec := doRequest(t, env, token, "GET", "/lectures/"+c.Lecture.ID, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestLectures_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)
	student := seedUser(t, env, "alice@example.com", store.RoleStudent, 2)
	token := seedToken(t, env, student.ID)

	rec := doRequest(t, env, token, "GET", "/lectures/00000000-0000-0000-0000-000000000000", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestLectures_Create_Admin(t *testing.T) {
	env := newTestEnv(t)
	admin := seedUser(t, env, "admin@example.com", store.RoleAdmin, 0)
	token := seedToken(t, env, admin.ID)
	c := seedChain(t, env, 2)

	delivered := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	body := api.CreateLectureRequest{
		Title:       "Paxos made moderately complex",
		Lecturer:    "Dr. van Renesse",
		DeliveredAt: &delivered,
	}
	rec := doRequest(t, env, token, "POST", "/subjects/"+c.Subject.ID+"/lectures", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp api.LectureResponse
	decodeBody(t, rec, &resp)
	if resp.SubjectID != c.Subject.ID {
		t.Errorf("subject_id = %q, want %q", resp.SubjectID, c.Subject.ID)
	}
	if resp.DeliveredAt == nil || !resp.DeliveredAt.Equal(delivered) {
		t.Errorf("delivered_at = %v, want %v", resp.DeliveredAt, delivered)
	}
}

func TestLectures_Update_Admin(t *testing.T) {
	env := newTestEnv(t)
	admin := seedUser(t, env, "admin@example.com", store.RoleAdmin, 0)
	token := seedToken(t, env, admin.ID)
	c := seedChain(t, env, 2)

	title := "Raft revisited"
	rec := doRequest(t, env, token, "PUT", "/lectures/"+c.Lecture.ID, api.UpdateLectureRequest{Title: &title})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.LectureResponse
	decodeBody(t, rec, &resp)
	if resp.Title != "Raft revisited" {
		t.Errorf("title = %q, want %q", resp.Title, "Raft revisited")
	}
	if resp.Lecturer != c.Lecture.Lecturer {
		t.Errorf("lecturer = %q, want unchanged %q", resp.Lecturer, c.Lecture.Lecturer)
	}
}

func TestLectures_Update_StudentDenied(t *testing.T) {
	env := newTestEnv(t)
	student := seedUser(t, env, "alice@example.com", store.RoleStudent, 2)
	token := seedToken(t, env, student.ID)
	c := seedChain(t, env, 2)

	title := "nope"
	rec := doRequest(t, env, token, "PUT", "/lectures/"+c.Lecture.ID, api.UpdateLectureRequest{Title: &title})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestLectures_ListLinks_SameYear(t *testing.T) {
	env := newTestEnv(t)
	student := seedUser(t, env, "alice@example.com", store.RoleStudent, 2)
	token := seedToken(t, env, student.ID)
	c := seedChain(t, env, 2)

	rec := doRequest(t, env, token, "GET", "/lectures/"+c.Lecture.ID+"/links", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.LinkListResponse
	decodeBody(t, rec, &resp)
	if len(resp.Links) != 1 {
		t.Errorf("len(links) = %d, want 1", len(resp.Links))
	}
}

func TestLectures_CreateLink_DefaultKind(t *testing.T) {
	env := newTestEnv(t)
	admin := seedUser(t, env, "admin@example.com", store.RoleAdmin, 0)
	token := seedToken(t, env, admin.ID)
	c := seedChain(t, env, 2)

	body := api.CreateLinkRequest{Label: "Handout", URL: "https://example.com/handout.pdf"}
	rec := doRequest(t, env, token, "POST", "/lectures/"+c.Lecture.ID+"/links", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp api.LinkResponse
	decodeBody(t, rec, &resp)
	if resp.Kind != "other" {
		t.Errorf("kind = %q, want %q", resp.Kind, "other")
	}
}

func TestLectures_CreateLink_InvalidKind(t *testing.T) {
	env := newTestEnv(t)
	admin := seedUser(t, env, "admin@example.com", store.RoleAdmin, 0)
	token := seedToken(t, env, admin.ID)
	c := seedChain(t, env, 2)

	body := map[string]string{"label": "x", "url": "https://example.com", "kind": "hologram"}
	rec := doRequest(t, env, token, "POST", "/lectures/"+c.Lecture.ID+"/links", body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}
