package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/lecturevault/lecturevault/internal/api"
	"github.com/lecturevault/lecturevault/internal/store"
)

func TestFaculties_List_OK(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", store.RoleStudent, 2)
	token := seedToken(t, env, user.ID)
	seedChain(t, env, 2)

	rec := doRequest(t, env, token, "GET", "/faculties", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.FacultyListResponse
	decodeBody(t, rec, &resp)
	if len(resp.Faculties) != 1 {
		t.Errorf("len(faculties) = %d, want 1", len(resp.Faculties))
	}
}

func TestFaculties_List_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)

	rec := doRequest(t, env, "", "GET", "/faculties", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestFaculties_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", store.RoleStudent, 2)
	token := seedToken(t, env, user.ID)

	rec := doRequest(t, env, token, "GET", "/faculties/00000000-0000-0000-0000-000000000000", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestFaculties_Create_AdminOnly(t *testing.T) {
	env := newTestEnv(t)
	admin := seedUser(t, env, "admin@example.com", store.RoleAdmin, 0)
	student := seedUser(t, env, "bob@example.com", store.RoleStudent, 2)
	adminToken := seedToken(t, env, admin.ID)
	studentToken := seedToken(t, env, student.ID)

	body := api.CreateFacultyRequest{Name: "Medicine", Description: "Clinical teaching"}

	rec := doRequest(t, env, studentToken, "POST", "/faculties", body)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("student create status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	rec = doRequest(t, env, adminToken, "POST", "/faculties", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin create status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp api.FacultyResponse
	decodeBody(t, rec, &resp)
	if resp.Name != "Medicine" {
		t.Errorf("name = %q, want %q", resp.Name, "Medicine")
	}
}

func TestFaculties_Create_ValidationError(t *testing.T) {
	env := newTestEnv(t)
	admin := seedUser(t, env, "admin@example.com", store.RoleAdmin, 0)
	token := seedToken(t, env, admin.ID)

	rec := doRequest(t, env, token, "POST", "/faculties", map[string]string{"description": "nameless"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}

	var resp struct {
		Code   string            `json:"code"`
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, rec, &resp)
	if resp.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", resp.Code)
	}
	if _, ok := resp.Fields["name"]; !ok {
		t.Errorf("fields = %v, want a message for %q", resp.Fields, "name")
	}
}

func TestFaculties_Update_Partial(t *testing.T) {
	env := newTestEnv(t)
	admin := seedUser(t, env, "admin@example.com", store.RoleAdmin, 0)
	token := seedToken(t, env, admin.ID)
	c := seedChain(t, env, 2)

	rec := doRequest(t, env, token, "PUT", "/faculties/"+c.Faculty.ID, map[string]string{"description": "updated"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.FacultyResponse
	decodeBody(t, rec, &resp)
	if resp.Description != "updated" {
		t.Errorf("description = %q, want %q", resp.Description, "updated")
	}
	// Omitted fields keep their current value.
	if resp.Name != c.Faculty.Name {
		t.Errorf("name = %q, want unchanged %q", resp.Name, c.Faculty.Name)
	}
}

func TestFaculties_Delete_CascadesToModules(t *testing.T) {
	env := newTestEnv(t)
	admin := seedUser(t, env, "admin@example.com", store.RoleAdmin, 0)
	token := seedToken(t, env, admin.ID)
	c := seedChain(t, env, 2)

	rec := doRequest(t, env, token, "DELETE", "/faculties/"+c.Faculty.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusNoContent, rec.Body.String())
	}

	rec = doRequest(t, env, token, "GET", "/modules/"+c.Module.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("module after cascade status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestFaculties_ListModules_StudentYearFiltered(t *testing.T) {
	env := newTestEnv(t)
	student := seedUser(t, env, "alice@example.com", store.RoleStudent, 2)
	admin := seedUser(t, env, "admin@example.com", store.RoleAdmin, 0)
	studentToken := seedToken(t, env, student.ID)
	adminToken := seedToken(t, env, admin.ID)

	c := seedChain(t, env, 2)
	if _, err := env.ModuleStore.Create(context.Background(), c.Faculty.ID, "Anatomy", 3); err != nil {
		t.Fatalf("create module: %v", err)
	}

	rec := doRequest(t, env, studentToken, "GET", "/faculties/"+c.Faculty.ID+"/modules", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var resp api.ModuleListResponse
	decodeBody(t, rec, &resp)
	if len(resp.Modules) != 1 {
		t.Fatalf("student sees %d modules, want 1", len(resp.Modules))
	}
	if resp.Modules[0].Year != 2 {
		t.Errorf("module year = %d, want 2", resp.Modules[0].Year)
	}

	rec = doRequest(t, env, adminToken, "GET", "/faculties/"+c.Faculty.ID+"/modules", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin status = %d, want %d", rec.Code, http.StatusOK)
	}
	decodeBody(t, rec, &resp)
	if len(resp.Modules) != 2 {
		t.Errorf("admin sees %d modules, want 2", len(resp.Modules))
	}
}
