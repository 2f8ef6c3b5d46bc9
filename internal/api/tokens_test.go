package api_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/lecturevault/lecturevault/internal/api"
	"github.com/lecturevault/lecturevault/internal/store"
)

func TestTokens_Create_ReturnsPlaintextOnce(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", store.RoleStudent, 2)
	token := seedToken(t, env, user.ID)

	rec := doRequest(t, env, token, "POST", "/tokens", api.CreateTokenRequest{Name: "ci"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var created api.TokenResponse
	decodeBody(t, rec, &created)
	if !strings.HasPrefix(created.Token, "lv_") {
		t.Errorf("token = %q, want lv_ prefix", created.Token)
	}

	// The plaintext never appears again in list responses.
	rec = doRequest(t, env, token, "GET", "/tokens", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want %d", rec.Code, http.StatusOK)
	}
	var list api.TokenListResponse
	decodeBody(t, rec, &list)
	if len(list.Tokens) != 2 {
		t.Fatalf("len(tokens) = %d, want 2", len(list.Tokens))
	}
	for _, tok := range list.Tokens {
		if tok.Token != "" {
			t.Errorf("listed token %q exposes plaintext", tok.ID)
		}
	}
}

func TestTokens_NewTokenAuthenticates(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", store.RoleStudent, 2)
	bootstrap := seedToken(t, env, user.ID)

	rec := doRequest(t, env, bootstrap, "POST", "/tokens", api.CreateTokenRequest{Name: "second"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d", rec.Code, http.StatusCreated)
	}
	var created api.TokenResponse
	decodeBody(t, rec, &created)

	rec = doRequest(t, env, created.Token, "GET", "/users/me", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status with new token = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestTokens_Revoke(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", store.RoleStudent, 2)
	bootstrap := seedToken(t, env, user.ID)

	rec := doRequest(t, env, bootstrap, "POST", "/tokens", api.CreateTokenRequest{Name: "doomed"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d", rec.Code, http.StatusCreated)
	}
	var created api.TokenResponse
	decodeBody(t, rec, &created)

	rec = doRequest(t, env, bootstrap, "DELETE", "/tokens/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("revoke status = %d, want %d; body: %s", rec.Code, http.StatusNoContent, rec.Body.String())
	}

	// The revoked token no longer authenticates.
	rec = doRequest(t, env, created.Token, "GET", "/users/me", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status with revoked token = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestTokens_BogusTokenRejected(t *testing.T) {
	env := newTestEnv(t)
	seedUser(t, env, "alice@example.com", store.RoleStudent, 2)

	rec := doRequest(t, env, "lv_notarealtoken", "GET", "/users/me", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
