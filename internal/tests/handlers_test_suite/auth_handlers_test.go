package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/yeasin-dev/shopmate/internal/http/handlers"
)

func postJSON(target string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	resetState()

	w := postJSON("/register", handler.CredentialsRequest{Username: "newuser", Password: "secret123"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %s)", w.Code, w.Body.String())
	}
	var result handler.RegisterResult
	decodeInto(t, w, &result)
	if result.Token == "" {
		t.Error("expected a token in the register response")
	}

	// Same username again conflicts.
	w = postJSON("/register", handler.CredentialsRequest{Username: "newuser", Password: "secret123"})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate username, got %d", w.Code)
	}
}

func TestRegisterRejectsShortCredentials(t *testing.T) {
	resetState()

	w := postJSON("/register", handler.CredentialsRequest{Username: "ab", Password: "secret123"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for short username, got %d", w.Code)
	}
	w = postJSON("/register", handler.CredentialsRequest{Username: "valid", Password: "123"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for short password, got %d", w.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	resetState()

	w := postJSON("/login", handler.CredentialsRequest{Username: "admin", Password: "secret"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result handler.LoginResult
	decodeInto(t, w, &result)
	if result.Token == "" || result.RefreshToken == "" {
		t.Errorf("expected token pair, got %+v", result)
	}

	w = postJSON("/login", handler.CredentialsRequest{Username: "admin", Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", w.Code)
	}
	w = postJSON("/login", handler.CredentialsRequest{Username: "ghost", Password: "secret"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown user, got %d", w.Code)
	}
}

func TestRefreshEndpointRotatesToken(t *testing.T) {
	resetState()

	w := postJSON("/login", handler.CredentialsRequest{Username: "admin", Password: "secret"})
	var login handler.LoginResult
	decodeInto(t, w, &login)

	w = postJSON("/refresh", handler.RefreshRequest{RefreshToken: login.RefreshToken})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}
	var refreshed handler.LoginResult
	decodeInto(t, w, &refreshed)
	if refreshed.Token == "" || refreshed.RefreshToken == "" {
		t.Errorf("expected new token pair, got %+v", refreshed)
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Error("refresh token must rotate")
	}

	// The redeemed token is dead.
	w = postJSON("/refresh", handler.RefreshRequest{RefreshToken: login.RefreshToken})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 replaying old refresh token, got %d", w.Code)
	}
}
