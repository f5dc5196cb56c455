package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/internal/session"
)

func newService(t *testing.T, handler http.Handler) (*Service, session.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	store := session.NewMemoryStore()
	client, err := api.New(api.Config{BaseURL: server.URL}, store, api.WithNotifier(&api.Collector{}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return NewService(client, store, nil), store
}

func TestLoginPersistsSession(t *testing.T) {
	svc, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/dashboard/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var creds Credentials
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Email != "admin@mawadk.com" || creds.UserType != "admin" {
			t.Errorf("unexpected credentials: %+v", creds)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status":  "success",
			"message": "Welcome back",
			"data": map[string]any{
				"token":     "tok-123",
				"user_type": "admin",
				"user":      map[string]any{"id": 1, "name": "Admin"},
			},
		})
	}))

	store.Save(context.Background(), session.Session{Locale: "ar"})

	res := svc.Login(context.Background(), Credentials{
		Email:    "admin@mawadk.com",
		Password: "secret",
		UserType: "admin",
	})
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Message)
	}
	if res.Message != "Welcome back" {
		t.Errorf("server message must win, got %q", res.Message)
	}

	sess, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if sess.Token != "tok-123" || sess.UserType != "admin" {
		t.Errorf("session not persisted: %+v", sess)
	}
	if sess.Locale != "ar" {
		t.Errorf("login must keep the stored locale, got %q", sess.Locale)
	}
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	svc, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]any{"token": ""}})
	}))

	res := svc.Login(context.Background(), Credentials{Email: "x@y.z", Password: "p"})
	if res.Success {
		t.Fatal("expected failure when the server returns no token")
	}
	if res.Message == "" {
		t.Error("message must be non-empty")
	}
	sess, _ := store.Load(context.Background())
	if sess.Token != "" {
		t.Errorf("no token must be persisted, got %q", sess.Token)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Invalid credentials",
			"errors":  map[string][]string{"email": {"These credentials do not match our records."}},
		})
	}))

	res := svc.Login(context.Background(), Credentials{Email: "x@y.z", Password: "wrong"})
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Message != "Invalid credentials" {
		t.Errorf("expected server message, got %q", res.Message)
	}
}

func TestLogoutClearsSessionEvenOnServerError(t *testing.T) {
	svc, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	store.Save(context.Background(), session.Session{Token: "tok", Locale: "ar"})

	res := svc.Logout(context.Background())
	if res.Success {
		t.Error("expected failure envelope from the 500")
	}
	sess, _ := store.Load(context.Background())
	if sess.Token != "" {
		t.Error("token must be cleared regardless of server outcome")
	}
	if sess.Locale != "ar" {
		t.Error("locale must survive logout")
	}
}

func TestUpdateProfileMultipart(t *testing.T) {
	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("expected multipart body, got %s", r.Header.Get("Content-Type"))
		}
		r.ParseMultipartForm(1 << 20)
		if r.FormValue("_method") != "PUT" {
			t.Errorf("expected _method=PUT, got %q", r.FormValue("_method"))
		}
		if r.FormValue("name") != "New Name" {
			t.Errorf("unexpected name %q", r.FormValue("name"))
		}
		if _, _, err := r.FormFile("avatar"); err != nil {
			t.Errorf("expected avatar file: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]any{"id": 1, "name": "New Name"}})
	}))

	res := svc.UpdateProfile(context.Background(), Profile{Name: "New Name", Email: "a@b.c"}, "avatar.png", strings.NewReader("png-bytes"))
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Message)
	}
	if res.Data.Name != "New Name" {
		t.Errorf("unexpected profile: %+v", res.Data)
	}
}
