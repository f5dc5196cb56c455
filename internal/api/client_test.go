package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mawadk/dashboard-client/internal/session"
)

func newTestClient(t *testing.T, baseURL string, store session.Store, opts ...Option) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL, SecretKey: "test-secret"}, store, opts...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestNew(t *testing.T) {
	t.Run("appends dashboard prefix", func(t *testing.T) {
		c := newTestClient(t, "http://localhost:9999", session.NewMemoryStore())
		if c.baseURL != "http://localhost:9999"+DashboardPrefix {
			t.Errorf("unexpected base URL: %s", c.baseURL)
		}
	})

	t.Run("keeps existing prefix", func(t *testing.T) {
		c := newTestClient(t, "http://localhost:9999"+DashboardPrefix, session.NewMemoryStore())
		if c.baseURL != "http://localhost:9999"+DashboardPrefix {
			t.Errorf("unexpected base URL: %s", c.baseURL)
		}
	})

	t.Run("rejects relative URL", func(t *testing.T) {
		if _, err := New(Config{BaseURL: "not-a-url"}, session.NewMemoryStore()); err == nil {
			t.Error("expected error for relative base URL")
		}
	})
}

func TestRequestHeaders(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	_ = store.Save(ctx, session.Session{Token: "tok-1", Locale: "en"})

	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]any{}})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, store)
	if err := c.GetJSON(ctx, "/profile", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Get("Authorization") != "Bearer tok-1" {
		t.Errorf("unexpected Authorization: %s", got.Get("Authorization"))
	}
	if got.Get("X-Secret-Key") != "test-secret" {
		t.Errorf("unexpected X-Secret-Key: %s", got.Get("X-Secret-Key"))
	}
	if got.Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID to be set")
	}
	if got.Get("Accept-Language") != "en" {
		t.Errorf("unexpected Accept-Language: %s", got.Get("Accept-Language"))
	}
}

func TestLocaleResolutionURLWins(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	_ = store.Save(ctx, session.Session{Token: "tok", Locale: "en"})

	var lang string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang = r.Header.Get("Accept-Language")
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]any{}})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, store)
	c.SetRoutePath("/ar/admin/bookings")
	if err := c.GetJSON(ctx, "/bookings", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lang != "ar" {
		t.Errorf("expected Accept-Language ar, got %s", lang)
	}
	s, _ := store.Load(ctx)
	if s.Locale != "ar" {
		t.Errorf("expected stored locale rewritten to ar, got %s", s.Locale)
	}
}

func TestRefreshRetry(t *testing.T) {
	t.Run("retries exactly once with new token", func(t *testing.T) {
		ctx := context.Background()
		store := session.NewMemoryStore()
		_ = store.Save(ctx, session.Session{Token: "tok-old"})

		var gets, refreshes int
		var retryAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodPost && r.URL.Path == DashboardPrefix+RefreshPath:
				refreshes++
				if r.Header.Get("Authorization") != "Bearer tok-old" {
					t.Errorf("refresh must use current token, got %s", r.Header.Get("Authorization"))
				}
				json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]string{"token": "tok-new"}})
			default:
				gets++
				if gets == 1 {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				retryAuth = r.Header.Get("Authorization")
				json.NewEncoder(w).Encode(map[string]any{"status": "success", "message": "ok", "data": map[string]any{}})
			}
		}))
		defer server.Close()

		c := newTestClient(t, server.URL, store)
		if err := c.GetJSON(ctx, "/admins", nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gets != 2 {
			t.Errorf("expected 2 attempts of the original request, got %d", gets)
		}
		if refreshes != 1 {
			t.Errorf("expected exactly one refresh, got %d", refreshes)
		}
		if retryAuth != "Bearer tok-new" {
			t.Errorf("retry must carry new token, got %s", retryAuth)
		}
		s, _ := store.Load(ctx)
		if s.Token != "tok-new" {
			t.Errorf("expected persisted token tok-new, got %s", s.Token)
		}
	})

	t.Run("second 401 forces logout without further retry", func(t *testing.T) {
		ctx := context.Background()
		store := session.NewMemoryStore()
		_ = store.Save(ctx, session.Session{Token: "tok-old", UserType: "admin"})

		var gets int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost && r.URL.Path == DashboardPrefix+RefreshPath {
				json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]string{"token": "tok-new"}})
				return
			}
			gets++
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		expired := false
		collector := &Collector{}
		c := newTestClient(t, server.URL, store,
			WithNotifier(collector),
			WithOnSessionExpired(func() { expired = true }),
		)

		err := c.GetJSON(ctx, "/admins", nil, nil)
		if err == nil {
			t.Fatal("expected auth error")
		}
		var apiErr *Error
		if !errors.As(err, &apiErr) || apiErr.Kind != KindAuth {
			t.Fatalf("expected KindAuth, got %v", err)
		}
		if gets != 2 {
			t.Errorf("expected exactly 2 attempts (no loop), got %d", gets)
		}
		if !expired {
			t.Error("expected OnSessionExpired callback")
		}
		s, _ := store.Load(ctx)
		if s.Token != "" || s.UserType != "" {
			t.Errorf("expected cleared session, got %+v", s)
		}
		if len(collector.Entries()) == 0 {
			t.Error("expected session-expired notification")
		}
	})

	t.Run("refresh failure forces logout", func(t *testing.T) {
		ctx := context.Background()
		store := session.NewMemoryStore()
		_ = store.Save(ctx, session.Session{Token: "tok-old"})

		var gets int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost && r.URL.Path == DashboardPrefix+RefreshPath {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			gets++
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		expired := false
		c := newTestClient(t, server.URL, store, WithOnSessionExpired(func() { expired = true }))
		err := c.GetJSON(ctx, "/admins", nil, nil)
		if err == nil {
			t.Fatal("expected error")
		}
		if gets != 1 {
			t.Errorf("expected single attempt, got %d", gets)
		}
		if !expired {
			t.Error("expected OnSessionExpired callback")
		}
	})
}

func TestErrorClassification(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		status   int
		body     string
		wantKind Kind
		wantMsg  string
	}{
		{"forbidden", 403, `{"message":"no access"}`, KindForbidden, "no access"},
		{"not found", 404, `{}`, KindNotFound, "The requested resource was not found."},
		{"validation", 422, `{"message":"invalid"}`, KindValidation, "invalid"},
		{"server", 500, `{}`, KindServer, "Something went wrong on the server. Please try again later."},
		{"unavailable", 503, `{}`, KindServer, "Something went wrong on the server. Please try again later."},
		{"teapot", 418, `{}`, KindUnknown, "An unexpected error occurred."},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			collector := &Collector{}
			c := newTestClient(t, server.URL, session.NewMemoryStore(), WithNotifier(collector))
			err := c.GetJSON(ctx, "/x", nil, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if apiErr.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", apiErr.Kind, tt.wantKind)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
			if len(collector.Entries()) != 1 {
				t.Errorf("expected one notification, got %d", len(collector.Entries()))
			}
		})
	}
}

func TestValidationFieldFanOut(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid","errors":{"email":["email is taken","email is invalid"],"name":["name is required"]}}`))
	}))
	defer server.Close()

	collector := &Collector{}
	c := newTestClient(t, server.URL, session.NewMemoryStore(), WithNotifier(collector))
	err := c.GetJSON(ctx, "/admins", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}

	entries := collector.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 field notifications, got %d", len(entries))
	}
	if entries[0].Message != "email is taken" || entries[2].Message != "name is required" {
		t.Errorf("unexpected notifications: %+v", entries)
	}

	var apiErr *Error
	errors.As(err, &apiErr)
	if len(apiErr.Fields) != 2 {
		t.Errorf("expected 2 field entries, got %d", len(apiErr.Fields))
	}
}

func TestTransportErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		defer server.Close()

		c, err := New(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond}, session.NewMemoryStore())
		if err != nil {
			t.Fatalf("new client: %v", err)
		}
		reqErr := c.GetJSON(ctx, "/x", nil, nil)
		var apiErr *Error
		if !errors.As(reqErr, &apiErr) || apiErr.Kind != KindTimeout {
			t.Fatalf("expected KindTimeout, got %v", reqErr)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		c := newTestClient(t, server.URL, session.NewMemoryStore())
		reqErr := c.GetJSON(ctx, "/x", nil, nil)
		var apiErr *Error
		if !errors.As(reqErr, &apiErr) || apiErr.Kind != KindNetwork {
			t.Fatalf("expected KindNetwork, got %v", reqErr)
		}
	})
}

func TestMultipartContentType(t *testing.T) {
	ctx := context.Background()
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]any{}})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, session.NewMemoryStore())
	form := NewFormData().Set("name", "x")
	if err := c.PostForm(ctx, "/categories", form, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType == "" || contentType == "application/json" {
		t.Errorf("expected multipart content type, got %q", contentType)
	}
}
