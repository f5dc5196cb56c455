package bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/internal/session"
)

func newService(t *testing.T, handler http.Handler) (*Service, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := api.New(api.Config{BaseURL: server.URL}, session.NewMemoryStore(), api.WithNotifier(&api.Collector{}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return NewService(client, nil), server
}

func TestServiceList(t *testing.T) {
	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("status") != "pending" {
			t.Errorf("expected status filter, got %q", r.URL.Query().Get("status"))
		}
		if _, ok := r.URL.Query()["search"]; ok {
			t.Error("absent search must not be sent")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data": map[string]any{
				"items": []map[string]any{{"id": 7, "status": "pending"}},
				"meta":  map[string]int{"current_page": 1, "last_page": 1, "total": 1, "per_page": 15},
			},
		})
	}))

	res := svc.List(context.Background(), api.ListParams{Status: "pending"})
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Message)
	}
	if len(res.Data) != 1 || res.Data[0].ID != 7 {
		t.Errorf("unexpected data: %+v", res.Data)
	}
}

func TestServiceListFailureEnvelope(t *testing.T) {
	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	res := svc.List(context.Background(), api.ListParams{})
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Data == nil {
		t.Error("data must be an empty slice, never nil")
	}
	if res.Meta.CurrentPage != 1 || res.Meta.LastPage != 1 || res.Meta.Total != 0 {
		t.Errorf("expected safe meta, got %+v", res.Meta)
	}
	if res.Message == "" {
		t.Error("message must be non-empty")
	}
}

func TestTransitionStatusGuard(t *testing.T) {
	called := false
	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]any{"id": 1, "status": "confirmed"}})
	}))

	t.Run("illegal move never hits the API", func(t *testing.T) {
		res := svc.TransitionStatus(context.Background(), 1, StatusPending, StatusCompleted)
		if res.Success {
			t.Error("expected failure for pending→completed")
		}
		if res.Message == "" {
			t.Error("expected a message")
		}
		if called {
			t.Error("API must not be called for illegal transitions")
		}
	})

	t.Run("legal move goes through", func(t *testing.T) {
		res := svc.TransitionStatus(context.Background(), 1, StatusPending, StatusConfirmed)
		if !res.Success {
			t.Fatalf("expected success, got %s", res.Message)
		}
		if !called {
			t.Error("expected API call")
		}
	})
}

func TestClinicBookingsEndToEnd(t *testing.T) {
	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("per_page") != "1000" {
			t.Errorf("expected oversized fetch, got per_page=%s", r.URL.Query().Get("per_page"))
		}
		var items []map[string]any
		for i := 0; i < 23; i++ {
			items = append(items, map[string]any{"id": i + 1, "provider_type": "Clinic", "data_at": "2026-01-10 10:00:00"})
		}
		for i := 0; i < 17; i++ {
			items = append(items, map[string]any{"id": 100 + i, "provider_type": "Hospital", "data_at": "2026-01-10 10:00:00"})
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data": map[string]any{
				"items": items,
				"meta":  map[string]int{"current_page": 1, "last_page": 1, "total": 40, "per_page": 1000},
			},
		})
	}))

	res := svc.ClinicBookings(context.Background(), 3, 10)
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Message)
	}
	if len(res.Data) != 3 {
		t.Errorf("expected 3 rows on page 3, got %d", len(res.Data))
	}
	if res.Meta.Total != 23 {
		t.Errorf("meta.total must be post-filter 23, got %d", res.Meta.Total)
	}
	if res.Meta.LastPage != 3 {
		t.Errorf("expected 3 pages, got %d", res.Meta.LastPage)
	}
}
