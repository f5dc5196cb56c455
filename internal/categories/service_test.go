package categories

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/internal/session"
)

func newService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := api.New(api.Config{BaseURL: server.URL}, session.NewMemoryStore(), api.WithNotifier(&api.Collector{}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return NewService(client, nil)
}

func TestListHandlesBareArray(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data": []map[string]any{
				{"id": 1, "name": "Dermatology"},
				{"id": 2, "name": "Dentistry"},
			},
		})
	}))

	res := svc.List(context.Background(), api.ListParams{})
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Message)
	}
	if len(res.Data) != 2 || res.Data[1].Name != "Dentistry" {
		t.Errorf("unexpected data: %+v", res.Data)
	}
	if res.Meta.Total != 2 {
		t.Errorf("bare array must synthesize meta, got %+v", res.Meta)
	}
}

func TestCreateBilingualIcon(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(1 << 20)
		if got := r.FormValue("ar[name]"); got != "جلدية" {
			t.Errorf("unexpected ar[name] %q", got)
		}
		if got := r.FormValue("en[name]"); got != "Dermatology" {
			t.Errorf("unexpected en[name] %q", got)
		}
		if got := r.FormValue("order"); got != "2" {
			t.Errorf("unexpected order %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]any{"id": 9, "name": "Dermatology"}})
	}))

	res := svc.Create(context.Background(), Input{NameEn: "Dermatology", NameAr: "جلدية", Order: 2})
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Message)
	}
	if res.Data.ID != 9 {
		t.Errorf("unexpected category: %+v", res.Data)
	}
}
