package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/internal/session"
)

func TestProviderType(t *testing.T) {
	assert.True(t, TypeHospital.HasRoster())
	assert.True(t, TypeClinic.HasRoster())
	assert.False(t, TypeDoctor.HasRoster())

	assert.True(t, TypeDoctor.HasOwnPricing())
	assert.False(t, TypeHospital.HasOwnPricing())

	assert.True(t, TypeClinic.Valid())
	assert.False(t, Type("Pharmacy").Valid())
}

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

func TestListPassesTypeFilter(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") != "Clinic" {
			t.Errorf("expected type filter, got %q", r.URL.Query().Get("type"))
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data": map[string]any{
				"items": []map[string]any{{"id": 1, "type": "Clinic", "name": "Al Noor"}},
				"meta":  map[string]int{"current_page": 1, "last_page": 1, "total": 1, "per_page": 15},
			},
		})
	}))

	res := svc.List(context.Background(), api.ListParams{Type: "Clinic"})
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Message)
	}
	if len(res.Data) != 1 || res.Data[0].Type != TypeClinic {
		t.Errorf("unexpected data: %+v", res.Data)
	}
}

func TestCreateBilingualAndGallery(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(1 << 20)
		if got := r.FormValue("ar[name]"); got != "مستشفى النور" {
			t.Errorf("unexpected ar[name]: %q", got)
		}
		if got := r.FormValue("en[description]"); got != "A hospital" {
			t.Errorf("unexpected en[description]: %q", got)
		}
		if r.FormValue("price") != "" {
			t.Error("hospitals carry no own pricing")
		}
		if len(r.MultipartForm.File["gallery[0]"]) != 1 || len(r.MultipartForm.File["gallery[1]"]) != 1 {
			t.Error("expected two gallery files")
		}
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]any{"id": 9, "type": "Hospital"}})
	}))

	res := svc.Create(context.Background(), Input{
		Type:          TypeHospital,
		NameEn:        "Al Noor Hospital",
		NameAr:        "مستشفى النور",
		DescriptionEn: "A hospital",
		CategoryID:    2,
		Gallery: []GalleryFile{
			{Name: "g1.jpg", R: strings.NewReader("a")},
			{Name: "g2.jpg", R: strings.NewReader("b")},
		},
	})
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Message)
	}
}

func TestDoctorProviderSendsPricing(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(1 << 20)
		if r.FormValue("price") != "300" || r.FormValue("price_after") != "250" {
			t.Errorf("expected pricing fields, got price=%q price_after=%q", r.FormValue("price"), r.FormValue("price_after"))
		}
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]any{"id": 4, "type": "Doctor"}})
	}))

	res := svc.Create(context.Background(), Input{Type: TypeDoctor, NameEn: "Dr. Ali", Price: 300, PriceAfter: 250})
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Message)
	}
}

func TestReviewModeration(t *testing.T) {
	var gotPath, gotMethod string
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]any{"id": 8, "status": "approved"}})
	}))

	res := svc.ApproveReview(context.Background(), 5, 8)
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Message)
	}
	assert.Equal(t, "/api/v1/dashboard/providers/5/reviews/8/approve", gotPath)
	assert.Equal(t, http.MethodPut, gotMethod)

	svc.DeleteReview(context.Background(), 5, 8)
	assert.Equal(t, "/api/v1/dashboard/providers/5/reviews/8", gotPath)
	assert.Equal(t, http.MethodDelete, gotMethod)
}
