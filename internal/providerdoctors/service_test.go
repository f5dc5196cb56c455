package providerdoctors

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/internal/session"
)

func TestDeriveDiscount(t *testing.T) {
	tests := []struct {
		name   string
		before float64
		after  float64
		manual float64
		want   float64
	}{
		{"standard derivation", 200, 150, 0, 25.00},
		{"rounds to two decimals", 300, 200, 0, 33.33},
		{"equal prices derive zero", 150, 150, 10, 0},
		{"after above before keeps manual", 100, 150, 12.5, 12.5},
		{"zero before keeps manual", 0, 150, 7, 7},
		{"zero after keeps manual", 200, 0, 7, 7},
		{"negative before keeps manual", -5, 3, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DeriveDiscount(tt.before, tt.after, tt.manual), 0.0001)
		})
	}
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

func TestCreateEncodesScheduleRows(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/dashboard/providers/3/doctors" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		r.ParseMultipartForm(1 << 20)
		if got := r.FormValue("ar[name]"); got != "د. سارة" {
			t.Errorf("unexpected ar[name]: %q", got)
		}
		if got := r.FormValue("en[name]"); got != "Dr. Sara" {
			t.Errorf("unexpected en[name]: %q", got)
		}
		if got := r.FormValue("schedules[0][day_of_week]"); got != "1" {
			t.Errorf("unexpected schedules[0][day_of_week]: %q", got)
		}
		if got := r.FormValue("schedules[1][from]"); got != "14:00" {
			t.Errorf("unexpected schedules[1][from]: %q", got)
		}
		if got := r.FormValue("discount"); got != "25" {
			t.Errorf("expected derived discount 25, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]any{"id": 12, "provider_id": 3}})
	}))

	res := svc.Create(context.Background(), 3, Input{
		NameEn:     "Dr. Sara",
		NameAr:     "د. سارة",
		Price:      200,
		PriceAfter: 150,
		Schedules: []Schedule{
			{DayOfWeek: 1, From: "09:00", To: "13:00"},
			{DayOfWeek: 3, From: "14:00", To: "18:00"},
		},
	})
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Message)
	}
	if res.Data.ID != 12 {
		t.Errorf("unexpected doctor: %+v", res.Data)
	}
}

func TestUpdateKeepsManualDiscountWhenDerivationSkipped(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(1 << 20)
		if got := r.FormValue("_method"); got != "PUT" {
			t.Errorf("expected method override, got %q", got)
		}
		if got := r.FormValue("discount"); got != "12.5" {
			t.Errorf("manual discount must survive, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]any{"id": 12}})
	}))

	res := svc.Update(context.Background(), 3, 12, Input{
		NameEn:     "Dr. Sara",
		Price:      100,
		PriceAfter: 150,
		Discount:   12.5,
	})
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Message)
	}
}
