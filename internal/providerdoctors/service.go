// Package providerdoctors manages the doctor roster of a Hospital or
// Clinic provider. Standalone Doctor-type providers live in the
// providers package instead.
package providerdoctors

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/pkg/logging"
)

// Doctor is one roster entry.
type Doctor struct {
	ID         int        `json:"id"`
	ProviderID int        `json:"provider_id"`
	Name       string     `json:"name"`
	NameAr     string     `json:"name_ar"`
	Title      string     `json:"title"`
	Image      string     `json:"image"`
	Status     string     `json:"status"`
	Price      float64    `json:"price"`
	PriceAfter float64    `json:"price_after"`
	Discount   float64    `json:"discount"`
	Schedules  []Schedule `json:"schedules"`
}

// Schedule is one working-hours row.
type Schedule struct {
	DayOfWeek int    `json:"day_of_week"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// Input is the create/update payload.
type Input struct {
	NameEn     string
	NameAr     string
	Title      string
	Price      float64
	PriceAfter float64
	Discount   float64
	Schedules  []Schedule
	ImageName  string
	Image      io.Reader
}

// DeriveDiscount recomputes the discount percentage from the before and
// after prices. It fires only when before >= after and both are positive;
// otherwise the manually entered discount stays as is.
func DeriveDiscount(before, after, manual float64) float64 {
	if before <= 0 || after <= 0 || before < after {
		return manual
	}
	pct := (before - after) / before * 100
	return math.Round(pct*100) / 100
}

// Service wraps the roster endpoints, nested under a provider.
type Service struct {
	client *api.Client
	logger *logging.Logger
}

// NewService creates a provider-doctors service.
func NewService(client *api.Client, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{client: client, logger: logger}
}

func rosterPath(providerID int) string {
	return fmt.Sprintf("/providers/%d/doctors", providerID)
}

// List fetches the roster of one provider.
func (s *Service) List(ctx context.Context, providerID int, params api.ListParams) api.Result[[]Doctor] {
	return api.FetchList[Doctor](ctx, s.client, rosterPath(providerID), params.Values())
}

// Get fetches one roster entry.
func (s *Service) Get(ctx context.Context, providerID, id int) api.Result[Doctor] {
	return api.FetchOne[Doctor](ctx, s.client, rosterPath(providerID)+"/"+strconv.Itoa(id), nil)
}

// Create adds a doctor to the roster.
func (s *Service) Create(ctx context.Context, providerID int, in Input) api.Result[Doctor] {
	return api.SubmitForm[Doctor](ctx, s.client, rosterPath(providerID), s.form(in, false))
}

// Update edits a roster entry.
func (s *Service) Update(ctx context.Context, providerID, id int, in Input) api.Result[Doctor] {
	return api.SubmitForm[Doctor](ctx, s.client, rosterPath(providerID)+"/"+strconv.Itoa(id), s.form(in, true))
}

// Delete removes a roster entry.
func (s *Service) Delete(ctx context.Context, providerID, id int) api.Result[struct{}] {
	return api.Mutate[struct{}](ctx, s.client, http.MethodDelete, rosterPath(providerID)+"/"+strconv.Itoa(id), nil)
}

// ToggleStatus flips a roster entry between active and inactive.
func (s *Service) ToggleStatus(ctx context.Context, providerID, id int) api.Result[Doctor] {
	return api.Mutate[Doctor](ctx, s.client, http.MethodPut, rosterPath(providerID)+"/"+strconv.Itoa(id)+"/toggle-status", nil)
}

func (s *Service) form(in Input, update bool) *api.FormData {
	form := api.NewFormData()
	if update {
		form.Set("_method", "PUT")
	}
	form.SetObject("ar", map[string]string{"name": in.NameAr}).
		SetObject("en", map[string]string{"name": in.NameEn}).
		Set("title", in.Title).
		Set("price", in.Price).
		Set("price_after", in.PriceAfter).
		Set("discount", DeriveDiscount(in.Price, in.PriceAfter, in.Discount))
	for i, sch := range in.Schedules {
		prefix := fmt.Sprintf("schedules[%d]", i)
		form.Set(prefix+"[day_of_week]", sch.DayOfWeek).
			Set(prefix+"[from]", sch.From).
			Set(prefix+"[to]", sch.To)
	}
	if in.Image != nil {
		form.AddFile("image", in.ImageName, in.Image)
	}
	return form
}
