package sliders

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/pkg/logging"
)

// Input is the create/update payload. TargetURL and ProviderID are
// mutually exclusive, gated by TargetType.
type Input struct {
	TitleEn    string
	TitleAr    string
	TargetType TargetType
	TargetURL  string
	ProviderID int
	StartAt    *time.Time
	EndAt      *time.Time
	Order      int
	ImageName  string
	Image      io.Reader
}

// Service wraps the slider endpoints.
type Service struct {
	client *api.Client
	logger *logging.Logger
}

// NewService creates a sliders service.
func NewService(client *api.Client, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{client: client, logger: logger}
}

// List fetches sliders.
func (s *Service) List(ctx context.Context, params api.ListParams) api.Result[[]Slider] {
	return api.FetchList[Slider](ctx, s.client, "/sliders", params.Values())
}

// Get fetches one slider.
func (s *Service) Get(ctx context.Context, id int) api.Result[Slider] {
	return api.FetchOne[Slider](ctx, s.client, "/sliders/"+strconv.Itoa(id), nil)
}

// Create submits a new slider as a multipart form.
func (s *Service) Create(ctx context.Context, in Input) api.Result[Slider] {
	return api.SubmitForm[Slider](ctx, s.client, "/sliders", s.form(in, false))
}

// Update edits an existing slider.
func (s *Service) Update(ctx context.Context, id int, in Input) api.Result[Slider] {
	return api.SubmitForm[Slider](ctx, s.client, "/sliders/"+strconv.Itoa(id), s.form(in, true))
}

// Delete removes a slider.
func (s *Service) Delete(ctx context.Context, id int) api.Result[struct{}] {
	return api.Mutate[struct{}](ctx, s.client, http.MethodDelete, "/sliders/"+strconv.Itoa(id), nil)
}

// ToggleStatus flips a slider between active and inactive.
func (s *Service) ToggleStatus(ctx context.Context, id int) api.Result[Slider] {
	return api.Mutate[Slider](ctx, s.client, http.MethodPut, "/sliders/"+strconv.Itoa(id)+"/toggle-status", nil)
}

func (s *Service) form(in Input, update bool) *api.FormData {
	form := api.NewFormData()
	if update {
		form.Set("_method", "PUT")
	}
	form.SetObject("ar", map[string]string{"title": in.TitleAr}).
		SetObject("en", map[string]string{"title": in.TitleEn}).
		Set("target_type", string(in.TargetType)).
		Set("order", in.Order)
	switch {
	case in.TargetType == TargetURL:
		form.Set("target_url", in.TargetURL)
	case in.TargetType.NeedsProvider():
		form.Set("provider_id", in.ProviderID)
	}
	if in.StartAt != nil {
		form.Set("start_at", in.StartAt.Format("2006-01-02 15:04:05"))
	}
	if in.EndAt != nil {
		form.Set("end_at", in.EndAt.Format("2006-01-02 15:04:05"))
	}
	if in.Image != nil {
		form.AddFile("image", in.ImageName, in.Image)
	}
	return form
}
