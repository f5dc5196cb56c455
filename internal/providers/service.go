package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/pkg/logging"
)

// GalleryFile is one image attached to the gallery on create/update.
type GalleryFile struct {
	Name string
	R    io.Reader
}

// Input is the create/update payload. Bilingual fields go out as
// `ar[...]`/`en[...]` blocks.
type Input struct {
	Type          Type
	NameEn        string
	NameAr        string
	DescriptionEn string
	DescriptionAr string
	CategoryID    int
	Phone         string
	Email         string
	Address       string
	Lat           float64
	Lng           float64
	Price         float64
	PriceAfter    float64
	LogoName      string
	Logo          io.Reader
	Gallery       []GalleryFile
}

// Service wraps the provider and review endpoints.
type Service struct {
	client *api.Client
	logger *logging.Logger
}

// NewService creates a providers service.
func NewService(client *api.Client, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{client: client, logger: logger}
}

// List fetches providers, optionally filtered by type via params.Type.
func (s *Service) List(ctx context.Context, params api.ListParams) api.Result[[]Provider] {
	return api.FetchList[Provider](ctx, s.client, "/providers", params.Values())
}

// Get fetches one provider.
func (s *Service) Get(ctx context.Context, id int) api.Result[Provider] {
	return api.FetchOne[Provider](ctx, s.client, "/providers/"+strconv.Itoa(id), nil)
}

// Create submits a new provider as a multipart form.
func (s *Service) Create(ctx context.Context, in Input) api.Result[Provider] {
	return api.SubmitForm[Provider](ctx, s.client, "/providers", s.form(in, false))
}

// Update edits an existing provider.
func (s *Service) Update(ctx context.Context, id int, in Input) api.Result[Provider] {
	return api.SubmitForm[Provider](ctx, s.client, "/providers/"+strconv.Itoa(id), s.form(in, true))
}

// Delete removes a provider.
func (s *Service) Delete(ctx context.Context, id int) api.Result[struct{}] {
	return api.Mutate[struct{}](ctx, s.client, http.MethodDelete, "/providers/"+strconv.Itoa(id), nil)
}

// ToggleStatus flips a provider between active and inactive.
func (s *Service) ToggleStatus(ctx context.Context, id int) api.Result[Provider] {
	return api.Mutate[Provider](ctx, s.client, http.MethodPut, "/providers/"+strconv.Itoa(id)+"/toggle-status", nil)
}

// Reviews fetches the reviews of one provider.
func (s *Service) Reviews(ctx context.Context, providerID int, params api.ListParams) api.Result[[]Review] {
	path := fmt.Sprintf("/providers/%d/reviews", providerID)
	return api.FetchList[Review](ctx, s.client, path, params.Values())
}

// ApproveReview publishes a pending review.
func (s *Service) ApproveReview(ctx context.Context, providerID, reviewID int) api.Result[Review] {
	path := fmt.Sprintf("/providers/%d/reviews/%d/approve", providerID, reviewID)
	return api.Mutate[Review](ctx, s.client, http.MethodPut, path, nil)
}

// RejectReview hides a pending review.
func (s *Service) RejectReview(ctx context.Context, providerID, reviewID int) api.Result[Review] {
	path := fmt.Sprintf("/providers/%d/reviews/%d/reject", providerID, reviewID)
	return api.Mutate[Review](ctx, s.client, http.MethodPut, path, nil)
}

// DeleteReview removes a review outright.
func (s *Service) DeleteReview(ctx context.Context, providerID, reviewID int) api.Result[struct{}] {
	path := fmt.Sprintf("/providers/%d/reviews/%d", providerID, reviewID)
	return api.Mutate[struct{}](ctx, s.client, http.MethodDelete, path, nil)
}

func (s *Service) form(in Input, update bool) *api.FormData {
	form := api.NewFormData()
	if update {
		form.Set("_method", "PUT")
	}
	form.SetObject("ar", map[string]string{"name": in.NameAr, "description": in.DescriptionAr}).
		SetObject("en", map[string]string{"name": in.NameEn, "description": in.DescriptionEn}).
		Set("type", string(in.Type)).
		Set("category_id", in.CategoryID).
		Set("phone", in.Phone).
		Set("email", in.Email).
		Set("address", in.Address).
		Set("lat", in.Lat).
		Set("lng", in.Lng)
	if in.Type.HasOwnPricing() {
		form.Set("price", in.Price).Set("price_after", in.PriceAfter)
	}
	if in.Logo != nil {
		form.AddFile("logo", in.LogoName, in.Logo)
	}
	for i, g := range in.Gallery {
		form.AddFile(fmt.Sprintf("gallery[%d]", i), g.Name, g.R)
	}
	return form
}
