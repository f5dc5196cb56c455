// Package categories manages the medical specialty categories providers
// are filed under.
package categories

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/pkg/logging"
)

// Category is one specialty entry.
type Category struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameAr string `json:"name_ar"`
	Icon   string `json:"icon"`
	Status string `json:"status"`
	Order  int    `json:"order"`
}

// Input is the create/update payload.
type Input struct {
	NameEn   string
	NameAr   string
	Order    int
	IconName string
	Icon     io.Reader
}

// Service wraps the category endpoints.
type Service struct {
	client *api.Client
	logger *logging.Logger
}

// NewService creates a categories service.
func NewService(client *api.Client, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{client: client, logger: logger}
}

// List fetches categories. This endpoint historically returns data as a
// bare array rather than {items, meta}; the list decoder handles both.
func (s *Service) List(ctx context.Context, params api.ListParams) api.Result[[]Category] {
	return api.FetchList[Category](ctx, s.client, "/categories", params.Values())
}

// Get fetches one category.
func (s *Service) Get(ctx context.Context, id int) api.Result[Category] {
	return api.FetchOne[Category](ctx, s.client, "/categories/"+strconv.Itoa(id), nil)
}

// Create submits a new category as a multipart form.
func (s *Service) Create(ctx context.Context, in Input) api.Result[Category] {
	return api.SubmitForm[Category](ctx, s.client, "/categories", s.form(in, false))
}

// Update edits an existing category.
func (s *Service) Update(ctx context.Context, id int, in Input) api.Result[Category] {
	return api.SubmitForm[Category](ctx, s.client, "/categories/"+strconv.Itoa(id), s.form(in, true))
}

// Delete removes a category.
func (s *Service) Delete(ctx context.Context, id int) api.Result[struct{}] {
	return api.Mutate[struct{}](ctx, s.client, http.MethodDelete, "/categories/"+strconv.Itoa(id), nil)
}

// ToggleStatus flips a category between active and inactive.
func (s *Service) ToggleStatus(ctx context.Context, id int) api.Result[Category] {
	return api.Mutate[Category](ctx, s.client, http.MethodPut, "/categories/"+strconv.Itoa(id)+"/toggle-status", nil)
}

func (s *Service) form(in Input, update bool) *api.FormData {
	form := api.NewFormData()
	if update {
		form.Set("_method", "PUT")
	}
	form.SetObject("ar", map[string]string{"name": in.NameAr}).
		SetObject("en", map[string]string{"name": in.NameEn}).
		Set("order", in.Order)
	if in.Icon != nil {
		form.AddFile("icon", in.IconName, in.Icon)
	}
	return form
}
