// Package admins manages dashboard administrator accounts and their
// permission assignments.
package admins

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/pkg/logging"
)

// Admin is a dashboard administrator account.
type Admin struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Avatar      string       `json:"avatar"`
	Status      string       `json:"status"`
	Permissions []Permission `json:"permissions"`
	CreatedAt   string       `json:"created_at"`
	DeletedAt   string       `json:"deleted_at,omitempty"`
}

// Permission is one atomic permission as the backend reports it.
type Permission struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Input is the create/update payload. PermissionIDs go out as
// `permission_id[]` repeated fields; Avatar is optional.
type Input struct {
	Name          string
	Email         string
	Phone         string
	Password      string
	PermissionIDs []int
	AvatarName    string
	Avatar        io.Reader
}

// Stats aggregates the active and trashed account counts.
type Stats struct {
	Active  int `json:"active"`
	Trashed int `json:"trashed"`
	Total   int `json:"total"`
}

// Service wraps the admin account endpoints.
type Service struct {
	client *api.Client
	logger *logging.Logger
}

// NewService creates an admins service.
func NewService(client *api.Client, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{client: client, logger: logger}
}

// List fetches active admin accounts.
func (s *Service) List(ctx context.Context, params api.ListParams) api.Result[[]Admin] {
	return api.FetchList[Admin](ctx, s.client, "/admins", params.Values())
}

// ListTrashed fetches soft-deleted admin accounts.
func (s *Service) ListTrashed(ctx context.Context, params api.ListParams) api.Result[[]Admin] {
	q := params.Values()
	q.Set("trashed", "1")
	return api.FetchList[Admin](ctx, s.client, "/admins", q)
}

// Get fetches one admin account.
func (s *Service) Get(ctx context.Context, id int) api.Result[Admin] {
	return api.FetchOne[Admin](ctx, s.client, "/admins/"+strconv.Itoa(id), nil)
}

// Create submits a new admin account as a multipart form.
func (s *Service) Create(ctx context.Context, in Input) api.Result[Admin] {
	return api.SubmitForm[Admin](ctx, s.client, "/admins", s.form(in, false))
}

// Update submits changes to an existing account. The backend routes
// multipart updates through POST with a `_method=PUT` override.
func (s *Service) Update(ctx context.Context, id int, in Input) api.Result[Admin] {
	return api.SubmitForm[Admin](ctx, s.client, "/admins/"+strconv.Itoa(id), s.form(in, true))
}

// Delete soft-deletes an account.
func (s *Service) Delete(ctx context.Context, id int) api.Result[struct{}] {
	return api.Mutate[struct{}](ctx, s.client, http.MethodDelete, "/admins/"+strconv.Itoa(id), nil)
}

// Restore brings a soft-deleted account back.
func (s *Service) Restore(ctx context.Context, id int) api.Result[Admin] {
	return api.Mutate[Admin](ctx, s.client, http.MethodPost, "/admins/"+strconv.Itoa(id)+"/restore", nil)
}

// ToggleStatus flips an account between active and inactive.
func (s *Service) ToggleStatus(ctx context.Context, id int) api.Result[Admin] {
	return api.Mutate[Admin](ctx, s.client, http.MethodPut, "/admins/"+strconv.Itoa(id)+"/toggle-status", nil)
}

// Stats fetches the active and trashed lists concurrently and merges the
// counts. Both fetches must resolve before the stats are final; there is
// no ordering dependency between them.
func (s *Service) Stats(ctx context.Context) api.Result[Stats] {
	var (
		wg      sync.WaitGroup
		active  api.Result[[]Admin]
		trashed api.Result[[]Admin]
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		active = api.FetchList[Admin](ctx, s.client, "/admins", countOnlyQuery(nil))
	}()
	go func() {
		defer wg.Done()
		q := countOnlyQuery(nil)
		q.Set("trashed", "1")
		trashed = api.FetchList[Admin](ctx, s.client, "/admins", q)
	}()
	wg.Wait()

	if !active.Success {
		return api.Result[Stats]{Success: false, Meta: api.SafeMeta(), Message: active.Message}
	}
	if !trashed.Success {
		return api.Result[Stats]{Success: false, Meta: api.SafeMeta(), Message: trashed.Message}
	}
	stats := Stats{
		Active:  active.Meta.Total,
		Trashed: trashed.Meta.Total,
		Total:   active.Meta.Total + trashed.Meta.Total,
	}
	return api.Result[Stats]{Success: true, Data: stats, Meta: api.SafeMeta(), Message: active.Message}
}

func countOnlyQuery(base url.Values) url.Values {
	if base == nil {
		base = url.Values{}
	}
	base.Set("per_page", "1")
	return base
}

func (s *Service) form(in Input, update bool) *api.FormData {
	form := api.NewFormData()
	if update {
		form.Set("_method", "PUT")
	}
	form.Set("name", in.Name).
		Set("email", in.Email).
		Set("phone", in.Phone)
	if in.Password != "" {
		form.Set("password", in.Password)
	}
	ids := make([]string, len(in.PermissionIDs))
	for i, id := range in.PermissionIDs {
		ids[i] = strconv.Itoa(id)
	}
	form.AddArray("permission_id", ids)
	if in.Avatar != nil {
		form.AddFile("avatar", in.AvatarName, in.Avatar)
	}
	return form
}
