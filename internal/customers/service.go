// Package customers manages consumer accounts of the booking platform.
package customers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/pkg/logging"
)

// Customer is one consumer account.
type Customer struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Status        string `json:"status"`
	BookingsCount int    `json:"bookings_count"`
	CreatedAt     string `json:"created_at"`
}

// Service wraps the customer endpoints. Customers self-register in the
// consumer app; the dashboard only reviews, suspends, and removes them.
type Service struct {
	client *api.Client
	logger *logging.Logger
}

// NewService creates a customers service.
func NewService(client *api.Client, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{client: client, logger: logger}
}

// List fetches customer accounts.
func (s *Service) List(ctx context.Context, params api.ListParams) api.Result[[]Customer] {
	return api.FetchList[Customer](ctx, s.client, "/customers", params.Values())
}

// Get fetches one customer account.
func (s *Service) Get(ctx context.Context, id int) api.Result[Customer] {
	return api.FetchOne[Customer](ctx, s.client, "/customers/"+strconv.Itoa(id), nil)
}

// ToggleStatus flips a customer between active and suspended.
func (s *Service) ToggleStatus(ctx context.Context, id int) api.Result[Customer] {
	return api.Mutate[Customer](ctx, s.client, http.MethodPut, "/customers/"+strconv.Itoa(id)+"/toggle-status", nil)
}

// Delete removes a customer account.
func (s *Service) Delete(ctx context.Context, id int) api.Result[struct{}] {
	return api.Mutate[struct{}](ctx, s.client, http.MethodDelete, "/customers/"+strconv.Itoa(id), nil)
}
