package bookings

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/pkg/logging"
)

// Service wraps the booking endpoints into the normalized envelope.
type Service struct {
	client *api.Client
	logger *logging.Logger
}

// NewService creates a booking service.
func NewService(client *api.Client, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{client: client, logger: logger}
}

// List fetches a bookings page. Reports, when the server includes them,
// ride along on the envelope.
func (s *Service) List(ctx context.Context, params api.ListParams) api.Result[[]Booking] {
	return api.FetchList[Booking](ctx, s.client, "/bookings", params.Values())
}

// Get fetches one booking.
func (s *Service) Get(ctx context.Context, id int) api.Result[Booking] {
	return api.FetchOne[Booking](ctx, s.client, fmt.Sprintf("/bookings/%d", id), nil)
}

// UpdateStatus moves a booking to target without a client-side guard.
// Screens that know the current status should use TransitionStatus.
func (s *Service) UpdateStatus(ctx context.Context, id int, target Status) api.Result[Booking] {
	return api.Mutate[Booking](ctx, s.client, http.MethodPut,
		fmt.Sprintf("/bookings/%d/status", id), map[string]string{"status": string(target)})
}

// TransitionStatus validates from→target against the transition table
// before hitting the API, so illegal moves never leave the client.
func (s *Service) TransitionStatus(ctx context.Context, id int, from, target Status) api.Result[Booking] {
	if !from.CanTransition(target) {
		s.logger.Warn("bookings: illegal status transition", "booking_id", id, "from", from, "to", target)
		return api.Result[Booking]{
			Success: false,
			Meta:    api.SafeMeta(),
			Message: illegalTransitionMessage(s.client.Locale(ctx), from, target),
		}
	}
	return s.UpdateStatus(ctx, id, target)
}

func illegalTransitionMessage(locale string, from, target Status) string {
	if locale == api.LocaleArabic {
		return fmt.Sprintf("لا يمكن تغيير حالة الحجز من %s إلى %s", from, target)
	}
	return fmt.Sprintf("booking status cannot change from %s to %s", from, target)
}

// Stats is the bookings overview block: counts per status plus realized
// revenue.
type Stats struct {
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	Confirmed int     `json:"confirmed"`
	Completed int     `json:"completed"`
	Cancelled int     `json:"cancelled"`
	NoShow    int     `json:"no_show"`
	Revenue   float64 `json:"revenue"`
}

// GetStats fetches the bookings overview.
func (s *Service) GetStats(ctx context.Context) api.Result[Stats] {
	return api.FetchOne[Stats](ctx, s.client, "/bookings/stats", nil)
}

// ClinicBookings serves the clinic bookings screen: one oversized fetch,
// then in-memory filter, resort and pagination (see ClinicPage).
func (s *Service) ClinicBookings(ctx context.Context, page, perPage int) api.Result[[]Booking] {
	res := api.FetchList[Booking](ctx, s.client, "/bookings",
		api.ListParams{Page: 1, PerPage: clinicFetchSize}.Values())
	if !res.Success {
		return res
	}
	items, meta := ClinicPage(res.Data, page, perPage)
	res.Data = items
	res.Meta = meta
	return res
}
