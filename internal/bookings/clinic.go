package bookings

import (
	"sort"
	"strings"
	"time"

	"github.com/mawadk/dashboard-client/internal/api"
)

// clinicFetchSize is the oversized single-page fetch used by the clinic
// bookings screen. The backend has no provider-type filter, so the
// screen pulls up to 1000 rows and filters/paginates in memory. Known
// workaround; delete once the API grows a server-side filter.
const clinicFetchSize = 1000

// effectiveTime resolves the booking's display datetime, falling back
// through data_at, date and created_at.
func effectiveTime(b Booking) time.Time {
	for _, candidate := range []string{b.DataAt, b.Date, b.CreatedAt} {
		if candidate == "" {
			continue
		}
		if t, ok := parseDatetime(candidate); ok {
			return t
		}
	}
	return time.Time{}
}

// ClinicPage filters to clinic-type bookings, sorts descending by
// effective datetime and slices the requested page. The returned meta
// reflects the post-filter count, never the raw server total.
func ClinicPage(all []Booking, page, perPage int) ([]Booking, api.PageMeta) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = api.DefaultPerPage
	}

	filtered := make([]Booking, 0, len(all))
	for _, b := range all {
		if strings.EqualFold(b.ProviderType, "Clinic") {
			filtered = append(filtered, b)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return effectiveTime(filtered[i]).After(effectiveTime(filtered[j]))
	})

	total := len(filtered)
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	if page > lastPage {
		page = lastPage
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	meta := api.PageMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		Total:       total,
		PerPage:     perPage,
	}
	return filtered[start:end], meta
}
