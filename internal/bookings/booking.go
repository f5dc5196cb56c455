// Package bookings wraps the dashboard booking endpoints and the pure
// helpers the booking screens depend on: the status transition table,
// badge colors, time formatting and the clinic-only in-memory page.
package bookings

// Status is the booking lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// transitions is the fixed directed transition table. Statuses absent
// from the map are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// AllowedNext returns the legal next states, empty for terminal states.
func (s Status) AllowedNext() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether s may move directly to target.
func (s Status) CanTransition(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Booking is the list/detail view-model returned by the API.
type Booking struct {
	ID            int     `json:"id"`
	Reference     string  `json:"reference"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	ProviderID    int     `json:"provider_id"`
	ProviderName  string  `json:"provider_name"`
	ProviderType  string  `json:"provider_type"`
	DoctorName    string  `json:"doctor_name"`
	Status        Status  `json:"status"`
	PaymentMethod string  `json:"payment_method"`
	Price         float64 `json:"price"`
	Time          string  `json:"time"`
	DataAt        string  `json:"data_at"`
	Date          string  `json:"date"`
	CreatedAt     string  `json:"created_at"`
}
