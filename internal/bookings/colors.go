package bookings

import "strings"

// normalizeKey lowers the key and strips underscores and spaces, so
// "No_Show", "no show" and "noshow" all hit the same entry.
func normalizeKey(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, " ", "")
}

var statusColors = map[string]string{
	"pending":   "warning",
	"confirmed": "info",
	"completed": "success",
	"cancelled": "danger",
	"noshow":    "secondary",
}

var paymentColors = map[string]string{
	"cash":   "success",
	"card":   "info",
	"online": "info",
	"wallet": "primary",
}

// StatusColor returns the badge color token for a booking status.
func StatusColor(status string) string {
	if c, ok := statusColors[normalizeKey(status)]; ok {
		return c
	}
	return "secondary"
}

// PaymentMethodColor returns the badge color token for a payment method.
func PaymentMethodColor(method string) string {
	if c, ok := paymentColors[normalizeKey(method)]; ok {
		return c
	}
	return "secondary"
}
