package bookings

import (
	"fmt"
	"time"

	"github.com/mawadk/dashboard-client/internal/api"
)

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDatetime(s string) (time.Time, bool) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatBookingTime prefers the explicit time string. When absent it
// extracts hours/minutes from the datetime field, unless that field's
// time-of-day is exactly midnight — a midnight timestamp almost always
// means a date-only value, not a real 00:00 slot.
func FormatBookingTime(timeStr, datetime string) string {
	if timeStr != "" {
		return timeStr
	}
	t, ok := parseDatetime(datetime)
	if !ok {
		return ""
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return ""
	}
	return t.Format("15:04")
}

// RelativeTime renders t relative to now with minute/hour/day/week/month
// granularity, falling back to an absolute date beyond one year. Arabic
// output uses dual forms for exactly two units.
func RelativeTime(t, now time.Time, locale string) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}

	seconds := int(diff.Seconds())
	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := hours / 24

	switch locale {
	case api.LocaleArabic:
		switch {
		case seconds < 60:
			return "الآن"
		case minutes < 60:
			return arabicUnit(minutes, "دقيقة", "دقيقتين", "دقائق")
		case hours < 24:
			return arabicUnit(hours, "ساعة", "ساعتين", "ساعات")
		case days < 7:
			return arabicUnit(days, "يوم", "يومين", "أيام")
		case days < 30:
			return arabicUnit(days/7, "أسبوع", "أسبوعين", "أسابيع")
		case days < 365:
			return arabicUnit(days/30, "شهر", "شهرين", "أشهر")
		default:
			return t.Format("02/01/2006")
		}
	default:
		switch {
		case seconds < 60:
			return "Just now"
		case minutes < 60:
			return englishUnit(minutes, "minute")
		case hours < 24:
			return englishUnit(hours, "hour")
		case days < 7:
			return englishUnit(days, "day")
		case days < 30:
			return englishUnit(days/7, "week")
		case days < 365:
			return englishUnit(days/30, "month")
		default:
			return t.Format("Jan 2, 2006")
		}
	}
}

func englishUnit(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// arabicUnit applies Arabic number agreement: singular, dual, 3–10
// plural, and the singular accusative beyond ten.
func arabicUnit(n int, singular, dual, plural string) string {
	switch {
	case n == 1:
		return "منذ " + singular
	case n == 2:
		return "منذ " + dual
	case n >= 3 && n <= 10:
		return fmt.Sprintf("منذ %d %s", n, plural)
	default:
		return fmt.Sprintf("منذ %d %s", n, singular)
	}
}

// FormatPrice renders a price with the dashboard's currency convention.
func FormatPrice(amount float64, locale string) string {
	if locale == api.LocaleArabic {
		return fmt.Sprintf("%.2f ر.س", amount)
	}
	return fmt.Sprintf("SAR %.2f", amount)
}
