package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBookingTime(t *testing.T) {
	tests := []struct {
		name     string
		timeStr  string
		datetime string
		want     string
	}{
		{"explicit time wins", "14:30", "2026-03-01 09:15:00", "14:30"},
		{"falls back to datetime", "", "2026-03-01 09:15:00", "09:15"},
		{"rfc3339 datetime", "", "2026-03-01T18:45:00Z", "18:45"},
		{"midnight treated as date-only", "", "2026-03-01 00:00:00", ""},
		{"date-only field", "", "2026-03-01", ""},
		{"unparsable", "", "soon", ""},
		{"both empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBookingTime(tt.timeStr, tt.datetime))
		})
	}
}

func TestRelativeTimeEnglish(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"59 seconds", 59 * time.Second, "Just now"},
		{"60 seconds", 60 * time.Second, "1 minute ago"},
		{"5 minutes", 5 * time.Minute, "5 minutes ago"},
		{"90 minutes buckets to whole hours", 90 * time.Minute, "1 hour ago"},
		{"3 hours", 3 * time.Hour, "3 hours ago"},
		{"1 day", 25 * time.Hour, "1 day ago"},
		{"6 days", 6 * 24 * time.Hour, "6 days ago"},
		{"2 weeks", 15 * 24 * time.Hour, "2 weeks ago"},
		{"2 months", 61 * 24 * time.Hour, "2 months ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(now.Add(-tt.ago), now, "en"))
		})
	}

	t.Run("400 days falls back to absolute date", func(t *testing.T) {
		got := RelativeTime(now.Add(-400*24*time.Hour), now, "en")
		assert.Equal(t, "Jan 25, 2025", got)
		assert.NotContains(t, got, "ago")
	})
}

func TestRelativeTimeArabic(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"just now", 30 * time.Second, "الآن"},
		{"one minute", time.Minute, "منذ دقيقة"},
		{"dual minutes", 2 * time.Minute, "منذ دقيقتين"},
		{"few minutes", 7 * time.Minute, "منذ 7 دقائق"},
		{"many minutes", 40 * time.Minute, "منذ 40 دقيقة"},
		{"dual hours", 2 * time.Hour, "منذ ساعتين"},
		{"dual days", 48 * time.Hour, "منذ يومين"},
		{"one week", 8 * 24 * time.Hour, "منذ أسبوع"},
		{"few months", 100 * 24 * time.Hour, "منذ 3 أشهر"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(now.Add(-tt.ago), now, "ar"))
		})
	}

	t.Run("beyond a year", func(t *testing.T) {
		got := RelativeTime(now.Add(-400*24*time.Hour), now, "ar")
		assert.Equal(t, "25/01/2025", got)
	})
}
