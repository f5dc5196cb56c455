package main

import (
	"strings"
	"testing"

	"github.com/mawadk/dashboard-client/internal/bookings"
)

func TestPrintBookingsLocalizedPrice(t *testing.T) {
	rows := []bookings.Booking{{
		ID:           1,
		Reference:    "BK-1001",
		CustomerName: "Huda",
		ProviderName: "Shifa Clinic",
		Status:       bookings.StatusPending,
		Price:        150,
		DataAt:       "2026-08-20 10:00:00",
	}}

	var en strings.Builder
	printBookings(&en, rows, "en")
	if !strings.Contains(en.String(), "SAR 150.00") {
		t.Errorf("expected English price formatting, got %q", en.String())
	}
	if !strings.Contains(en.String(), "10:00") {
		t.Errorf("expected booking time column, got %q", en.String())
	}

	var ar strings.Builder
	printBookings(&ar, rows, "ar")
	if !strings.Contains(ar.String(), "150.00 ر.س") {
		t.Errorf("expected Arabic price formatting, got %q", ar.String())
	}
}

func TestPrintBookingsEmpty(t *testing.T) {
	var out strings.Builder
	printBookings(&out, nil, "en")
	if out.Len() != 0 {
		t.Errorf("expected no output for an empty list, got %q", out.String())
	}
}
