package model_test

import (
	"testing"

	"clinicbook/internal/domains/booking/model"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Pat@Example.COM", "pat@example.com"},
		{"  pat@example.com \n", "pat@example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := model.NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+1 (555) 010-2000", "15550102000"},
		{"555.010.2000", "5550102000"},
		{"no digits", ""},
	}

	for _, tt := range tests {
		if got := model.NormalizePhone(tt.in); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSettingsHoursFor(t *testing.T) {
	settings := model.Settings{
		BusinessHours: []model.BusinessHourEntry{
			{Day: "Monday", Open: "09:00", Close: "17:00"},
			{Day: "sunday", Closed: true},
		},
	}

	entry, ok := settings.HoursFor("Monday")
	if !ok || entry.Open != "09:00" {
		t.Errorf("expected Monday entry, got %+v ok=%v", entry, ok)
	}

	// Case-insensitive match.
	entry, ok = settings.HoursFor("Sunday")
	if !ok || !entry.Closed {
		t.Errorf("expected closed Sunday entry, got %+v ok=%v", entry, ok)
	}

	if _, ok := settings.HoursFor("Saturday"); ok {
		t.Error("expected no Saturday entry")
	}
}

func TestSettingsIsZero(t *testing.T) {
	if !(model.Settings{}).IsZero() {
		t.Error("empty settings should be zero")
	}

	configured := model.Settings{Timezone: "America/New_York"}
	if configured.IsZero() {
		t.Error("configured settings should not be zero")
	}
}
