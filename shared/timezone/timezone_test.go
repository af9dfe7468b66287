package timezone_test

import (
	"testing"
	"time"

	"clinicbook/shared/timezone"
)

func TestLocation(t *testing.T) {
	loc, err := timezone.Location("America/New_York")
	if err != nil {
		t.Fatalf("Location() failed: %v", err)
	}
	if loc.String() != "America/New_York" {
		t.Errorf("expected America/New_York, got %s", loc)
	}

	if _, err := timezone.Location("Neverland/Nowhere"); err == nil {
		t.Error("expected error for unknown timezone")
	}

	if _, err := timezone.Location(""); err == nil {
		t.Error("expected error for empty timezone")
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		date string
		want time.Weekday
	}{
		{"2024-05-27", time.Monday},
		{"2024-05-28", time.Tuesday},
		{"2024-06-02", time.Sunday},
		{"2024-02-29", time.Thursday},
	}

	for _, tt := range tests {
		got, err := timezone.Weekday(tt.date)
		if err != nil {
			t.Fatalf("Weekday(%s) failed: %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("Weekday(%s) = %s, want %s", tt.date, got, tt.want)
		}
	}

	if _, err := timezone.Weekday("28-05-2024"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestParseFormatClock(t *testing.T) {
	minutes, err := timezone.ParseClock("09:30")
	if err != nil {
		t.Fatalf("ParseClock failed: %v", err)
	}
	if minutes != 9*60+30 {
		t.Errorf("expected 570 minutes, got %d", minutes)
	}

	if got := timezone.FormatClock(minutes); got != "09:30" {
		t.Errorf("expected 09:30, got %s", got)
	}

	if got := timezone.FormatClock(16*60 + 5); got != "16:05" {
		t.Errorf("expected 16:05, got %s", got)
	}

	if _, err := timezone.ParseClock("9h30"); err == nil {
		t.Error("expected error for malformed clock")
	}
}

func TestAt(t *testing.T) {
	loc, err := timezone.Location("America/New_York")
	if err != nil {
		t.Fatalf("Location() failed: %v", err)
	}

	// 09:00 New York wall clock in May is 13:00 UTC (EDT, UTC-4).
	instant, err := timezone.At("2024-05-27", 9*60, loc)
	if err != nil {
		t.Fatalf("At() failed: %v", err)
	}

	if got := instant.UTC().Format("2006-01-02 15:04"); got != "2024-05-27 13:00" {
		t.Errorf("expected 2024-05-27 13:00 UTC, got %s", got)
	}
}

func TestMidnight(t *testing.T) {
	loc, _ := timezone.Location("Asia/Jakarta")
	instant := time.Date(2024, 5, 27, 18, 45, 12, 99, loc)

	got := timezone.Midnight(instant)
	want := time.Date(2024, 5, 27, 0, 0, 0, 0, loc)

	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMonthKeys(t *testing.T) {
	key, err := timezone.MonthKey("2024-05-28")
	if err != nil {
		t.Fatalf("MonthKey failed: %v", err)
	}
	if key != "2024-05" {
		t.Errorf("expected 2024-05, got %s", key)
	}

	keys, err := timezone.MonthKeysBetween("2024-11-15", "2025-02-01")
	if err != nil {
		t.Fatalf("MonthKeysBetween failed: %v", err)
	}

	want := []string{"2024-11", "2024-12", "2025-01", "2025-02"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d: expected %s, got %s", i, want[i], keys[i])
		}
	}

	same, err := timezone.MonthKeysBetween("2024-05-01", "2024-05-31")
	if err != nil {
		t.Fatalf("MonthKeysBetween failed: %v", err)
	}
	if len(same) != 1 || same[0] != "2024-05" {
		t.Errorf("expected single 2024-05 key, got %v", same)
	}
}
