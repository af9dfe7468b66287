package availability

import (
	"testing"
	"time"

	"clinicbook/internal/domains/booking/model"
)

func newYorkSettings() model.Settings {
	return model.Settings{
		Timezone:       "America/New_York",
		BufferMinutes:  10,
		MinNoticeHours: 0,
		MaxDaysAhead:   60,
		BusinessHours: []model.BusinessHourEntry{
			{Day: "Monday", Open: "09:00", Close: "17:00"},
			{Day: "Tuesday", Open: "09:00", Close: "17:00"},
			{Day: "Wednesday", Open: "09:00", Close: "17:00"},
			{Day: "Thursday", Open: "09:00", Close: "17:00"},
			{Day: "Friday", Open: "09:00", Close: "13:00"},
			{Day: "Saturday", Closed: true},
			{Day: "Sunday", Closed: true},
		},
	}
}

func consultation() model.Service {
	return model.Service{ID: "svc-1", Name: "Consultation", DurationMinutes: 60, Active: true}
}

// 2024-05-27 is a Monday; "now" a week earlier keeps the notice cutoff inert.
const monday = "2024-05-27"

var weekBefore = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func TestGenerateAvailableSlots_EmptyDay(t *testing.T) {
	slots, err := GenerateAvailableSlots(monday, consultation(), newYorkSettings(), nil, weekBefore)
	if err != nil {
		t.Fatalf("GenerateAvailableSlots failed: %v", err)
	}

	// 60-minute service with a 10-minute buffer steps by 70: the last slot
	// 16:00 ends exactly at close.
	want := []string{"09:00", "10:10", "11:20", "12:30", "13:40", "14:50", "16:00"}
	assertSlots(t, want, slots)
}

func TestGenerateAvailableSlots_ExistingBooking(t *testing.T) {
	existing := []model.BookingRecord{
		{ID: "b-1", Date: monday, Time: "10:10", DurationMinutes: 60, Status: model.StatusConfirmed},
	}

	slots, err := GenerateAvailableSlots(monday, consultation(), newYorkSettings(), existing, weekBefore)
	if err != nil {
		t.Fatalf("GenerateAvailableSlots failed: %v", err)
	}

	want := []string{"09:00", "11:20", "12:30", "13:40", "14:50", "16:00"}
	assertSlots(t, want, slots)
}

func TestGenerateAvailableSlots_CancelledBookingFreesSlot(t *testing.T) {
	existing := []model.BookingRecord{
		{ID: "b-1", Date: monday, Time: "10:10", DurationMinutes: 60, Status: model.StatusCancelled},
	}

	slots, err := GenerateAvailableSlots(monday, consultation(), newYorkSettings(), existing, weekBefore)
	if err != nil {
		t.Fatalf("GenerateAvailableSlots failed: %v", err)
	}

	want := []string{"09:00", "10:10", "11:20", "12:30", "13:40", "14:50", "16:00"}
	assertSlots(t, want, slots)
}

func TestGenerateAvailableSlots_BlockedDate(t *testing.T) {
	settings := newYorkSettings()
	settings.BlockedDates = []string{monday}

	slots, err := GenerateAvailableSlots(monday, consultation(), settings, nil, weekBefore)
	if err != nil {
		t.Fatalf("GenerateAvailableSlots failed: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots on a blocked date, got %v", slots)
	}
}

func TestGenerateAvailableSlots_ClosedWeekday(t *testing.T) {
	// 2024-06-01 is a Saturday.
	slots, err := GenerateAvailableSlots("2024-06-01", consultation(), newYorkSettings(), nil, weekBefore)
	if err != nil {
		t.Fatalf("GenerateAvailableSlots failed: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots on a closed weekday, got %v", slots)
	}
}

func TestGenerateAvailableSlots_MissingWeekdayEntry(t *testing.T) {
	settings := newYorkSettings()
	settings.BusinessHours = settings.BusinessHours[:4] // drops Friday onward

	// 2024-05-31 is a Friday.
	slots, err := GenerateAvailableSlots("2024-05-31", consultation(), settings, nil, weekBefore)
	if err != nil {
		t.Fatalf("GenerateAvailableSlots failed: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots without a weekday entry, got %v", slots)
	}
}

func TestGenerateAvailableSlots_MinNoticeCutoff(t *testing.T) {
	settings := newYorkSettings()
	settings.MinNoticeHours = 2

	// 10:30 New York wall clock on the booking day itself: 09:00 and 10:10
	// start before the 12:30 cutoff.
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2024, 5, 27, 10, 30, 0, 0, loc)

	slots, err := GenerateAvailableSlots(monday, consultation(), settings, nil, now)
	if err != nil {
		t.Fatalf("GenerateAvailableSlots failed: %v", err)
	}

	want := []string{"12:30", "13:40", "14:50", "16:00"}
	assertSlots(t, want, slots)
}

func TestGenerateAvailableSlots_ServerTimezoneIrrelevant(t *testing.T) {
	// The same instant expressed in another zone must yield identical slots.
	settings := newYorkSettings()
	settings.MinNoticeHours = 2

	loc, _ := time.LoadLocation("America/New_York")
	nowNY := time.Date(2024, 5, 27, 10, 30, 0, 0, loc)
	nowUTC := nowNY.UTC()

	fromNY, err := GenerateAvailableSlots(monday, consultation(), settings, nil, nowNY)
	if err != nil {
		t.Fatalf("GenerateAvailableSlots failed: %v", err)
	}

	fromUTC, err := GenerateAvailableSlots(monday, consultation(), settings, nil, nowUTC)
	if err != nil {
		t.Fatalf("GenerateAvailableSlots failed: %v", err)
	}

	assertSlots(t, fromNY, fromUTC)
}

func TestGenerateAvailableSlots_NoOverlapWithBookings(t *testing.T) {
	settings := newYorkSettings()
	existing := []model.BookingRecord{
		{ID: "b-1", Date: monday, Time: "09:00", DurationMinutes: 60, Status: model.StatusConfirmed},
		{ID: "b-2", Date: monday, Time: "12:30", DurationMinutes: 30, Status: model.StatusRescheduled},
		{ID: "b-3", Date: monday, Time: "15:00", DurationMinutes: 90, Status: model.StatusCancelled},
	}

	svc := consultation()
	slots, err := GenerateAvailableSlots(monday, svc, settings, existing, weekBefore)
	if err != nil {
		t.Fatalf("GenerateAvailableSlots failed: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected some slots")
	}

	for _, slot := range slots {
		slotStart := mustClock(t, slot)
		slotEnd := slotStart + svc.DurationMinutes

		for _, b := range existing {
			if b.IsCancelled() {
				continue
			}
			bStart := mustClock(t, b.Time)
			bEnd := bStart + b.DurationMinutes + settings.BufferMinutes
			if slotStart < bEnd && bStart < slotEnd {
				t.Errorf("slot %s overlaps booking %s at %s", slot, b.ID, b.Time)
			}
		}
	}
}

func TestIsDateWithinRange(t *testing.T) {
	settings := newYorkSettings()
	settings.MaxDaysAhead = 14

	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2024, 5, 27, 18, 0, 0, 0, loc)

	tests := []struct {
		name string
		date string
		want bool
	}{
		{name: "today", date: "2024-05-27", want: true},
		{name: "yesterday", date: "2024-05-26", want: false},
		{name: "horizon boundary", date: "2024-06-10", want: true},
		{name: "past horizon", date: "2024-06-11", want: false},
		{name: "tomorrow", date: "2024-05-28", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsDateWithinRange(tt.date, settings, now)
			if err != nil {
				t.Fatalf("IsDateWithinRange failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsDateWithinRange(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestIsDateWithinRange_TimezoneBoundary(t *testing.T) {
	// 23:30 in New York is already the next day in UTC; "today" must be the
	// site-local day, not the server's.
	settings := newYorkSettings()
	settings.MaxDaysAhead = 1

	loc, _ := time.LoadLocation("America/New_York")
	now := time.Date(2024, 5, 27, 23, 30, 0, 0, loc)

	ok, err := IsDateWithinRange("2024-05-27", settings, now.UTC())
	if err != nil {
		t.Fatalf("IsDateWithinRange failed: %v", err)
	}
	if !ok {
		t.Error("expected the site-local today to be in range")
	}
}

func TestGenerateAvailableSlots_InvalidInputs(t *testing.T) {
	if _, err := GenerateAvailableSlots(monday, consultation(), model.Settings{Timezone: "Nope/Nope"}, nil, weekBefore); err == nil {
		t.Error("expected error for bad timezone")
	}

	if _, err := GenerateAvailableSlots("27-05-2024", consultation(), newYorkSettings(), nil, weekBefore); err == nil {
		t.Error("expected error for malformed date")
	}

	svc := consultation()
	svc.DurationMinutes = 0
	if _, err := GenerateAvailableSlots(monday, svc, newYorkSettings(), nil, weekBefore); err == nil {
		t.Error("expected error for zero-duration service")
	}
}

func assertSlots(t *testing.T, want, got []string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("expected %d slots %v, got %d slots %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func mustClock(t *testing.T, clock string) int {
	t.Helper()

	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		t.Fatalf("bad clock %q: %v", clock, err)
	}

	return parsed.Hour()*60 + parsed.Minute()
}
