// Package availability computes bookable time slots for a service on a date.
// It is pure wall-clock math over settings and existing bookings; the caller
// supplies "now" and all I/O stays in the orchestrating service.
package availability

import (
	"fmt"
	"time"

	"clinicbook/internal/domains/booking/model"
	"clinicbook/shared/timezone"
)

type interval struct {
	start int // minutes since midnight, inclusive
	end   int // exclusive
}

func (i interval) overlaps(other interval) bool {
	return i.start < other.end && other.start < i.end
}

// GenerateAvailableSlots returns the bookable "HH:MM" start times for a
// service on a "2006-01-02" date, in ascending order.
//
// The grid is quantized by service duration plus buffer: candidates start at
// opening time and step by duration+buffer, so slots do not realign to the
// top of the hour after the first one. A candidate survives when its whole
// duration fits before closing, its start is no earlier than now plus the
// minimum notice, and it does not intersect the buffered interval of any
// non-cancelled booking on the same date.
func GenerateAvailableSlots(date string, service model.Service, settings model.Settings, existing []model.BookingRecord, now time.Time) ([]string, error) {
	loc, err := timezone.Location(settings.Timezone)
	if err != nil {
		return nil, err
	}

	if settings.IsBlocked(date) {
		return nil, nil
	}

	weekday, err := timezone.Weekday(date)
	if err != nil {
		return nil, err
	}

	entry, ok := settings.HoursFor(weekday.String())
	if !ok || entry.Closed {
		return nil, nil
	}

	openMinutes, err := timezone.ParseClock(entry.Open)
	if err != nil {
		return nil, fmt.Errorf("business hours for %s: %w", entry.Day, err)
	}

	closeMinutes, err := timezone.ParseClock(entry.Close)
	if err != nil {
		return nil, fmt.Errorf("business hours for %s: %w", entry.Day, err)
	}

	duration := service.DurationMinutes
	if duration <= 0 {
		return nil, fmt.Errorf("service %s has no duration", service.ID)
	}

	step := duration + settings.BufferMinutes

	booked, err := bookedIntervals(date, settings, existing)
	if err != nil {
		return nil, err
	}

	cutoff := now.Add(time.Duration(settings.MinNoticeHours) * time.Hour)

	var slots []string
	for start := openMinutes; start+duration <= closeMinutes; start += step {
		instant, err := timezone.At(date, start, loc)
		if err != nil {
			return nil, err
		}

		if instant.Before(cutoff) {
			continue
		}

		candidate := interval{start: start, end: start + duration}

		free := true
		for _, b := range booked {
			if candidate.overlaps(b) {
				free = false
				break
			}
		}

		if free {
			slots = append(slots, timezone.FormatClock(start))
		}
	}

	return slots, nil
}

// IsDateWithinRange reports whether a date falls inside the booking horizon:
// today through today+MaxDaysAhead inclusive, both bounds taken at midnight
// in the site's timezone.
func IsDateWithinRange(date string, settings model.Settings, now time.Time) (bool, error) {
	loc, err := timezone.Location(settings.Timezone)
	if err != nil {
		return false, err
	}

	day, err := timezone.ParseDate(date, loc)
	if err != nil {
		return false, err
	}

	today := timezone.Midnight(now.In(loc))
	horizon := today.AddDate(0, 0, settings.MaxDaysAhead)

	return !day.Before(today) && !day.After(horizon), nil
}

// bookedIntervals collects the buffered occupancy intervals of non-cancelled
// bookings on the given date. The buffer extends each booking's trailing
// edge, keeping the next appointment from starting back-to-back.
func bookedIntervals(date string, settings model.Settings, existing []model.BookingRecord) ([]interval, error) {
	var booked []interval

	for _, b := range existing {
		if b.Date != date || b.IsCancelled() {
			continue
		}

		start, err := timezone.ParseClock(b.Time)
		if err != nil {
			return nil, fmt.Errorf("booking %s: %w", b.ID, err)
		}

		booked = append(booked, interval{
			start: start,
			end:   start + b.DurationMinutes + settings.BufferMinutes,
		})
	}

	return booked, nil
}
