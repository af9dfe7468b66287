package timezone

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Location resolves an IANA timezone name such as "America/New_York".
func Location(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("timezone name is empty")
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", name, err)
	}

	return loc, nil
}

// Weekday resolves the weekday of a "2006-01-02" date string. The date alone
// determines the weekday; no timezone is involved.
func Weekday(date string) (time.Weekday, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("parsing date %q: %w", date, err)
	}

	return t.Weekday(), nil
}

// ParseDate parses a "2006-01-02" date as midnight in the given location.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", date, err)
	}

	return t, nil
}

// ParseClock parses a "15:04" clock string into minutes since midnight.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("parsing clock %q: %w", clock, err)
	}

	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as a "15:04" clock string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// At converts a site-local wall-clock value (date plus minutes since
// midnight) into an absolute instant.
func At(date string, minutes int, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, loc), nil
}

// Midnight truncates an instant to midnight of its own calendar day, keeping
// the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthKey returns the "2006-01" partition key of a "2006-01-02" date string.
func MonthKey(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", date, err)
	}

	return t.Format("2006-01"), nil
}

// MonthKeysBetween lists the "2006-01" keys of every calendar month touched
// by the inclusive [from, to] date range, in ascending order.
func MonthKeysBetween(from, to string) ([]string, error) {
	start, err := time.Parse(DateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", from, err)
	}

	end, err := time.Parse(DateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", to, err)
	}

	var keys []string
	for cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !cursor.After(end); cursor = cursor.AddDate(0, 1, 0) {
		keys = append(keys, cursor.Format("2006-01"))
	}

	return keys, nil
}
