package model

import (
	"strings"
	"time"
)

const (
	EntityName = "booking"
)

const (
	StatusConfirmed   = "confirmed"
	StatusRescheduled = "rescheduled"
	StatusCancelled   = "cancelled"
)

// Service is an immutable catalog entry edited only by admins. Inactive
// services are hidden from booking without deleting history.
type Service struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price,omitempty"`
	Active          bool     `json:"active"`
}

// BusinessHourEntry is the open/close window for one weekday. Closed
// overrides open/close.
type BusinessHourEntry struct {
	Day    string `json:"day"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// Settings is the site-wide scheduling configuration, read on every
// availability computation.
type Settings struct {
	Timezone           string              `json:"timezone"`
	BufferMinutes      int                 `json:"buffer_minutes"`
	MinNoticeHours     int                 `json:"min_notice_hours"`
	MaxDaysAhead       int                 `json:"max_days_ahead"`
	BusinessHours      []BusinessHourEntry `json:"business_hours"`
	BlockedDates       []string            `json:"blocked_dates,omitempty"`
	NotificationEmails []string            `json:"notification_emails,omitempty"`
	NotificationPhones []string            `json:"notification_phones,omitempty"`
}

// IsZero reports whether no settings were ever configured for a site.
func (s Settings) IsZero() bool {
	return s.Timezone == "" && len(s.BusinessHours) == 0
}

// HoursFor returns the business-hour entry for a weekday name such as
// "Monday", or false when no entry exists.
func (s Settings) HoursFor(day string) (BusinessHourEntry, bool) {
	for _, entry := range s.BusinessHours {
		if strings.EqualFold(entry.Day, day) {
			return entry, true
		}
	}

	return BusinessHourEntry{}, false
}

// IsBlocked reports whether a "2006-01-02" date is admin-blocked.
func (s Settings) IsBlocked(date string) bool {
	for _, blocked := range s.BlockedDates {
		if blocked == date {
			return true
		}
	}

	return false
}

// BookingRecord is a persisted appointment. Date and Time are wall-clock
// values in the site's timezone; DurationMinutes snapshots the service
// duration at booking time so later catalog edits don't shift history.
type BookingRecord struct {
	ID              string    `json:"id"`
	SiteID          string    `json:"site_id"`
	ServiceID       string    `json:"service_id"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"duration_minutes"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	Note            string    `json:"note,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsCancelled reports whether the booking no longer occupies its slot.
func (b BookingRecord) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// NormalizeEmail lowers and trims an email for ownership comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone strips everything but digits so formatting differences
// ("+1 (555) 010-2000" vs "15550102000") don't break lookups.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
