// Package timezone is the single conversion boundary between wall-clock
// values as persisted (dates "2006-01-02" and clock times "15:04", always in
// a site's IANA timezone) and absolute instants (time.Time, used only for
// now/cutoff comparisons).
//
// Usage:
//
//	loc, err := timezone.Location(settings.Timezone)
//	start, err := timezone.At("2024-05-28", 9*60+30, loc) // 09:30 site-local
//	today := timezone.Midnight(time.Now().In(loc))
//
// Weekday resolution deliberately ignores every timezone: the date string
// alone determines the weekday, so a server running in UTC and one running
// in Asia/Jakarta resolve the same calendar day.
package timezone
