package stats

import "time"

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last representable instant of t's UTC calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DayRange returns the closed interval covering d's UTC calendar day.
func DayRange(d time.Time) (time.Time, time.Time) {
	return StartOfDay(d), EndOfDay(d)
}

// TrailingWindow returns the lower bound of the interval [now - days, now].
// The window is inclusive of the bound and unbounded above, so records
// timestamped after now still fall inside it.
func TrailingWindow(now time.Time, days int) time.Time {
	return now.UTC().AddDate(0, 0, -days)
}
