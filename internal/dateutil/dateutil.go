package dateutil

import (
	"fmt"
	"time"
)

const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	ClockFormat = "15:04"      // HH:MM
)

// FormatDate renders a date as YYYY-MM-DD from its local components.
// Never serialize through UTC here: west of UTC that shifts the string
// to the previous day around midnight.
func FormatDate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// ParseDate parses a YYYY-MM-DD string as midnight local time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.Local)
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return FormatDate(a) == FormatDate(b)
}

// NormalizeClock truncates HH:MM:SS to HH:MM so stored times compare
// loosely against slot times. If slots ever get sub-minute granularity
// this truncation merges distinct slots.
func NormalizeClock(s string) string {
	if len(s) > 5 && s[2] == ':' {
		return s[:5]
	}
	return s
}

// ValidClock reports whether s parses as HH:MM.
func ValidClock(s string) bool {
	_, err := time.Parse(ClockFormat, NormalizeClock(s))
	return err == nil
}

// SlotInstant combines a calendar day with an HH:MM clock value.
func SlotInstant(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(ClockFormat, NormalizeClock(clock))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), nil
}

// MonthGrid returns the 42 days shown for ref's month: a fixed 6x7 grid
// starting on the Sunday on or before the 1st, so lead and trail days of
// the adjacent months always tile the view.
func MonthGrid(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]time.Time, 0, 42)
	for i := 0; i < 42; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// WeekDays returns the Sunday-through-Saturday week containing ref.
func WeekDays(ref time.Time) []time.Time {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	start = start.AddDate(0, 0, -int(start.Weekday()))

	days := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}
