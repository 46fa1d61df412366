package usecase

import (
	"fmt"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey returns the canonical YYYY-MM-DD form of a date. Two times fall on
// the same calendar day iff their day keys are equal. Day keys compare
// chronologically as plain strings.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a canonical day key back into a date.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(dayKeyLayout, key)
}

// DaysAgo subtracts n calendar days.
func DaysAgo(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, -n)
}

// WindowDates returns the day keys of the trailing window of `days` days
// ending at today, oldest first, inclusive of today.
func WindowDates(today time.Time, days int) []string {
	keys := make([]string, 0, days)
	for i := days - 1; i >= 0; i-- {
		keys = append(keys, DayKey(DaysAgo(today, i)))
	}
	return keys
}

// WeekWindow is one 7-day aggregation window, inclusive on both ends.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// WeekWindows returns the trailing `weeks` calendar weeks ending with the week
// containing today, oldest first. Windows are aligned to weekStart; the UI
// charts use Sunday.
func WeekWindows(today time.Time, weeks int, weekStart time.Weekday) []WeekWindow {
	offset := (int(today.Weekday()) - int(weekStart) + 7) % 7
	currentWeek := DaysAgo(today, offset)

	windows := make([]WeekWindow, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		start := DaysAgo(currentWeek, i*7)
		windows = append(windows, WeekWindow{Start: start, End: start.AddDate(0, 0, 6)})
	}
	return windows
}

// WeekdayShort returns the three-letter weekday label used by the daily chart.
func WeekdayShort(t time.Time) string {
	return t.Weekday().String()[:3]
}

// HourLabel formats an hour-of-day bucket as HH:00.
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
