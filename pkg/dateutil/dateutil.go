package dateutil

import "time"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// WeekdayOffset returns the 0-6 position of the date's weekday within a week
// that starts on firstDay. Offset 0 is firstDay itself.
func WeekdayOffset(date time.Time, firstDay time.Weekday) int {
	return (int(date.Weekday()) - int(firstDay) + 7) % 7
}

// StartOfWeek returns the first day of the calendar week containing the given
// date, under the firstDay convention
func StartOfWeek(date time.Time, firstDay time.Weekday) time.Time {
	return StartOfDay(date.AddDate(0, 0, -WeekdayOffset(date, firstDay)))
}

// AddDays adds n calendar days to the date, keeping it normalized to the start
// of the day. No daylight-saving or time-zone adjustment is performed.
func AddDays(date time.Time, n int) time.Time {
	return StartOfDay(date.AddDate(0, 0, n))
}

// AddMonths adds n months to the date with year carry, normalized to the start
// of the day
func AddMonths(date time.Time, n int) time.Time {
	return StartOfDay(date.AddDate(0, n, 0))
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate parses a date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
	}

	var lastErr error
	for _, format := range formats {
		t, err := time.Parse(format, dateStr)
		if err == nil {
			return StartOfDay(t), nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
