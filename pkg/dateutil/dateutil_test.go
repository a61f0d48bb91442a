package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 7, 9, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestWeekdayOffset(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		firstDay time.Weekday
		want     int
	}{
		{
			name:     "Sunday under Sunday-first is 0",
			input:    time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
			firstDay: time.Sunday,
			want:     0,
		},
		{
			name:     "Wednesday under Sunday-first is 3",
			input:    time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC),
			firstDay: time.Sunday,
			want:     3,
		},
		{
			name:     "Saturday under Sunday-first is 6",
			input:    time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
			firstDay: time.Sunday,
			want:     6,
		},
		{
			name:     "Sunday under Monday-first is 6",
			input:    time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
			firstDay: time.Monday,
			want:     6,
		},
		{
			name:     "Monday under Monday-first is 0",
			input:    time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC),
			firstDay: time.Monday,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WeekdayOffset(tt.input, tt.firstDay)

			if result != tt.want {
				t.Errorf("WeekdayOffset(%v, %v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), tt.firstDay, result, tt.want)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		firstDay time.Weekday
		expected time.Time
	}{
		{
			name:     "Wednesday returns preceding Sunday",
			input:    time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC), // Wednesday
			firstDay: time.Sunday,
			expected: time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Sunday returns same Sunday",
			input:    time.Date(2025, 7, 6, 12, 0, 0, 0, time.UTC),
			firstDay: time.Sunday,
			expected: time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Saturday returns Sunday six days back",
			input:    time.Date(2025, 7, 12, 12, 0, 0, 0, time.UTC),
			firstDay: time.Sunday,
			expected: time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Wednesday under Monday-first returns Monday",
			input:    time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC),
			firstDay: time.Monday,
			expected: time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StartOfWeek(tt.input, tt.firstDay)

			if !result.Equal(tt.expected) {
				t.Errorf("StartOfWeek(%v, %v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), tt.firstDay,
					result.Format("2006-01-02 Mon"),
					tt.expected.Format("2006-01-02 Mon"))
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		days     int
		expected time.Time
	}{
		{
			name:     "Forward across month boundary",
			input:    time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC),
			days:     3,
			expected: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Backward across year boundary",
			input:    time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			days:     -5,
			expected: time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Zero days normalizes to start of day",
			input:    time.Date(2025, 1, 15, 18, 30, 0, 0, time.UTC),
			days:     0,
			expected: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AddDays(tt.input, tt.days)

			if !result.Equal(tt.expected) {
				t.Errorf("AddDays(%v, %d) = %v, want %v", tt.input, tt.days, result, tt.expected)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "Forward across year boundary",
			input:    time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
			months:   3,
			expected: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Backward across year boundary",
			input:    time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
			months:   -3,
			expected: time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AddMonths(tt.input, tt.months)

			if !result.Equal(tt.expected) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.input, tt.months, result, tt.expected)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Saturday is weekend", time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC), true},
		{"Sunday is weekend", time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC), true},
		{"Monday is not weekend", time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC), false},
		{"Friday is not weekend", time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		name  string
		date1 time.Time
		date2 time.Time
		want  bool
	}{
		{
			"Same date different time",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC),
			true,
		},
		{
			"Different date",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsSameDay(tt.date1, tt.date2)

			if result != tt.want {
				t.Errorf("IsSameDay(%v, %v) = %v, want %v",
					tt.date1, tt.date2, result, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{"February 2025", 2025, time.February, 28},
		{"February 2024 leap year", 2024, time.February, 29},
		{"July", 2025, time.July, 31},
		{"April", 2025, time.April, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DaysInMonth(tt.year, tt.month)

			if result != tt.want {
				t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, result, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"ISO format YYYY-MM-DD",
			"2025-01-15",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"European format DD.MM.YYYY",
			"15.01.2025",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"ISO with time normalizes to start of day",
			"2025-01-15T10:30:00",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Garbage",
			"not-a-date",
			time.Time{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}
