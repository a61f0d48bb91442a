package calendar

import (
	"testing"
	"time"
)

func TestMonthGrid_February2025(t *testing.T) {
	// February 2025 has 28 days and starts on a Saturday. Under the
	// Sunday-first convention the grid is 6 January cells, 28 February
	// cells, then 8 March cells of padding.
	m := NewMath(time.Sunday)
	cells := m.MonthGrid(2025, time.February, nil)

	if len(cells) != GridCells {
		t.Fatalf("MonthGrid() returned %d cells, want %d", len(cells), GridCells)
	}

	for i := 0; i < 6; i++ {
		if cells[i].InMonth {
			t.Errorf("cell %d (%v) should belong to January", i, cells[i].Date)
		}
	}
	for i := 6; i < 34; i++ {
		if !cells[i].InMonth {
			t.Errorf("cell %d (%v) should belong to February", i, cells[i].Date)
		}
	}
	for i := 34; i < GridCells; i++ {
		if cells[i].InMonth {
			t.Errorf("cell %d (%v) should belong to March", i, cells[i].Date)
		}
	}

	if cells[6].DayNumber != 1 {
		t.Errorf("first February cell has day number %d, want 1", cells[6].DayNumber)
	}
	if cells[33].DayNumber != 28 {
		t.Errorf("last February cell has day number %d, want 28", cells[33].DayNumber)
	}
}

func TestMonthGrid_AlwaysFortyTwoIncreasingCells(t *testing.T) {
	m := NewMath(time.Sunday)

	for year := 2024; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			cells := m.MonthGrid(year, month, nil)

			if len(cells) != GridCells {
				t.Fatalf("MonthGrid(%d, %v) returned %d cells, want %d",
					year, month, len(cells), GridCells)
			}

			for i := 1; i < len(cells); i++ {
				want := cells[i-1].Date.AddDate(0, 0, 1)
				if !cells[i].Date.Equal(want) {
					t.Fatalf("MonthGrid(%d, %v) cell %d date %v, want %v",
						year, month, i, cells[i].Date, want)
				}
			}
		}
	}
}

func TestMonthGrid_Markers(t *testing.T) {
	m := NewMath(time.Sunday)
	marked := time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC)

	cells := m.MonthGrid(2025, time.July, func(date time.Time) bool {
		return date.Equal(marked)
	})

	markerCount := 0
	for _, c := range cells {
		if c.HasMarker {
			markerCount++
			if !c.Date.Equal(marked) {
				t.Errorf("unexpected marker on %v", c.Date)
			}
			if !c.InMonth {
				t.Errorf("marker set on out-of-month cell %v", c.Date)
			}
		}
	}

	if markerCount != 1 {
		t.Errorf("marker count = %d, want 1", markerCount)
	}
}

func TestWeekContaining(t *testing.T) {
	tests := []struct {
		name      string
		firstDay  time.Weekday
		input     time.Time
		wantStart time.Time
	}{
		{
			name:      "Wednesday Sunday-first",
			firstDay:  time.Sunday,
			input:     time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Week start date itself",
			firstDay:  time.Sunday,
			input:     time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Year boundary week",
			firstDay:  time.Sunday,
			input:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Monday-first convention",
			firstDay:  time.Monday,
			input:     time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC), // Sunday
			wantStart: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMath(tt.firstDay)
			w := m.WeekContaining(tt.input)

			if !w.StartDate.Equal(tt.wantStart) {
				t.Errorf("StartDate = %v, want %v", w.StartDate, tt.wantStart)
			}
			if !w.Dates[0].Equal(w.StartDate) {
				t.Errorf("Dates[0] = %v, want StartDate %v", w.Dates[0], w.StartDate)
			}
			for i := 1; i < DaysPerWeek; i++ {
				want := w.StartDate.AddDate(0, 0, i)
				if !w.Dates[i].Equal(want) {
					t.Errorf("Dates[%d] = %v, want %v", i, w.Dates[i], want)
				}
				if w.DayNumbers[i] != want.Day() {
					t.Errorf("DayNumbers[%d] = %d, want %d", i, w.DayNumbers[i], want.Day())
				}
			}

			// The week must bracket its argument.
			if tt.input.Before(w.Dates[0]) || tt.input.After(w.Dates[6].AddDate(0, 0, 1)) {
				t.Errorf("week [%v, %v] does not contain %v", w.Dates[0], w.Dates[6], tt.input)
			}
			if !w.Contains(tt.input) {
				t.Errorf("Contains(%v) = false, want true", tt.input)
			}
		})
	}
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		delta     int
		wantYear  int
		wantMonth time.Month
	}{
		{"Forward within year", 2025, time.March, 2, 2025, time.May},
		{"Forward across year", 2025, time.December, 1, 2026, time.January},
		{"Backward across year", 2025, time.January, -1, 2024, time.December},
		{"Multi-year jump", 2025, time.June, 19, 2027, time.January},
		{"Backward multi-year", 2025, time.February, -14, 2023, time.December},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month := ShiftMonth(tt.year, tt.month, tt.delta)

			if year != tt.wantYear || month != tt.wantMonth {
				t.Errorf("ShiftMonth(%d, %v, %d) = (%d, %v), want (%d, %v)",
					tt.year, tt.month, tt.delta, year, month, tt.wantYear, tt.wantMonth)
			}
		})
	}
}
