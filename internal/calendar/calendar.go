package calendar

import (
	"time"

	"github.com/joaovbleite/SWEEPLYFINAL-sub000/pkg/dateutil"
)

// GridCells is the fixed size of a month grid: 6 rows of 7 columns, so the
// layout never changes height with month length or leading-day offset.
const GridCells = 42

// DaysPerWeek is the length of every WeekRecord.
const DaysPerWeek = 7

// DayCell is one cell of a rendered month grid
type DayCell struct {
	DayNumber int
	InMonth   bool // false for leading/trailing cells of adjacent months
	Date      time.Time
	HasMarker bool
}

// WeekRecord is one week of the carousel: seven consecutive dates starting at
// StartDate
type WeekRecord struct {
	StartDate  time.Time
	Dates      [DaysPerWeek]time.Time
	DayNumbers [DaysPerWeek]int
	MonthLabel string
	Year       int
}

// Contains reports whether the date falls within the week
func (w WeekRecord) Contains(date time.Time) bool {
	for _, d := range w.Dates {
		if dateutil.IsSameDay(d, date) {
			return true
		}
	}
	return false
}

// MarkerPredicate reports whether a date should carry a marker dot in the
// month grid (e.g. because an appointment or task exists on it)
type MarkerPredicate func(date time.Time) bool

// Math generates date grids under a fixed first-day-of-week convention.
// It is stateless; all methods are pure.
type Math struct {
	firstDay time.Weekday
}

// NewMath creates calendar math for the given first day of the week
func NewMath(firstDay time.Weekday) Math {
	return Math{firstDay: firstDay}
}

// FirstDay returns the configured first day of the week
func (m Math) FirstDay() time.Weekday {
	return m.firstDay
}

// MonthGrid returns exactly GridCells cells for the given month: leading cells
// from the previous month, the month's own days, then trailing cells from the
// next month. Dates increase strictly by one day across the slice.
func (m Math) MonthGrid(year int, month time.Month, marker MarkerPredicate) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := dateutil.WeekdayOffset(first, m.firstDay)

	cells := make([]DayCell, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		date := dateutil.AddDays(first, i-lead)
		inMonth := date.Month() == month && date.Year() == year
		cells = append(cells, DayCell{
			DayNumber: date.Day(),
			InMonth:   inMonth,
			Date:      date,
			HasMarker: inMonth && marker != nil && marker(date),
		})
	}
	return cells
}

// WeekContaining returns the week record whose span includes the given date
func (m Math) WeekContaining(date time.Time) WeekRecord {
	start := dateutil.StartOfWeek(date, m.firstDay)

	w := WeekRecord{
		StartDate:  start,
		MonthLabel: start.Month().String(),
		Year:       start.Year(),
	}
	for i := 0; i < DaysPerWeek; i++ {
		d := dateutil.AddDays(start, i)
		w.Dates[i] = d
		w.DayNumbers[i] = d.Day()
	}
	return w
}

// WeekdayOffset returns the 0-6 position of the date within its week under
// the configured convention
func (m Math) WeekdayOffset(date time.Time) int {
	return dateutil.WeekdayOffset(date, m.firstDay)
}

// ShiftMonth adds delta months to (year, month) with year carry in both
// directions
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	shifted := dateutil.AddMonths(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), delta)
	return shifted.Year(), shifted.Month()
}
