package carousel

import (
	"time"

	"github.com/joaovbleite/SWEEPLYFINAL-sub000/internal/calendar"
	"github.com/joaovbleite/SWEEPLYFINAL-sub000/pkg/dateutil"
)

// Window is the growable in-memory sequence of week records backing swipe
// navigation. Weeks are sorted ascending by StartDate, contiguous by seven-day
// steps, and duplicate-free; ActiveIndex always points inside the slice.
type Window struct {
	Weeks       []calendar.WeekRecord
	ActiveIndex int
}

// Selection is the currently selected day. The date always equals
// Weeks[WeekIndex].Dates[DayOffset].
type Selection struct {
	Date      time.Time
	WeekIndex int
	DayOffset int
}

// Active returns the week the user is currently viewing
func (w *Window) Active() calendar.WeekRecord {
	return w.Weeks[w.ActiveIndex]
}

// indexOfStart returns the position of the week starting on the given date
func (w *Window) indexOfStart(start time.Time) (int, bool) {
	for i, wk := range w.Weeks {
		if dateutil.IsSameDay(wk.StartDate, start) {
			return i, true
		}
	}
	return 0, false
}

// indexOfWeekContaining returns the position of the week that spans the date
func (w *Window) indexOfWeekContaining(date time.Time) (int, bool) {
	for i, wk := range w.Weeks {
		if wk.Contains(date) {
			return i, true
		}
	}
	return 0, false
}

// Contiguous reports whether every adjacent pair of weeks is exactly seven
// days apart
func (w *Window) Contiguous() bool {
	for i := 1; i < len(w.Weeks); i++ {
		want := dateutil.AddDays(w.Weeks[i-1].StartDate, calendar.DaysPerWeek)
		if !dateutil.IsSameDay(w.Weeks[i].StartDate, want) {
			return false
		}
	}
	return true
}
