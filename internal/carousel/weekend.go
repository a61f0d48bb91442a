package carousel

import (
	"github.com/joaovbleite/SWEEPLYFINAL-sub000/internal/calendar"
	"github.com/joaovbleite/SWEEPLYFINAL-sub000/pkg/dateutil"
)

// NearestWeekday returns the offset of the closest non-weekend day in the
// week when the selected offset falls on a weekend, or the offset unchanged
// otherwise.
//
// The search moves outward from the selection, checking the forward offset
// before the backward one at each distance, wrapping within the seven-day
// week. A week with no weekday at all (impossible for a standard week, but
// handled) yields the fallback offset.
func NearestWeekday(week calendar.WeekRecord, offset, fallback int) int {
	if !dateutil.IsWeekend(week.Dates[offset]) {
		return offset
	}

	for dist := 1; dist < calendar.DaysPerWeek; dist++ {
		fwd := (offset + dist) % calendar.DaysPerWeek
		if !dateutil.IsWeekend(week.Dates[fwd]) {
			return fwd
		}
		bwd := (offset - dist + calendar.DaysPerWeek) % calendar.DaysPerWeek
		if !dateutil.IsWeekend(week.Dates[bwd]) {
			return bwd
		}
	}

	return fallback
}
