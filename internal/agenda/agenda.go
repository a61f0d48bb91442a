package agenda

import (
	"time"

	"github.com/joaovbleite/SWEEPLYFINAL-sub000/pkg/dateutil"
	"go.uber.org/zap"
)

// ItemKind distinguishes the two sources of timed items
type ItemKind int

const (
	KindAppointment ItemKind = iota + 1
	KindTask
)

// TimedItem is one schedulable entry supplied by an external collaborator
// (appointment or task store). The layout never mutates items.
type TimedItem struct {
	ID         string
	Date       time.Time
	StartLabel string // canonical hour label ("9 AM"); empty means unscheduled
	AllDay     bool
	Kind       ItemKind
	Color      string
	Priority   string
	Title      string
	Subtitle   string
}

// HourBucket holds the items assigned to one hour slot and the vertical space
// the slot needs
type HourBucket struct {
	Hour        int
	Items       []TimedItem
	HeightUnits float64
}

// NowMarker is the position of the current-time indicator within the day view
type NowMarker struct {
	Hour     int
	Fraction float64 // minutes past the hour / 60, in [0, 1)
}

// DayLayout is the renderable agenda for a single date
type DayLayout struct {
	Date      time.Time
	AllDay    []TimedItem
	Hours     [HoursPerDay]HourBucket
	NowMarker *NowMarker
	Dropped   int // items whose start label was not a canonical hour
}

// Units are the layout height constants. A bucket takes Base units for zero
// or one items and grows by Increment for each additional item so stacked
// entries never clip.
type Units struct {
	Base      float64
	Increment float64
}

// HeightUnits returns the height for a bucket holding n items
func (u Units) HeightUnits(n int) float64 {
	if n <= 1 {
		return u.Base
	}
	return u.Base + float64(n-1)*u.Increment
}

// Layouter builds day layouts with fixed height units
type Layouter struct {
	units  Units
	logger *zap.Logger
}

// NewLayouter creates a layouter with the given height units
func NewLayouter(units Units, logger *zap.Logger) *Layouter {
	return &Layouter{
		units:  units,
		logger: logger,
	}
}

// Layout buckets the given items into hour slots for one date.
//
// All-day items go to AllDay. Timed items land in the bucket matching their
// start label. Within a bucket appointments come before tasks, otherwise
// source order is preserved. Items with an unparseable start label are
// dropped from the hour grid and counted, never failed on. The now marker is
// set only when the date is today.
func (l *Layouter) Layout(date time.Time, appointments, tasks []TimedItem, now time.Time) DayLayout {
	layout := DayLayout{Date: dateutil.StartOfDay(date)}
	for hour := range layout.Hours {
		layout.Hours[hour].Hour = hour
	}

	// Appointments first keeps the within-bucket ordering stable across
	// both sources.
	l.place(&layout, appointments)
	l.place(&layout, tasks)

	for hour := range layout.Hours {
		layout.Hours[hour].HeightUnits = l.units.HeightUnits(len(layout.Hours[hour].Items))
	}

	if dateutil.IsSameDay(date, now) {
		layout.NowMarker = &NowMarker{
			Hour:     now.Hour(),
			Fraction: float64(now.Minute()) / 60.0,
		}
	}

	return layout
}

func (l *Layouter) place(layout *DayLayout, items []TimedItem) {
	for _, item := range items {
		if !dateutil.IsSameDay(item.Date, layout.Date) {
			continue
		}

		if item.AllDay {
			layout.AllDay = append(layout.AllDay, item)
			continue
		}

		hour, ok := HourIndex(item.StartLabel)
		if !ok {
			layout.Dropped++
			l.logger.Debug("Item has no canonical start hour, excluded from grid",
				zap.String("id", item.ID),
				zap.String("start_label", item.StartLabel))
			continue
		}

		layout.Hours[hour].Items = append(layout.Hours[hour].Items, item)
	}
}
