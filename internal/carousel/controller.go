package carousel

import (
	"fmt"
	"time"

	"github.com/joaovbleite/SWEEPLYFINAL-sub000/internal/calendar"
	"github.com/joaovbleite/SWEEPLYFINAL-sub000/internal/config"
	"github.com/joaovbleite/SWEEPLYFINAL-sub000/pkg/dateutil"
	"go.uber.org/zap"
)

// Controller is the single owner of the week window and the selection. All
// mutations run to completion before the next event, so no locking is needed
// beyond event ordering in the host.
type Controller struct {
	math         calendar.Math
	preload      int
	maxWeeks     int
	showWeekends bool
	window       Window
	selection    Selection
	logger       *zap.Logger
}

// New creates a controller from configuration. Initialize must be called
// before any navigation.
func New(cfg *config.Config, logger *zap.Logger) *Controller {
	return &Controller{
		math:         calendar.NewMath(cfg.Calendar.Weekday()),
		preload:      cfg.Carousel.PreloadWeeks,
		maxWeeks:     cfg.Carousel.MaxWeeks,
		showWeekends: cfg.Calendar.ShowWeekends,
		logger:       logger,
	}
}

// Initialize builds the window around today's week and selects today
func (c *Controller) Initialize(today time.Time) {
	c.rebuildAround(dateutil.StartOfDay(today))

	c.logger.Info("Week window initialized",
		zap.Time("today", today),
		zap.Int("weeks", len(c.window.Weeks)),
		zap.Int("active_index", c.window.ActiveIndex))
}

// rebuildAround replaces the window with preload weeks centered on the week
// containing the date, and selects the date itself.
func (c *Controller) rebuildAround(date time.Time) {
	half := c.preload / 2
	center := c.math.WeekContaining(date)

	weeks := make([]calendar.WeekRecord, 0, c.preload)
	for i := -half; i <= half; i++ {
		start := dateutil.AddDays(center.StartDate, i*calendar.DaysPerWeek)
		weeks = append(weeks, c.math.WeekContaining(start))
	}

	c.window = Window{Weeks: weeks, ActiveIndex: half}
	c.selection = Selection{
		Date:      date,
		WeekIndex: half,
		DayOffset: c.math.WeekdayOffset(date),
	}
}

// ActiveWeek returns the week the user is currently viewing
func (c *Controller) ActiveWeek() calendar.WeekRecord {
	return c.window.Active()
}

// Selection returns the current selection state
func (c *Controller) Selection() Selection {
	return c.selection
}

// Weeks returns a copy of the loaded weeks, oldest first
func (c *Controller) Weeks() []calendar.WeekRecord {
	out := make([]calendar.WeekRecord, len(c.window.Weeks))
	copy(out, c.window.Weeks)
	return out
}

// WeekendsVisible reports the current weekend-visibility toggle
func (c *Controller) WeekendsVisible() bool {
	return c.showWeekends
}

// GoTo moves the active pointer to the given index. Out-of-bounds indices are
// ignored; callers must extend the window first.
func (c *Controller) GoTo(index int) {
	if index < 0 || index >= len(c.window.Weeks) {
		c.logger.Debug("GoTo outside window ignored",
			zap.Int("index", index),
			zap.Int("weeks", len(c.window.Weeks)))
		return
	}
	c.window.ActiveIndex = index
}

// NavigateWeek moves the active week by one step and keeps the selection on
// the same day offset in the new week. Reaching either boundary extends the
// window so one week of slack always remains on the approached edge.
func (c *Controller) NavigateWeek(delta int) error {
	if delta != -1 && delta != 1 {
		return fmt.Errorf("week navigation delta must be -1 or +1, got %d", delta)
	}

	idx := c.window.ActiveIndex + delta
	if idx < 0 || idx >= len(c.window.Weeks) {
		// Slack maintenance below makes this unreachable in normal use.
		return fmt.Errorf("week index %d outside window of %d weeks", idx, len(c.window.Weeks))
	}
	c.window.ActiveIndex = idx
	c.ensureSlack()

	c.selectOffsetInActiveWeek(c.selection.DayOffset)
	return nil
}

// ensureSlack extends the window whenever the active pointer sits on either
// edge, so one week of slack always remains in the direction the user is
// heading. extendHead shifts the active pointer to 1, which both preserves
// the active week's identity and restores the slack week.
func (c *Controller) ensureSlack() {
	if c.window.ActiveIndex == len(c.window.Weeks)-1 {
		c.extendTail()
	}
	if c.window.ActiveIndex == 0 {
		c.extendHead()
	}
}

// SelectDay selects the day at the given offset of the given loaded week
func (c *Controller) SelectDay(weekIndex, dayOffset int) error {
	if weekIndex < 0 || weekIndex >= len(c.window.Weeks) {
		return fmt.Errorf("week index %d outside window of %d weeks", weekIndex, len(c.window.Weeks))
	}
	if dayOffset < 0 || dayOffset >= calendar.DaysPerWeek {
		return fmt.Errorf("day offset %d outside week", dayOffset)
	}

	c.window.ActiveIndex = weekIndex
	c.selectOffsetInActiveWeek(dayOffset)
	c.ensureSlack()
	return nil
}

// JumpToMonthDay selects an arbitrary date, typically from a month-grid tap.
// Dates outside the loaded span rebuild the window around the target week.
func (c *Controller) JumpToMonthDay(date time.Time) {
	d := dateutil.StartOfDay(date)

	idx, ok := c.window.indexOfWeekContaining(d)
	if !ok {
		c.logger.Info("Jump target outside loaded weeks, rebuilding window",
			zap.Time("date", d))
		c.rebuildAround(d)
		return
	}

	c.window.ActiveIndex = idx
	c.selection = Selection{
		Date:      d,
		WeekIndex: idx,
		DayOffset: c.math.WeekdayOffset(d),
	}
	c.ensureSlack()
}

// SetWeekendVisibility flips the weekend toggle. Hiding weekends moves a
// weekend selection to the nearest weekday once; re-enabling never moves it.
func (c *Controller) SetWeekendVisibility(show bool) {
	if c.showWeekends == show {
		return
	}
	c.showWeekends = show
	if show {
		return
	}

	week := c.window.Active()
	resolved := NearestWeekday(week, c.selection.DayOffset, c.mondayOffset())
	if resolved != c.selection.DayOffset {
		c.logger.Info("Selection moved off hidden weekend",
			zap.Time("from", week.Dates[c.selection.DayOffset]),
			zap.Time("to", week.Dates[resolved]))
		c.selectOffsetInActiveWeek(resolved)
	}
}

// Reconcile re-derives the selection indices from the selected date after an
// external mutation. The selection is never cleared; a date that left the
// loaded span rebuilds the window around it.
func (c *Controller) Reconcile() {
	idx, ok := c.window.indexOfWeekContaining(c.selection.Date)
	if ok {
		off := c.math.WeekdayOffset(c.selection.Date)
		if idx == c.selection.WeekIndex && off == c.selection.DayOffset {
			c.ensureSlack()
			return
		}
		c.logger.Warn("Selection desynced from window, re-derived",
			zap.Time("date", c.selection.Date),
			zap.Int("week_index", idx),
			zap.Int("day_offset", off))
		c.selection.WeekIndex = idx
		c.selection.DayOffset = off
		c.window.ActiveIndex = idx
		c.ensureSlack()
		return
	}

	c.logger.Warn("Selected date left loaded span, rebuilding window",
		zap.Time("date", c.selection.Date))
	c.rebuildAround(c.selection.Date)
}

func (c *Controller) selectOffsetInActiveWeek(dayOffset int) {
	c.selection = Selection{
		Date:      c.window.Active().Dates[dayOffset],
		WeekIndex: c.window.ActiveIndex,
		DayOffset: dayOffset,
	}
}

// extendTail appends the week after the last loaded one. Repeated calls
// before navigation settles are de-duplicated by start date.
func (c *Controller) extendTail() {
	last := c.window.Weeks[len(c.window.Weeks)-1]
	start := dateutil.AddDays(last.StartDate, calendar.DaysPerWeek)
	if _, exists := c.window.indexOfStart(start); exists {
		return
	}

	c.window.Weeks = append(c.window.Weeks, c.math.WeekContaining(start))
	c.logger.Debug("Window extended at tail",
		zap.Time("start_date", start),
		zap.Int("weeks", len(c.window.Weeks)))
	c.enforceCap()
}

// extendHead prepends the week before the first loaded one and shifts the
// active pointer and selection index so the visible week never changes.
func (c *Controller) extendHead() {
	first := c.window.Weeks[0]
	start := dateutil.AddDays(first.StartDate, -calendar.DaysPerWeek)
	if _, exists := c.window.indexOfStart(start); exists {
		return
	}

	c.window.Weeks = append([]calendar.WeekRecord{c.math.WeekContaining(start)}, c.window.Weeks...)
	c.window.ActiveIndex++
	c.selection.WeekIndex++
	c.logger.Debug("Window extended at head",
		zap.Time("start_date", start),
		zap.Int("weeks", len(c.window.Weeks)))
	c.enforceCap()
}

// enforceCap evicts the week farthest from the active one whenever the window
// exceeds the configured cap. A cap of zero keeps the original unbounded
// behavior.
func (c *Controller) enforceCap() {
	if c.maxWeeks <= 0 {
		return
	}

	for len(c.window.Weeks) > c.maxWeeks {
		headDist := c.window.ActiveIndex
		tailDist := len(c.window.Weeks) - 1 - c.window.ActiveIndex

		if headDist >= tailDist {
			c.window.Weeks = c.window.Weeks[1:]
			c.window.ActiveIndex--
			if c.selection.WeekIndex > 0 {
				c.selection.WeekIndex--
			}
		} else {
			c.window.Weeks = c.window.Weeks[:len(c.window.Weeks)-1]
		}

		c.logger.Debug("Window capped, evicted farthest week",
			zap.Int("weeks", len(c.window.Weeks)),
			zap.Int("active_index", c.window.ActiveIndex))
	}

	if c.selection.WeekIndex >= len(c.window.Weeks) ||
		!c.window.Weeks[c.selection.WeekIndex].Contains(c.selection.Date) {
		c.Reconcile()
	}
}

// mondayOffset is the fallback offset for the weekend resolver
func (c *Controller) mondayOffset() int {
	return (int(time.Monday) - int(c.math.FirstDay()) + 7) % 7
}
