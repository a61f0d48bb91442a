package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joaovbleite/SWEEPLYFINAL-sub000/internal/agenda"
	"github.com/joaovbleite/SWEEPLYFINAL-sub000/internal/carousel"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ItemSource supplies the timed items for one date. The store implements it;
// tests use fakes.
type ItemSource interface {
	Appointments(date time.Time) ([]agenda.TimedItem, error)
	Tasks(date time.Time) ([]agenda.TimedItem, error)
}

// Watcher periodically recomputes the day layout for the selected date so the
// now marker stays current. Ticks never touch the week window or the
// selection; they only refresh the rendered layout.
type Watcher struct {
	controller *carousel.Controller
	layouter   *agenda.Layouter
	source     ItemSource
	schedule   string
	onTick     func(agenda.DayLayout)
	logger     *zap.Logger
}

// NewWatcher creates a watcher. schedule is a cron spec; the default once-a-
// minute tick is "* * * * *". onTick receives every recomputed layout.
func NewWatcher(
	controller *carousel.Controller,
	layouter *agenda.Layouter,
	source ItemSource,
	schedule string,
	onTick func(agenda.DayLayout),
	logger *zap.Logger,
) *Watcher {
	return &Watcher{
		controller: controller,
		layouter:   layouter,
		source:     source,
		schedule:   schedule,
		onTick:     onTick,
		logger:     logger,
	}
}

// Run ticks once immediately, then on the cron schedule until the context is
// canceled or a termination signal arrives
func (w *Watcher) Run(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(w.schedule, w.Tick); err != nil {
		return fmt.Errorf("failed to schedule tick: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	w.logger.Info("Watcher started", zap.String("schedule", w.schedule))
	w.Tick()
	c.Start()
	defer c.Stop()

	select {
	case <-ctx.Done():
		w.logger.Info("Watcher stopped")
		return nil
	case sig := <-sigChan:
		w.logger.Info("Received signal, shutting down",
			zap.String("signal", sig.String()))
		return nil
	}
}

// Tick recomputes the layout for the currently selected date
func (w *Watcher) Tick() {
	sel := w.controller.Selection()
	now := time.Now()

	appointments, err := w.source.Appointments(sel.Date)
	if err != nil {
		w.logger.Error("Failed to load appointments", zap.Error(err))
		return
	}
	tasks, err := w.source.Tasks(sel.Date)
	if err != nil {
		w.logger.Error("Failed to load tasks", zap.Error(err))
		return
	}

	layout := w.layouter.Layout(sel.Date, appointments, tasks, now)
	if w.onTick != nil {
		w.onTick(layout)
	}
}
