package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joaovbleite/SWEEPLYFINAL-sub000/internal/agenda"
	"github.com/joaovbleite/SWEEPLYFINAL-sub000/internal/calendar"
	"github.com/joaovbleite/SWEEPLYFINAL-sub000/internal/carousel"
	"github.com/joaovbleite/SWEEPLYFINAL-sub000/internal/config"
	"github.com/joaovbleite/SWEEPLYFINAL-sub000/internal/daemon"
	"github.com/joaovbleite/SWEEPLYFINAL-sub000/internal/store"
	"github.com/joaovbleite/SWEEPLYFINAL-sub000/pkg/dateutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "schedulectl",
		Short: "Schedule engine for the business calendar",
		Long:  "Month grids, the swipeable week carousel, and hour-by-hour day layouts backed by the local appointment and task store",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Watch.LogFile != "" {
				logger, err = initFileLogger(cfg.Watch.LogFile, cfg.Watch.LogLevel)
				if err != nil {
					initLogger()
				}
			} else {
				initLogger()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(monthCmd())
	rootCmd.AddCommand(weekCmd())
	rootCmd.AddCommand(dayCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func monthCmd() *cobra.Command {
	var shift int

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Print the 6x7 month grid with item markers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			today := dateutil.Today()
			year, month := today.Year(), today.Month()
			if len(args) == 1 {
				parsed, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("invalid month %q, want YYYY-MM: %w", args[0], err)
				}
				year, month = parsed.Year(), parsed.Month()
			}
			year, month = calendar.ShiftMonth(year, month, shift)

			s, err := store.Open(cfg.Store.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer s.Close()

			pred, err := s.MarkerPredicate(year, month)
			if err != nil {
				return fmt.Errorf("failed to load markers: %w", err)
			}

			math := calendar.NewMath(cfg.Calendar.Weekday())
			printMonthGrid(year, month, math, pred)
			return nil
		},
	}

	cmd.Flags().IntVar(&shift, "shift", 0, "Months to shift from the requested month")
	return cmd
}

func weekCmd() *cobra.Command {
	var forward, back int

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the active week of the carousel after navigation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			controller := carousel.New(cfg, logger)
			controller.Initialize(dateutil.Today())

			for i := 0; i < forward; i++ {
				if err := controller.NavigateWeek(1); err != nil {
					return err
				}
			}
			for i := 0; i < back; i++ {
				if err := controller.NavigateWeek(-1); err != nil {
					return err
				}
			}

			printWeek(controller)
			return nil
		},
	}

	cmd.Flags().IntVar(&forward, "forward", 0, "Weeks to navigate forward")
	cmd.Flags().IntVar(&back, "back", 0, "Weeks to navigate back")
	return cmd
}

func dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Print the hour-by-hour layout for a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			date := dateutil.Today()
			if len(args) == 1 {
				date, err = dateutil.ParseDate(args[0])
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", args[0], err)
				}
			}

			s, err := store.Open(cfg.Store.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer s.Close()

			appointments, err := s.Appointments(date)
			if err != nil {
				return err
			}
			tasks, err := s.Tasks(date)
			if err != nil {
				return err
			}

			layouter := agenda.NewLayouter(layoutUnits(cfg), logger)
			layout := layouter.Layout(date, appointments, tasks, time.Now())
			printDayLayout(layout)
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an appointment or task to the store",
	}
	cmd.AddCommand(addAppointmentCmd())
	cmd.AddCommand(addTaskCmd())
	return cmd
}

func addAppointmentCmd() *cobra.Command {
	var dateStr, start, end, client, location, color string

	cmd := &cobra.Command{
		Use:   "appointment",
		Short: "Add a client appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			date, err := dateutil.ParseDate(dateStr)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", dateStr, err)
			}
			if start != "" {
				if _, ok := agenda.HourIndex(start); !ok {
					return fmt.Errorf("start %q is not an hour label like \"9 AM\"", start)
				}
			}

			s, err := store.Open(cfg.Store.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer s.Close()

			id, err := s.AddAppointment(store.Appointment{
				Date:       date,
				StartLabel: start,
				EndLabel:   end,
				Color:      color,
				Client:     client,
				Location:   location,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added appointment %s on %s\n", id, date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start hour label, e.g. \"9 AM\"")
	cmd.Flags().StringVar(&end, "end", "", "End hour label")
	cmd.Flags().StringVar(&client, "client", "", "Client label")
	cmd.Flags().StringVar(&location, "location", "", "Location label")
	cmd.Flags().StringVar(&color, "color", "", "Display color")
	cmd.MarkFlagRequired("date")
	return cmd
}

func addTaskCmd() *cobra.Command {
	var dateStr, start, priority, title, assignee string
	var allDay bool

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			date, err := dateutil.ParseDate(dateStr)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", dateStr, err)
			}

			s, err := store.Open(cfg.Store.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer s.Close()

			id, err := s.AddTask(store.Task{
				Date:       date,
				StartLabel: start,
				AllDay:     allDay,
				Priority:   priority,
				Status:     "open",
				Assignee:   assignee,
				Title:      title,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added task %s on %s\n", id, date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start hour label, e.g. \"9 AM\"")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day task")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority label")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee label")
	cmd.MarkFlagRequired("date")
	return cmd
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-render today's layout once a minute so the now marker moves",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			s, err := store.Open(cfg.Store.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer s.Close()

			controller := carousel.New(cfg, logger)
			controller.Initialize(dateutil.Today())

			layouter := agenda.NewLayouter(layoutUnits(cfg), logger)
			watcher := daemon.NewWatcher(controller, layouter, s, cfg.Watch.TickCron, func(layout agenda.DayLayout) {
				printDayLayout(layout)
			}, logger)

			return watcher.Run(context.Background())
		},
	}
}

func layoutUnits(cfg *config.Config) agenda.Units {
	return agenda.Units{
		Base:      cfg.Layout.BaseUnits,
		Increment: cfg.Layout.IncrementUnits,
	}
}

func printMonthGrid(year int, month time.Month, math calendar.Math, pred calendar.MarkerPredicate) {
	fmt.Printf("%s %d\n", month, year)

	header := make([]string, 0, calendar.DaysPerWeek)
	for i := 0; i < calendar.DaysPerWeek; i++ {
		day := time.Weekday((int(math.FirstDay()) + i) % 7)
		header = append(header, day.String()[:2])
	}
	fmt.Println(strings.Join(header, "   "))

	cells := math.MonthGrid(year, month, pred)
	for row := 0; row < calendar.GridCells/calendar.DaysPerWeek; row++ {
		line := make([]string, 0, calendar.DaysPerWeek)
		for col := 0; col < calendar.DaysPerWeek; col++ {
			cell := cells[row*calendar.DaysPerWeek+col]
			text := fmt.Sprintf("%2d", cell.DayNumber)
			switch {
			case !cell.InMonth:
				text = "  ." // adjacent-month cells render dimmed
			case cell.HasMarker:
				text += "*"
			}
			line = append(line, fmt.Sprintf("%-4s", text))
		}
		fmt.Println(strings.TrimRight(strings.Join(line, " "), " "))
	}
}

func printWeek(controller *carousel.Controller) {
	week := controller.ActiveWeek()
	sel := controller.Selection()

	fmt.Printf("%s %d (week of %s)\n", week.MonthLabel, week.Year, week.StartDate.Format("2006-01-02"))
	for i, date := range week.Dates {
		mark := " "
		if i == sel.DayOffset && week.Contains(sel.Date) {
			mark = ">"
		}
		hidden := ""
		if !controller.WeekendsVisible() && dateutil.IsWeekend(date) {
			hidden = " (hidden)"
		}
		fmt.Printf("%s %s %2d%s\n", mark, date.Weekday().String()[:3], date.Day(), hidden)
	}
}

func printDayLayout(layout agenda.DayLayout) {
	fmt.Printf("== %s ==\n", layout.Date.Format("Monday, 2006-01-02"))

	if len(layout.AllDay) > 0 {
		fmt.Println("All day:")
		for _, item := range layout.AllDay {
			fmt.Printf("  - %s\n", item.Title)
		}
	}

	for _, bucket := range layout.Hours {
		if len(bucket.Items) == 0 {
			continue
		}
		fmt.Printf("%5s (%.0f units)\n", agenda.HourLabel(bucket.Hour), bucket.HeightUnits)
		for _, item := range bucket.Items {
			kind := "task"
			if item.Kind == agenda.KindAppointment {
				kind = "appt"
			}
			fmt.Printf("        [%s] %s %s\n", kind, item.Title, item.Subtitle)
		}
	}

	if layout.NowMarker != nil {
		fmt.Printf("now ---- %s +%.0f%%\n", agenda.HourLabel(layout.NowMarker.Hour), layout.NowMarker.Fraction*100)
	}
	if layout.Dropped > 0 {
		fmt.Printf("(%d item(s) without a valid start hour not shown)\n", layout.Dropped)
	}
}

func initLogger() {
	zcfg := zap.NewProductionConfig()
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ = zcfg.Build()
}

func initFileLogger(logFile, logLevel string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = zapcore.InfoLevel
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	})

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		writer,
		level,
	)

	return zap.New(core), nil
}
