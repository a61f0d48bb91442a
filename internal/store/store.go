package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joaovbleite/SWEEPLYFINAL-sub000/internal/agenda"
	"github.com/joaovbleite/SWEEPLYFINAL-sub000/pkg/dateutil"
	_ "modernc.org/sqlite"
)

const dateFormat = "2006-01-02"

// Appointment is a client visit with a scheduled hour
type Appointment struct {
	ID         string
	Date       time.Time
	StartLabel string
	EndLabel   string
	Color      string
	Client     string
	Location   string
}

// Task is a to-do with an optional hour, possibly all-day
type Task struct {
	ID         string
	Date       time.Time
	StartLabel string
	AllDay     bool
	Priority   string
	Status     string
	Assignee   string
	Title      string
}

// Store persists appointments and tasks in a local SQLite database. It is the
// read-only collaborator the schedule engine consumes; the engine itself
// keeps no durable state.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the database at the given path
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS appointments (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	start_label TEXT DEFAULT '',
	end_label TEXT DEFAULT '',
	color TEXT DEFAULT '',
	client TEXT DEFAULT '',
	location TEXT DEFAULT '',
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	start_label TEXT DEFAULT '',
	all_day INTEGER NOT NULL DEFAULT 0,
	priority TEXT DEFAULT '',
	status TEXT DEFAULT '',
	assignee TEXT DEFAULT '',
	title TEXT DEFAULT '',
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments(date);
CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// AddAppointment inserts an appointment and returns its assigned ID
func (s *Store) AddAppointment(a Appointment) (string, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO appointments (id, date, start_label, end_label, color, client, location, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		a.ID, a.Date.Format(dateFormat), a.StartLabel, a.EndLabel, a.Color, a.Client, a.Location,
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert appointment: %w", err)
	}
	return a.ID, nil
}

// AddTask inserts a task and returns its assigned ID
func (s *Store) AddTask(t Task) (string, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	allDay := 0
	if t.AllDay {
		allDay = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO tasks (id, date, start_label, all_day, priority, status, assignee, title, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		t.ID, t.Date.Format(dateFormat), t.StartLabel, allDay, t.Priority, t.Status, t.Assignee, t.Title,
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert task: %w", err)
	}
	return t.ID, nil
}

// Appointments returns the appointments on the given date as timed items, in
// insertion order. Insertion order is the tie-break the day layout preserves.
func (s *Store) Appointments(date time.Time) ([]agenda.TimedItem, error) {
	rows, err := s.db.Query(
		`SELECT id, date, start_label, color, client, location FROM appointments
		 WHERE date = ? ORDER BY rowid;`,
		date.Format(dateFormat),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	var items []agenda.TimedItem
	for rows.Next() {
		var id, dateStr, startLabel, color, client, location string
		if err := rows.Scan(&id, &dateStr, &startLabel, &color, &client, &location); err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		d, err := dateutil.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse appointment date %q: %w", dateStr, err)
		}
		items = append(items, agenda.TimedItem{
			ID:         id,
			Date:       d,
			StartLabel: startLabel,
			Kind:       agenda.KindAppointment,
			Color:      color,
			Title:      client,
			Subtitle:   location,
		})
	}
	return items, rows.Err()
}

// Tasks returns the tasks on the given date as timed items, in insertion
// order
func (s *Store) Tasks(date time.Time) ([]agenda.TimedItem, error) {
	rows, err := s.db.Query(
		`SELECT id, date, start_label, all_day, priority, status, assignee, title FROM tasks
		 WHERE date = ? ORDER BY rowid;`,
		date.Format(dateFormat),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var items []agenda.TimedItem
	for rows.Next() {
		var id, dateStr, startLabel, priority, status, assignee, title string
		var allDay int
		if err := rows.Scan(&id, &dateStr, &startLabel, &allDay, &priority, &status, &assignee, &title); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		d, err := dateutil.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse task date %q: %w", dateStr, err)
		}
		items = append(items, agenda.TimedItem{
			ID:         id,
			Date:       d,
			StartLabel: startLabel,
			AllDay:     allDay != 0,
			Kind:       agenda.KindTask,
			Priority:   priority,
			Title:      title,
			Subtitle:   status + " " + assignee,
		})
	}
	return items, rows.Err()
}

// MarkerDates returns the set of dates in the given month that have at least
// one appointment or task, keyed by YYYY-MM-DD. It backs the month-grid
// marker predicate.
func (s *Store) MarkerDates(year int, month time.Month) (map[string]bool, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := dateutil.AddDays(first, dateutil.DaysInMonth(year, month)-1)

	marked := make(map[string]bool)
	for _, table := range []string{"appointments", "tasks"} {
		rows, err := s.db.Query(
			`SELECT DISTINCT date FROM `+table+` WHERE date >= ? AND date <= ?;`,
			first.Format(dateFormat), last.Format(dateFormat),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to query %s dates: %w", table, err)
		}
		for rows.Next() {
			var dateStr string
			if err := rows.Scan(&dateStr); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan %s date: %w", table, err)
			}
			marked[dateStr] = true
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}
	return marked, nil
}

// MarkerPredicate builds a month-grid predicate from MarkerDates
func (s *Store) MarkerPredicate(year int, month time.Month) (func(time.Time) bool, error) {
	marked, err := s.MarkerDates(year, month)
	if err != nil {
		return nil, err
	}
	return func(date time.Time) bool {
		return marked[date.Format(dateFormat)]
	}, nil
}
