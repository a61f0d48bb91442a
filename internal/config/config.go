package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Layout   LayoutConfig   `mapstructure:"layout"`
	Carousel CarouselConfig `mapstructure:"carousel"`
	Store    StoreConfig    `mapstructure:"store"`
	Watch    WatchConfig    `mapstructure:"watch"`
}

// CalendarConfig represents the calendar convention
type CalendarConfig struct {
	FirstWeekday string `mapstructure:"first_weekday"` // "sunday" or "monday"
	ShowWeekends bool   `mapstructure:"show_weekends"`
}

// LayoutConfig represents day-view height constants
type LayoutConfig struct {
	BaseUnits      float64 `mapstructure:"base_units"`
	IncrementUnits float64 `mapstructure:"increment_units"`
}

// CarouselConfig represents the week-window sizing
type CarouselConfig struct {
	PreloadWeeks int `mapstructure:"preload_weeks"` // initial window, odd, centered on today
	MaxWeeks     int `mapstructure:"max_weeks"`     // 0 = unbounded
}

// StoreConfig represents the item store location
type StoreConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// WatchConfig represents watch-mode configuration
type WatchConfig struct {
	TickCron string `mapstructure:"tick_cron"` // cron spec for the now-marker refresh
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			FirstWeekday: "sunday",
			ShowWeekends: true,
		},
		Layout: LayoutConfig{
			BaseUnits:      60,
			IncrementUnits: 30,
		},
		Carousel: CarouselConfig{
			PreloadWeeks: 5,
			MaxWeeks:     0,
		},
		Store: StoreConfig{
			DBPath: "schedule.db",
		},
		Watch: WatchConfig{
			TickCron: "* * * * *",
			LogLevel: "info",
		},
	}
}

// Load loads configuration from file, falling back to defaults for any key
// the file omits
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.schedulectl")
	}

	def := Default()
	v.SetDefault("calendar.first_weekday", def.Calendar.FirstWeekday)
	v.SetDefault("calendar.show_weekends", def.Calendar.ShowWeekends)
	v.SetDefault("layout.base_units", def.Layout.BaseUnits)
	v.SetDefault("layout.increment_units", def.Layout.IncrementUnits)
	v.SetDefault("carousel.preload_weeks", def.Carousel.PreloadWeeks)
	v.SetDefault("carousel.max_weeks", def.Carousel.MaxWeeks)
	v.SetDefault("store.db_path", def.Store.DBPath)
	v.SetDefault("watch.tick_cron", def.Watch.TickCron)
	v.SetDefault("watch.log_level", def.Watch.LogLevel)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Only a missing file is non-fatal; a file that exists but does
		// not parse must surface, not silently fall back to defaults.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch strings.ToLower(c.Calendar.FirstWeekday) {
	case "sunday", "monday":
	default:
		return fmt.Errorf("calendar.first_weekday must be 'sunday' or 'monday', got '%s'", c.Calendar.FirstWeekday)
	}

	if c.Layout.BaseUnits <= 0 {
		return fmt.Errorf("layout.base_units must be positive")
	}
	if c.Layout.IncrementUnits < 0 {
		return fmt.Errorf("layout.increment_units must not be negative")
	}

	if c.Carousel.PreloadWeeks < 3 {
		return fmt.Errorf("carousel.preload_weeks must be at least 3")
	}
	if c.Carousel.PreloadWeeks%2 == 0 {
		return fmt.Errorf("carousel.preload_weeks must be odd so the window centers on today")
	}
	if c.Carousel.MaxWeeks != 0 && c.Carousel.MaxWeeks < c.Carousel.PreloadWeeks {
		return fmt.Errorf("carousel.max_weeks must be 0 or at least preload_weeks")
	}

	if c.Store.DBPath == "" {
		return fmt.Errorf("store.db_path is required")
	}

	return nil
}

// Weekday returns the configured first day of the week
func (c *CalendarConfig) Weekday() time.Weekday {
	if strings.EqualFold(c.FirstWeekday, "monday") {
		return time.Monday
	}
	return time.Sunday
}
