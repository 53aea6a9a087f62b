// Package config loads the service configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full service configuration.
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Notifications NotificationsConfig `toml:"notifications"`
	Venue         VenueConfig         `toml:"venue"`
	Pricing       PricingConfig       `toml:"pricing"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type NotificationsConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"` // AMQP URL
	Exchange string `toml:"exchange"`
}

// DayHoursConfig is one [[venue.hours]] entry.
type DayHoursConfig struct {
	Day   string `toml:"day"`
	Open  int    `toml:"open"`
	Close int    `toml:"close"`
}

type VenueConfig struct {
	SlotIntervalMinutes int              `toml:"slot_interval_minutes"`
	RateLimitPerMinute  int              `toml:"rate_limit_per_minute"`
	Hours               []DayHoursConfig `toml:"hours"`
	FallbackOpenHour    int              `toml:"fallback_open_hour"`
	FallbackCloseHour   int              `toml:"fallback_close_hour"`
}

// RateRuleConfig is one [[pricing.rule]] entry.
type RateRuleConfig struct {
	Slug               string `toml:"slug"`
	PeakHourlyCents    int64  `toml:"peak_hourly_cents"`
	OffPeakHourlyCents int64  `toml:"offpeak_hourly_cents"`
	PerPerson          bool   `toml:"per_person"`
}

// PeakWindowConfig is one [[pricing.peak]] entry.
type PeakWindowConfig struct {
	Day      string `toml:"day"`
	FromHour int    `toml:"from_hour"`
	ToHour   int    `toml:"to_hour"`
}

type PricingConfig struct {
	FallbackHourlyCents int64              `toml:"fallback_hourly_cents"`
	FallbackPerPerson   bool               `toml:"fallback_per_person"`
	Rules               []RateRuleConfig   `toml:"rule"`
	Peak                []PeakWindowConfig `toml:"peak"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "hve-booking-service"
	}
	if c.Notifications.Exchange == "" {
		c.Notifications.Exchange = "bookings"
	}
	if c.Venue.SlotIntervalMinutes == 0 {
		c.Venue.SlotIntervalMinutes = domain.DefaultSlotIntervalMinutes
	}
	if c.Venue.RateLimitPerMinute == 0 {
		c.Venue.RateLimitPerMinute = 60
	}
	if c.Venue.FallbackOpenHour == 0 && c.Venue.FallbackCloseHour == 0 {
		c.Venue.FallbackOpenHour = 12
		c.Venue.FallbackCloseHour = 22
	}
	if c.Pricing.FallbackHourlyCents == 0 {
		fallback := domain.DefaultFallbackRate()
		c.Pricing.FallbackHourlyCents = fallback.OffPeakHourlyCents
		c.Pricing.FallbackPerPerson = fallback.PerPerson
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.Notifications.Enabled && c.Notifications.URL == "" {
		return fmt.Errorf("%w: notifications.url is required when notifications are enabled", ErrInvalidConfig)
	}
	for _, h := range c.Venue.Hours {
		if _, err := parseWeekday(h.Day); err != nil {
			return err
		}
		if h.Open < 0 || h.Close > 24 || h.Open >= h.Close {
			return fmt.Errorf("%w: venue hours for %s: open=%d close=%d", ErrInvalidConfig, h.Day, h.Open, h.Close)
		}
	}
	for _, w := range c.Pricing.Peak {
		if _, err := parseWeekday(w.Day); err != nil {
			return err
		}
		if w.FromHour < 0 || w.ToHour > 24 || w.FromHour >= w.ToHour {
			return fmt.Errorf("%w: peak window for %s: from=%d to=%d", ErrInvalidConfig, w.Day, w.FromHour, w.ToHour)
		}
	}
	return nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(name string) (time.Weekday, error) {
	if day, ok := weekdays[strings.ToLower(name)]; ok {
		return day, nil
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidConfig, name)
}

// WeekSchedule builds the opening-hours calendar from config, falling back to
// the venue defaults when no [[venue.hours]] entries are present.
func (c *Config) WeekSchedule() domain.WeekSchedule {
	if len(c.Venue.Hours) == 0 {
		return domain.DefaultWeekSchedule()
	}

	days := make(map[time.Weekday]domain.OpeningHours, len(c.Venue.Hours))
	for _, h := range c.Venue.Hours {
		day, err := parseWeekday(h.Day)
		if err != nil {
			continue // validated at load time
		}
		days[day] = domain.OpeningHours{OpenHour: h.Open, CloseHour: h.Close}
	}

	return domain.WeekSchedule{
		Days: days,
		Fallback: domain.OpeningHours{
			OpenHour:  c.Venue.FallbackOpenHour,
			CloseHour: c.Venue.FallbackCloseHour,
		},
	}
}

// PeakSchedule builds the peak window table from config, falling back to
// Friday/Saturday/Sunday all day.
func (c *Config) PeakSchedule() domain.PeakSchedule {
	if len(c.Pricing.Peak) == 0 {
		return domain.DefaultPeakSchedule()
	}

	schedule := make(domain.PeakSchedule, 0, len(c.Pricing.Peak))
	for _, w := range c.Pricing.Peak {
		day, err := parseWeekday(w.Day)
		if err != nil {
			continue // validated at load time
		}
		schedule = append(schedule, domain.PeakWindow{Day: day, FromHour: w.FromHour, ToHour: w.ToHour})
	}
	return schedule
}

// RateRules builds the per-activity rate table from config, falling back to
// the venue defaults when no [[pricing.rule]] entries are present.
func (c *Config) RateRules() []domain.RateRule {
	if len(c.Pricing.Rules) == 0 {
		return domain.DefaultRateRules()
	}

	rules := make([]domain.RateRule, 0, len(c.Pricing.Rules))
	for _, r := range c.Pricing.Rules {
		rules = append(rules, domain.RateRule{
			Slug:               r.Slug,
			PeakHourlyCents:    r.PeakHourlyCents,
			OffPeakHourlyCents: r.OffPeakHourlyCents,
			PerPerson:          r.PerPerson,
		})
	}
	return rules
}

// FallbackRate builds the fallback rate rule from config.
func (c *Config) FallbackRate() domain.RateRule {
	return domain.RateRule{
		PeakHourlyCents:    c.Pricing.FallbackHourlyCents,
		OffPeakHourlyCents: c.Pricing.FallbackHourlyCents,
		PerPerson:          c.Pricing.FallbackPerPerson,
	}
}
