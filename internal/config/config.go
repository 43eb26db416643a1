package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/inovacc/studyplan/internal/application"
	"github.com/inovacc/studyplan/internal/schedule"
	"github.com/inovacc/studyplan/internal/store"
	"github.com/inovacc/studyplan/internal/studylog"
	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Section is the INI section holding studyplan settings.
const Section = "studyplan"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "STUDYPLAN_"

// Defaults
const (
	DefaultBackend         = store.BackendBolt
	DefaultLogLevel        = "warn"
	DefaultLogFormat       = "pretty"
	DefaultRefreshInterval = time.Minute
	DefaultHistoryDays     = 7
	DefaultWeekSlotMinutes = 30
)

// Config holds all application configuration.
type Config struct {
	DataDir         string        `ini:"data_dir"`
	Backend         string        `ini:"backend"`
	LogLevel        string        `ini:"log_level"`
	LogFormat       string        `ini:"log_format"`
	RefreshInterval time.Duration `ini:"refresh_interval"`
	TomorrowLimit   int           `ini:"tomorrow_limit"`
	HistoryDays     int           `ini:"history_days"`
	WeekSlotMinutes int           `ini:"week_slot_minutes"`

	// Path is the file the config was read from, if any
	Path string `ini:"-"`
}

// Default returns the built-in configuration rooted at dataDir.
func Default(dataDir string) *Config {
	return &Config{
		DataDir:         dataDir,
		Backend:         string(DefaultBackend),
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		RefreshInterval: DefaultRefreshInterval,
		TomorrowLimit:   schedule.DefaultPreviewLimit,
		HistoryDays:     DefaultHistoryDays,
		WeekSlotMinutes: DefaultWeekSlotMinutes,
	}
}

// DefaultPath returns <config dir>/studyplan/studyplan.ini.
func DefaultPath() (string, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, application.ConfigFileName), nil
}

// Load builds the configuration from defaults, the INI file at path, an
// optional .env file and STUDYPLAN_* environment variables, in that order.
// An empty path uses DefaultPath and tolerates a missing file; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	appDir, err := application.GetApplicationDirectory()
	if err != nil {
		return nil, err
	}

	cfg := Default(appDir)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(appDir, application.ConfigFileName)
	}

	switch _, statErr := os.Stat(path); {
	case statErr == nil:
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	case errors.Is(statErr, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, statErr)
	}

	_ = godotenv.Load() // .env is optional

	cfg.applyEnv()

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := f.Section(Section).MapTo(c); err != nil {
		return fmt.Errorf("mapping config %s: %w", path, err)
	}

	c.Path = path

	return nil
}

func (c *Config) applyEnv() {
	c.DataDir = getEnv("DATA_DIR", c.DataDir)
	c.Backend = getEnv("BACKEND", c.Backend)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	c.RefreshInterval = getEnvDuration("REFRESH_INTERVAL", c.RefreshInterval)
	c.TomorrowLimit = getEnvInt("TOMORROW_LIMIT", c.TomorrowLimit)
	c.HistoryDays = getEnvInt("HISTORY_DAYS", c.HistoryDays)
	c.WeekSlotMinutes = getEnvInt("WEEK_SLOT_MINUTES", c.WeekSlotMinutes)
}

// Normalize validates the backend and replaces out-of-range numbers with
// their defaults.
func (c *Config) Normalize() error {
	backend, err := store.ParseBackend(c.Backend)
	if err != nil {
		return err
	}

	c.Backend = string(backend)

	if c.RefreshInterval < time.Second {
		c.RefreshInterval = DefaultRefreshInterval
	}

	if c.TomorrowLimit <= 0 {
		c.TomorrowLimit = schedule.DefaultPreviewLimit
	}

	if c.HistoryDays <= 0 {
		c.HistoryDays = DefaultHistoryDays
	}

	c.HistoryDays = min(c.HistoryDays, studylog.MaxHistoryDays)

	if c.WeekSlotMinutes < 5 || c.WeekSlotMinutes > 120 {
		c.WeekSlotMinutes = DefaultWeekSlotMinutes
	}

	return nil
}

// StoreBackend returns the parsed backend name.
func (c *Config) StoreBackend() store.Backend {
	return store.Backend(c.Backend)
}

// WriteTo renders the config as an INI document.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	f := ini.Empty()

	if err := f.Section(Section).ReflectFrom(c); err != nil {
		return 0, fmt.Errorf("encoding config: %w", err)
	}

	return f.WriteTo(w)
}

// Save writes the config to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := application.EnsureDirectory(filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}

	if _, err := c.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(EnvPrefix + key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(EnvPrefix + key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}

	return d
}
