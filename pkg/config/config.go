// Package config loads picker settings from an optional pickers.yaml file.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pickers/pkg/calendar"
	"github.com/go-drift/pickers/pkg/errors"
	"github.com/go-drift/pickers/pkg/picker"
	"github.com/go-drift/pickers/pkg/timepicker"
)

// FileName is the conventional configuration file name.
const FileName = "pickers.yaml"

// SchemaVersion is the configuration schema this package understands.
// Files declaring another minor or patch version of the same major are
// accepted.
const SchemaVersion = "v1"

// Config represents pickers.yaml.
type Config struct {
	Schema string     `yaml:"schema,omitempty"`
	Locale string     `yaml:"locale,omitempty"`
	Date   DateConfig `yaml:"date"`
	Time   TimeConfig `yaml:"time"`
}

// DateConfig contains date picker settings. Dates use the 2006-01-02
// layout.
type DateConfig struct {
	Initial         string   `yaml:"initial,omitempty"`
	Min             string   `yaml:"min,omitempty"`
	Max             string   `yaml:"max,omitempty"`
	Exclude         []string `yaml:"exclude,omitempty"`
	Rows            int      `yaml:"rows,omitempty"`
	SelectedScale   float64  `yaml:"selectedScale,omitempty"`
	UppercaseHeader bool     `yaml:"uppercaseHeader,omitempty"`
}

// TimeConfig contains time picker settings. Times use the 15:04 layout.
type TimeConfig struct {
	Initial       string  `yaml:"initial,omitempty"`
	Is24Hour      bool    `yaml:"is24Hour,omitempty"`
	MinuteStep    int     `yaml:"minuteStep,omitempty"`
	Rows          int     `yaml:"rows,omitempty"`
	SelectedScale float64 `yaml:"selectedScale,omitempty"`
}

// Resolved contains validated settings with defaults filled in.
type Resolved struct {
	Locale language.Tag
	Date   ResolvedDate
	Time   ResolvedTime
}

// ResolvedDate holds the date picker settings.
type ResolvedDate struct {
	Initial *calendar.CalendarDate
	Limiter *calendar.SelectionLimiter
	Style   picker.Style
}

// ResolvedTime holds the time picker settings.
type ResolvedTime struct {
	Initial     *calendar.ClockTime
	Is24Hour    bool
	Granularity timepicker.MinuteGranularity
	Style       picker.Style
}

// Load reads and parses the file at path. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("config.Load", fmt.Errorf("failed to read %s: %w", path, err))
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, configError("config.Load", fmt.Errorf("failed to parse %s: %w", path, err))
	}
	return cfg, nil
}

// LoadOptional reads the file at path if it exists. A missing file yields
// an empty Config.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return Load(path)
}

// Parse decodes YAML configuration. An empty document yields an empty
// Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, err
	}
	return &cfg, nil
}

// Resolve validates cfg and fills in defaults.
func Resolve(cfg *Config) (*Resolved, error) {
	const op = "config.Resolve"
	if cfg == nil {
		cfg = &Config{}
	}

	if err := checkSchema(cfg.Schema); err != nil {
		return nil, configError(op, err)
	}

	locale, err := calendar.ParseLocale(strings.TrimSpace(cfg.Locale))
	if err != nil {
		return nil, configError(op, fmt.Errorf("locale %q: %w", cfg.Locale, err))
	}

	date, err := resolveDate(cfg.Date)
	if err != nil {
		return nil, configError(op, err)
	}
	tm, err := resolveTime(cfg.Time)
	if err != nil {
		return nil, configError(op, err)
	}

	return &Resolved{Locale: locale, Date: *date, Time: *tm}, nil
}

func checkSchema(schema string) error {
	schema = strings.TrimSpace(schema)
	if schema == "" {
		return nil
	}
	if !semver.IsValid(schema) {
		return fmt.Errorf("schema %q is not a version like %s", schema, SchemaVersion)
	}
	if semver.Major(schema) != semver.Major(SchemaVersion) {
		return fmt.Errorf("schema %s is not supported, want %s.x", schema, SchemaVersion)
	}
	return nil
}

func resolveDate(c DateConfig) (*ResolvedDate, error) {
	out := &ResolvedDate{
		Style: picker.Style{
			Rows:            c.Rows,
			SelectedScale:   c.SelectedScale,
			UppercaseHeader: c.UppercaseHeader,
		},
	}
	if err := checkStyle("date", out.Style); err != nil {
		return nil, err
	}
	out.Style = withDefaults(out.Style)

	if c.Initial != "" {
		d, err := calendar.ParseDate(c.Initial)
		if err != nil {
			return nil, fmt.Errorf("date.initial: %w", err)
		}
		out.Initial = &d
	}

	var opts []calendar.LimiterOption
	var lower, upper *calendar.CalendarDate
	if c.Min != "" {
		d, err := calendar.ParseDate(c.Min)
		if err != nil {
			return nil, fmt.Errorf("date.min: %w", err)
		}
		lower = &d
		opts = append(opts, calendar.WithLowerBound(d))
	}
	if c.Max != "" {
		d, err := calendar.ParseDate(c.Max)
		if err != nil {
			return nil, fmt.Errorf("date.max: %w", err)
		}
		upper = &d
		opts = append(opts, calendar.WithUpperBound(d))
	}
	if lower != nil && upper != nil && upper.Before(*lower) {
		return nil, fmt.Errorf("date.max %s is before date.min %s", upper, lower)
	}
	for i, s := range c.Exclude {
		d, err := calendar.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("date.exclude[%d]: %w", i, err)
		}
		opts = append(opts, calendar.WithExcluded(d))
	}
	if len(opts) > 0 {
		out.Limiter = calendar.NewLimiter(opts...)
	}
	return out, nil
}

func resolveTime(c TimeConfig) (*ResolvedTime, error) {
	out := &ResolvedTime{
		Is24Hour:    c.Is24Hour,
		Granularity: timepicker.DefaultGranularity,
		Style:       picker.Style{Rows: c.Rows, SelectedScale: c.SelectedScale},
	}
	if err := checkStyle("time", out.Style); err != nil {
		return nil, err
	}
	out.Style = withDefaults(out.Style)

	if c.MinuteStep != 0 {
		g, err := timepicker.ParseGranularity(c.MinuteStep)
		if err != nil {
			return nil, fmt.Errorf("time.minuteStep: %w", err)
		}
		out.Granularity = g
	}

	if c.Initial != "" {
		t, err := calendar.ParseClock(c.Initial)
		if err != nil {
			return nil, fmt.Errorf("time.initial: %w", err)
		}
		out.Initial = &t
	}
	return out, nil
}

func checkStyle(section string, s picker.Style) error {
	if s.Rows < 0 {
		return fmt.Errorf("%s.rows must not be negative, got %d", section, s.Rows)
	}
	if s.Rows > 0 && s.Rows%2 == 0 {
		return fmt.Errorf("%s.rows must be odd so one row is centered, got %d", section, s.Rows)
	}
	if s.SelectedScale < 0 {
		return fmt.Errorf("%s.selectedScale must not be negative, got %v", section, s.SelectedScale)
	}
	return nil
}

func withDefaults(s picker.Style) picker.Style {
	if s.Rows == 0 {
		s.Rows = picker.DefaultRows
	}
	if s.SelectedScale == 0 {
		s.SelectedScale = picker.DefaultSelectedScale
	}
	return s
}

// DateOptions converts the date settings into picker options. Callbacks
// and the scheduler are left for the caller.
func (r *Resolved) DateOptions() picker.DateOptions {
	return picker.DateOptions{
		Initial: r.Date.Initial,
		Limiter: r.Date.Limiter,
		Locale:  r.Locale,
		Style:   r.Date.Style,
	}
}

// TimeOptions converts the time settings into picker options. Callbacks
// and the scheduler are left for the caller.
func (r *Resolved) TimeOptions() picker.TimeOptions {
	return picker.TimeOptions{
		Initial:     r.Time.Initial,
		Is24Hour:    r.Time.Is24Hour,
		Granularity: r.Time.Granularity,
		Locale:      r.Locale,
		Style:       r.Time.Style,
	}
}

func configError(op string, err error) error {
	var pe *errors.PickerError
	if errors.As(err, &pe) && pe.Kind == errors.KindConfig {
		return err
	}
	return &errors.PickerError{Op: op, Kind: errors.KindConfig, Err: err}
}
