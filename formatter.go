package dtformat

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DateTimeFormat renders instants and ranges with one compiled pattern.
// Instances are immutable after New and safe for concurrent use.
type DateTimeFormat struct {
	options  FormatOptions
	locale   ResolvedLocale
	hour     HourPreference
	pattern  Pattern
	renderer renderer
	calendar calendar
	interval intervalFormatter
	logger   *slog.Logger
}

// New builds a formatter for the first supported candidate locale.
//
// Candidates that fail to parse, have no locale data or fail to compile are skipped.
// When none succeeds the system locale is tried once; if that fails too New returns
// ErrConstruction and no formatter.
func New(localeTags []string, configs map[string]string, opts ...Option) (*DateTimeFormat, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	if err := InitLocaleData(cfg.DataDirectory); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}
	store := localeDataStore

	options := ParseOptions(configs)

	for _, tag := range localeTags {
		locale, err := store.resolveLocale(tag)
		if err != nil {
			cfg.Logger.Debug("skipping locale candidate", "locale", tag, "error", err)
			continue
		}
		formatter, err := newDateTimeFormat(locale, options, cfg)
		if err != nil {
			cfg.Logger.Debug("discarding locale candidate", "locale", tag, "error", err)
			continue
		}
		return formatter, nil
	}

	systemTag := cfg.System.Locale()
	cfg.Logger.Warn("no usable locale candidate, using system locale",
		"candidates", localeTags, "locale", systemTag)

	locale, err := store.resolveLocale(systemTag)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}
	formatter, err := newDateTimeFormat(locale, options, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}
	return formatter, nil
}

func newDateTimeFormat(locale ResolvedLocale, options FormatOptions, cfg *Config) (*DateTimeFormat, error) {
	if locale.data == nil {
		return nil, ErrNoLocaleData
	}

	if !locale.calendarApplied() {
		cfg.Logger.Debug("calendar extension not supported, using gregorian",
			"locale", locale.ID, "calendar", locale.RequestedCalendar())
	}

	hour := ResolveHourPreference(options, locale.HourCycle, cfg.System)
	pattern, err := CompilePattern(newPatternGenerator(locale.data), options, hour)
	if err != nil {
		return nil, err
	}

	numbering := options.NumberingSystem
	if numbering == "" {
		numbering = locale.NumberingSystem
	}

	return &DateTimeFormat{
		options:  options,
		locale:   locale,
		hour:     hour,
		pattern:  pattern,
		renderer: newRenderer(locale, numbering),
		calendar: newCalendar(cfg.System, options.TimeZone, cfg.Logger),
		interval: newIntervalFormatter(pattern, locale.data),
		logger:   cfg.Logger,
	}, nil
}

// Format renders [year, month, day, hour, minute, second]. Months are 1-based,
// missing trailing fields are zero and extra fields are ignored.
func (f *DateTimeFormat) Format(fields []int) string {
	if f == nil {
		return ""
	}
	t, err := f.calendar.instant(fields)
	if err != nil {
		f.logger.Debug("format skipped", "fields", fields, "error", err)
		return ""
	}
	return f.renderer.render(f.pattern, t)
}

// FormatRange renders the range between two field arrays. The order of the endpoints
// is not checked.
func (f *DateTimeFormat) FormatRange(from, to []int) (string, error) {
	if f == nil {
		return "", errors.New("dtformat: nil formatter")
	}
	start, err := f.calendar.instant(from)
	if err != nil {
		return "", fmt.Errorf("%w: from: %w", ErrRangeCalendar, err)
	}
	end, err := f.calendar.instant(to)
	if err != nil {
		return "", fmt.Errorf("%w: to: %w", ErrRangeCalendar, err)
	}
	return f.interval.format(f.renderer, start, end), nil
}

// FormatTime renders t in the formatter's zone.
func (f *DateTimeFormat) FormatTime(t time.Time) string {
	if f == nil {
		return ""
	}
	return f.renderer.render(f.pattern, t.In(f.calendar.location()))
}

// FormatTimeRange renders the range between two times in the formatter's zone.
func (f *DateTimeFormat) FormatTimeRange(from, to time.Time) (string, error) {
	if f == nil {
		return "", errors.New("dtformat: nil formatter")
	}
	loc := f.calendar.location()
	return f.interval.format(f.renderer, from.In(loc), to.In(loc)), nil
}

// Pattern returns the compiled pattern text.
func (f *DateTimeFormat) Pattern() string {
	if f == nil {
		return ""
	}
	return f.pattern.String()
}

// Locale returns the base name of the resolved locale.
func (f *DateTimeFormat) Locale() string {
	if f == nil {
		return ""
	}
	return f.locale.BaseName
}

// Options returns the parsed options.
func (f *DateTimeFormat) Options() FormatOptions {
	if f == nil {
		return FormatOptions{}
	}
	return f.options
}

// The accessors below return the raw configured value, or "" when unset.

func (f *DateTimeFormat) DateStyle() string       { return f.Options().DateStyle }
func (f *DateTimeFormat) TimeStyle() string       { return f.Options().TimeStyle }
func (f *DateTimeFormat) HourCycle() string       { return f.Options().HourCycle }
func (f *DateTimeFormat) TimeZone() string        { return f.Options().TimeZone }
func (f *DateTimeFormat) TimeZoneName() string    { return f.Options().TimeZoneName }
func (f *DateTimeFormat) NumberingSystem() string { return f.Options().NumberingSystem }
func (f *DateTimeFormat) Hour12() string          { return f.Options().Hour12 }
func (f *DateTimeFormat) Weekday() string         { return f.Options().Weekday }
func (f *DateTimeFormat) Era() string             { return f.Options().Era }
func (f *DateTimeFormat) Year() string            { return f.Options().Year }
func (f *DateTimeFormat) Month() string           { return f.Options().Month }
func (f *DateTimeFormat) Day() string             { return f.Options().Day }
func (f *DateTimeFormat) Hour() string            { return f.Options().Hour }
func (f *DateTimeFormat) Minute() string          { return f.Options().Minute }
func (f *DateTimeFormat) Second() string          { return f.Options().Second }
