package dtformat

import (
	"fmt"
	"sync"
	"time"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey is read from map contexts to find the active locale.
	LocaleKey string
	// Presets names the option sets helpers may refer to. The zero preset name
	// formats with an empty configuration.
	Presets Presets
	// Options are passed to New for every formatter the helpers build.
	Options []Option
	// OnError renders a replacement when a formatter cannot be built.
	OnError func(locale, preset string, err error) string
}

// TemplateHelpers exposes date formatting helpers for go-template.
//
//	format_date        (ctx, time.Time, preset) string
//	format_date_range  (ctx, from, to time.Time, preset) string
//	date_pattern       (ctx, preset) string
//	current_locale     (ctx) string
//
// ctx is either a locale string, a map holding LocaleKey or a value with a
// Locale() string method. Formatters are built once per locale and preset.
func TemplateHelpers(cfg HelperConfig) map[string]any {
	if cfg.LocaleKey == "" {
		cfg.LocaleKey = "locale"
	}
	cache := &formatterCache{cfg: cfg, entries: make(map[string]*DateTimeFormat)}

	return map[string]any{
		"format_date": func(ctx any, t time.Time, preset string) string {
			locale := localeFromContext(ctx, cfg.LocaleKey)
			f, err := cache.get(locale, preset)
			if err != nil {
				return cfg.onError(locale, preset, err)
			}
			return f.FormatTime(t)
		},
		"format_date_range": func(ctx any, from, to time.Time, preset string) string {
			locale := localeFromContext(ctx, cfg.LocaleKey)
			f, err := cache.get(locale, preset)
			if err != nil {
				return cfg.onError(locale, preset, err)
			}
			out, err := f.FormatTimeRange(from, to)
			if err != nil {
				return cfg.onError(locale, preset, err)
			}
			return out
		},
		"date_pattern": func(ctx any, preset string) string {
			locale := localeFromContext(ctx, cfg.LocaleKey)
			f, err := cache.get(locale, preset)
			if err != nil {
				return cfg.onError(locale, preset, err)
			}
			return f.Pattern()
		},
		"current_locale": func(ctx any) string {
			return localeFromContext(ctx, cfg.LocaleKey)
		},
	}
}

func (cfg HelperConfig) onError(locale, preset string, err error) string {
	if cfg.OnError != nil {
		return cfg.OnError(locale, preset, err)
	}
	return ""
}

type formatterCache struct {
	cfg     HelperConfig
	mu      sync.Mutex
	entries map[string]*DateTimeFormat
}

func (c *formatterCache) get(locale, preset string) (*DateTimeFormat, error) {
	key := locale + "|" + preset

	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.entries[key]; ok {
		return f, nil
	}

	var (
		locales []string
		configs map[string]string
	)
	if preset != "" {
		p, ok := c.cfg.Presets.Lookup(preset)
		if !ok {
			return nil, fmt.Errorf("dtformat: unknown preset %q", preset)
		}
		configs = p.Options.Map()
		locales = p.Locales
	}
	if locale != "" {
		locales = append([]string{locale}, locales...)
	}

	f, err := New(locales, configs, c.cfg.Options...)
	if err != nil {
		return nil, err
	}
	c.entries[key] = f
	return f, nil
}

type localeProvider interface {
	Locale() string
}

func localeFromContext(ctx any, key string) string {
	switch value := ctx.(type) {
	case nil:
		return ""
	case string:
		return value
	case localeProvider:
		return value.Locale()
	case map[string]string:
		return value[key]
	case map[string]any:
		if locale, ok := value[key].(string); ok {
			return locale
		}
	}
	return ""
}
