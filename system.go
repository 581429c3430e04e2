package dtformat

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// System exposes device-level settings consulted during construction and formatting.
type System interface {
	// Locale returns the default locale as a BCP 47 tag.
	Locale() string
	// Is24HourClock reports whether the device prefers a 24-hour clock.
	Is24HourClock() bool
	// TimeZone returns the IANA id of the device zone.
	TimeZone() string
}

const (
	defaultSystemLocale   = "en-US"
	defaultSystemTimeZone = "UTC"

	envClock24 = "DTFORMAT_24H_CLOCK"
)

// EnvSystem reads device settings from the process environment.
type EnvSystem struct{}

// Locale reads LC_ALL, LC_TIME and LANG in that order.
func (EnvSystem) Locale() string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if tag := posixToBCP47(os.Getenv(key)); tag != "" {
			return tag
		}
	}
	return defaultSystemLocale
}

func (EnvSystem) Is24HourClock() bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(envClock24)))
	return err == nil && value
}

func (EnvSystem) TimeZone() string {
	zone := strings.TrimSpace(os.Getenv("TZ"))
	zone = strings.TrimPrefix(zone, ":")
	if zone == "" {
		return defaultSystemTimeZone
	}
	return zone
}

// StaticSystem is a fixed set of device settings.
type StaticSystem struct {
	LocaleTag      string
	Use24HourClock bool
	Zone           string
}

func (s StaticSystem) Locale() string {
	if s.LocaleTag == "" {
		return defaultSystemLocale
	}
	return s.LocaleTag
}

func (s StaticSystem) Is24HourClock() bool {
	return s.Use24HourClock
}

func (s StaticSystem) TimeZone() string {
	if s.Zone == "" {
		return defaultSystemTimeZone
	}
	return s.Zone
}

// posixToBCP47 turns values like "de_DE.UTF-8@euro" into "de-DE".
// The C and POSIX locales have no language and yield "".
func posixToBCP47(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.IndexAny(value, ".@"); idx >= 0 {
		value = value[:idx]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return ""
	}
	return normalizeLocale(value)
}

// systemLocation loads the device zone, falling back to UTC.
func systemLocation(system System) *time.Location {
	loc, err := time.LoadLocation(system.TimeZone())
	if err != nil {
		return time.UTC
	}
	return loc
}
