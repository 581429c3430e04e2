package dtformat

import (
	"fmt"

	"golang.org/x/text/language"
)

const defaultCalendar = "gregorian"

// ResolvedLocale is a supported locale together with its locale-derived defaults.
type ResolvedLocale struct {
	// ID is the canonical tag including its extensions.
	ID string
	// BaseName is the tag without extensions, e.g. "en-US".
	BaseName string
	// HourCycle comes from the -u-hc- extension only.
	HourCycle string
	// Calendar is the calendar of the locale data. Rendering is always gregorian, so a
	// -u-ca- extension does not change it; see RequestedCalendar.
	Calendar string
	// NumberingSystem comes from the -u-nu- extension, else the locale data.
	NumberingSystem string

	tag  language.Tag
	data *LocaleData
}

// ResolveLocale parses tag and loads the locale data for it.
func ResolveLocale(tag string) (ResolvedLocale, error) {
	store, err := loadedLocaleStore()
	if err != nil {
		return ResolvedLocale{}, err
	}
	return store.resolveLocale(tag)
}

func (s *localeStore) resolveLocale(raw string) (ResolvedLocale, error) {
	normalized := normalizeLocale(raw)
	if normalized == "" {
		return ResolvedLocale{}, fmt.Errorf("%w: empty tag", ErrUnsupportedLocale)
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return ResolvedLocale{}, fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, raw, err)
	}
	if !s.supports(tag) {
		return ResolvedLocale{}, fmt.Errorf("%w: %s", ErrUnsupportedLocale, tag)
	}

	name := baseName(tag)
	data, err := s.resolve(name)
	if err != nil {
		return ResolvedLocale{}, err
	}

	resolved := ResolvedLocale{
		ID:        tag.String(),
		BaseName:  name,
		HourCycle: tag.TypeForKey("hc"),
		tag:       tag,
		data:      data,
	}

	resolved.Calendar = data.Calendar
	if resolved.Calendar == "" {
		resolved.Calendar = defaultCalendar
	}

	resolved.NumberingSystem = tag.TypeForKey("nu")
	if resolved.NumberingSystem == "" {
		resolved.NumberingSystem = data.NumberingSystem
	}

	return resolved, nil
}

// Tag returns the parsed language tag.
func (r ResolvedLocale) Tag() language.Tag {
	return r.tag
}

// Data returns the merged locale data, or nil for a zero value.
func (r ResolvedLocale) Data() *LocaleData {
	return r.data
}

// RequestedCalendar returns the -u-ca- extension of the tag, or "" when none was given.
func (r ResolvedLocale) RequestedCalendar() string {
	return r.tag.TypeForKey("ca")
}

// calendarApplied reports whether the requested calendar, if any, is the one rendered.
func (r ResolvedLocale) calendarApplied() bool {
	switch r.RequestedCalendar() {
	case "", "gregory", r.Calendar:
		return true
	}
	return false
}
