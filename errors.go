package dtformat

import "errors"

// ErrConstruction indicates that no usable formatter could be built for any candidate locale,
// including the system locale fallback.
var ErrConstruction = errors.New("dtformat: formatter construction failed")

// ErrUnsupportedLocale marks a candidate locale whose base language has no locale data.
var ErrUnsupportedLocale = errors.New("dtformat: unsupported locale")

// ErrNoLocaleData is returned when the locale data store has no entry for a locale chain.
var ErrNoLocaleData = errors.New("dtformat: no locale data")

// ErrRangeCalendar signals that a range endpoint could not be turned into a calendar value.
var ErrRangeCalendar = errors.New("dtformat: range calendar unavailable")

// ErrMissingPattern indicates that the locale data lacks a style pattern.
var ErrMissingPattern = errors.New("dtformat: missing pattern")
