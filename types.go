package dtformat

// Option keys recognised by ParseOptions.
const (
	KeyDateStyle       = "dateStyle"
	KeyTimeStyle       = "timeStyle"
	KeyYear            = "year"
	KeyMonth           = "month"
	KeyDay             = "day"
	KeyHour            = "hour"
	KeyMinute          = "minute"
	KeySecond          = "second"
	KeyHourCycle       = "hourCycle"
	KeyTimeZone        = "timeZone"
	KeyNumberingSystem = "numberingSystem"
	KeyHour12          = "hour12"
	KeyWeekday         = "weekday"
	KeyEra             = "era"
	KeyTimeZoneName    = "timeZoneName"
	KeyDayPeriod       = "dayPeriod"
	KeyLocaleMatcher   = "localeMatcher"
	KeyFormatMatcher   = "formatMatcher"
	KeyLocale          = "locale"
	KeyCalendar        = "calendar"
)

// Style is a named verbosity preset for dateStyle and timeStyle.
type Style string

const (
	StyleNone   Style = ""
	StyleFull   Style = "full"
	StyleLong   Style = "long"
	StyleMedium Style = "medium"
	StyleShort  Style = "short"
)

var styleTable = map[string]Style{
	"full":   StyleFull,
	"long":   StyleLong,
	"medium": StyleMedium,
	"short":  StyleShort,
}

// lookupStyle maps a raw option value onto a Style. Unknown values map to StyleNone.
func lookupStyle(value string) Style {
	if style, ok := styleTable[value]; ok {
		return style
	}
	return StyleNone
}

// Field width and form values.
const (
	WidthNumeric  = "numeric"
	WidthTwoDigit = "2-digit"
	WidthLong     = "long"
	WidthShort    = "short"
	WidthNarrow   = "narrow"
)

// Hour cycle values.
const (
	HourCycle11 = "h11"
	HourCycle12 = "h12"
	HourCycle23 = "h23"
	HourCycle24 = "h24"
)

// FieldKind identifies a calendar field independently of its pattern letter.
type FieldKind uint8

const (
	FieldUnknown FieldKind = iota
	FieldEra
	FieldYear
	FieldQuarter
	FieldMonth
	FieldWeekday
	FieldDay
	FieldDayOfYear
	FieldDayPeriod
	FieldHour
	FieldMinute
	FieldSecond
	FieldFraction
	FieldTimeZoneName
)

var fieldKindNames = map[FieldKind]string{
	FieldUnknown:      "unknown",
	FieldEra:          "era",
	FieldYear:         "year",
	FieldQuarter:      "quarter",
	FieldMonth:        "month",
	FieldWeekday:      "weekday",
	FieldDay:          "day",
	FieldDayOfYear:    "dayOfYear",
	FieldDayPeriod:    "dayPeriod",
	FieldHour:         "hour",
	FieldMinute:       "minute",
	FieldSecond:       "second",
	FieldFraction:     "fraction",
	FieldTimeZoneName: "timeZoneName",
}

func (k FieldKind) String() string {
	if name, ok := fieldKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsDate reports whether the field belongs to the date half of a pattern.
func (k FieldKind) IsDate() bool {
	switch k {
	case FieldEra, FieldYear, FieldQuarter, FieldMonth, FieldWeekday, FieldDay, FieldDayOfYear:
		return true
	}
	return false
}

// IsTime reports whether the field belongs to the time half of a pattern.
func (k FieldKind) IsTime() bool {
	switch k {
	case FieldDayPeriod, FieldHour, FieldMinute, FieldSecond, FieldFraction, FieldTimeZoneName:
		return true
	}
	return false
}

// kindForLetter classifies an LDML pattern letter.
func kindForLetter(letter byte) FieldKind {
	switch letter {
	case 'G':
		return FieldEra
	case 'y', 'Y', 'u', 'U', 'r':
		return FieldYear
	case 'Q', 'q':
		return FieldQuarter
	case 'M', 'L':
		return FieldMonth
	case 'E', 'c', 'e':
		return FieldWeekday
	case 'd':
		return FieldDay
	case 'D':
		return FieldDayOfYear
	case 'a', 'b', 'B':
		return FieldDayPeriod
	case 'h', 'H', 'k', 'K', 'j', 'J', 'C':
		return FieldHour
	case 'm':
		return FieldMinute
	case 's':
		return FieldSecond
	case 'S':
		return FieldFraction
	case 'z', 'Z', 'O', 'v', 'V', 'X', 'x':
		return FieldTimeZoneName
	}
	return FieldUnknown
}

// isTextForm reports whether a run renders as names rather than digits.
func isTextForm(letter byte, count int) bool {
	switch kindForLetter(letter) {
	case FieldMonth, FieldQuarter:
		return count >= 3
	case FieldWeekday:
		if letter == 'E' {
			return true
		}
		return count >= 3
	case FieldEra, FieldDayPeriod, FieldTimeZoneName:
		return true
	}
	return false
}

// isTwelveHourLetter reports whether an hour letter belongs to a cycle with an AM/PM concept.
func isTwelveHourLetter(letter byte) bool {
	return letter == 'h' || letter == 'K'
}
