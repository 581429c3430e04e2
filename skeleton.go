package dtformat

import "strings"

// Skeleton is the ordered list of requested fields, without widths.
type Skeleton []FieldKind

// canonicalOrder is the fixed order fields are appended in, independent of option order.
var canonicalOrder = []FieldKind{
	FieldYear,
	FieldMonth,
	FieldDay,
	FieldHour,
	FieldMinute,
	FieldSecond,
	FieldDayPeriod,
	FieldTimeZoneName,
	FieldWeekday,
	FieldEra,
}

// BuildSkeleton converts options into a skeleton.
// With no year..second option set the skeleton starts as year, month, day.
func BuildSkeleton(opts FormatOptions, pref HourPreference) Skeleton {
	requested := map[FieldKind]bool{
		FieldYear:         opts.Year != "",
		FieldMonth:        opts.Month != "",
		FieldDay:          opts.Day != "",
		FieldHour:         opts.Hour != "",
		FieldMinute:       opts.Minute != "",
		FieldSecond:       opts.Second != "",
		FieldTimeZoneName: opts.TimeZoneName != "",
		FieldWeekday:      opts.Weekday != "",
		FieldEra:          opts.Era != "",
	}

	if !opts.hasDateTimeFields() {
		requested[FieldYear] = true
		requested[FieldMonth] = true
		requested[FieldDay] = true
	}

	if opts.Hour != "" && (pref.HourCycle == HourCycle12 || pref.HourCycle == HourCycle11 || pref.Hour12 == "true") {
		requested[FieldDayPeriod] = true
	}

	skeleton := make(Skeleton, 0, len(canonicalOrder))
	for _, kind := range canonicalOrder {
		if requested[kind] {
			skeleton = append(skeleton, kind)
		}
	}
	return skeleton
}

// Has reports whether kind was requested.
func (s Skeleton) Has(kind FieldKind) bool {
	for _, k := range s {
		if k == kind {
			return true
		}
	}
	return false
}

// Text renders the skeleton as pattern-generator input, encoding the requested widths.
func (s Skeleton) Text(opts FormatOptions, pref HourPreference) string {
	var b strings.Builder
	for _, kind := range s {
		b.WriteString(skeletonRun(kind, opts, pref).String())
	}
	return b.String()
}

func skeletonRun(kind FieldKind, opts FormatOptions, pref HourPreference) Field {
	switch kind {
	case FieldYear:
		return newField('y', numericCount(opts.Year))
	case FieldMonth:
		return newField('M', monthCount(opts.Month))
	case FieldDay:
		return newField('d', numericCount(opts.Day))
	case FieldHour:
		letter := pref.Letter
		if letter == 0 {
			letter = 'j'
		}
		return newField(letter, numericCount(opts.Hour))
	case FieldMinute:
		return newField('m', 2)
	case FieldSecond:
		return newField('s', 2)
	case FieldDayPeriod:
		return newField('a', 1)
	case FieldTimeZoneName:
		if field, ok := zoneNameRun(opts.TimeZoneName); ok {
			return field
		}
		return newField('z', 1)
	case FieldWeekday:
		if field, ok := textRun('E', opts.Weekday); ok {
			return field
		}
		return newField('E', 1)
	case FieldEra:
		if field, ok := textRun('G', opts.Era); ok {
			return field
		}
		return newField('G', 1)
	}
	return Field{}
}

// numericCount maps numeric and 2-digit onto a run length.
func numericCount(value string) int {
	if value == WidthTwoDigit {
		return 2
	}
	return 1
}

var monthCounts = map[string]int{
	WidthNumeric:  1,
	WidthTwoDigit: 2,
	WidthShort:    3,
	WidthLong:     4,
	WidthNarrow:   5,
}

func monthCount(value string) int {
	if count, ok := monthCounts[value]; ok {
		return count
	}
	return 1
}

// textRun returns the run for the long/short/narrow forms of a weekday or era letter.
func textRun(letter byte, value string) (Field, bool) {
	switch value {
	case WidthLong:
		return newField(letter, 4), true
	case WidthShort:
		return newField(letter, 1), true
	case WidthNarrow:
		return newField(letter, 5), true
	}
	return Field{}, false
}

func zoneNameRun(value string) (Field, bool) {
	switch value {
	case WidthLong:
		return newField('z', 4), true
	case WidthShort:
		return newField('O', 1), true
	}
	return Field{}, false
}
