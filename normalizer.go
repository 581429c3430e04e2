package dtformat

// HourPreference is the outcome of hour-cycle defaulting.
type HourPreference struct {
	// Letter is the hour letter to use, or 0 when the locale decides.
	Letter byte
	// StripDayPeriod marks cycles without an AM/PM concept.
	StripDayPeriod bool
	// Hour12 and HourCycle are the effective values after locale and system defaults.
	Hour12    string
	HourCycle string
}

// ResolveHourPreference applies hour-cycle defaulting. A set hour12 always wins over hourCycle;
// hourCycle falls back to the locale's -u-hc- value; with neither set a 24-hour system
// clock turns into hour12=false.
func ResolveHourPreference(opts FormatOptions, localeHourCycle string, system System) HourPreference {
	pref := HourPreference{
		Hour12:    opts.Hour12,
		HourCycle: opts.HourCycle,
	}
	if pref.HourCycle == "" {
		pref.HourCycle = localeHourCycle
	}
	if pref.Hour12 == "" && pref.HourCycle == "" && system != nil && system.Is24HourClock() {
		pref.Hour12 = "false"
	}

	// Any hour12 value other than "true" selects the 24-hour clock.
	switch pref.Hour12 {
	case "":
	case "true":
		pref.Letter = 'h'
		return pref
	default:
		pref.Letter = 'H'
		pref.StripDayPeriod = true
		return pref
	}

	switch pref.HourCycle {
	case HourCycle11:
		pref.Letter = 'K'
	case HourCycle12:
		pref.Letter = 'h'
	case HourCycle23:
		pref.Letter = 'H'
		pref.StripDayPeriod = true
	case HourCycle24:
		pref.Letter = 'k'
		pref.StripDayPeriod = true
	}
	return pref
}

// fixHourCycle substitutes every hour run with the preferred letter and drops the AM/PM
// marker for cycles without one. Literal text is never rewritten.
func fixHourCycle(p Pattern, pref HourPreference) Pattern {
	if pref.Letter == 0 {
		return p
	}

	fixed := p.MapFields(func(f Field) Field {
		switch f.Letter {
		case 'h', 'H', 'k', 'K':
			f.Letter = pref.Letter
		}
		return f
	})

	if !pref.StripDayPeriod {
		return fixed
	}
	return ParsePattern(stripDayPeriod(fixed.String()))
}

// stripDayPeriod removes the first "a" marker from pattern text together with its
// surrounding spaces. An "a" directly followed by "t" is taken to be part of the
// literal "at" and skipped. A marker touching either end of the text is deleted;
// one in the middle is replaced with a single space.
func stripDayPeriod(pattern string) string {
	start, end := 0, 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != 'a' {
			continue
		}
		if i+1 < len(pattern) && pattern[i+1] == 't' {
			continue
		}
		if i == 0 {
			start = i
		} else {
			start = i - 1
			for start > 0 && pattern[start] == ' ' {
				start--
			}
			if start != 0 || pattern[start] != ' ' {
				start++
			}
		}
		end = i + 1
		for end < len(pattern) && pattern[end] == ' ' {
			end++
		}
		break
	}

	if end-start == 0 {
		return pattern
	}
	if start == 0 || end == len(pattern) {
		return pattern[:start] + pattern[end:]
	}
	return pattern[:start] + " " + pattern[end:]
}

// enforceWidths forces the requested widths onto the generated runs. Unknown option
// values are ignored.
func enforceWidths(p Pattern, opts FormatOptions) Pattern {
	return p.MapFields(func(f Field) Field {
		switch f.Kind {
		case FieldMonth:
			want, ok := monthCounts[opts.Month]
			// a numeric month embedded in locale text (e.g. "M月") keeps its form
			if ok && f.Count != want && isTextForm('M', want) == f.Text() {
				f.Count = want
			}
		case FieldWeekday:
			if want, ok := textRun('E', opts.Weekday); ok && textForm(f) != opts.Weekday {
				f = want
			}
		case FieldEra:
			if want, ok := textRun('G', opts.Era); ok && textForm(f) != opts.Era {
				f = want
			}
		case FieldYear:
			f.Count = numericWidth(opts.Year, f.Count)
		case FieldDay:
			f.Count = numericWidth(opts.Day, f.Count)
		case FieldHour:
			f.Count = numericWidth(opts.Hour, f.Count)
		case FieldMinute:
			if opts.Minute != "" {
				f.Count = 2
			}
		case FieldSecond:
			if opts.Second != "" {
				f.Count = 2
			}
		case FieldTimeZoneName:
			if want, ok := zoneNameRun(opts.TimeZoneName); ok {
				f = want
			}
		}
		return f
	})
}

func numericWidth(value string, current int) int {
	switch value {
	case WidthTwoDigit:
		return 2
	case WidthNumeric:
		return 1
	}
	return current
}

// textForm names the form a weekday or era run renders in.
func textForm(f Field) string {
	switch {
	case f.Count == 4:
		return WidthLong
	case f.Count == 5:
		return WidthNarrow
	case f.Letter == 'E' || f.Letter == 'G':
		return WidthShort
	case f.Count == 3 || f.Count == 6:
		return WidthShort
	}
	return WidthNumeric
}
