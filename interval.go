package dtformat

import (
	"strings"
	"time"
)

// difference ranks the greatest calendar difference between two instants, coarsest first.
type difference int

const (
	diffNone difference = iota
	diffYear
	diffMonth
	diffDay
	diffDayPeriod
	diffHour
	diffMinute
	diffSecond
)

func greatestDifference(a, b time.Time) difference {
	switch {
	case a.Year() != b.Year():
		return diffYear
	case a.Month() != b.Month():
		return diffMonth
	case a.Day() != b.Day():
		return diffDay
	case (a.Hour() < 12) != (b.Hour() < 12):
		return diffDayPeriod
	case a.Hour() != b.Hour():
		return diffHour
	case a.Minute() != b.Minute():
		return diffMinute
	case a.Second() != b.Second():
		return diffSecond
	}
	return diffNone
}

// granularity is the finest difference a field can display.
func granularity(kind FieldKind) difference {
	switch kind {
	case FieldEra, FieldYear:
		return diffYear
	case FieldQuarter, FieldMonth:
		return diffMonth
	case FieldDay, FieldWeekday, FieldDayOfYear:
		return diffDay
	case FieldDayPeriod:
		return diffDayPeriod
	case FieldHour:
		return diffHour
	case FieldMinute:
		return diffMinute
	case FieldSecond, FieldFraction:
		return diffSecond
	}
	return diffNone
}

func finestGranularity(p Pattern) difference {
	finest := diffNone
	for _, f := range p.Fields() {
		if g := granularity(f.Kind); g > finest {
			finest = g
		}
	}
	return finest
}

// intervalFormatter renders ranges for one compiled pattern.
type intervalFormatter struct {
	pattern   Pattern
	finest    difference
	fallback  string
	intervals intervalSet

	// set when the pattern is a date part, a literal glue and a time part, in that order
	mixed     bool
	datePart  Pattern
	gluePart  Pattern
	timePart  Pattern
	timeRange intervalSet
}

// intervalSet holds interval patterns keyed by greatest-difference letter.
type intervalSet struct {
	twelveHour bool
	patterns   map[byte]Pattern
}

func newIntervalFormatter(p Pattern, data *LocaleData) intervalFormatter {
	f := intervalFormatter{
		pattern:  p,
		finest:   finestGranularity(p),
		fallback: data.IntervalFallback,
	}
	if f.fallback == "" {
		f.fallback = "{0} – {1}"
	}

	datePart, gluePart, timePart, ok := splitDateTime(p)
	if ok {
		f.mixed = true
		f.datePart = datePart
		f.gluePart = gluePart
		f.timePart = timePart
		f.timeRange = lookupIntervals(timePart, data)
		return f
	}

	f.intervals = lookupIntervals(p, data)
	return f
}

// splitDateTime separates a pattern whose date fields all precede its time fields.
func splitDateTime(p Pattern) (date, glue, clock Pattern, ok bool) {
	lastDate, firstTime := -1, -1
	for i, tok := range p.tokens {
		if !tok.isField() {
			continue
		}
		switch {
		case tok.field.Kind.IsDate():
			if firstTime >= 0 {
				return Pattern{}, Pattern{}, Pattern{}, false
			}
			lastDate = i
		case tok.field.Kind.IsTime():
			if firstTime < 0 {
				firstTime = i
			}
		}
	}
	if lastDate < 0 || firstTime < 0 {
		return Pattern{}, Pattern{}, Pattern{}, false
	}
	return p.slice(0, lastDate+1), p.slice(lastDate+1, firstTime), p.slice(firstTime, len(p.tokens)), true
}

// lookupIntervals finds the intervalFormats entry closest to the fields of p and
// adjusts its patterns to the widths p uses.
func lookupIntervals(p Pattern, data *LocaleData) intervalSet {
	request := skeletonOf(p)
	set := intervalSet{}
	if hour, ok := request[FieldHour]; ok {
		set.twelveHour = isTwelveHourLetter(hour.Letter)
	}

	var (
		best      map[string]string
		bestKey   string
		bestScore = -1
	)
	for key, byDiff := range data.IntervalFormats {
		score, ok := matchScore(request, skeletonOf(ParsePattern(key)))
		if !ok {
			continue
		}
		if bestScore < 0 || score < bestScore || (score == bestScore && key < bestKey) {
			best, bestKey, bestScore = byDiff, key, score
		}
	}
	if best == nil {
		return set
	}

	set.patterns = make(map[byte]Pattern, len(best))
	for diff, pattern := range best {
		if diff == "" {
			continue
		}
		set.patterns[diff[0]] = adjustFields(ParsePattern(pattern), request)
	}
	return set
}

func (s intervalSet) lookup(diff difference) (Pattern, bool) {
	var letter byte
	switch diff {
	case diffYear:
		letter = 'y'
	case diffMonth:
		letter = 'M'
	case diffDay:
		letter = 'd'
	case diffDayPeriod:
		letter = 'H'
		if s.twelveHour {
			letter = 'a'
		}
	case diffHour:
		letter = 'H'
		if s.twelveHour {
			letter = 'h'
		}
	case diffMinute:
		letter = 'm'
	default:
		return Pattern{}, false
	}
	p, ok := s.patterns[letter]
	return p, ok
}

func (f intervalFormatter) format(r renderer, a, b time.Time) string {
	diff := greatestDifference(a, b)
	if diff == diffNone || diff > f.finest {
		return r.render(f.pattern, a)
	}

	if f.mixed {
		if diff < diffDayPeriod {
			return f.fallbackRange(r, f.pattern, a, b)
		}
		var out strings.Builder
		out.WriteString(r.render(f.datePart, a))
		out.WriteString(r.render(f.gluePart, a))
		if ip, ok := f.timeRange.lookup(diff); ok {
			out.WriteString(renderInterval(r, ip, a, b))
		} else {
			out.WriteString(f.fallbackRange(r, f.timePart, a, b))
		}
		return out.String()
	}

	if ip, ok := f.intervals.lookup(diff); ok {
		return renderInterval(r, ip, a, b)
	}
	return f.fallbackRange(r, f.pattern, a, b)
}

func (f intervalFormatter) fallbackRange(r renderer, p Pattern, a, b time.Time) string {
	return strings.NewReplacer("{0}", r.render(p, a), "{1}", r.render(p, b)).Replace(f.fallback)
}

// renderInterval renders the part before the first repeated field with a and the rest with b.
func renderInterval(r renderer, ip Pattern, a, b time.Time) string {
	seen := make(map[FieldKind]struct{})
	split := len(ip.tokens)
	for i, tok := range ip.tokens {
		if !tok.isField() {
			continue
		}
		if _, ok := seen[tok.field.Kind]; ok {
			split = i
			break
		}
		seen[tok.field.Kind] = struct{}{}
	}
	return r.render(ip.slice(0, split), a) + r.render(ip.slice(split, len(ip.tokens)), b)
}
