package dtformat

import (
	"fmt"
	"sort"
	"strings"
)

// categoryMismatch outweighs any width difference when numeric and text forms are compared.
const categoryMismatch = 0x1000

// PatternGenerator produces locale patterns from styles and skeletons.
type PatternGenerator struct {
	data          *LocaleData
	preferredHour byte
	available     []availableFormat
}

type availableFormat struct {
	key     string
	fields  map[FieldKind]Field
	pattern Pattern
}

// NewPatternGenerator builds a generator for the merged data of locale.
func NewPatternGenerator(locale string) (*PatternGenerator, error) {
	store, err := loadedLocaleStore()
	if err != nil {
		return nil, err
	}
	data, err := store.resolve(locale)
	if err != nil {
		return nil, err
	}
	return newPatternGenerator(data), nil
}

func newPatternGenerator(data *LocaleData) *PatternGenerator {
	g := &PatternGenerator{
		data:          data,
		preferredHour: preferredHourLetter(data.HourCycle),
	}

	keys := make([]string, 0, len(data.AvailableFormats))
	for key := range data.AvailableFormats {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		g.available = append(g.available, availableFormat{
			key:     key,
			fields:  skeletonOf(ParsePattern(key)),
			pattern: ParsePattern(data.AvailableFormats[key]),
		})
	}
	return g
}

func preferredHourLetter(hourCycle string) byte {
	switch hourCycle {
	case HourCycle11:
		return 'K'
	case HourCycle12:
		return 'h'
	case HourCycle24:
		return 'k'
	}
	return 'H'
}

// PreferredHour returns the hour letter the locale uses when none is requested.
func (g *PatternGenerator) PreferredHour() byte {
	if g == nil {
		return 'H'
	}
	return g.preferredHour
}

// StylePattern returns the locale pattern for a date and time style pair.
// When both are set the pattern is glued with the date style's dateTime format.
func (g *PatternGenerator) StylePattern(date, time Style) (Pattern, error) {
	if g == nil || g.data == nil {
		return Pattern{}, ErrNoLocaleData
	}

	var datePattern, timePattern string
	if date != StyleNone {
		datePattern = g.data.DateFormats[string(date)]
		if datePattern == "" {
			return Pattern{}, fmt.Errorf("%w: date style %s", ErrMissingPattern, date)
		}
	}
	if time != StyleNone {
		timePattern = g.data.TimeFormats[string(time)]
		if timePattern == "" {
			return Pattern{}, fmt.Errorf("%w: time style %s", ErrMissingPattern, time)
		}
	}

	switch {
	case datePattern != "" && timePattern != "":
		glue := g.data.DateTimeFormats[string(date)]
		if glue == "" {
			glue = "{1} {0}"
		}
		return ParsePattern(combineDateTime(glue, datePattern, timePattern)), nil
	case datePattern != "":
		return ParsePattern(datePattern), nil
	case timePattern != "":
		return ParsePattern(timePattern), nil
	}
	return Pattern{}, fmt.Errorf("%w: no date or time style", ErrMissingPattern)
}

// combineDateTime fills a dateTime glue pattern, {1} being the date and {0} the time.
func combineDateTime(glue, date, time string) string {
	return strings.NewReplacer("{1}", date, "{0}", time).Replace(glue)
}

// BestPattern returns the locale pattern that best matches a skeleton.
// Date and time fields are matched separately and joined with the dateTime glue.
func (g *PatternGenerator) BestPattern(skeleton string) Pattern {
	if g == nil || g.data == nil {
		return Pattern{}
	}

	request := g.requestFields(skeleton)
	if len(request) == 0 {
		return Pattern{}
	}

	dateRequest := make(map[FieldKind]Field)
	timeRequest := make(map[FieldKind]Field)
	for kind, field := range request {
		if kind.IsDate() {
			dateRequest[kind] = field
			continue
		}
		timeRequest[kind] = field
	}

	datePattern := g.matchPart(dateRequest)
	timePattern := g.matchPart(timeRequest)

	switch {
	case datePattern.IsEmpty():
		return timePattern
	case timePattern.IsEmpty():
		return datePattern
	}

	glue := g.data.DateTimeFormats[string(glueStyle(dateRequest))]
	if glue == "" {
		glue = "{1} {0}"
	}
	return ParsePattern(combineDateTime(glue, datePattern.String(), timePattern.String()))
}

// glueStyle picks the dateTime glue the way the requested month width and weekday suggest.
func glueStyle(request map[FieldKind]Field) Style {
	month, hasMonth := request[FieldMonth]
	_, hasWeekday := request[FieldWeekday]
	switch {
	case hasMonth && month.Count >= 4 && hasWeekday:
		return StyleFull
	case hasMonth && month.Count >= 4:
		return StyleLong
	case hasMonth && month.Count == 3:
		return StyleMedium
	}
	return StyleShort
}

// ReplaceFieldTypes adjusts the field widths and letters of p to those requested by skeleton,
// keeping the pattern's order and literals.
func (g *PatternGenerator) ReplaceFieldTypes(p Pattern, skeleton string) Pattern {
	if g == nil {
		return p
	}
	return adjustFields(p, g.requestFields(skeleton))
}

// requestFields parses a skeleton and resolves the locale-dependent hour letters.
func (g *PatternGenerator) requestFields(skeleton string) map[FieldKind]Field {
	request := make(map[FieldKind]Field)
	for _, field := range ParsePattern(skeleton).Fields() {
		if field.Kind == FieldUnknown {
			continue
		}
		if field.Kind == FieldHour {
			switch field.Letter {
			case 'j', 'J', 'C':
				field.Letter = g.preferredHour
			}
		}
		if _, seen := request[field.Kind]; seen {
			continue
		}
		request[field.Kind] = field
	}
	return request
}

// appendOrder is the order missing fields are appended after a partial match.
var appendOrder = []FieldKind{FieldEra, FieldWeekday, FieldTimeZoneName}

func (g *PatternGenerator) matchPart(request map[FieldKind]Field) Pattern {
	if len(request) == 0 {
		return Pattern{}
	}

	if match, ok := g.closest(request); ok {
		return completeDayPeriod(adjustFields(match, request), request)
	}

	var optional []FieldKind
	for _, kind := range appendOrder {
		if _, ok := request[kind]; ok {
			optional = append(optional, kind)
		}
	}

	// try dropping as few appendable fields as possible
	for removed := 1; removed <= len(optional); removed++ {
		for _, subset := range combinations(optional, removed) {
			reduced := make(map[FieldKind]Field, len(request))
			for kind, field := range request {
				reduced[kind] = field
			}
			for _, kind := range subset {
				delete(reduced, kind)
			}
			if len(reduced) == 0 {
				continue
			}
			match, ok := g.closest(reduced)
			if !ok {
				continue
			}
			pattern := completeDayPeriod(adjustFields(match, reduced), reduced)
			for _, kind := range subset {
				pattern = appendItem(pattern, request[kind])
			}
			return pattern
		}
	}

	return fallbackPattern(request)
}

// closest finds the available format with the same field set and the smallest width distance.
func (g *PatternGenerator) closest(request map[FieldKind]Field) (Pattern, bool) {
	var (
		best      Pattern
		bestScore = -1
	)
	for _, candidate := range g.available {
		score, ok := matchScore(request, candidate.fields)
		if !ok {
			continue
		}
		if bestScore < 0 || score < bestScore {
			best = candidate.pattern
			bestScore = score
		}
	}
	return best, bestScore >= 0
}

// matchScore compares field sets, ignoring day periods, and requires the same hour class.
func matchScore(request, candidate map[FieldKind]Field) (int, bool) {
	count := 0
	for kind := range candidate {
		if kind == FieldDayPeriod {
			continue
		}
		count++
		if _, ok := request[kind]; !ok {
			return 0, false
		}
	}
	for kind := range request {
		if kind == FieldDayPeriod {
			continue
		}
		count--
	}
	if count != 0 {
		return 0, false
	}

	score := 0
	for kind, want := range request {
		if kind == FieldDayPeriod {
			continue
		}
		have := candidate[kind]
		if kind == FieldHour && isTwelveHourLetter(want.Letter) != isTwelveHourLetter(have.Letter) {
			return 0, false
		}
		if want.Text() != have.Text() {
			score += categoryMismatch
			continue
		}
		diff := want.Count - have.Count
		if diff < 0 {
			diff = -diff
		}
		score += diff
	}
	return score, true
}

// adjustFields rewrites the runs of p towards the requested widths and letters.
func adjustFields(p Pattern, request map[FieldKind]Field) Pattern {
	return p.MapFields(func(f Field) Field {
		want, ok := request[f.Kind]
		if !ok {
			return f
		}
		switch f.Kind {
		case FieldYear:
			if want.Count == 2 {
				f.Count = 2
			}
		case FieldMonth:
			if want.Text() == f.Text() {
				f.Count = want.Count
			}
		case FieldDay, FieldEra:
			f.Count = want.Count
		case FieldWeekday:
			if f.Letter == 'E' {
				f.Count = want.Count
			} else {
				f.Count = max(want.Count, 3)
			}
		case FieldHour:
			f.Letter = want.Letter
		case FieldTimeZoneName:
			f.Letter = want.Letter
			f.Count = want.Count
		}
		return f
	})
}

// completeDayPeriod adds an AM/PM run when a twelve-hour request matched a pattern without one.
func completeDayPeriod(p Pattern, request map[FieldKind]Field) Pattern {
	hour, ok := request[FieldHour]
	if !ok || !isTwelveHourLetter(hour.Letter) || p.Has(FieldDayPeriod) {
		return p
	}
	return appendItem(p, newField('a', 1))
}

// appendItem applies the "{0} {1}" append format.
func appendItem(p Pattern, field Field) Pattern {
	return concatPatterns(" ", p, Pattern{tokens: []patternToken{{field: field}}})
}

var fallbackOrder = []FieldKind{
	FieldEra,
	FieldYear,
	FieldQuarter,
	FieldMonth,
	FieldDay,
	FieldDayOfYear,
	FieldWeekday,
	FieldHour,
	FieldMinute,
	FieldSecond,
	FieldFraction,
	FieldDayPeriod,
	FieldTimeZoneName,
}

// fallbackPattern joins the requested runs with spaces when nothing in the locale matches.
func fallbackPattern(request map[FieldKind]Field) Pattern {
	var parts []Pattern
	for _, kind := range fallbackOrder {
		field, ok := request[kind]
		if !ok {
			continue
		}
		if kind == FieldDayPeriod {
			continue
		}
		parts = append(parts, Pattern{tokens: []patternToken{{field: field}}})
	}
	return completeDayPeriod(concatPatterns(" ", parts...), request)
}

func combinations(kinds []FieldKind, size int) [][]FieldKind {
	if size == 0 {
		return [][]FieldKind{nil}
	}
	if len(kinds) < size {
		return nil
	}
	var out [][]FieldKind
	for _, rest := range combinations(kinds[1:], size-1) {
		out = append(out, append([]FieldKind{kinds[0]}, rest...))
	}
	out = append(out, combinations(kinds[1:], size)...)
	return out
}
