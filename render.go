package dtformat

import (
	"strings"
	"time"
)

// renderer turns a pattern and an instant into text for one locale.
type renderer struct {
	data   *LocaleData
	names  nameProvider
	digits digitFormatter
}

func newRenderer(locale ResolvedLocale, numberingSystem string) renderer {
	return renderer{
		data:   locale.data,
		names:  newNameProvider(locale.BaseName),
		digits: newDigitFormatter(locale.tag, numberingSystem),
	}
}

func (r renderer) render(p Pattern, t time.Time) string {
	var b strings.Builder
	for _, tok := range p.tokens {
		if !tok.isField() {
			b.WriteString(tok.text)
			continue
		}
		b.WriteString(r.field(tok.field, t))
	}
	return b.String()
}

func (r renderer) field(f Field, t time.Time) string {
	switch f.Letter {
	case 'G':
		return r.era(f.Count, t.Year())
	case 'y':
		year := eraYear(t.Year())
		if f.Count == 2 {
			return r.digits.format(year%100, 2)
		}
		return r.digits.format(year, f.Count)
	case 'Y':
		year, _ := t.ISOWeek()
		if f.Count == 2 {
			return r.digits.format(year%100, 2)
		}
		return r.digits.format(year, f.Count)
	case 'u', 'r':
		return r.digits.format(t.Year(), f.Count)
	case 'Q', 'q':
		quarter := (int(t.Month())-1)/3 + 1
		if f.Count >= 3 {
			return "Q" + r.digits.format(quarter, 1)
		}
		return r.digits.format(quarter, f.Count)
	case 'M', 'L':
		if f.Count >= 3 {
			return r.names.month(t.Month(), f.Count)
		}
		return r.digits.format(int(t.Month()), f.Count)
	case 'd':
		return r.digits.format(t.Day(), f.Count)
	case 'D':
		return r.digits.format(t.YearDay(), f.Count)
	case 'E':
		return r.names.weekday(t.Weekday(), f.Count)
	case 'c', 'e':
		if f.Count >= 3 {
			return r.names.weekday(t.Weekday(), f.Count)
		}
		return r.digits.format(r.localWeekday(t.Weekday()), f.Count)
	case 'a', 'b', 'B':
		return r.dayPeriod(f.Count, t.Hour())
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return r.digits.format(hour, f.Count)
	case 'H':
		return r.digits.format(t.Hour(), f.Count)
	case 'k':
		hour := t.Hour()
		if hour == 0 {
			hour = 24
		}
		return r.digits.format(hour, f.Count)
	case 'K':
		return r.digits.format(t.Hour()%12, f.Count)
	case 'm':
		return r.digits.format(t.Minute(), f.Count)
	case 's':
		return r.digits.format(t.Second(), f.Count)
	case 'S':
		return r.fraction(f.Count, t.Nanosecond())
	case 'z', 'Z', 'O', 'v', 'V', 'X', 'x':
		return r.zone(f, t)
	}
	return f.String()
}

// eraYear converts an astronomical year into the year of its era (1 BC is year 0).
func eraYear(year int) int {
	if year <= 0 {
		return 1 - year
	}
	return year
}

func (r renderer) era(count, year int) string {
	index := 1
	if year <= 0 {
		index = 0
	}
	names := pickNames(r.data.Eras, count)
	if index < len(names) {
		return names[index]
	}
	return []string{"BC", "AD"}[index]
}

func (r renderer) dayPeriod(count, hour int) string {
	index := 0
	if hour >= 12 {
		index = 1
	}
	names := pickNames(r.data.DayPeriods, count)
	if index < len(names) {
		return names[index]
	}
	return []string{"AM", "PM"}[index]
}

// pickNames selects abbreviated (1-3), wide (4) or narrow (5) names, falling back to abbreviated.
func pickNames(set NameSet, count int) []string {
	switch {
	case count == 4 && len(set.Wide) > 0:
		return set.Wide
	case count >= 5 && len(set.Narrow) > 0:
		return set.Narrow
	}
	return set.Abbreviated
}

var weekdayKeys = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// localWeekday numbers days from the locale's first day of the week, starting at 1.
func (r renderer) localWeekday(day time.Weekday) int {
	first := weekdayKeys[r.data.FirstDayOfWeek]
	return (int(day)-int(first)+7)%7 + 1
}

func (r renderer) fraction(count, nanos int) string {
	digits := padLatin(nanos, 9)
	if count <= 9 {
		digits = digits[:count]
	} else {
		digits += strings.Repeat("0", count-9)
	}
	value := 0
	for _, c := range digits {
		value = value*10 + int(c-'0')
	}
	return r.digits.format(value, count)
}
