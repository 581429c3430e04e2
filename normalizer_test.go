package dtformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripDayPeriod(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"trailing", "h:mm a", "h:mm"},
		{"leading", "a h:mm", "h:mm"},
		{"middle", "h:mm a zzzz", "h:mm zzzz"},
		{"no space", "aK:mm", "K:mm"},
		{"skips literal at", "EEEE, MMMM d, y 'at' h:mm:ss a zzzz", "EEEE, MMMM d, y 'at' h:mm:ss zzzz"},
		{"only first marker", "a h:mm a", "h:mm a"},
		{"absent", "HH:mm:ss", "HH:mm:ss"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripDayPeriod(tt.pattern))
		})
	}
}

func TestResolveHourPreference(t *testing.T) {
	clock12 := StaticSystem{}
	clock24 := StaticSystem{Use24HourClock: true}

	tests := []struct {
		name        string
		opts        map[string]string
		localeCycle string
		system      System
		letter      byte
		strip       bool
		hour12      string
		hourCycle   string
	}{
		{
			name:      "hour12 true wins over hourCycle",
			opts:      map[string]string{KeyHour12: "true", KeyHourCycle: HourCycle23},
			system:    clock12,
			letter:    'h',
			hour12:    "true",
			hourCycle: HourCycle23,
		},
		{
			name:   "hour12 false",
			opts:   map[string]string{KeyHour12: "false"},
			system: clock12,
			letter: 'H',
			strip:  true,
			hour12: "false",
		},
		{
			name:      "unrecognised hour12 still wins over hourCycle",
			opts:      map[string]string{KeyHour12: "yes", KeyHourCycle: HourCycle11},
			system:    clock12,
			letter:    'H',
			strip:     true,
			hour12:    "yes",
			hourCycle: HourCycle11,
		},
		{
			name:      "h11",
			opts:      map[string]string{KeyHourCycle: HourCycle11},
			system:    clock12,
			letter:    'K',
			hourCycle: HourCycle11,
		},
		{
			name:      "h12",
			opts:      map[string]string{KeyHourCycle: HourCycle12},
			system:    clock24,
			letter:    'h',
			hourCycle: HourCycle12,
		},
		{
			name:      "h23",
			opts:      map[string]string{KeyHourCycle: HourCycle23},
			system:    clock12,
			letter:    'H',
			strip:     true,
			hourCycle: HourCycle23,
		},
		{
			name:      "h24",
			opts:      map[string]string{KeyHourCycle: HourCycle24},
			system:    clock12,
			letter:    'k',
			strip:     true,
			hourCycle: HourCycle24,
		},
		{
			name:        "locale extension",
			opts:        map[string]string{KeyDateStyle: "short"},
			localeCycle: HourCycle23,
			system:      clock12,
			letter:      'H',
			strip:       true,
			hourCycle:   HourCycle23,
		},
		{
			name:   "system 24-hour clock",
			opts:   map[string]string{KeyDateStyle: "short"},
			system: clock24,
			letter: 'H',
			strip:  true,
			hour12: "false",
		},
		{
			name:   "locale decides",
			opts:   map[string]string{KeyDateStyle: "short"},
			system: clock12,
		},
		{
			name:      "unknown hourCycle ignored",
			opts:      map[string]string{KeyHourCycle: "h99"},
			system:    clock24,
			hourCycle: "h99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pref := ResolveHourPreference(ParseOptions(tt.opts), tt.localeCycle, tt.system)
			assert.Equal(t, tt.letter, pref.Letter)
			assert.Equal(t, tt.strip, pref.StripDayPeriod)
			assert.Equal(t, tt.hour12, pref.Hour12)
			assert.Equal(t, tt.hourCycle, pref.HourCycle)
		})
	}
}

func TestFixHourCycle(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		pref    HourPreference
		want    string
	}{
		{"h23 strips marker", "h:mm:ss a", HourPreference{Letter: 'H', StripDayPeriod: true}, "H:mm:ss"},
		{"h24 keeps literal", "EEEE, MMMM d, y 'at' h:mm a", HourPreference{Letter: 'k', StripDayPeriod: true}, "EEEE, MMMM d, y 'at' k:mm"},
		{"h11 keeps marker", "h:mm a", HourPreference{Letter: 'K'}, "K:mm a"},
		{"twelve-hour onto 24-hour pattern", "HH:mm", HourPreference{Letter: 'h'}, "hh:mm"},
		{"no preference", "h:mm a", HourPreference{}, "h:mm a"},
		{"date only", "M/d/yy", HourPreference{Letter: 'k', StripDayPeriod: true}, "M/d/yy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fixHourCycle(ParsePattern(tt.pattern), tt.pref)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestEnforceWidths(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		opts    map[string]string
		want    string
	}{
		{"weekday short", "EEEE, MMM d, y", map[string]string{KeyWeekday: WidthShort}, "E, MMM d, y"},
		{"weekday narrow", "E, MMM d", map[string]string{KeyWeekday: WidthNarrow}, "EEEEE, MMM d"},
		{"era long", "y G", map[string]string{KeyEra: WidthLong}, "y GGGG"},
		{"month narrow", "MMM d", map[string]string{KeyMonth: WidthNarrow}, "MMMMM d"},
		{"month 2-digit", "M/d", map[string]string{KeyMonth: WidthTwoDigit}, "MM/d"},
		{"numeric month in locale text", "M月d日", map[string]string{KeyMonth: WidthLong}, "M月d日"},
		{"two-digit day and year", "M/d/y", map[string]string{KeyDay: WidthTwoDigit, KeyYear: WidthTwoDigit}, "M/dd/yy"},
		{"numeric hour", "HH:mm", map[string]string{KeyHour: WidthNumeric, KeyMinute: WidthNumeric}, "H:mm"},
		{"zone long", "h:mm a z", map[string]string{KeyTimeZoneName: WidthLong}, "h:mm a zzzz"},
		{"zone short", "h:mm a v", map[string]string{KeyTimeZoneName: WidthShort}, "h:mm a O"},
		{"unknown values ignored", "MMM d, y", map[string]string{KeyMonth: "tiny", KeyYear: "huge"}, "MMM d, y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enforceWidths(ParsePattern(tt.pattern), ParseOptions(tt.opts))
			assert.Equal(t, tt.want, got.String())
		})
	}
}
