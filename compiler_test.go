package dtformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileFor(t *testing.T, locale string, configs map[string]string) Pattern {
	t.Helper()

	gen, err := NewPatternGenerator(locale)
	require.NoError(t, err)

	opts := ParseOptions(configs)
	pref := ResolveHourPreference(opts, "", StaticSystem{})
	p, err := CompilePattern(gen, opts, pref)
	require.NoError(t, err)
	return p
}

func TestCompilePatternStylePath(t *testing.T) {
	tests := []struct {
		name    string
		locale  string
		configs map[string]string
		want    string
	}{
		{"empty config is short date", "en", map[string]string{}, "M/d/yy"},
		{"date only", "en", map[string]string{KeyDateStyle: "long"}, "MMMM d, y"},
		{"time only", "en", map[string]string{KeyTimeStyle: "short"}, "h:mm a"},
		{"glued medium", "en", map[string]string{KeyDateStyle: "medium", KeyTimeStyle: "short"}, "MMM d, y, h:mm a"},
		{"glued full keeps at", "en", map[string]string{KeyDateStyle: "full", KeyTimeStyle: "short"}, "EEEE, MMMM d, y 'at' h:mm a"},
		{"h23 strips marker", "en", map[string]string{KeyTimeStyle: "short", KeyHourCycle: HourCycle23}, "H:mm"},
		{"h24 date only", "en", map[string]string{KeyDateStyle: "short", KeyHourCycle: HourCycle24}, "M/d/yy"},
		{"h11", "en", map[string]string{KeyTimeStyle: "medium", KeyHourCycle: HourCycle11}, "K:mm:ss a"},
		{"hour12 on 24-hour locale", "de", map[string]string{KeyTimeStyle: "short", KeyHour12: "true"}, "hh:mm"},
		{"any other hour12 is 24-hour", "en", map[string]string{KeyTimeStyle: "short", KeyHour12: "yes", KeyHourCycle: HourCycle12}, "H:mm"},
		{"invalid timeStyle ignored", "en", map[string]string{KeyDateStyle: "short", KeyTimeStyle: "tiny"}, "M/d/yy"},
		{"regional override", "en-GB", map[string]string{KeyDateStyle: "short"}, "dd/MM/y"},
		{"inherited glue", "en-GB", map[string]string{KeyDateStyle: "long", KeyTimeStyle: "short"}, "d MMMM y 'at' HH:mm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compileFor(t, tt.locale, tt.configs).String())
		})
	}
}

func TestCompilePatternSkeletonPath(t *testing.T) {
	tests := []struct {
		name    string
		locale  string
		configs map[string]string
		want    string
	}{
		{
			name:    "long month two-digit day",
			locale:  "en",
			configs: map[string]string{KeyYear: WidthNumeric, KeyMonth: WidthLong, KeyDay: WidthTwoDigit},
			want:    "MMMM dd, y",
		},
		{
			name:    "weekday and long month",
			locale:  "en",
			configs: map[string]string{KeyWeekday: WidthLong, KeyYear: WidthNumeric, KeyMonth: WidthLong, KeyDay: WidthNumeric},
			want:    "EEEE, MMMM d, y",
		},
		{
			name:    "both styles invalid",
			locale:  "en",
			configs: map[string]string{KeyDateStyle: "huge", KeyTimeStyle: "tiny"},
			want:    "M/d/y",
		},
		{
			name:    "locale hour cycle",
			locale:  "en",
			configs: map[string]string{KeyHour: WidthNumeric, KeyMinute: WidthTwoDigit},
			want:    "h:mm a",
		},
		{
			name:    "hour12 true beats h23",
			locale:  "en",
			configs: map[string]string{KeyHour: WidthNumeric, KeyMinute: WidthTwoDigit, KeyHour12: "true", KeyHourCycle: HourCycle23},
			want:    "h:mm a",
		},
		{
			name:    "h23 on twelve-hour locale",
			locale:  "en",
			configs: map[string]string{KeyHour: WidthNumeric, KeyMinute: WidthTwoDigit, KeyHourCycle: HourCycle23},
			want:    "H:mm",
		},
		{
			name:    "unrecognised hour12 beats h11",
			locale:  "en",
			configs: map[string]string{KeyHour: WidthNumeric, KeyMinute: WidthNumeric, KeyHour12: "yes", KeyHourCycle: HourCycle11},
			want:    "H:mm",
		},
		{
			name:    "era",
			locale:  "en",
			configs: map[string]string{KeyEra: WidthShort, KeyYear: WidthNumeric},
			want:    "y G",
		},
		{
			name:    "short zone name",
			locale:  "en",
			configs: map[string]string{KeyHour: WidthNumeric, KeyMinute: WidthTwoDigit, KeyTimeZoneName: WidthShort},
			want:    "h:mm a O",
		},
		{
			name:    "date and time glue",
			locale:  "en",
			configs: map[string]string{KeyYear: WidthNumeric, KeyMonth: WidthShort, KeyDay: WidthNumeric, KeyHour: WidthNumeric, KeyMinute: WidthTwoDigit},
			want:    "MMM d, y, h:mm a",
		},
		{
			name:    "german day month",
			locale:  "de",
			configs: map[string]string{KeyMonth: WidthLong, KeyDay: WidthNumeric},
			want:    "d. MMMM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compileFor(t, tt.locale, tt.configs).String())
		})
	}
}

func TestCompilePatternMonthWidths(t *testing.T) {
	tests := []struct {
		width string
		count int
	}{
		{WidthNumeric, 1},
		{WidthTwoDigit, 2},
		{WidthShort, 3},
		{WidthLong, 4},
		{WidthNarrow, 5},
	}

	for _, tt := range tests {
		t.Run(tt.width, func(t *testing.T) {
			p := compileFor(t, "en", map[string]string{
				KeyYear:  WidthNumeric,
				KeyMonth: tt.width,
				KeyDay:   WidthNumeric,
			})
			month, ok := p.Field(FieldMonth)
			require.True(t, ok, p.String())
			assert.Equal(t, tt.count, month.Count, p.String())
		})
	}
}

func TestPatternGeneratorAppendsMissingFields(t *testing.T) {
	gen, err := NewPatternGenerator("en")
	require.NoError(t, err)

	// no availableFormat carries an era without a year
	assert.Equal(t, "M/d G", gen.BestPattern("GMd").String())
	assert.Equal(t, "h a z", gen.BestPattern("hz").String())

	assert.Equal(t, "MMMM d, y G", gen.BestPattern("GyMMMMd").String())
}

func TestPatternGeneratorFallbackJoin(t *testing.T) {
	gen, err := NewPatternGenerator("en")
	require.NoError(t, err)

	p := gen.BestPattern("Dy")
	assert.Equal(t, "y D", p.String())
}

func TestPatternGeneratorPreferredHour(t *testing.T) {
	tests := map[string]byte{
		"en":    'h',
		"en-GB": 'H',
		"de":    'H',
		"ja":    'H',
	}

	for locale, want := range tests {
		t.Run(locale, func(t *testing.T) {
			gen, err := NewPatternGenerator(locale)
			require.NoError(t, err)
			assert.Equal(t, want, gen.PreferredHour())
		})
	}
}

func TestStylePatternMissing(t *testing.T) {
	gen := newPatternGenerator(&LocaleData{DateFormats: map[string]string{"short": "d/M"}})

	_, err := gen.StylePattern(StyleLong, StyleNone)
	assert.ErrorIs(t, err, ErrMissingPattern)

	p, err := gen.StylePattern(StyleShort, StyleNone)
	require.NoError(t, err)
	assert.Equal(t, "d/M", p.String())
}

func TestCompilePatternNilGenerator(t *testing.T) {
	_, err := CompilePattern(nil, ParseOptions(nil), HourPreference{})
	assert.ErrorIs(t, err, ErrNoLocaleData)
}
