package dtformat

// FormatOptions is the parsed, immutable option record of a formatter.
// Every field holds the raw configured value, or "" when the key was absent.
type FormatOptions struct {
	DateStyle       string `json:"dateStyle,omitempty" yaml:"dateStyle,omitempty" toml:"dateStyle,omitempty"`
	TimeStyle       string `json:"timeStyle,omitempty" yaml:"timeStyle,omitempty" toml:"timeStyle,omitempty"`
	Year            string `json:"year,omitempty" yaml:"year,omitempty" toml:"year,omitempty"`
	Month           string `json:"month,omitempty" yaml:"month,omitempty" toml:"month,omitempty"`
	Day             string `json:"day,omitempty" yaml:"day,omitempty" toml:"day,omitempty"`
	Hour            string `json:"hour,omitempty" yaml:"hour,omitempty" toml:"hour,omitempty"`
	Minute          string `json:"minute,omitempty" yaml:"minute,omitempty" toml:"minute,omitempty"`
	Second          string `json:"second,omitempty" yaml:"second,omitempty" toml:"second,omitempty"`
	HourCycle       string `json:"hourCycle,omitempty" yaml:"hourCycle,omitempty" toml:"hourCycle,omitempty"`
	TimeZone        string `json:"timeZone,omitempty" yaml:"timeZone,omitempty" toml:"timeZone,omitempty"`
	NumberingSystem string `json:"numberingSystem,omitempty" yaml:"numberingSystem,omitempty" toml:"numberingSystem,omitempty"`
	Hour12          string `json:"hour12,omitempty" yaml:"hour12,omitempty" toml:"hour12,omitempty"`
	Weekday         string `json:"weekday,omitempty" yaml:"weekday,omitempty" toml:"weekday,omitempty"`
	Era             string `json:"era,omitempty" yaml:"era,omitempty" toml:"era,omitempty"`
	TimeZoneName    string `json:"timeZoneName,omitempty" yaml:"timeZoneName,omitempty" toml:"timeZoneName,omitempty"`
	DayPeriod       string `json:"dayPeriod,omitempty" yaml:"dayPeriod,omitempty" toml:"dayPeriod,omitempty"`
	LocaleMatcher   string `json:"localeMatcher,omitempty" yaml:"localeMatcher,omitempty" toml:"localeMatcher,omitempty"`
	FormatMatcher   string `json:"formatMatcher,omitempty" yaml:"formatMatcher,omitempty" toml:"formatMatcher,omitempty"`

	empty bool
}

// ParseOptions copies every recognised key verbatim. Values are not validated here;
// unknown values simply fail to take effect later.
func ParseOptions(configs map[string]string) FormatOptions {
	opts := FormatOptions{empty: len(configs) == 0}
	if len(configs) == 0 {
		return opts
	}

	for key, target := range opts.fields() {
		if value, ok := configs[key]; ok {
			*target = value
		}
	}
	return opts
}

// fields maps option keys to the struct fields they populate.
func (o *FormatOptions) fields() map[string]*string {
	return map[string]*string{
		KeyDateStyle:       &o.DateStyle,
		KeyTimeStyle:       &o.TimeStyle,
		KeyYear:            &o.Year,
		KeyMonth:           &o.Month,
		KeyDay:             &o.Day,
		KeyHour:            &o.Hour,
		KeyMinute:          &o.Minute,
		KeySecond:          &o.Second,
		KeyHourCycle:       &o.HourCycle,
		KeyTimeZone:        &o.TimeZone,
		KeyNumberingSystem: &o.NumberingSystem,
		KeyHour12:          &o.Hour12,
		KeyWeekday:         &o.Weekday,
		KeyEra:             &o.Era,
		KeyTimeZoneName:    &o.TimeZoneName,
		KeyDayPeriod:       &o.DayPeriod,
		KeyLocaleMatcher:   &o.LocaleMatcher,
		KeyFormatMatcher:   &o.FormatMatcher,
	}
}

// Map returns the non-empty options keyed by their option names.
func (o FormatOptions) Map() map[string]string {
	out := make(map[string]string)
	for key, value := range o.fields() {
		if *value != "" {
			out[key] = *value
		}
	}
	return out
}

// HasStyle reports whether dateStyle or timeStyle was configured.
func (o FormatOptions) HasStyle() bool {
	return o.DateStyle != "" || o.TimeStyle != ""
}

// hasDateTimeFields reports whether any of year..second was configured.
func (o FormatOptions) hasDateTimeFields() bool {
	return o.Year != "" || o.Month != "" || o.Day != "" ||
		o.Hour != "" || o.Minute != "" || o.Second != ""
}

// Empty reports whether the options came from an empty configuration map.
func (o FormatOptions) Empty() bool {
	return o.empty
}
