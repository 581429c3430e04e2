package dtformat

// ResolvedOptions reports the effective configuration. locale and calendar are always
// present; hourCycle, timeZone and numberingSystem fall back to locale and system
// defaults; every other configured option is echoed.
func (f *DateTimeFormat) ResolvedOptions() map[string]string {
	if f == nil {
		return nil
	}

	resolved := f.options.Map()
	resolved[KeyLocale] = f.locale.BaseName
	resolved[KeyCalendar] = f.locale.Calendar

	if f.options.HourCycle == "" && f.locale.HourCycle != "" {
		resolved[KeyHourCycle] = f.locale.HourCycle
	}

	if f.hour.Hour12 != "" {
		resolved[KeyHour12] = f.hour.Hour12
	}

	if f.options.TimeZone == "" {
		resolved[KeyTimeZone] = f.calendar.location().String()
	}

	if f.options.NumberingSystem == "" {
		numbering := f.locale.NumberingSystem
		if numbering == "" {
			numbering = latinDigits
		}
		resolved[KeyNumberingSystem] = numbering
	}

	return resolved
}
