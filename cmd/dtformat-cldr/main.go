package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
	"gopkg.in/yaml.v3"

	dtformat "github.com/goliatone/go-dtformat"
)

type generatorConfig struct {
	out      string
	cldrPath string
	calendar string
	locales  []string
}

type localeFile struct {
	Locales map[string]*dtformat.LocaleData `yaml:"locales"`
}

var emptyRegion language.Region

// cldrPattern is the element type of the pattern lists under dateFormat, timeFormat and
// dateTimeFormat. The cldr package declares it inline in each of them.
type cldrPattern = struct {
	cldr.Common
	Numbers string `xml:"numbers,attr"`
	Count   string `xml:"count,attr"`
}

// styleLengths are the CLDR format lengths, in the order they are written.
var styleLengths = []string{"full", "long", "medium", "short"}

// spaceReplacer folds the narrow and thin spaces of recent CLDR releases into plain spaces.
var spaceReplacer = strings.NewReplacer("\u202f", " ", "\u2009", " ", "\u00a0", " ")

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "dtformat-cldr: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.out, "out", filepath.Join("data", "locales.yaml"), "path to generated locale data file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects subdirectories like main/ and supplemental/)")
	flag.StringVar(&cfg.calendar, "calendar", "gregorian", "calendar type to extract")
	flag.Var(&localeList, "locale", "locale to extract. Repeat flag to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}

	for _, locale := range localeList.items {
		normalized := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
		if _, err := language.Parse(normalized); err != nil {
			return generatorConfig{}, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		cfg.locales = append(cfg.locales, normalized)
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	out := localeFile{Locales: make(map[string]*dtformat.LocaleData, len(cfg.locales))}
	for _, locale := range cfg.locales {
		entry, err := buildLocale(data, locale, cfg.calendar)
		if err != nil {
			return fmt.Errorf("build locale data for %s: %w", locale, err)
		}
		out.Locales[locale] = entry
	}

	source, err := renderYAML(out)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetDirFilter("main")
	decoder.SetSectionFilter("dates")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func buildLocale(data *cldr.CLDR, locale, calendarType string) (*dtformat.LocaleData, error) {
	ldml := data.RawLDML(strings.ReplaceAll(locale, "-", "_"))
	if ldml == nil {
		return nil, errors.New("missing LDML data")
	}
	if ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return nil, errors.New("missing calendar data")
	}

	var calendar *cldr.Calendar
	for _, cal := range ldml.Dates.Calendars.Calendar {
		if cal != nil && cal.Type == calendarType {
			calendar = cal
			break
		}
	}
	if calendar == nil {
		return nil, fmt.Errorf("missing %s calendar", calendarType)
	}

	entry := &dtformat.LocaleData{
		Calendar:         calendarType,
		DateFormats:      make(map[string]string),
		TimeFormats:      make(map[string]string),
		DateTimeFormats:  make(map[string]string),
		AvailableFormats: make(map[string]string),
		IntervalFormats:  make(map[string]map[string]string),
	}

	if tag, err := language.Parse(locale); err == nil {
		if _, _, region := tag.Raw(); region != emptyRegion {
			entry.Parent = baseOf(tag)
		}
	}

	extractStylePatterns(calendar, entry)
	extractDateTimeFormats(calendar, entry)
	extractDayPeriods(calendar, entry)
	extractEras(calendar, entry)
	extractGMTFormats(ldml, entry)
	entry.HourCycle = hourCycleFromPattern(entry.TimeFormats["short"])

	return entry, nil
}

func baseOf(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

func extractStylePatterns(calendar *cldr.Calendar, entry *dtformat.LocaleData) {
	if formats := calendar.DateFormats; formats != nil {
		for _, length := range formats.DateFormatLength {
			if length == nil {
				continue
			}
			for _, format := range length.DateFormat {
				if format == nil {
					continue
				}
				if p := firstPattern(format.Pattern); p != "" {
					entry.DateFormats[length.Type] = p
				}
			}
		}
	}

	if formats := calendar.TimeFormats; formats != nil {
		for _, length := range formats.TimeFormatLength {
			if length == nil {
				continue
			}
			for _, format := range length.TimeFormat {
				if format == nil {
					continue
				}
				if p := firstPattern(format.Pattern); p != "" {
					entry.TimeFormats[length.Type] = p
				}
			}
		}
	}
}

func extractDateTimeFormats(calendar *cldr.Calendar, entry *dtformat.LocaleData) {
	formats := calendar.DateTimeFormats
	if formats == nil {
		return
	}

	for _, length := range formats.DateTimeFormatLength {
		if length == nil {
			continue
		}
		common := length.GetCommon()
		if common != nil && common.Alt != "" {
			continue
		}
		// The atTime glue is what styles combine with; plain glue is the fallback.
		var standard, atTime string
		for _, format := range length.DateTimeFormat {
			if format == nil {
				continue
			}
			switch format.Type {
			case "", "standard":
				standard = firstPattern(format.Pattern)
			case "atTime":
				atTime = firstPattern(format.Pattern)
			}
		}
		if atTime != "" {
			entry.DateTimeFormats[length.Type] = atTime
		} else if standard != "" {
			entry.DateTimeFormats[length.Type] = standard
		}
	}

	for _, available := range formats.AvailableFormats {
		if available == nil {
			continue
		}
		for _, item := range available.DateFormatItem {
			if item == nil || item.Alt != "" || item.Id == "" {
				continue
			}
			if item.Count != "" && item.Count != "other" {
				continue
			}
			entry.AvailableFormats[item.Id] = normalizeSpaces(item.Data())
		}
	}

	for _, intervals := range formats.IntervalFormats {
		if intervals == nil {
			continue
		}
		for _, fallback := range intervals.IntervalFormatFallback {
			if fallback != nil && fallback.Alt == "" {
				entry.IntervalFallback = normalizeSpaces(fallback.Data())
			}
		}
		for _, item := range intervals.IntervalFormatItem {
			if item == nil || item.Alt != "" || item.Id == "" {
				continue
			}
			byDiff := make(map[string]string, len(item.GreatestDifference))
			for _, diff := range item.GreatestDifference {
				if diff == nil || diff.Alt != "" || diff.Id == "" {
					continue
				}
				byDiff[diff.Id] = normalizeSpaces(diff.Data())
			}
			if len(byDiff) > 0 {
				entry.IntervalFormats[item.Id] = byDiff
			}
		}
	}
}

func extractDayPeriods(calendar *cldr.Calendar, entry *dtformat.LocaleData) {
	periods := calendar.DayPeriods
	if periods == nil {
		return
	}

	for _, context := range periods.DayPeriodContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, width := range context.DayPeriodWidth {
			if width == nil {
				continue
			}
			names := make([]string, 2)
			for _, period := range width.DayPeriod {
				if period == nil || period.Alt != "" {
					continue
				}
				switch period.Type {
				case "am":
					names[0] = period.Data()
				case "pm":
					names[1] = period.Data()
				}
			}
			if names[0] == "" || names[1] == "" {
				continue
			}
			switch width.Type {
			case "abbreviated":
				entry.DayPeriods.Abbreviated = names
			case "wide":
				entry.DayPeriods.Wide = names
			case "narrow":
				entry.DayPeriods.Narrow = names
			}
		}
	}
}

func extractEras(calendar *cldr.Calendar, entry *dtformat.LocaleData) {
	eras := calendar.Eras
	if eras == nil {
		return
	}
	if eras.EraAbbr != nil {
		entry.Eras.Abbreviated = eraNames(eras.EraAbbr.Era)
	}
	if eras.EraNames != nil {
		entry.Eras.Wide = eraNames(eras.EraNames.Era)
	}
	if eras.EraNarrow != nil {
		entry.Eras.Narrow = eraNames(eras.EraNarrow.Era)
	}
}

func eraNames[T interface{ GetCommon() *cldr.Common }](list []T) []string {
	names := make([]string, 2)
	for _, item := range list {
		era := item.GetCommon()
		if era == nil || era.Alt != "" {
			continue
		}
		switch era.Type {
		case "0":
			names[0] = era.Data()
		case "1":
			names[1] = era.Data()
		}
	}
	if names[0] == "" || names[1] == "" {
		return nil
	}
	return names
}

func extractGMTFormats(ldml *cldr.LDML, entry *dtformat.LocaleData) {
	names := ldml.Dates.TimeZoneNames
	if names == nil {
		return
	}
	for _, format := range names.GmtFormat {
		if format != nil && format.Alt == "" {
			entry.GMTFormat = format.Data()
		}
	}
	for _, format := range names.GmtZeroFormat {
		if format != nil && format.Alt == "" {
			entry.GMTZeroFormat = format.Data()
		}
	}
}

func firstPattern(patterns []*cldrPattern) string {
	for _, p := range patterns {
		if p == nil || p.Alt != "" {
			continue
		}
		return normalizeSpaces(p.Data())
	}
	return ""
}

func normalizeSpaces(value string) string {
	return spaceReplacer.Replace(value)
}

// hourCycleFromPattern derives the preferred hour cycle from the hour letter of a time pattern.
func hourCycleFromPattern(pattern string) string {
	quoted := false
	for _, r := range pattern {
		if r == '\'' {
			quoted = !quoted
			continue
		}
		if quoted {
			continue
		}
		switch r {
		case 'h':
			return "h12"
		case 'K':
			return "h11"
		case 'H':
			return "h23"
		case 'k':
			return "h24"
		}
	}
	return ""
}

func renderYAML(out localeFile) ([]byte, error) {
	locales := make([]string, 0, len(out.Locales))
	for locale := range out.Locales {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	var buf bytes.Buffer
	buf.WriteString("# Code generated by dtformat-cldr. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "# locales: %s\n", strings.Join(locales, ", "))

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(out); err != nil {
		return nil, fmt.Errorf("encode locale data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
