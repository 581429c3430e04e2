package dtformat

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data/locales.yaml
var defaultLocaleDataYAML []byte

// NameSet holds the abbreviated, wide and narrow forms of a closed name list.
type NameSet struct {
	Abbreviated []string `yaml:"abbreviated,omitempty" json:"abbreviated,omitempty"`
	Wide        []string `yaml:"wide,omitempty" json:"wide,omitempty"`
	Narrow      []string `yaml:"narrow,omitempty" json:"narrow,omitempty"`
}

// ZoneNames are the display names of one time zone.
type ZoneNames struct {
	LongStandard  string `yaml:"longStandard,omitempty" json:"longStandard,omitempty"`
	LongDaylight  string `yaml:"longDaylight,omitempty" json:"longDaylight,omitempty"`
	ShortStandard string `yaml:"shortStandard,omitempty" json:"shortStandard,omitempty"`
	ShortDaylight string `yaml:"shortDaylight,omitempty" json:"shortDaylight,omitempty"`
}

// LocaleData is the gregorian calendar data of one locale.
// A locale entry only needs the keys that differ from its parents.
type LocaleData struct {
	Parent           string                       `yaml:"parent,omitempty" json:"parent,omitempty"`
	HourCycle        string                       `yaml:"hourCycle,omitempty" json:"hourCycle,omitempty"`
	NumberingSystem  string                       `yaml:"numberingSystem,omitempty" json:"numberingSystem,omitempty"`
	Calendar         string                       `yaml:"calendar,omitempty" json:"calendar,omitempty"`
	FirstDayOfWeek   string                       `yaml:"firstDayOfWeek,omitempty" json:"firstDayOfWeek,omitempty"`
	DateFormats      map[string]string            `yaml:"dateFormats,omitempty" json:"dateFormats,omitempty"`
	TimeFormats      map[string]string            `yaml:"timeFormats,omitempty" json:"timeFormats,omitempty"`
	DateTimeFormats  map[string]string            `yaml:"dateTimeFormats,omitempty" json:"dateTimeFormats,omitempty"`
	AvailableFormats map[string]string            `yaml:"availableFormats,omitempty" json:"availableFormats,omitempty"`
	IntervalFormats  map[string]map[string]string `yaml:"intervalFormats,omitempty" json:"intervalFormats,omitempty"`
	IntervalFallback string                       `yaml:"intervalFallback,omitempty" json:"intervalFallback,omitempty"`
	DayPeriods       NameSet                      `yaml:"dayPeriods,omitempty" json:"dayPeriods,omitempty"`
	Eras             NameSet                      `yaml:"eras,omitempty" json:"eras,omitempty"`
	GMTFormat        string                       `yaml:"gmtFormat,omitempty" json:"gmtFormat,omitempty"`
	GMTZeroFormat    string                       `yaml:"gmtZeroFormat,omitempty" json:"gmtZeroFormat,omitempty"`
	TimeZoneNames    map[string]ZoneNames         `yaml:"timeZoneNames,omitempty" json:"timeZoneNames,omitempty"`
}

type localeDataFile struct {
	Locales map[string]*LocaleData `yaml:"locales" json:"locales"`
}

type localeStore struct {
	locales   map[string]*LocaleData
	languages map[string]struct{}
}

var (
	localeDataOnce  sync.Once
	localeDataStore *localeStore
	localeDataErr   error
)

// InitLocaleData initialises the process-wide locale data exactly once.
// The embedded data is loaded first and every *.yaml, *.yml and *.json file in dir is
// merged over it. Later calls are no-ops that return the result of the first call,
// whatever dir they pass. There is no teardown.
func InitLocaleData(dir string) error {
	localeDataOnce.Do(func() {
		localeDataStore, localeDataErr = loadLocaleStore(dir)
	})
	return localeDataErr
}

func loadedLocaleStore() (*localeStore, error) {
	if err := InitLocaleData(""); err != nil {
		return nil, err
	}
	return localeDataStore, nil
}

func loadLocaleStore(dir string) (*localeStore, error) {
	base, err := decodeLocaleDataFile("locales.yaml", defaultLocaleDataYAML)
	if err != nil {
		return nil, fmt.Errorf("dtformat: parse embedded locale data: %w", err)
	}

	if dir != "" {
		paths, err := overlayPaths(dir)
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("dtformat: read %s: %w", path, err)
			}
			overlay, err := decodeLocaleDataFile(path, data)
			if err != nil {
				return nil, fmt.Errorf("dtformat: decode %s: %w", path, err)
			}
			for locale, entry := range overlay {
				if existing, ok := base[locale]; ok {
					mergeLocaleData(existing, entry)
					continue
				}
				base[locale] = entry
			}
		}
	}

	return newLocaleStore(base), nil
}

func overlayPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dtformat: read data directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml", ".json":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func decodeLocaleDataFile(path string, data []byte) (map[string]*LocaleData, error) {
	var file localeDataFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	}

	out := make(map[string]*LocaleData, len(file.Locales))
	for locale, entry := range file.Locales {
		if entry == nil {
			continue
		}
		out[canonicalLocaleKey(locale)] = entry
	}
	return out, nil
}

func canonicalLocaleKey(locale string) string {
	locale = normalizeLocale(locale)
	if tag, err := language.Parse(locale); err == nil {
		return tag.String()
	}
	return locale
}

func newLocaleStore(locales map[string]*LocaleData) *localeStore {
	store := &localeStore{
		locales:   locales,
		languages: make(map[string]struct{}, len(locales)),
	}
	for locale := range locales {
		if tag, err := language.Parse(locale); err == nil {
			store.languages[baseLanguage(tag)] = struct{}{}
		}
	}
	return store
}

// supports reports whether the base language of tag has any data.
func (s *localeStore) supports(tag language.Tag) bool {
	if s == nil {
		return false
	}
	_, ok := s.languages[baseLanguage(tag)]
	return ok
}

// resolve merges the data of locale and its parents, most specific entry winning.
func (s *localeStore) resolve(locale string) (*LocaleData, error) {
	if s == nil {
		return nil, ErrNoLocaleData
	}

	chain := s.chain(locale)
	if len(chain) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoLocaleData, locale)
	}

	merged := &LocaleData{}
	for i := len(chain) - 1; i >= 0; i-- {
		mergeLocaleData(merged, chain[i])
	}
	return merged, nil
}

func (s *localeStore) chain(locale string) []*LocaleData {
	candidates := []string{canonicalLocaleKey(locale)}
	candidates = append(candidates, localeParentChain(candidates[0])...)
	if tag, err := language.Parse(candidates[0]); err == nil {
		candidates = append(candidates, baseLanguage(tag))
	}

	var chain []*LocaleData
	seen := make(map[string]struct{}, len(candidates))
	for i := 0; i < len(candidates); i++ {
		key := candidates[i]
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		entry, ok := s.locales[key]
		if !ok {
			continue
		}
		chain = append(chain, entry)
		if entry.Parent != "" {
			candidates = append(candidates, canonicalLocaleKey(entry.Parent))
		}
	}
	return chain
}

// mergeLocaleData merges source into dest (source takes precedence)
func mergeLocaleData(dest, source *LocaleData) {
	if source == nil {
		return
	}

	mergeString(&dest.Parent, source.Parent)
	mergeString(&dest.HourCycle, source.HourCycle)
	mergeString(&dest.NumberingSystem, source.NumberingSystem)
	mergeString(&dest.Calendar, source.Calendar)
	mergeString(&dest.FirstDayOfWeek, source.FirstDayOfWeek)
	mergeString(&dest.IntervalFallback, source.IntervalFallback)
	mergeString(&dest.GMTFormat, source.GMTFormat)
	mergeString(&dest.GMTZeroFormat, source.GMTZeroFormat)

	dest.DateFormats = mergeStringMap(dest.DateFormats, source.DateFormats)
	dest.TimeFormats = mergeStringMap(dest.TimeFormats, source.TimeFormats)
	dest.DateTimeFormats = mergeStringMap(dest.DateTimeFormats, source.DateTimeFormats)
	dest.AvailableFormats = mergeStringMap(dest.AvailableFormats, source.AvailableFormats)

	if source.IntervalFormats != nil {
		if dest.IntervalFormats == nil {
			dest.IntervalFormats = make(map[string]map[string]string)
		}
		for skeleton, byDiff := range source.IntervalFormats {
			dest.IntervalFormats[skeleton] = mergeStringMap(dest.IntervalFormats[skeleton], byDiff)
		}
	}

	mergeNameSet(&dest.DayPeriods, source.DayPeriods)
	mergeNameSet(&dest.Eras, source.Eras)

	if source.TimeZoneNames != nil {
		if dest.TimeZoneNames == nil {
			dest.TimeZoneNames = make(map[string]ZoneNames)
		}
		for id, names := range source.TimeZoneNames {
			dest.TimeZoneNames[id] = names
		}
	}
}

func mergeString(dest *string, value string) {
	if value != "" {
		*dest = value
	}
}

func mergeStringMap(dest, source map[string]string) map[string]string {
	if source == nil {
		return dest
	}
	if dest == nil {
		dest = make(map[string]string, len(source))
	}
	for k, v := range source {
		dest[k] = v
	}
	return dest
}

func mergeNameSet(dest *NameSet, source NameSet) {
	if len(source.Abbreviated) > 0 {
		dest.Abbreviated = append([]string(nil), source.Abbreviated...)
	}
	if len(source.Wide) > 0 {
		dest.Wide = append([]string(nil), source.Wide...)
	}
	if len(source.Narrow) > 0 {
		dest.Narrow = append([]string(nil), source.Narrow...)
	}
}

// LookupLocaleData returns a merged copy of the data used for locale.
func LookupLocaleData(locale string) (LocaleData, error) {
	store, err := loadedLocaleStore()
	if err != nil {
		return LocaleData{}, err
	}
	data, err := store.resolve(locale)
	if err != nil {
		return LocaleData{}, err
	}
	return *data, nil
}

// SupportedLocales lists the locale keys of the loaded data.
func SupportedLocales() []string {
	store, err := loadedLocaleStore()
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(store.locales))
	for locale := range store.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}
