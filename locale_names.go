package dtformat

import (
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/zh"
	"golang.org/x/text/language"
)

// nameTranslators supplies month and weekday names per locale.
var nameTranslators = map[string]func() locales.Translator{
	"en":    en.New,
	"en-GB": en_GB.New,
	"de":    de.New,
	"es":    es.New,
	"fr":    fr.New,
	"ja":    ja.New,
	"zh":    zh.New,
}

// nameProvider resolves month and weekday names for one locale.
type nameProvider struct {
	translator locales.Translator
}

func newNameProvider(locale string) nameProvider {
	candidates := append([]string{canonicalLocaleKey(locale)}, localeParentChain(canonicalLocaleKey(locale))...)
	if tag, err := language.Parse(locale); err == nil {
		candidates = append(candidates, baseLanguage(tag))
	}
	for _, candidate := range candidates {
		if ctor, ok := nameTranslators[candidate]; ok {
			return nameProvider{translator: ctor()}
		}
	}
	return nameProvider{translator: en.New()}
}

// month renders a text month for a run count of 3 (abbreviated), 4 (wide) or 5 (narrow).
func (n nameProvider) month(month time.Month, count int) string {
	switch {
	case count >= 5:
		return n.translator.MonthNarrow(month)
	case count == 4:
		return n.translator.MonthWide(month)
	default:
		return n.translator.MonthAbbreviated(month)
	}
}

// weekday renders a weekday name. Counts follow the E letter: 1..3 abbreviated,
// 4 wide, 5 narrow, 6 short.
func (n nameProvider) weekday(day time.Weekday, count int) string {
	switch {
	case count >= 6:
		return n.translator.WeekdayShort(day)
	case count == 5:
		return n.translator.WeekdayNarrow(day)
	case count == 4:
		return n.translator.WeekdayWide(day)
	default:
		return n.translator.WeekdayAbbreviated(day)
	}
}
