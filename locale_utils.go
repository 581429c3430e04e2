package dtformat

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	emptyScript language.Script
	emptyRegion language.Region
)

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

// localeParentChain returns the parents of locale, closest first.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parentValue := parent.String()
			if parentValue == "" || parentValue == "und" {
				break
			}
			if _, exists := seen[parentValue]; exists {
				break
			}
			seen[parentValue] = struct{}{}
			chain = append(chain, parentValue)
		}
	}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// baseName strips extensions and variants, keeping language, script and region.
func baseName(tag language.Tag) string {
	base, script, region := tag.Raw()
	parts := []string{base.String()}
	if script != emptyScript {
		parts = append(parts, script.String())
	}
	if region != emptyRegion {
		parts = append(parts, region.String())
	}
	return strings.Join(parts, "-")
}

// baseLanguage returns the language subtag, e.g. "en" for "en-GB-u-hc-h23".
func baseLanguage(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
