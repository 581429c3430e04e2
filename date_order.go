package dtformat

import "strings"

// maxOrderRun is the longest field run DateOrder reports.
const maxOrderRun = 6

// DateOrder describes the year, month and day order of the locale's medium date pattern,
// e.g. "LLL-d-y" for en. Each field is written with its pattern length, month as "L".
func DateOrder(locale string) (string, error) {
	store, err := loadedLocaleStore()
	if err != nil {
		return "", err
	}
	resolved, err := store.resolveLocale(locale)
	if err != nil {
		return "", err
	}
	gen := newPatternGenerator(resolved.data)
	p, err := gen.StylePattern(StyleMedium, StyleNone)
	if err != nil {
		return "", err
	}
	return dateOrder(p), nil
}

// dateOrder counts y, M/L and d letters outside quotes in order of first appearance.
func dateOrder(p Pattern) string {
	var order []byte
	lengths := map[byte]int{}
	for _, f := range p.Fields() {
		var key byte
		switch f.Letter {
		case 'y':
			key = 'y'
		case 'M', 'L':
			key = 'L'
		case 'd':
			key = 'd'
		default:
			continue
		}
		if _, seen := lengths[key]; !seen {
			order = append(order, key)
		}
		lengths[key] += f.Count
	}

	var b strings.Builder
	for i, key := range order {
		if n := lengths[key]; n > 0 && n <= maxOrderRun {
			b.WriteString(strings.Repeat(string(key), n))
		}
		if i < 2 {
			b.WriteByte('-')
		}
	}
	return b.String()
}
