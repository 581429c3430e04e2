package dtformat

import "fmt"

// CompilePattern derives the final pattern for opts.
//
// An empty configuration yields the short date style untouched. A recognised dateStyle or
// timeStyle takes the style path: the locale style pattern followed by the hour-cycle
// fixup. Everything else takes the skeleton path: best match, field-type replacement,
// best match again, then width enforcement.
func CompilePattern(gen *PatternGenerator, opts FormatOptions, pref HourPreference) (Pattern, error) {
	if gen == nil {
		return Pattern{}, ErrNoLocaleData
	}

	if opts.Empty() {
		return gen.StylePattern(StyleShort, StyleNone)
	}

	date, time := lookupStyle(opts.DateStyle), lookupStyle(opts.TimeStyle)
	if date != StyleNone || time != StyleNone {
		p, err := gen.StylePattern(date, time)
		if err != nil {
			return Pattern{}, err
		}
		return fixHourCycle(p, pref), nil
	}

	// Unrecognised style keywords resolve to none. With both none the styles have no
	// effect and the skeleton defaults (year, month, day) apply.
	return compileSkeleton(gen, opts, pref)
}

func compileSkeleton(gen *PatternGenerator, opts FormatOptions, pref HourPreference) (Pattern, error) {
	text := BuildSkeleton(opts, pref).Text(opts, pref)

	p := gen.BestPattern(text)
	p = gen.ReplaceFieldTypes(p, text)
	p = gen.BestPattern(p.String())
	if p.IsEmpty() {
		return Pattern{}, fmt.Errorf("%w: skeleton %q", ErrMissingPattern, text)
	}

	return enforceWidths(p, opts), nil
}
