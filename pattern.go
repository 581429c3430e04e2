package dtformat

import "strings"

// Field is one run of a repeated pattern letter, e.g. "MMMM".
type Field struct {
	Kind   FieldKind
	Letter byte
	Count  int
}

func newField(letter byte, count int) Field {
	return Field{Kind: kindForLetter(letter), Letter: letter, Count: count}
}

func (f Field) String() string {
	if f.Count <= 0 {
		return ""
	}
	return strings.Repeat(string(f.Letter), f.Count)
}

// Text reports whether the run renders names instead of digits.
func (f Field) Text() bool {
	return isTextForm(f.Letter, f.Count)
}

type patternToken struct {
	field Field
	raw   string
	text  string
}

func (t patternToken) isField() bool {
	return t.field.Letter != 0
}

// Pattern is an immutable LDML date pattern. Every transformation returns a new value.
type Pattern struct {
	tokens []patternToken
}

// ParsePattern splits an LDML pattern into field runs and literal segments.
// Quoted text is kept verbatim so that String round-trips the input.
func ParsePattern(s string) Pattern {
	var (
		tokens []patternToken
		raw    strings.Builder
		text   strings.Builder
	)

	flush := func() {
		if raw.Len() == 0 {
			return
		}
		tokens = append(tokens, patternToken{raw: raw.String(), text: text.String()})
		raw.Reset()
		text.Reset()
	}

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\'':
			if i+1 < len(s) && s[i+1] == '\'' {
				raw.WriteString("''")
				text.WriteByte('\'')
				i += 2
				continue
			}
			j := i + 1
			for j < len(s) {
				if s[j] == '\'' {
					if j+1 < len(s) && s[j+1] == '\'' {
						text.WriteByte('\'')
						j += 2
						continue
					}
					break
				}
				text.WriteByte(s[j])
				j++
			}
			end := j + 1
			if end > len(s) {
				end = len(s)
			}
			raw.WriteString(s[i:end])
			i = end
		case isPatternLetter(c):
			flush()
			j := i
			for j < len(s) && s[j] == c {
				j++
			}
			tokens = append(tokens, patternToken{field: newField(c, j-i)})
			i = j
		default:
			raw.WriteByte(c)
			text.WriteByte(c)
			i++
		}
	}
	flush()

	return Pattern{tokens: tokens}
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// quoteLiteral escapes text so that it survives ParsePattern as a literal.
func quoteLiteral(text string) string {
	escaped := strings.ReplaceAll(text, "'", "''")
	for i := 0; i < len(text); i++ {
		if isPatternLetter(text[i]) {
			return "'" + escaped + "'"
		}
	}
	return escaped
}

func literalToken(text string) patternToken {
	return patternToken{raw: quoteLiteral(text), text: text}
}

func (p Pattern) String() string {
	var b strings.Builder
	for _, tok := range p.tokens {
		if tok.isField() {
			b.WriteString(tok.field.String())
			continue
		}
		b.WriteString(tok.raw)
	}
	return b.String()
}

// IsEmpty reports whether the pattern has no tokens at all.
func (p Pattern) IsEmpty() bool {
	return len(p.tokens) == 0
}

// Fields returns the field runs in pattern order.
func (p Pattern) Fields() []Field {
	fields := make([]Field, 0, len(p.tokens))
	for _, tok := range p.tokens {
		if tok.isField() {
			fields = append(fields, tok.field)
		}
	}
	return fields
}

// Field returns the first run of the given kind.
func (p Pattern) Field(kind FieldKind) (Field, bool) {
	for _, tok := range p.tokens {
		if tok.isField() && tok.field.Kind == kind {
			return tok.field, true
		}
	}
	return Field{}, false
}

// Has reports whether the pattern contains a run of the given kind.
func (p Pattern) Has(kind FieldKind) bool {
	_, ok := p.Field(kind)
	return ok
}

// MapFields returns a copy of the pattern with every field run passed through fn.
// Literal segments are never touched. A zero-count result drops the run.
func (p Pattern) MapFields(fn func(Field) Field) Pattern {
	out := make([]patternToken, 0, len(p.tokens))
	for _, tok := range p.tokens {
		if !tok.isField() {
			out = append(out, tok)
			continue
		}
		next := fn(tok.field)
		if next.Count <= 0 || next.Letter == 0 {
			continue
		}
		next.Kind = kindForLetter(next.Letter)
		out = append(out, patternToken{field: next})
	}
	return Pattern{tokens: out}
}

// slice returns the tokens in [from, to) as a new pattern.
func (p Pattern) slice(from, to int) Pattern {
	if from < 0 {
		from = 0
	}
	if to > len(p.tokens) {
		to = len(p.tokens)
	}
	if from >= to {
		return Pattern{}
	}
	out := make([]patternToken, to-from)
	copy(out, p.tokens[from:to])
	return Pattern{tokens: out}
}

// concat joins patterns with an optional literal separator.
func concatPatterns(separator string, parts ...Pattern) Pattern {
	var out []patternToken
	for i, part := range parts {
		if i > 0 && separator != "" {
			out = append(out, literalToken(separator))
		}
		out = append(out, part.tokens...)
	}
	return Pattern{tokens: out}
}

// skeletonOf returns the field runs of a pattern keyed by kind. The first run of a kind wins.
func skeletonOf(p Pattern) map[FieldKind]Field {
	fields := make(map[FieldKind]Field)
	for _, f := range p.Fields() {
		if f.Kind == FieldUnknown {
			continue
		}
		if _, seen := fields[f.Kind]; seen {
			continue
		}
		fields[f.Kind] = f
	}
	return fields
}
