package sass

import "strings"

// Str is a Sass string value: text plus a quoted flag (spec §4.3).
// Quoted strings preserve escape semantics as already-decoded text (escape
// handling happens in the parser, out of scope here); Quoted only affects
// serialization and equality/identity, never the content.
type Str struct {
	Text   string
	Quoted bool
}

func QuotedStr(s string) Str  { return Str{Text: s, Quoted: true} }
func UnquotedStr(s string) Str { return Str{Text: s, Quoted: false} }

func StrV(s Str) Value { return Value{Kind: KString, Data: s} }

func (s Str) String() string {
	if !s.Quoted {
		return s.Text
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s.Text {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// LooksLikeIdentifier reports whether an unquoted string would already
// serialize as a valid CSS identifier and therefore never needs quoting
// (spec §4.3: "unquoted strings that happen to look like CSS identifiers
// are not re-quoted").
func (s Str) LooksLikeIdentifier() bool {
	if s.Text == "" {
		return false
	}
	for i, r := range s.Text {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '-' || r > 127
		isDigit := r >= '0' && r <= '9'
		if i == 0 {
			if !isAlpha {
				return false
			}
			continue
		}
		if !isAlpha && !isDigit {
			return false
		}
	}
	return true
}
