package sass

import "strings"

// Separator distinguishes comma-, space- and slash-separated lists. Spec
// §4.5's "Division / slash" note depends on the parser emitting a
// SlashSeparator list distinctly from a division Binary node; the
// evaluator only needs to know the separator is part of the list's
// identity (spec §3 invariant), not why the parser chose it.
type Separator int

const (
	SepSpace Separator = iota
	SepComma
	SepSlash
	SepUndecided // a single-element or empty list: separator not yet observable
)

// List is an ordered Sass list (spec §3). Separator and Bracketed are part
// of the value's identity: `(1, 2)` and `1, 2` and `[1, 2]` are distinct
// values even though their Items may compare equal elementwise.
type List struct {
	Items     []Value
	Sep       Separator
	Bracketed bool
}

func NewList(items []Value, sep Separator, bracketed bool) *List {
	return &List{Items: items, Sep: sep, Bracketed: bracketed}
}

func ListV(items []Value, sep Separator, bracketed bool) Value {
	return Value{Kind: KList, Data: NewList(items, sep, bracketed)}
}

func listsEqual(a, b *List) bool {
	if a.Sep != b.Sep || a.Bracketed != b.Bracketed || len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if !Equal(a.Items[i], b.Items[i]) {
			return false
		}
	}
	return true
}

func (l *List) separatorText() string {
	switch l.Sep {
	case SepComma:
		return ", "
	case SepSlash:
		return "/"
	default:
		return " "
	}
}

func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.String()
	}
	inner := strings.Join(parts, l.separatorText())
	if l.Bracketed {
		return "[" + inner + "]"
	}
	return inner
}
