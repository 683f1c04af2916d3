package sass

import "strings"

// This file implements the selector AST of spec §4.4's glossary entry
// "Selector AST": SelectorList -> ComplexSelector (Components separated by
// combinators) -> Component is a CompoundSelector or a Combinator ->
// CompoundSelector is a sequence of SimpleSelectors.
//
// Grounded on original_source/src/extender.cpp, which walks exactly this
// shape (Complex_Selector / Compound_Selector / SimpleSelector) when
// weaving and unifying; the Go types here are a from-scratch tagged-union
// rendition of that shape in the teacher's dispatch style (type switch on
// SimpleSelector.Kind, mirroring value.go's ValueKind switch) rather than a
// C++ inheritance hierarchy.

// Combinator is the relation between two compounds in a complex selector.
type Combinator int

const (
	CombinatorDescendant Combinator = iota // implicit space
	CombinatorChild                        // >
	CombinatorNextSibling                  // +
	CombinatorSubsequentSibling             // ~
)

func (c Combinator) String() string {
	switch c {
	case CombinatorChild:
		return ">"
	case CombinatorNextSibling:
		return "+"
	case CombinatorSubsequentSibling:
		return "~"
	default:
		return ""
	}
}

// SimpleKind discriminates SimpleSelector variants (spec §4.4 glossary).
type SimpleKind int

const (
	SimpleType SimpleKind = iota
	SimpleUniversal
	SimpleClass
	SimpleID
	SimpleAttribute
	SimplePseudo
	SimpleParent // `&`
	SimplePlaceholder // `%name`
)

// SimpleSelector is one atom of a compound selector.
type SimpleSelector struct {
	Kind SimpleKind

	// Type / Universal / Class / ID / Placeholder
	Namespace string // "" = none, "*" = any-namespace
	HasNS     bool
	Name      string

	// Attribute
	AttrOp    string // "", "=", "~=", "|=", "^=", "$=", "*="
	AttrValue string
	AttrCI    bool // case-insensitive `i` flag

	// Pseudo
	IsElement bool // `::` vs `:`
	Argument  string
	Selector  *SelectorList // for functional pseudos like :not(), :matches(), :has()
}

func (s SimpleSelector) isPseudoNotOrMatches() bool {
	if s.Kind != SimplePseudo || s.Selector == nil {
		return false
	}
	n := strings.ToLower(s.Name)
	return n == "not" || n == "matches" || n == "is"
}

func (s SimpleSelector) String() string {
	var b strings.Builder
	switch s.Kind {
	case SimpleType:
		writeNamespace(&b, s)
		b.WriteString(s.Name)
	case SimpleUniversal:
		writeNamespace(&b, s)
		b.WriteString("*")
	case SimpleClass:
		b.WriteString(".")
		b.WriteString(s.Name)
	case SimpleID:
		b.WriteString("#")
		b.WriteString(s.Name)
	case SimplePlaceholder:
		b.WriteString("%")
		b.WriteString(s.Name)
	case SimpleParent:
		b.WriteString("&")
	case SimpleAttribute:
		b.WriteString("[")
		writeNamespace(&b, s)
		b.WriteString(s.Name)
		if s.AttrOp != "" {
			b.WriteString(s.AttrOp)
			b.WriteString("\"")
			b.WriteString(s.AttrValue)
			b.WriteString("\"")
			if s.AttrCI {
				b.WriteString(" i")
			}
		}
		b.WriteString("]")
	case SimplePseudo:
		if s.IsElement {
			b.WriteString("::")
		} else {
			b.WriteString(":")
		}
		b.WriteString(s.Name)
		if s.Selector != nil {
			b.WriteString("(")
			b.WriteString(s.Selector.String())
			b.WriteString(")")
		} else if s.Argument != "" {
			b.WriteString("(")
			b.WriteString(s.Argument)
			b.WriteString(")")
		}
	}
	return b.String()
}

func writeNamespace(b *strings.Builder, s SimpleSelector) {
	if s.HasNS {
		b.WriteString(s.Namespace)
		b.WriteString("|")
	}
}

// CompoundSelector is a non-empty sequence of SimpleSelectors with no
// combinator between them (spec §4.4 invariant: "a CompoundSelector is
// non-empty").
type CompoundSelector struct {
	Simples []SimpleSelector
}

func (c CompoundSelector) String() string {
	var b strings.Builder
	for _, s := range c.Simples {
		b.WriteString(s.String())
	}
	return b.String()
}

// HasPlaceholder reports whether c contains a `%name` placeholder, which
// marks a selector as extend-only (never emitted on its own, spec §4.6).
func (c CompoundSelector) HasPlaceholder() bool {
	for _, s := range c.Simples {
		if s.Kind == SimplePlaceholder {
			return true
		}
	}
	return false
}

// Component is either a CompoundSelector or a bare Combinator (spec §4.4:
// "Component is either a CompoundSelector ... or a Combinator").
type Component struct {
	Compound   *CompoundSelector // nil if this component is a combinator
	Combinator Combinator
	IsCombinator bool
}

func compoundComponent(c CompoundSelector) Component { return Component{Compound: &c} }
func combinatorComponent(c Combinator) Component      { return Component{IsCombinator: true, Combinator: c} }

// ComplexSelector is a sequence of Components (spec invariant: "no two
// adjacent combinators").
type ComplexSelector struct {
	Components []Component
	// LineBreak marks a selector list entry that began on its own source
	// line, preserved so the serialiser (out of scope) could recreate
	// nested-style multi-line output; the evaluator threads it through
	// weave/unify unchanged.
	LineBreak bool
}

func (c ComplexSelector) String() string {
	var parts []string
	for _, comp := range c.Components {
		if comp.IsCombinator {
			if comp.Combinator == CombinatorDescendant {
				continue
			}
			parts = append(parts, comp.Combinator.String())
		} else {
			parts = append(parts, comp.Compound.String())
		}
	}
	return strings.Join(parts, " ")
}

// Compounds returns just the compound components, in order, dropping
// combinators — the shape most selector algorithms in spec §4.4 operate
// over directly.
func (c ComplexSelector) Compounds() []CompoundSelector {
	var out []CompoundSelector
	for _, comp := range c.Components {
		if !comp.IsCombinator {
			out = append(out, *comp.Compound)
		}
	}
	return out
}

// CombinatorBefore returns the combinator immediately preceding the i-th
// compound (CombinatorDescendant if none, i.e. the first compound or two
// adjacent compounds with an implicit descendant combinator can't actually
// occur per the no-adjacent-combinator invariant, but the leading compound
// has no preceding combinator at all).
func (c ComplexSelector) CombinatorBefore(compoundIndex int) (Combinator, bool) {
	seen := -1
	pending := CombinatorDescendant
	hasPending := false
	for _, comp := range c.Components {
		if comp.IsCombinator {
			pending = comp.Combinator
			hasPending = true
			continue
		}
		seen++
		if seen == compoundIndex {
			return pending, hasPending
		}
		hasPending = false
	}
	return CombinatorDescendant, false
}

func newComplex(compounds []CompoundSelector, combinators []Combinator) ComplexSelector {
	var comps []Component
	for i, cp := range compounds {
		if i > 0 {
			comps = append(comps, combinatorComponent(combinators[i-1]))
		}
		comps = append(comps, compoundComponent(cp))
	}
	return ComplexSelector{Components: comps}
}

// SelectorList is a comma-separated set of ComplexSelectors (spec glossary
// "Selector list").
type SelectorList struct {
	Complexes []ComplexSelector
}

func (l *SelectorList) String() string {
	parts := make([]string, len(l.Complexes))
	for i, c := range l.Complexes {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// IsInvisible reports whether every complex selector in l is placeholder-only
// (spec §4.6: a bare `%placeholder` rule never emits on its own).
func (l *SelectorList) IsInvisible() bool {
	for _, c := range l.Complexes {
		visible := true
		for _, cp := range c.Compounds() {
			if cp.HasPlaceholder() {
				visible = false
				break
			}
		}
		if visible {
			return false
		}
	}
	return true
}

// ResolveParent substitutes every `&` SimpleParent in l with parent (spec
// §4.5 StyleRule evaluation: "parse against the current parent selector,
// substituting `&`"). When parent is nil (top-level rule), l is returned
// unchanged: a `&` in a top-level selector is neither removed nor reported,
// and stays in the resolved selector as written.
func (l *SelectorList) ResolveParent(parent *SelectorList) *SelectorList {
	if parent == nil {
		return l
	}
	out := &SelectorList{}
	for _, complex := range l.Complexes {
		for _, resolved := range resolveComplexParent(complex, parent) {
			out.Complexes = append(out.Complexes, resolved)
		}
	}
	return out
}

func resolveComplexParent(c ComplexSelector, parent *SelectorList) []ComplexSelector {
	hasParentRef := false
	for _, comp := range c.Components {
		if !comp.IsCombinator {
			for _, s := range comp.Compound.Simples {
				if s.Kind == SimpleParent {
					hasParentRef = true
				}
			}
		}
	}
	if !hasParentRef {
		// Implicit nesting: descendant-combine parent with c.
		var out []ComplexSelector
		for _, p := range parent.Complexes {
			merged := ComplexSelector{}
			merged.Components = append(merged.Components, p.Components...)
			merged.Components = append(merged.Components, c.Components...)
			out = append(out, merged)
		}
		return out
	}

	var out []ComplexSelector
	for _, p := range parent.Complexes {
		newComps := make([]Component, 0, len(c.Components))
		for _, comp := range c.Components {
			if comp.IsCombinator || !hasParentInCompound(*comp.Compound) {
				newComps = append(newComps, comp)
				continue
			}
			merged := substituteParentInCompound(*comp.Compound, p)
			newComps = append(newComps, merged...)
		}
		out = append(out, ComplexSelector{Components: newComps})
	}
	return out
}

func hasParentInCompound(c CompoundSelector) bool {
	for _, s := range c.Simples {
		if s.Kind == SimpleParent {
			return true
		}
	}
	return false
}

// substituteParentInCompound expands a compound containing `&` by splicing
// in every component of the parent complex selector at that position, then
// appending the compound's remaining simples onto the parent's trailing
// compound (Sass's `&foo` "compound concatenation" rule).
func substituteParentInCompound(c CompoundSelector, parent ComplexSelector) []Component {
	if len(parent.Components) == 0 {
		return []Component{compoundComponent(stripParent(c))}
	}
	comps := make([]Component, len(parent.Components))
	copy(comps, parent.Components)
	last := comps[len(comps)-1]
	if last.IsCombinator {
		comps = append(comps, compoundComponent(stripParent(c)))
		return comps
	}
	merged := CompoundSelector{}
	merged.Simples = append(merged.Simples, last.Compound.Simples...)
	merged.Simples = append(merged.Simples, stripParent(c).Simples...)
	comps[len(comps)-1] = compoundComponent(merged)
	return comps
}

func stripParent(c CompoundSelector) CompoundSelector {
	out := CompoundSelector{}
	for _, s := range c.Simples {
		if s.Kind != SimpleParent {
			out.Simples = append(out.Simples, s)
		}
	}
	return out
}
