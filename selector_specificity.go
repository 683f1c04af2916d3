package sass

// Specificity is the (a, b, c) triple of spec §4.4: ids contribute a,
// classes/attributes/pseudo-classes contribute b, types/pseudo-elements
// contribute c.
type Specificity struct{ A, B, C int }

// Compare returns -1, 0, 1 as the usual three-way comparator, comparing
// lexicographically a then b then c (the standard CSS specificity order).
func (s Specificity) Compare(o Specificity) int {
	if s.A != o.A {
		return sign(s.A - o.A)
	}
	if s.B != o.B {
		return sign(s.B - o.B)
	}
	return sign(s.C - o.C)
}

func (s Specificity) Less(o Specificity) bool    { return s.Compare(o) < 0 }
func (s Specificity) GreaterEq(o Specificity) bool { return s.Compare(o) >= 0 }

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func addSpecificity(a, b Specificity) Specificity {
	return Specificity{A: a.A + b.A, B: a.B + b.B, C: a.C + b.C}
}

func maxSpecificity(a, b Specificity) Specificity {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

// SimpleMinSpecificity and SimpleMaxSpecificity differ only for simples
// whose argument selector (`:not()`, `:matches()`) has a specificity range
// (spec §4.4: "Min and max specificity differ only for selectors
// containing :not()/:matches() whose argument specificity bounds differ").
func SimpleMinSpecificity(s SimpleSelector) Specificity {
	switch s.Kind {
	case SimpleID:
		return Specificity{A: 1}
	case SimpleClass, SimpleAttribute:
		return Specificity{B: 1}
	case SimplePseudo:
		if s.IsElement {
			return Specificity{C: 1}
		}
		if s.Selector != nil && isNegationPseudo(s.Name) {
			return selectorListMinSpecificity(s.Selector)
		}
		return Specificity{B: 1}
	case SimpleType:
		return Specificity{C: 1}
	default: // Universal, Parent, Placeholder contribute nothing to specificity
		return Specificity{}
	}
}

func SimpleMaxSpecificity(s SimpleSelector) Specificity {
	switch s.Kind {
	case SimplePseudo:
		if s.IsElement {
			return Specificity{C: 1}
		}
		if s.Selector != nil && isNegationPseudo(s.Name) {
			return selectorListMaxSpecificity(s.Selector)
		}
		return Specificity{B: 1}
	default:
		return SimpleMinSpecificity(s)
	}
}

func isNegationPseudo(name string) bool {
	switch name {
	case "not", "matches", "is", "has", "where":
		return true
	default:
		return false
	}
}

func compoundMinSpecificity(c CompoundSelector) Specificity {
	var total Specificity
	for _, s := range c.Simples {
		total = addSpecificity(total, SimpleMinSpecificity(s))
	}
	return total
}

func compoundMaxSpecificity(c CompoundSelector) Specificity {
	var total Specificity
	for _, s := range c.Simples {
		total = addSpecificity(total, SimpleMaxSpecificity(s))
	}
	return total
}

func complexMinSpecificity(c ComplexSelector) Specificity {
	var total Specificity
	for _, cp := range c.Compounds() {
		total = addSpecificity(total, compoundMinSpecificity(cp))
	}
	return total
}

func complexMaxSpecificity(c ComplexSelector) Specificity {
	var total Specificity
	for _, cp := range c.Compounds() {
		total = addSpecificity(total, compoundMaxSpecificity(cp))
	}
	return total
}

func selectorListMinSpecificity(l *SelectorList) Specificity {
	var best Specificity
	first := true
	for _, c := range l.Complexes {
		s := complexMinSpecificity(c)
		if first || s.Compare(best) < 0 {
			best = s
			first = false
		}
	}
	return best
}

func selectorListMaxSpecificity(l *SelectorList) Specificity {
	var best Specificity
	for _, c := range l.Complexes {
		best = maxSpecificity(best, complexMaxSpecificity(c))
	}
	return best
}

// MaxSourceSpecificity is exported for extend.go's sourceSpecificity map
// (spec §4.6 "sourceSpecificity: SimpleSelector -> int", recorded as each
// extension is registered to decide which alternative wins in trim).
func MaxSourceSpecificity(c ComplexSelector) Specificity { return complexMaxSpecificity(c) }
