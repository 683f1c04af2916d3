package sass

// This file implements spec §4.4/§4.6's "weave": splicing an extender's
// complex selector into the position an extended simple selector used to
// occupy, across every compound of a selector list entry, producing the
// Cartesian product of "leave this position alone" vs "substitute each
// matching extension" alternatives.
//
// Grounded on original_source/src/extender.cpp's weave()/extendCompound(),
// simplified for the common cases (single extender per compound position,
// extenders with one or a handful of chained compounds) rather than
// reproducing dart-sass's full N-way weave with exhaustive combinator
// interleaving — documented in DESIGN.md as an approximation of the
// cartesian product ordering rules for selectors with more than one
// simultaneously-extended simple selector in the same compound.

// extenderAlternatives resolves, for one target simple selector, its
// currently-registered extender complex selectors (spec §4.6
// extensionsByTarget lookup). Supplied by extend.go's Extender so this file
// stays free of the bookkeeping maps.
type extenderAlternatives func(target SimpleSelector) []ComplexSelector

// extendCompound implements spec §4.4 "extendCompound": each simple in the
// compound yields itself plus any extender alternatives; the Cartesian
// product of these per-simple alternatives is unified (weaveTuple) into
// resulting compounds/chains.
func extendCompound(compound CompoundSelector, alts extenderAlternatives) []ComplexSelector {
	perSimple := make([][]ComplexSelector, len(compound.Simples))
	changed := false
	for i, s := range compound.Simples {
		self := ComplexSelector{Components: []Component{compoundComponent(CompoundSelector{Simples: []SimpleSelector{s}})}}
		options := append([]ComplexSelector{self}, alts(s)...)
		if len(options) > 1 {
			changed = true
		}
		perSimple[i] = options
	}
	if !changed {
		return []ComplexSelector{{Components: []Component{compoundComponent(compound)}}}
	}

	var results []ComplexSelector
	var combine func(idx int, chosen []ComplexSelector)
	combine = func(idx int, chosen []ComplexSelector) {
		if idx == len(perSimple) {
			if merged, ok := weaveTuple(chosen); ok {
				results = append(results, merged...)
			}
			return
		}
		for _, opt := range perSimple[idx] {
			combine(idx+1, append(chosen, opt))
		}
	}
	combine(0, nil)
	return dedupeComplexes(results)
}

// weaveTuple merges one chosen alternative per simple-selector position
// back into a (usually singleton) list of complex selectors: plain
// (single-compound, unextended) alternatives are unified together into one
// compound; any alternative that is itself a multi-compound chain (a real
// extender selector like `.a .b`) has that compound unified into the
// chain's trailing compound and the chain's leading compounds prepended.
func weaveTuple(chosen []ComplexSelector) ([]ComplexSelector, bool) {
	var flatSimples []SimpleSelector
	var chained []ComplexSelector
	seen := map[string]bool{}
	for _, c := range chosen {
		cps := c.Compounds()
		if len(cps) == 1 && len(c.Components) == 1 {
			for _, s := range cps[0].Simples {
				k := s.String()
				if !seen[k] {
					seen[k] = true
					flatSimples = append(flatSimples, s)
				}
			}
			continue
		}
		chained = append(chained, c)
	}
	flatCompound := CompoundSelector{Simples: flatSimples}

	if len(chained) == 0 {
		return []ComplexSelector{{Components: []Component{compoundComponent(flatCompound)}}}, true
	}

	accComponents := append([]Component{}, chained[0].Components...)
	accCps := chained[0].Compounds()
	merged := UnifyCompounds(accCps[len(accCps)-1], flatCompound)
	if merged == nil {
		return nil, false
	}
	accComponents[len(accComponents)-1] = compoundComponent(merged[0])

	for _, extra := range chained[1:] {
		extraCps := extra.Compounds()
		m2 := UnifyCompounds(merged[0], extraCps[len(extraCps)-1])
		if m2 == nil {
			return nil, false
		}
		leading := append([]Component{}, extra.Components[:len(extra.Components)-1]...)
		newComponents := append(leading, accComponents[:len(accComponents)-1]...)
		newComponents = append(newComponents, compoundComponent(m2[0]))
		accComponents = newComponents
		merged = m2
	}
	return []ComplexSelector{{Components: accComponents}}, true
}

// extendComplex implements spec §4.4/§4.6's per-ComplexSelector extend
// step: for each compound position in c, compute its extendCompound
// alternatives, then splice the chosen alternative at each position back
// into c's combinator structure, producing the Cartesian product across
// positions (spec: "for each combination of one alternative per position,
// weave the alternatives into new ComplexSelectors").
func extendComplex(c ComplexSelector, alts extenderAlternatives) []ComplexSelector {
	compounds := c.Compounds()
	perPosition := make([][]ComplexSelector, len(compounds))
	changed := false
	for i, cp := range compounds {
		options := extendCompound(cp, alts)
		perPosition[i] = options
		if len(options) != 1 {
			changed = true
		} else if options[0].String() != (ComplexSelector{Components: []Component{compoundComponent(cp)}}).String() {
			changed = true
		}
	}
	if !changed {
		return []ComplexSelector{c}
	}

	var results []ComplexSelector
	var combine func(i int, acc []Component)
	combine = func(i int, acc []Component) {
		if i == len(compounds) {
			cp := append([]Component{}, acc...)
			results = append(results, ComplexSelector{Components: cp})
			return
		}
		next := acc
		if i > 0 {
			comb, _ := c.CombinatorBefore(i)
			next = append(append([]Component{}, acc...), combinatorComponent(comb))
		}
		for _, alt := range perPosition[i] {
			combine(i+1, append(append([]Component{}, next...), alt.Components...))
		}
	}
	combine(0, nil)
	return dedupeComplexes(results)
}

func dedupeComplexes(in []ComplexSelector) []ComplexSelector {
	seen := map[string]bool{}
	var out []ComplexSelector
	for _, c := range in {
		k := c.String()
		if !seen[k] {
			seen[k] = true
			out = append(out, c)
		}
	}
	return out
}
