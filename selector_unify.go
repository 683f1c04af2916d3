package sass

// Unify implements spec §4.4 "Unification": given compound selectors A and
// B, produce the (possibly empty) set of compound selectors matching A ∩
// B. In practice this compiler (like dart-sass) always returns at most one
// compound — the "set" only ever grows past one element for pseudo
// combinations this compiler does not attempt to split further, so the
// slice return type is kept for fidelity to the spec wording but every
// caller treats a non-empty result as a single winning compound (index 0).
func UnifyCompounds(a, b CompoundSelector) []CompoundSelector {
	aType, aHasType := firstType(a)
	bType, bHasType := firstType(b)
	if aHasType && bHasType && !typesCompatible(aType, bType) {
		return nil
	}

	merged := CompoundSelector{}
	if aHasType || bHasType {
		merged.Simples = append(merged.Simples, chooseMoreSpecificType(aHasType, aType, bHasType, bType))
	}

	seen := map[string]bool{}
	add := func(s SimpleSelector) {
		if s.Kind == SimpleType || s.Kind == SimpleUniversal {
			return
		}
		key := s.String()
		if !seen[key] {
			seen[key] = true
			merged.Simples = append(merged.Simples, s)
		}
	}
	for _, s := range a.Simples {
		add(s)
	}
	for _, s := range b.Simples {
		add(s)
	}

	pseudoElements := 0
	for _, s := range merged.Simples {
		if s.Kind == SimplePseudo && s.IsElement {
			pseudoElements++
		}
	}
	if pseudoElements > 1 {
		// incompatible pseudo-elements (spec §4.4: "incompatible
		// pseudo-elements produce the empty set").
		return nil
	}

	if len(merged.Simples) == 0 {
		merged.Simples = []SimpleSelector{{Kind: SimpleUniversal}}
	}
	return []CompoundSelector{merged}
}

func firstType(c CompoundSelector) (SimpleSelector, bool) {
	for _, s := range c.Simples {
		if s.Kind == SimpleType {
			return s, true
		}
	}
	return SimpleSelector{}, false
}

// typesCompatible implements "Type selectors unify only if equal;
// namespaces combine with empty/star rules" (spec §4.4).
func typesCompatible(a, b SimpleSelector) bool {
	if a.Name != b.Name {
		return false
	}
	if a.HasNS && b.HasNS && a.Namespace != b.Namespace && a.Namespace != "*" && b.Namespace != "*" {
		return false
	}
	return true
}

func chooseMoreSpecificType(aHas bool, a SimpleSelector, bHas bool, b SimpleSelector) SimpleSelector {
	switch {
	case aHas && !bHas:
		return a
	case bHas && !aHas:
		return b
	case a.HasNS && a.Namespace != "*":
		return a
	case b.HasNS && b.Namespace != "*":
		return b
	default:
		return a
	}
}
