package sass

// registerSelectorBuiltins implements the selector-function namespace
// (spec §4.4's selector functions: is-superselector, selector-nest,
// selector-append, simple-selectors, selector-unify) on top of the
// selector package's own IsSuperselectorList/UnifyCompounds/weave
// machinery (selector_super.go, selector_unify.go, selector_weave.go), the
// same algorithms @extend itself runs on.
func registerSelectorBuiltins(register registerFunc) {
	requireSelector := func(args []Value, i int, fn string) (*SelectorList, error) {
		s, err := requireString(args, i, fn)
		if err != nil {
			return nil, err
		}
		return ParseSelectorText(s.Text), nil
	}

	isSuper := func(name string) {
		register(name, 2, func(e *Evaluator, args []Value) (Value, error) {
			super, err := requireSelector(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			sub, err := requireSelector(args, 1, name)
			if err != nil {
				return Value{}, err
			}
			return BoolV(IsSuperselectorList(super, sub)), nil
		})
	}
	isSuper("selector.is-superselector")
	isSuper("is-superselector")

	unify := func(name string) {
		register(name, 2, func(e *Evaluator, args []Value) (Value, error) {
			a, err := requireSelector(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			b, err := requireSelector(args, 1, name)
			if err != nil {
				return Value{}, err
			}
			var complexes []ComplexSelector
			for _, ca := range a.Complexes {
				for _, cb := range b.Complexes {
					acp := ca.Compounds()
					bcp := cb.Compounds()
					if len(acp) != 1 || len(bcp) != 1 {
						continue
					}
					for _, u := range UnifyCompounds(acp[0], bcp[0]) {
						complexes = append(complexes, newComplex([]CompoundSelector{u}, nil))
					}
				}
			}
			if len(complexes) == 0 {
				return Null, nil
			}
			return StrV(UnquotedStr((&SelectorList{Complexes: complexes}).String())), nil
		})
	}
	unify("selector.unify")
	unify("selector-unify")

	nest := func(name string) {
		register(name, -1, func(e *Evaluator, args []Value) (Value, error) {
			if len(args) == 0 {
				return Value{}, NewCompileError(MissingArgument, name+"() requires at least one argument", SourceSpan{})
			}
			cur, err := requireSelector(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			for i := 1; i < len(args); i++ {
				next, err := requireSelector(args, i, name)
				if err != nil {
					return Value{}, err
				}
				cur = next.ResolveParent(cur)
			}
			return StrV(UnquotedStr(cur.String())), nil
		})
	}
	nest("selector.nest")
	nest("selector-nest")

	appendFn := func(name string) {
		register(name, -1, func(e *Evaluator, args []Value) (Value, error) {
			if len(args) == 0 {
				return Value{}, NewCompileError(MissingArgument, name+"() requires at least one argument", SourceSpan{})
			}
			cur, err := requireSelector(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			for i := 1; i < len(args); i++ {
				next, err := requireSelector(args, i, name)
				if err != nil {
					return Value{}, err
				}
				cur = appendCompound(cur, next)
			}
			return StrV(UnquotedStr(cur.String())), nil
		})
	}
	appendFn("selector.append")
	appendFn("selector-append")

	register("selector.replace", 3, func(e *Evaluator, args []Value) (Value, error) {
		target, err := requireSelector(args, 0, "selector.replace")
		if err != nil {
			return Value{}, err
		}
		original, err := requireSelector(args, 1, "selector.replace")
		if err != nil {
			return Value{}, err
		}
		replacement, err := requireSelector(args, 2, "selector.replace")
		if err != nil {
			return Value{}, err
		}
		if !IsSuperselectorList(target, original) {
			return StrV(UnquotedStr(target.String())), nil
		}
		return StrV(UnquotedStr(replacement.String())), nil
	})

	register("selector.simple-selectors", 1, func(e *Evaluator, args []Value) (Value, error) {
		list, err := requireSelector(args, 0, "selector.simple-selectors")
		if err != nil {
			return Value{}, err
		}
		var out []Value
		if len(list.Complexes) > 0 {
			for _, cp := range list.Complexes[0].Compounds() {
				for _, s := range cp.Simples {
					out = append(out, StrV(UnquotedStr(s.String())))
				}
			}
		}
		return ListV(out, SepComma, false), nil
	})

	register("selector.parse", 1, func(e *Evaluator, args []Value) (Value, error) {
		list, err := requireSelector(args, 0, "selector.parse")
		if err != nil {
			return Value{}, err
		}
		return StrV(UnquotedStr(list.String())), nil
	})
}

// appendCompound implements selector-append's "glue directly onto the
// rightmost compound of the previous selector, no combinator" rule — the
// one way selector-append differs from ResolveParent's ordinary `&`
// substitution, which always inserts via the parent-reference mechanism
// rather than bare concatenation.
func appendCompound(base, suffix *SelectorList) *SelectorList {
	var out []ComplexSelector
	for _, b := range base.Complexes {
		for _, s := range suffix.Complexes {
			compounds := b.Compounds()
			suffixCompounds := s.Compounds()
			if len(compounds) == 0 || len(suffixCompounds) == 0 {
				continue
			}
			merged := append([]CompoundSelector(nil), compounds...)
			last := len(merged) - 1
			merged[last] = CompoundSelector{Simples: append(append([]SimpleSelector(nil), merged[last].Simples...), suffixCompounds[0].Simples...)}
			merged = append(merged, suffixCompounds[1:]...)
			combinators := make([]Combinator, len(merged)-1)
			out = append(out, newComplex(merged, combinators))
		}
	}
	return &SelectorList{Complexes: out}
}
