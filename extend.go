package sass

// Extender is the selector extension engine of spec §4.6, grounded
// directly on original_source/src/extender.cpp's Extender class: the same
// two target/extender-simple indexes, the same addExtension two-step
// (retroactive rewrite of already-emitted rules, then transitive extension
// of existing extensions whose extender contains the new target), and the
// same trim() short-circuit at 100 elements.
type Extender struct {
	extensionsByTarget         map[string][]*Extension
	extensionsByExtenderSimple map[string][]*Extension
	mediaContexts              map[string]string // ComplexSelector text -> media context signature
	sourceSpecificity          map[string]Specificity
	matchedTargets             map[string]bool // simple selectors that appear in some registered style rule

	rules []*registeredRule
}

// Extension is one recorded `@extend` relationship (spec §3 "Extension
// record").
type Extension struct {
	Extender      ComplexSelector
	Target        SimpleSelector
	MediaContext  string // "" = not inside any @media
	IsOptional    bool
	IsOriginal    bool
	Specificity   Specificity
	Span          SourceSpan
}

// registeredRule tracks one emitted CSSStyleRule so addExtension can
// retroactively re-derive its selector (spec §4.6 step 1) from the
// rule's pristine, pre-extension selector plus every extension known so
// far — recomputing from the original each time avoids double-applying
// an extension that was already folded in on a previous pass.
type registeredRule struct {
	node         *CSSStyleRule
	original     *SelectorList
	mediaContext string
}

func NewExtender() *Extender {
	return &Extender{
		extensionsByTarget:         map[string][]*Extension{},
		extensionsByExtenderSimple: map[string][]*Extension{},
		mediaContexts:              map[string]string{},
		sourceSpecificity:          map[string]Specificity{},
		matchedTargets:             map[string]bool{},
	}
}

// AddExtension implements spec §4.6 "addExtension(extender, target,
// mediaContext, isOptional)".
func (ex *Extender) AddExtension(extender ComplexSelector, target SimpleSelector, mediaContext string, isOptional bool, span SourceSpan) {
	ext := &Extension{
		Extender:     extender,
		Target:       target,
		MediaContext: mediaContext,
		IsOptional:   isOptional,
		IsOriginal:   true,
		Specificity:  MaxSourceSpecificity(extender),
		Span:         span,
	}
	ex.register(ext)

	// Step 1: retroactively re-extend already-registered style rules
	// referencing target.
	for _, rr := range ex.rules {
		if !selectorReferencesSimple(rr.original, target) {
			continue
		}
		newSel := ex.Extend(rr.original, rr.mediaContext)
		if newSel.String() != rr.node.Selector.String() {
			rr.node.Selector = newSel
		}
	}

	// Step 2: transitive extension — any existing extension whose
	// extender contains target gets target's new extender woven into it
	// too, producing additional derived extensions.
	var transitive []*Extension
	for _, list := range ex.extensionsByExtenderSimple {
		for _, other := range list {
			if other == ext || !complexContainsSimple(other.Extender, target) {
				continue
			}
			for _, woven := range extendComplex(other.Extender, ex.alternativesFor(other.MediaContext)) {
				derived := &Extension{
					Extender:     woven,
					Target:       other.Target,
					MediaContext: other.MediaContext,
					IsOptional:   other.IsOptional,
					IsOriginal:   false,
					Specificity:  other.Specificity,
					Span:         other.Span,
				}
				transitive = append(transitive, derived)
			}
		}
	}
	for _, d := range transitive {
		ex.register(d)
	}
}

func (ex *Extender) register(ext *Extension) {
	key := ext.Target.String()
	ex.extensionsByTarget[key] = append(ex.extensionsByTarget[key], ext)
	// sourceSpecificity is keyed by every simple selector occurring in the
	// extender, not by the target, and is written once on first occurrence
	// and never overwritten: "only source specificity for the original
	// selector is relevant; selectors generated by @extend don't get new
	// specificity" (extender.cpp's addExtension).
	extenderSpecificity := MaxSourceSpecificity(ext.Extender)
	for _, cp := range ext.Extender.Compounds() {
		for _, s := range cp.Simples {
			sk := s.String()
			ex.extensionsByExtenderSimple[sk] = append(ex.extensionsByExtenderSimple[sk], ext)
			if _, ok := ex.sourceSpecificity[sk]; !ok {
				ex.sourceSpecificity[sk] = extenderSpecificity
			}
		}
	}
}

// complexSourceSpecificity returns the maximum specificity recorded at
// registration time for any simple selector occurring in c: the
// specificity of the selector that originally produced c, not c's own
// literal specificity (complexMaxSpecificity in selector_specificity.go).
// Mirrors extender.cpp's maxSourceSpecificity(CompoundSelector).
func (ex *Extender) complexSourceSpecificity(c ComplexSelector) Specificity {
	var best Specificity
	for _, cp := range c.Compounds() {
		for _, s := range cp.Simples {
			if sp, ok := ex.sourceSpecificity[s.String()]; ok {
				best = maxSpecificity(best, sp)
			}
		}
	}
	return best
}

func complexContainsSimple(c ComplexSelector, target SimpleSelector) bool {
	for _, cp := range c.Compounds() {
		for _, s := range cp.Simples {
			if simpleSelectorEqual(s, target) {
				return true
			}
		}
	}
	return false
}

func selectorReferencesSimple(l *SelectorList, target SimpleSelector) bool {
	for _, c := range l.Complexes {
		if complexContainsSimple(c, target) {
			return true
		}
	}
	return false
}

// alternativesFor returns the extenderAlternatives closure used by
// extendCompound/extendComplex, filtered to extensions compatible with
// ruleMediaContext (spec §4.6 "Media boundary": an extension whose
// mediaContext differs from the rule being extended is a hard error,
// !optional does not suppress it). Extend (below) checks the mismatch and
// returns the list unchanged before ever calling this (evalStyleRule
// raises the ExtendAcrossMedia error itself); by the time this
// closure runs during a single Extend call every candidate has already
// been confirmed context-compatible, so it only needs to gate on
// MediaContext equality as a second layer of defense for the transitive
// (addExtension step 2) path, which does not go through Extend's error
// checking.
func (ex *Extender) alternativesFor(ruleMediaContext string) extenderAlternatives {
	return func(target SimpleSelector) []ComplexSelector {
		var out []ComplexSelector
		for _, e := range ex.extensionsByTarget[target.String()] {
			if e.MediaContext != "" && ruleMediaContext != "" && e.MediaContext != ruleMediaContext {
				continue
			}
			out = append(out, e.Extender)
		}
		return out
	}
}

// Extend implements spec §4.6 "extend(list, extensions, mediaContext)"
// plus the media-boundary check, returning the rewritten, trimmed
// SelectorList. It never mutates list.
func (ex *Extender) Extend(list *SelectorList, mediaContext string) *SelectorList {
	if err := ex.checkMediaBoundary(list, mediaContext); err != nil {
		// A hard error surfaces through the evaluator's own call path
		// (evalStyleRule in eval_stmt.go checks boundaries before
		// RegisterStyleRule invokes Extend); Extend itself degrades to a
		// no-op rewrite so a caller that skipped the check (e.g. the
		// retroactive step of AddExtension above) never panics.
		return list
	}
	alts := ex.alternativesFor(mediaContext)
	var result []ComplexSelector
	var originals []ComplexSelector
	for _, c := range list.Complexes {
		originals = append(originals, c)
		result = append(result, extendComplex(c, alts)...)
	}
	trimmed := trim(ex, dedupeComplexes(result), originals)
	return &SelectorList{Complexes: trimmed}
}

// checkMediaBoundary returns a non-nil error if any extension that would
// apply to a simple selector appearing in list has an incompatible,
// non-empty mediaContext (spec §4.6 "Media boundary").
func (ex *Extender) checkMediaBoundary(list *SelectorList, mediaContext string) error {
	for _, c := range list.Complexes {
		for _, cp := range c.Compounds() {
			for _, s := range cp.Simples {
				for _, e := range ex.extensionsByTarget[s.String()] {
					if e.MediaContext != "" && mediaContext != "" && e.MediaContext != mediaContext {
						return NewCompileError(ExtendAcrossMedia, "@extend rule \""+e.Extender.String()+"\" can't be used across media boundaries", e.Span)
					}
				}
			}
		}
	}
	return nil
}

// RegisterStyleRule records node as having been emitted with original
// selector (pre-extension), then applies whatever extensions already exist
// so the node reflects them immediately (spec §4.6's bookkeeping assumes
// every later addExtension call retroactively updates earlier rules; a
// rule registered after its target's extensions must equally pick them up
// on first emission).
func (ex *Extender) RegisterStyleRule(node *CSSStyleRule, mediaContext string) {
	original := node.Selector
	for _, c := range original.Complexes {
		for _, cp := range c.Compounds() {
			for _, s := range cp.Simples {
				ex.matchedTargets[s.String()] = true
			}
		}
	}
	ex.rules = append(ex.rules, &registeredRule{node: node, original: original, mediaContext: mediaContext})
	node.Selector = ex.Extend(original, mediaContext)
}

// HasTarget reports whether target has ever been @extended (an extension
// whose target is this simple selector was registered via AddExtension),
// regardless of whether any rule actually matches it. This is a bookkeeping
// query, not the UnsatisfiedExtend check — see MatchesAnyRule for that.
func (ex *Extender) HasTarget(target SimpleSelector) bool {
	_, ok := ex.extensionsByTarget[target.String()]
	return ok
}

// MatchesAnyRule reports whether some style rule registered so far has a
// selector containing target — the actual existence check spec §8 requires
// for UnsatisfiedExtend ("`@extend a` where no rule targets `a`"), distinct
// from HasTarget (which only reports whether target was ever @extended).
func (ex *Extender) MatchesAnyRule(target SimpleSelector) bool {
	return ex.matchedTargets[target.String()]
}

// trim implements spec §4.6 "trim(selectors, originals)": remove a
// generated selector complex1 when some other selector complex2 is a
// superselector of it *and* complex2's own minimum specificity is at
// least complex1's tracked source specificity — the specificity of
// whatever original selector caused complex1 to be generated, via
// ex.complexSourceSpecificity, not complex1's own literal specificity.
// A selector original to the input (came from the stylesheet, not
// generated by extend) is never trimmed. Order is preserved; the first of
// a run of duplicates is kept. Per spec, trimming is skipped outright past
// 100 selectors to avoid the quadratic blow-up of the naive O(n^2)
// comparison. Mirrors extender.cpp's trim()/dontTrimComplex().
func trim(ex *Extender, selectors []ComplexSelector, originals []ComplexSelector) []ComplexSelector {
	if len(selectors) > 100 {
		return selectors
	}
	isOriginal := make([]bool, len(selectors))
	origSet := map[string]bool{}
	for _, o := range originals {
		origSet[o.String()] = true
	}
	for i, s := range selectors {
		isOriginal[i] = origSet[s.String()]
	}

	keep := make([]bool, len(selectors))
	for i := range selectors {
		keep[i] = true
	}
	for i := range selectors {
		if !keep[i] || isOriginal[i] {
			continue
		}
		maxSpec := ex.complexSourceSpecificity(selectors[i])
		for j := range selectors {
			if i == j || !keep[j] {
				continue
			}
			if complexMinSpecificity(selectors[j]).Compare(maxSpec) >= 0 && IsSuperselectorComplex(selectors[j], selectors[i]) {
				keep[i] = false
				break
			}
		}
	}
	var out []ComplexSelector
	for i, c := range selectors {
		if keep[i] {
			out = append(out, c)
		}
	}
	return out
}
