package sass

import "strings"

// ParseSelectorText parses already-interpolated selector text (spec §4.5:
// "interpolate selector text... parse against the current parent
// selector") into a SelectorList. This is a plain-CSS-selector-subset
// parser — no interpolation handling here, since by the time text reaches
// this function every `#{...}` has already been evaluated to its string
// form by evalSelector (eval_stmt.go).
//
// Grounded on original_source's selector grammar (comma-separated complex
// selectors; compound selectors joined by combinator tokens; simple
// selectors: type, universal, class, id, attribute, pseudo, placeholder,
// parent-reference), reduced to the well-formed-input subset this compiler
// needs since malformed selector text is a parser-stage concern (spec §1
// scopes lexing/parsing out of this evaluator).
func ParseSelectorText(text string) *SelectorList {
	p := &selectorParser{src: text}
	return p.parseList()
}

type selectorParser struct {
	src string
	pos int
}

func (p *selectorParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *selectorParser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

func (p *selectorParser) parseList() *SelectorList {
	var complexes []ComplexSelector
	p.skipSpace()
	for p.pos < len(p.src) {
		c := p.parseComplex()
		if len(c.Components) > 0 {
			complexes = append(complexes, c)
		}
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			p.skipSpace()
			continue
		}
		break
	}
	return &SelectorList{Complexes: complexes}
}

func (p *selectorParser) parseComplex() ComplexSelector {
	var compounds []CompoundSelector
	var combinators []Combinator
	pendingCombinator := CombinatorDescendant
	haveCombinator := false

	for {
		p.skipSpace()
		if comb, ok := p.tryCombinatorToken(); ok {
			pendingCombinator = comb
			haveCombinator = true
			p.skipSpace()
			continue
		}
		if p.pos >= len(p.src) || p.peek() == ',' {
			break
		}
		compound := p.parseCompound()
		if len(compound.Simples) == 0 {
			break
		}
		if len(compounds) > 0 {
			if haveCombinator {
				combinators = append(combinators, pendingCombinator)
			} else {
				combinators = append(combinators, CombinatorDescendant)
			}
		}
		compounds = append(compounds, compound)
		haveCombinator = false
		pendingCombinator = CombinatorDescendant

		// A run of whitespace not immediately followed by a combinator token
		// or another compound still means "descendant combinator"; detect
		// trailing space before the next token to set haveCombinator=false
		// but combinators default to CombinatorDescendant above regardless.
		save := p.pos
		p.skipSpace()
		if p.pos == save {
			// no space consumed; next char directly abuts, fine
		}
		if p.peek() == ',' || p.pos >= len(p.src) {
			break
		}
		p.pos = save
	}
	return newComplex(compounds, combinators)
}

func (p *selectorParser) tryCombinatorToken() (Combinator, bool) {
	switch p.peek() {
	case '>':
		p.pos++
		return CombinatorChild, true
	case '+':
		p.pos++
		return CombinatorNextSibling, true
	case '~':
		p.pos++
		return CombinatorSubsequentSibling, true
	}
	return CombinatorDescendant, false
}

func (p *selectorParser) parseCompound() CompoundSelector {
	var simples []SimpleSelector
	for {
		s, ok := p.tryParseSimple()
		if !ok {
			break
		}
		simples = append(simples, s)
	}
	return CompoundSelector{Simples: simples}
}

func (p *selectorParser) tryParseSimple() (SimpleSelector, bool) {
	switch p.peek() {
	case '*':
		p.pos++
		return SimpleSelector{Kind: SimpleUniversal}, true
	case '&':
		p.pos++
		return SimpleSelector{Kind: SimpleParent}, true
	case '.':
		p.pos++
		return SimpleSelector{Kind: SimpleClass, Name: p.parseIdent()}, true
	case '#':
		p.pos++
		return SimpleSelector{Kind: SimpleID, Name: p.parseIdent()}, true
	case '%':
		p.pos++
		return SimpleSelector{Kind: SimplePlaceholder, Name: p.parseIdent()}, true
	case ':':
		return p.parsePseudo(), true
	case '[':
		return p.parseAttribute(), true
	}
	if isIdentStart(p.peek()) {
		name := p.parseIdent()
		if p.peek() == '|' {
			p.pos++
			ns := name
			return SimpleSelector{Kind: SimpleType, HasNS: true, Namespace: ns, Name: p.parseIdent()}, true
		}
		return SimpleSelector{Kind: SimpleType, Name: name}, true
	}
	return SimpleSelector{}, false
}

func (p *selectorParser) parsePseudo() SimpleSelector {
	p.pos++ // first ':'
	isElement := false
	if p.peek() == ':' {
		p.pos++
		isElement = true
	}
	name := p.parseIdent()
	var arg string
	var inner *SelectorList
	if p.peek() == '(' {
		p.pos++
		depth := 1
		start := p.pos
		for p.pos < len(p.src) && depth > 0 {
			switch p.src[p.pos] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					continue
				}
			}
			p.pos++
		}
		arg = p.src[start:p.pos]
		if p.peek() == ')' {
			p.pos++
		}
		switch strings.ToLower(name) {
		case "not", "matches", "is", "where", "has":
			inner = ParseSelectorText(arg)
		}
	}
	return SimpleSelector{Kind: SimplePseudo, Name: name, IsElement: isElement, Argument: arg, Selector: inner}
}

func (p *selectorParser) parseAttribute() SimpleSelector {
	p.pos++ // '['
	p.skipSpace()
	name := p.parseIdent()
	p.skipSpace()
	var op, val string
	ci := false
	if p.peek() != ']' && p.peek() != 0 {
		op = p.parseAttrOp()
		p.skipSpace()
		val = p.parseAttrValue()
		p.skipSpace()
		if p.peek() == 'i' || p.peek() == 'I' {
			ci = true
			p.pos++
			p.skipSpace()
		}
	}
	if p.peek() == ']' {
		p.pos++
	}
	return SimpleSelector{Kind: SimpleAttribute, Name: name, AttrOp: op, AttrValue: val, AttrCI: ci}
}

func (p *selectorParser) parseAttrOp() string {
	start := p.pos
	for strings.ContainsRune("~|^$*=", rune(p.peek())) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *selectorParser) parseAttrValue() string {
	if p.peek() == '"' || p.peek() == '\'' {
		quote := p.peek()
		p.pos++
		start := p.pos
		for p.pos < len(p.src) && p.src[p.pos] != quote {
			p.pos++
		}
		val := p.src[start:p.pos]
		if p.pos < len(p.src) {
			p.pos++
		}
		return val
	}
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != ']' && !isSpace(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *selectorParser) parseIdent() string {
	start := p.pos
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isIdentStart(b byte) bool {
	return b == '-' || b == '_' || b == '\\' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}
