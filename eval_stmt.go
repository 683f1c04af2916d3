package sass

import "fmt"

// evalStmts runs stmts in order against ctx, stopping (and propagating) on
// the first error — including the control-flow sentinels controlReturn and
// controlBreak, which are ordinary Go errors here so the same propagation
// path unwinds them to whichever caller is prepared to catch them
// (evalFunctionBody for controlReturn, loop runners for controlBreak).
func (e *Evaluator) evalStmts(ctx evalContext, stmts []Stmt) error {
	for _, s := range stmts {
		if err := e.evalStmt(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) evalStmt(ctx evalContext, stmt Stmt) error {
	switch s := stmt.(type) {
	case *StyleRule:
		return e.evalStyleRule(ctx, s)
	case *Declaration:
		return e.evalDeclaration(ctx, s)
	case *ForStmt:
		return e.evalFor(ctx, s)
	case *EachStmt:
		return e.evalEach(ctx, s)
	case *WhileStmt:
		return e.evalWhile(ctx, s)
	case *IfStmt:
		return e.evalIf(ctx, s)
	case *MediaStmt:
		return e.evalMedia(ctx, s)
	case *SupportsStmt:
		return e.evalSupports(ctx, s)
	case *AtRootStmt:
		return e.evalAtRoot(ctx, s)
	case *AtRuleStmt:
		return e.evalAtRule(ctx, s)
	case *MixinDecl:
		ctx.frame.Declare(NewEnvKey(s.Name), NSMixin, MixinV(&Closure{
			Name: s.Name, Params: s.Params, RestParam: s.RestParam, HasRest: s.HasRest,
			Body: s.Body, Env: ctx.frame, IsMixin: true, Span: s.Span,
		}))
		return nil
	case *FunctionDecl:
		ctx.frame.Declare(NewEnvKey(s.Name), NSFunction, FunctionV(&Closure{
			Name: s.Name, Params: s.Params, RestParam: s.RestParam, HasRest: s.HasRest,
			Body: s.Body, Env: ctx.frame, Span: s.Span,
		}))
		return nil
	case *IncludeStmt:
		return e.evalInclude(ctx, s)
	case *ContentStmt:
		return e.evalContentStmt(ctx, s)
	case *ReturnStmt:
		v, err := e.evalExpr(ctx, s.Value)
		if err != nil {
			return err
		}
		return &controlReturn{Value: v}
	case *WarnStmt:
		v, err := e.evalExpr(ctx, s.Message)
		if err != nil {
			return err
		}
		e.Logger.Log(Diagnostic{Kind: DiagWarn, Message: stringify(v), Span: s.Span, Backtrace: ctx.backtrace})
		return nil
	case *DebugStmt:
		v, err := e.evalExpr(ctx, s.Message)
		if err != nil {
			return err
		}
		e.Logger.Log(Diagnostic{Kind: DiagDebug, Message: v.String(), Span: s.Span, Backtrace: ctx.backtrace})
		return nil
	case *ErrorStmt:
		v, err := e.evalExpr(ctx, s.Message)
		if err != nil {
			return err
		}
		return NewCompileError(UserError, stringify(v), s.Span)
	case *ExtendStmt:
		return e.evalExtend(ctx, s)
	case *AssignStmt:
		return e.evalAssign(ctx, s)
	case *UseStmt:
		return e.evalUse(ctx, s)
	case *ForwardStmt:
		return e.evalForward(ctx, s)
	case *ImportStmt:
		return e.evalImport(ctx, s)
	case *LoudComment:
		v, err := e.evalExpr(ctx, s.Text)
		if err != nil {
			return err
		}
		ctx.emit(&CSSComment{Text: stringify(v), Span: s.Span})
		return nil
	case *ExprStmt:
		_, err := e.evalExpr(ctx, s.Value)
		return err
	default:
		return NewCompileError(InvalidSyntax, fmt.Sprintf("unsupported statement node %T", stmt), SourceSpan{})
	}
}

// evalSelector evaluates expr to text and parses it as a SelectorList
// (spec §4.4's SelectorSchema flow: "interpolate selector text, parse
// against the current parent selector"), resolving `&` against the
// enclosing rule's already-resolved selector (selector_parse.go,
// selector.go's ResolveParent).
func (e *Evaluator) evalSelector(ctx evalContext, expr Expr) (*SelectorList, error) {
	v, err := e.evalExpr(ctx, expr)
	if err != nil {
		return nil, err
	}
	text := stringify(v)
	list := ParseSelectorText(text)
	return list.ResolveParent(ctx.parentSelector), nil
}

func (e *Evaluator) evalStyleRule(ctx evalContext, s *StyleRule) error {
	list, err := e.evalSelector(ctx, s.Selector)
	if err != nil {
		return err
	}
	node := &CSSStyleRule{Selector: list, Span: s.Span}
	if err := e.Ext.checkMediaBoundary(list, ctx.mediaContext); err != nil {
		return err
	}
	e.Ext.RegisterStyleRule(node, ctx.mediaContext)

	childCtx := evalContext{
		module: ctx.module, frame: ctx.frame.Push(), output: &node.Children,
		parentSelector: node.Selector, mediaContext: ctx.mediaContext,
		content: ctx.content, backtrace: ctx.backtrace,
	}
	if err := e.evalStmts(childCtx, s.Body); err != nil {
		return err
	}
	if !node.Selector.IsInvisible() && hasPrintableChildren(node.Children) {
		ctx.emit(node)
	}
	return nil
}

func hasPrintableChildren(children []CSSNode) bool {
	return len(children) > 0
}

func (e *Evaluator) evalDeclaration(ctx evalContext, d *Declaration) error {
	nameVal, err := e.evalExpr(ctx, d.Name)
	if err != nil {
		return err
	}
	name := stringify(nameVal)

	var valueText string
	hasValue := d.Value != nil
	if hasValue {
		v, err := e.evalExpr(ctx, d.Value)
		if err != nil {
			return err
		}
		if IsInvisible(v) && d.Body == nil {
			return nil
		}
		if d.Custom {
			valueText = stringify(v)
		} else {
			valueText = v.String()
		}
		ctx.emit(&CSSDeclaration{Property: name, Value: valueText, Important: d.Important, Span: d.Span})
	}
	if d.Body != nil {
		var nested []CSSNode
		prefix := name
		nestedCtx := evalContext{
			module: ctx.module, frame: ctx.frame.Push(), output: &nested,
			parentSelector: ctx.parentSelector, mediaContext: ctx.mediaContext,
			content: ctx.content, backtrace: ctx.backtrace,
		}
		if err := e.evalStmts(nestedCtx, d.Body); err != nil {
			return err
		}
		for _, n := range nested {
			if decl, ok := n.(*CSSDeclaration); ok {
				decl.Property = prefix + "-" + decl.Property
			}
			ctx.emit(n)
		}
	}
	return nil
}

func (e *Evaluator) evalFor(ctx evalContext, s *ForStmt) error {
	fromV, err := e.evalExpr(ctx, s.From)
	if err != nil {
		return err
	}
	toV, err := e.evalExpr(ctx, s.To)
	if err != nil {
		return err
	}
	if fromV.Kind != KNumber || toV.Kind != KNumber {
		return NewCompileError(InvalidArgumentType, "@for bounds must be numbers", s.Span)
	}
	from := int(fromV.Number().Value)
	to := int(toV.Number().Value)
	step := 1
	if from > to {
		step = -1
	}
	if s.Inclusive {
		to += step
	}
	for i := from; i != to; i += step {
		frame := ctx.frame.Push()
		frame.Declare(s.Variable, NSVariable, Value{Kind: KNumber, Data: UnitlessNumber(float64(i))})
		loopCtx := ctx
		loopCtx.frame = frame
		if err := e.evalStmts(loopCtx, s.Body); err != nil {
			if _, ok := err.(*controlBreak); ok {
				break
			}
			return err
		}
	}
	return nil
}

func (e *Evaluator) evalEach(ctx evalContext, s *EachStmt) error {
	listV, err := e.evalExpr(ctx, s.List)
	if err != nil {
		return err
	}
	items := toIterable(listV)
	for _, item := range items {
		frame := ctx.frame.Push()
		assignEachVars(frame, s.Variables, item)
		loopCtx := ctx
		loopCtx.frame = frame
		if err := e.evalStmts(loopCtx, s.Body); err != nil {
			if _, ok := err.(*controlBreak); ok {
				break
			}
			return err
		}
	}
	return nil
}

// toIterable normalizes @each's source into the per-iteration Values:
// a list yields its items; a map yields a 2-element [key, value] list per
// entry (spec: `@each $k, $v in map` destructures map entries); anything
// else is treated as a single-item list.
func toIterable(v Value) []Value {
	switch v.Kind {
	case KList:
		return v.List().Items
	case KArgumentList:
		return v.ArgumentList().List.Items
	case KMap:
		var out []Value
		v.Map().Each(func(k, val Value) {
			out = append(out, ListV([]Value{k, val}, SepSpace, false))
		})
		return out
	default:
		return []Value{v}
	}
}

func assignEachVars(frame *Frame, vars []EnvKey, item Value) {
	if len(vars) == 1 {
		frame.Declare(vars[0], NSVariable, item)
		return
	}
	var parts []Value
	if item.Kind == KList {
		parts = item.List().Items
	} else {
		parts = []Value{item}
	}
	for i, name := range vars {
		if i < len(parts) {
			frame.Declare(name, NSVariable, parts[i])
		} else {
			frame.Declare(name, NSVariable, Null)
		}
	}
}

func (e *Evaluator) evalWhile(ctx evalContext, s *WhileStmt) error {
	for {
		condV, err := e.evalExpr(ctx, s.Cond)
		if err != nil {
			return err
		}
		if !condV.Truthy() {
			return nil
		}
		loopCtx := ctx
		loopCtx.frame = ctx.frame.Push()
		if err := e.evalStmts(loopCtx, s.Body); err != nil {
			if _, ok := err.(*controlBreak); ok {
				return nil
			}
			return err
		}
	}
}

func (e *Evaluator) evalIf(ctx evalContext, s *IfStmt) error {
	for _, clause := range s.Clauses {
		if clause.Cond == nil {
			return e.evalStmts(evalContext{module: ctx.module, frame: ctx.frame.Push(), output: ctx.output, parentSelector: ctx.parentSelector, mediaContext: ctx.mediaContext, content: ctx.content, backtrace: ctx.backtrace}, clause.Body)
		}
		v, err := e.evalExpr(ctx, clause.Cond)
		if err != nil {
			return err
		}
		if v.Truthy() {
			childCtx := evalContext{module: ctx.module, frame: ctx.frame.Push(), output: ctx.output, parentSelector: ctx.parentSelector, mediaContext: ctx.mediaContext, content: ctx.content, backtrace: ctx.backtrace}
			return e.evalStmts(childCtx, clause.Body)
		}
	}
	return nil
}

func (e *Evaluator) evalMedia(ctx evalContext, s *MediaStmt) error {
	queryV, err := e.evalExpr(ctx, s.Query)
	if err != nil {
		return err
	}
	query := stringify(queryV)
	node := &CSSAtRule{Name: "media", Params: query, Span: s.Span}
	childMedia := query
	if ctx.mediaContext != "" {
		childMedia = ctx.mediaContext + " and " + query
	}
	childCtx := evalContext{module: ctx.module, frame: ctx.frame.Push(), output: &node.Children, parentSelector: ctx.parentSelector, mediaContext: childMedia, content: ctx.content, backtrace: ctx.backtrace}
	if err := e.evalStmts(childCtx, s.Body); err != nil {
		return err
	}
	if len(node.Children) > 0 {
		ctx.emit(node)
	}
	return nil
}

func (e *Evaluator) evalSupports(ctx evalContext, s *SupportsStmt) error {
	condV, err := e.evalExpr(ctx, s.Condition)
	if err != nil {
		return err
	}
	node := &CSSAtRule{Name: "supports", Params: stringify(condV), Span: s.Span}
	childCtx := evalContext{module: ctx.module, frame: ctx.frame.Push(), output: &node.Children, parentSelector: ctx.parentSelector, mediaContext: ctx.mediaContext, content: ctx.content, backtrace: ctx.backtrace}
	if err := e.evalStmts(childCtx, s.Body); err != nil {
		return err
	}
	if len(node.Children) > 0 {
		ctx.emit(node)
	}
	return nil
}

// evalAtRoot implements spec §12.5's @at-root query handling for a bare
// `@at-root { ... }` (or `@at-root .sel { ... }`, handled upstream as a
// StyleRule whose body contains this node): the body runs in a child frame
// with the enclosing context that Query strips removed — no parent
// selector when "rule" is stripped, no media context when "media" is
// stripped. A without-list strips the kinds it names (every kind for
// "all"); a with-list strips every kind it does not name; a query with
// neither strips "rule" only, the Sass default. The body's nodes are
// emitted into the current output: they are not moved out of an enclosing
// style rule or @media/@supports node.
func (e *Evaluator) evalAtRoot(ctx evalContext, s *AtRootStmt) error {
	rootCtx := ctx
	strips := func(kind string) bool {
		if s.Query.HasWith {
			return !s.Query.With[kind] && !s.Query.With["all"]
		}
		if len(s.Query.Without) == 0 {
			return kind == "rule"
		}
		return s.Query.Without[kind] || s.Query.Without["all"]
	}
	if strips("rule") {
		rootCtx.parentSelector = nil
	}
	if strips("media") {
		rootCtx.mediaContext = ""
	}
	rootCtx.frame = ctx.frame.Push()
	return e.evalStmts(rootCtx, s.Body)
}

func (e *Evaluator) evalAtRule(ctx evalContext, s *AtRuleStmt) error {
	var params string
	if s.Value != nil {
		v, err := e.evalExpr(ctx, s.Value)
		if err != nil {
			return err
		}
		params = stringify(v)
	}
	node := &CSSAtRule{Name: s.Name, Params: params, Span: s.Span}
	if s.Body == nil {
		ctx.emit(node)
		return nil
	}
	childCtx := evalContext{module: ctx.module, frame: ctx.frame.Push(), output: &node.Children, parentSelector: ctx.parentSelector, mediaContext: ctx.mediaContext, content: ctx.content, backtrace: ctx.backtrace}
	if err := e.evalStmts(childCtx, s.Body); err != nil {
		return err
	}
	ctx.emit(node)
	return nil
}

// evalExtend implements spec §4.6's @extend entry point: the current
// rule's selector (ctx.parentSelector) becomes the extender for every
// simple selector named in the target text.
func (e *Evaluator) evalExtend(ctx evalContext, s *ExtendStmt) error {
	if ctx.parentSelector == nil {
		return NewCompileError(InvalidParent, "@extend may only be used inside a style rule", s.Span)
	}
	v, err := e.evalExpr(ctx, s.Target)
	if err != nil {
		return err
	}
	targetList := ParseSelectorText(stringify(v))
	for _, complex := range targetList.Complexes {
		for _, cp := range complex.Compounds() {
			for _, simple := range cp.Simples {
				for _, extender := range ctx.parentSelector.Complexes {
					e.Ext.AddExtension(extender, simple, ctx.mediaContext, s.Optional, s.Span)
				}
				e.pendingExtends = append(e.pendingExtends, pendingExtendCheck{target: simple, optional: s.Optional, span: s.Span})
			}
		}
	}
	return nil
}

func (e *Evaluator) evalAssign(ctx evalContext, s *AssignStmt) error {
	if s.Namespace != "" {
		return NewCompileError(InvalidSyntax, "cannot assign to a namespaced variable "+s.Namespace+".$"+s.Name.Spelling(), s.Span)
	}
	if s.Default {
		var cfg *WithConfig
		if ctx.module != nil {
			cfg = ctx.module.withConfig
		}
		if cfg != nil {
			if v, ok := cfg.Lookup(s.Name); ok {
				cfg.Consume(s.Name)
				ctx.frame.SetVariable(s.Name, v, scopeFor(s))
				return nil
			}
		}
		if ctx.frame.Has(s.Name, NSVariable) {
			return nil
		}
	}
	v, err := e.evalExpr(ctx, s.Value)
	if err != nil {
		return err
	}
	ctx.frame.SetVariable(s.Name, v, scopeFor(s))
	return nil
}

func scopeFor(s *AssignStmt) VarScope {
	if s.Global {
		return ScopeGlobal
	}
	return ScopeLexicalOrNew
}
