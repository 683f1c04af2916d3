package sass

// Evaluator is the tree-walking interpreter of spec §4.5: it consumes the
// AST (ast.go) reading/writing Frames (env.go) and Modules (module.go),
// producing a resolved CSS tree (resolved.go) while feeding every
// registered `@extend` into the Extender (extend.go).
//
// Grounded on daios-ai-msg/interpreter.go's Interpreter: a struct holding
// shared session state (here: Registry, Ext, Logger, Loader) plus
// per-evaluation context threaded explicitly through recursive eval calls
// rather than mutable fields on the Evaluator itself — the same
// instance safely evaluates several modules (module.go's Load calls back
// into it) because nothing about "where in the tree we are" lives on
// Evaluator.
type Evaluator struct {
	Registry     *ModuleRegistry
	Ext          *Extender
	Logger       Logger
	Loader       Loader
	MaxCallDepth int
	Builtins     map[string]*Closure

	callDepth      int
	pendingExtends []pendingExtendCheck
}

// pendingExtendCheck records one `@extend`'s target, recorded by evalExtend
// (eval_stmt.go) so Compile can validate it once the whole compilation has
// finished and every style rule across every module is known (spec §8:
// "@extend a where no rule targets a and no !optional raises
// UnsatisfiedExtend").
type pendingExtendCheck struct {
	target   SimpleSelector
	optional bool
	span     SourceSpan
}

// checkExtends enforces that check. It must only run after every module in
// the compile has finished evaluating — a target defined later in load
// order (e.g. the entry module's own rules, evaluated after an earlier
// @use'd module's @extend) is still satisfied by the time the whole
// compile completes, even though it wasn't yet when that module's own
// EvalModuleBody returned.
func (e *Evaluator) checkExtends() error {
	for _, p := range e.pendingExtends {
		if p.optional {
			continue
		}
		if !e.Ext.MatchesAnyRule(p.target) {
			return NewCompileError(UnsatisfiedExtend, "\""+p.target.String()+"\" failed to @extend anything", p.span)
		}
	}
	return nil
}

// NewEvaluator wires an Evaluator and its ModuleRegistry together (the
// registry needs an Evaluator to compile modules on demand, and the
// Evaluator needs the registry to resolve @use/@forward/@import, so
// construction is two-step).
func NewEvaluator(logger Logger, loader Loader, cacheCapacity, maxCallDepth int) *Evaluator {
	if logger == nil {
		logger = DiscardLogger{}
	}
	if maxCallDepth <= 0 {
		maxCallDepth = 250
	}
	e := &Evaluator{Ext: NewExtender(), Logger: logger, Loader: loader, MaxCallDepth: maxCallDepth, Builtins: map[string]*Closure{}}
	e.Registry = NewModuleRegistry(e, cacheCapacity)
	RegisterBuiltins(e)
	return e
}

// evalContext is the per-position state threaded through eval_stmt.go/
// eval_expr.go recursive calls: the lexical frame in scope, the resolved
// parent selector (nil at stylesheet top level), the enclosing media
// query signature (for the Extender's media-boundary check), the output
// slice new CSS nodes are appended to, and whatever @content block is
// available to a `@content` statement reached from here.
type evalContext struct {
	module         *Module
	frame          *Frame
	parentSelector *SelectorList
	mediaContext   string
	output         *[]CSSNode
	content        *contentBinding
	backtrace      []BacktraceFrame
}

// contentBinding captures a mixin-include's `{ ... }` block together with
// the frame the @include statement itself was evaluated in — @content runs
// in the *caller's* lexical scope, not the mixin's (spec §4.5's Include
// semantics), which is the one closure-capture rule in this evaluator that
// isn't just "read Closure.Env".
type contentBinding struct {
	body   []Stmt
	env    *Frame
	params []Param
}

func (c evalContext) push(frame *Frame) evalContext {
	c.frame = frame
	return c
}

func (c evalContext) withOutput(out *[]CSSNode) evalContext {
	c.output = out
	return c
}

func (c evalContext) emit(n CSSNode) { *c.output = append(*c.output, n) }

// controlReturn/controlBreak unwind a function/loop body the way Go's own
// return/break would if the evaluator were compiled rather than
// interpreted; eval_mixin.go's function-body runner and eval_stmt.go's loop
// runners catch these with type assertions and stop propagating them
// further than their target.
type controlReturn struct{ Value Value }

func (*controlReturn) Error() string { return "return outside function" }

type controlBreak struct{}

func (*controlBreak) Error() string { return "break outside loop" }

// There is no continue signal: Sass has no explicit `continue` statement —
// @each/@for/@while simply finish their current body and loop.

// pushCall increments the recursion counter and returns a matching pop
// function, raising StackError once MaxCallDepth is exceeded (spec §5:
// "enforced by incrementing a counter on frame push and throwing
// StackError past the limit").
func (e *Evaluator) pushCall(span SourceSpan) (func(), error) {
	e.callDepth++
	if e.callDepth > e.MaxCallDepth {
		e.callDepth--
		return func() {}, NewCompileError(StackError, "stack depth exceeded", span)
	}
	return func() { e.callDepth-- }, nil
}

// EvalModuleBody evaluates m's top-level statements into m.Root/m's own
// output, called by ModuleRegistry.Load the first time a module is needed.
func (e *Evaluator) EvalModuleBody(m *Module, stmts []Stmt) error {
	var out []CSSNode
	ctx := evalContext{module: m, frame: m.Root, output: &out}
	if err := e.evalStmts(ctx, stmts); err != nil {
		return err
	}
	m.Output = out
	return nil
}

// Compile evaluates the stylesheet at entryURL and returns the flattened
// CSS tree: the entry module's own output followed by the output of every
// module it transitively @use/@forward'd, in first-load order (spec §6.2's
// "a resolved tree... Modules are compiled at most once" generalized to
// "and every module's own top-level rules are part of the final output
// exactly once, in load order" — the common-case behavior for a
// single-entrypoint compile).
func (e *Evaluator) Compile(entryURL string) (*CSSRoot, error) {
	entry, err := e.Registry.Load(entryURL, nil, e.Loader, SourceSpan{Path: entryURL})
	if err != nil {
		return nil, err
	}
	if err := e.checkExtends(); err != nil {
		return nil, err
	}
	root := &CSSRoot{}
	for _, url := range e.Registry.loadOrder {
		m, ok := e.Registry.byURL[url]
		if !ok {
			continue
		}
		root.Children = append(root.Children, m.Output...)
	}
	_ = entry
	return root, nil
}
