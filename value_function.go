package sass

// Param describes one formal parameter of a user-defined function or mixin:
// a name and an optional default-value expression (evaluated lazily, in the
// callee's own scope, only when the argument is omitted).
type Param struct {
	Name    EnvKey
	Default Expr // nil if the parameter has no default
}

// NativeFunc implements a built-in function or mixin body (spec §4.5
// "Built-in function registration"). It receives the call's evaluated
// positional arguments in the order written (keyword arguments are not
// passed on and no defaults are applied) plus the evaluator handle so
// built-ins that need it (color functions needing unit checks, meta.call)
// can use it.
type NativeFunc func(e *Evaluator, args []Value) (Value, error)

// Closure is the runtime representation of a user-defined function or
// mixin (spec §3 "Function handle", "Mixin handle"; §9 "Cyclic ownership
// between frame and closure").
//
// Per spec §9's design note, a closure never retains a pointer into a
// transient Frame: Env here is the *defining* frame, which itself chains
// up to a Module's persistent root — module roots are reference-counted by
// the Module they belong to and outlive any call, so capturing Env is safe
// even though intermediate block/loop frames the closure's definition sat
// inside are stack-owned and torn down on scope exit (spec §5 "Shared
// resources").
type Closure struct {
	Name       string
	Params     []Param
	RestParam  EnvKey // "" if no $args... rest parameter
	HasRest    bool
	Body       []Stmt // nil for natives
	Env        *Frame // defining lexical frame (closure-captured)
	Native     NativeFunc
	IsMixin    bool
	AcceptsContent bool // mixin explicitly uses @content
	Span       SourceSpan
}

func (c *Closure) Arity() int { return len(c.Params) }

func FunctionV(c *Closure) Value { return Value{Kind: KFunction, Data: c} }
func MixinV(c *Closure) Value    { return Value{Kind: KMixin, Data: c} }
